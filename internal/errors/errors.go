package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailAlreadyRegistered is returned when signing up with a taken email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken is returned when the Authorization header is absent or
	// lacks the Bearer scheme.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken is returned when a presented token does not resolve to a
	// live session.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotFound is returned when a session references a user record that
	// no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrWatchlistItemNotFound is returned when deleting a watchlist row the
	// caller does not own or that does not exist.
	ErrWatchlistItemNotFound = errors.New("item not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "MISSING_TOKEN")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrWatchlistItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
