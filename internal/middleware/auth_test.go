package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wolfstreet/internal/auth"
	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Authenticate(ctx context.Context, authorization string) (*auth.Principal, error) {
	args := m.Called(ctx, authorization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()
	principal := &auth.Principal{
		User:    &model.User{ID: userID, Name: "Ada", Email: "ada@example.com"},
		Session: &model.Session{Token: "tok", UserID: userID},
	}

	tests := []struct {
		name           string
		header         string
		setupMock      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name:   "no header",
			header: "",
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "").Return(nil, apperrors.ErrMissingToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token without scheme",
			header: "tok",
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "tok").Return(nil, apperrors.ErrMissingToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown token",
			header: "Bearer nope",
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "Bearer nope").Return(nil, apperrors.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer tok",
			setupMock: func(m *MockAuthService) {
				m.On("Authenticate", mock.Anything, "Bearer tok").Return(principal, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)

			e := echo.New()
			var seen *auth.Principal
			e.GET("/protected", func(c echo.Context) error {
				p, ok := PrincipalFrom(c)
				assert.True(t, ok)
				seen = p
				return c.NoContent(http.StatusOK)
			}, RequireAuth(mockService))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, principal, seen)
			}
			mockService.AssertExpectations(t)
		})
	}
}
