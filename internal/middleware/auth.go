package middleware

import (
	"github.com/labstack/echo/v4"

	"wolfstreet/internal/auth"
	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/service"
)

// principalKey is the echo context key the resolved principal is stored under.
const principalKey = "principal"

// RequireAuth guards a route group with bearer-token authentication. The raw
// Authorization header is handed to the auth service; failures map to the
// 4xx taxonomy and the request never reaches the handler.
func RequireAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			principal, err := authService.Authenticate(c.Request().Context(), header)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal set by RequireAuth.
func PrincipalFrom(c echo.Context) (*auth.Principal, bool) {
	p, ok := c.Get(principalKey).(*auth.Principal)
	return p, ok
}
