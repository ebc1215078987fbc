package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// RequireToken verifies the bearer token with svc and stores its *Claims
// under ContextKey. Missing or invalid tokens are rejected with 401.
func RequireToken(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return svc.ValidateToken(token)
		},
	})
}
