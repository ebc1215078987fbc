package auth

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContextKey is where the verified claims are stored on the echo context.
const ContextKey = "claims"

// ErrNoIdentity is returned when a request carries no usable caller email.
var ErrNoIdentity = errors.New("caller identity missing")

// EmailResolver extracts the caller's email from a request.
type EmailResolver interface {
	ResolveEmail(c echo.Context) (string, error)
}

// QueryEmailResolver trusts the `email` query parameter as sent. Nothing
// proves the caller owns that address; use TokenEmailResolver where that matters.
type QueryEmailResolver struct{}

// ResolveEmail implements EmailResolver.
func (QueryEmailResolver) ResolveEmail(c echo.Context) (string, error) {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return "", ErrNoIdentity
	}
	return email, nil
}

// TokenEmailResolver reads the email claim of a token already verified by
// the JWT middleware.
type TokenEmailResolver struct{}

// ResolveEmail implements EmailResolver.
func (TokenEmailResolver) ResolveEmail(c echo.Context) (string, error) {
	claims, ok := c.Get(ContextKey).(*Claims)
	if !ok || claims == nil || claims.Email == "" {
		return "", ErrNoIdentity
	}
	return claims.Email, nil
}
