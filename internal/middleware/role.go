package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarhub/internal/auth"
	"scholarhub/internal/errors"
	"scholarhub/internal/model"
)

// UserLookup finds a user by email, returning nil when none exists.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// RoleGate rejects callers whose stored role is outside an allowed set.
type RoleGate struct {
	resolver auth.EmailResolver
	users    UserLookup
	log      *slog.Logger
}

// NewRoleGate builds a gate that identifies callers with resolver.
func NewRoleGate(resolver auth.EmailResolver, users UserLookup, log *slog.Logger) *RoleGate {
	if log == nil {
		log = slog.Default()
	}
	return &RoleGate{resolver: resolver, users: users, log: log}
}

// AdminOnly admits admins.
func (g *RoleGate) AdminOnly() echo.MiddlewareFunc {
	return g.Require(model.RoleAdmin)
}

// StaffOrAdmin admits moderators and admins.
func (g *RoleGate) StaffOrAdmin() echo.MiddlewareFunc {
	return g.allow(model.Role.IsStaff)
}

// Require admits callers holding one of allowed. A caller with no user
// record, or with an unrecognized role, is treated as a plain user.
func (g *RoleGate) Require(allowed ...model.Role) echo.MiddlewareFunc {
	return g.allow(func(role model.Role) bool {
		for _, r := range allowed {
			if role == r {
				return true
			}
		}
		return false
	})
}

func (g *RoleGate) allow(permitted func(model.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := g.resolver.ResolveEmail(c)
			if err != nil {
				return forbidden()
			}

			user, err := g.users.GetUserByEmail(c.Request().Context(), email)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if user == nil {
				return forbidden()
			}

			role := user.EffectiveRole()
			if permitted(role) {
				return next(c)
			}
			g.log.InfoContext(c.Request().Context(), "role gate denied request",
				"path", c.Path(), "role", string(role))
			return forbidden()
		}
	}
}

func forbidden() error {
	return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
		Error: errors.ErrForbidden.Error(),
		Code:  "FORBIDDEN",
	})
}
