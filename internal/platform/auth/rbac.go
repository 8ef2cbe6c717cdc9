package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that checks if the user has one of the
// specified roles. Admins pass every role check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			if role == "admin" {
				return next(c)
			}
			for _, required := range roles {
				if role == required {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// RequireSelf returns an error unless the authenticated user is the subject
// user or an admin. Handlers call it before serving per-user resources.
func RequireSelf(c echo.Context, subjectID int64) error {
	ctx := c.Request().Context()
	if RoleFromContext(ctx) == "admin" {
		return nil
	}
	if UserIDFromContext(ctx) != subjectID {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return nil
}
