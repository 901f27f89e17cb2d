package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// PermissionChecker resolves the caller's current role from the database.
type PermissionChecker interface {
	CheckPermission(ctx context.Context, email string, allowed ...domain.Role) bool
}

// RequireRole enforces role-based access control. The check re-reads the
// account on every request, so a role or status change takes effect without
// waiting for the token to expire.
func RequireRole(checker PermissionChecker, allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" || !checker.CheckPermission(c.Request().Context(), email, allowed...) {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Permission denied"})
			}
			return next(c)
		}
	}
}
