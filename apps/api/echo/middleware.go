package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core/session"
)

// adminMiddleware only lets admin tokens through.
func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if session.ParseRole(claims.Role) == session.RoleAdmin {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
