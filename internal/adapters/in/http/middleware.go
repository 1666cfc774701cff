package http

import (
	"net/http"

	"serviceops/internal/core/application/permissions"

	"github.com/labstack/echo/v4"
)

// roleHeader carries the caller's role. There is no user store behind it; the
// role is resolved against the static permission table on every request.
const roleHeader = "X-Role"

// RequirePermission gates a route on the caller's role. A missing or unknown
// role is rejected the same way as an insufficient one.
func RequirePermission(permission permissions.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role := permissions.Role(ctx.Request().Header.Get(roleHeader))
			if !permissions.Can(role, permission) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "role is not allowed to perform this operation",
				})
			}
			return next(ctx)
		}
	}
}
