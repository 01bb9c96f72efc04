package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles gates a route on the caller's role, as injected by Auth.
// Must be registered after Auth.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied: insufficient role")
			}
			return next(c)
		}
	}
}
