package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// callerFromContext extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a populated role proves
// the middleware ran on this route.
func callerFromContext(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get("role").(string)
	id, _ := c.Get("user_id").(string)
	if role == "" || id == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Caller{ID: id, Role: role}, nil
}
