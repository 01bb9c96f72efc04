package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// pageFromQuery parses the limite/pagina pagination parameters. Absent
// parameters stay zero so each service can apply its own defaulting or
// enumerated-set validation.
func pageFromQuery(c echo.Context) (ports.PageInput, error) {
	var page ports.PageInput

	if raw := c.QueryParam("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, echo.NewHTTPError(http.StatusBadRequest, "limite must be an integer")
		}
		page.Limit = n
	}
	if raw := c.QueryParam("pagina"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, echo.NewHTTPError(http.StatusBadRequest, "pagina must be an integer")
		}
		page.Page = n
	}
	return page, nil
}

// floatQuery parses an optional float query parameter, returning nil when it
// is absent.
func floatQuery(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}

// intQuery parses an optional integer query parameter, returning nil when it
// is absent.
func intQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return &v, nil
}
