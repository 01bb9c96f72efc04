package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/api/metrics"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// RealEstateHandler handles listing reads, searches and admin mutations.
type RealEstateHandler struct {
	service ports.RealEstateService
}

func NewRealEstateHandler(service ports.RealEstateService) *RealEstateHandler {
	return &RealEstateHandler{service: service}
}

// List handles GET /realEstate — one page of listings.
//
// @Summary      List real estate with pagination
// @Tags         realEstate
// @Produce      json
// @Param        limite  query  int  false  "Page size (default 10)"
// @Param        pagina  query  int  false  "1-indexed page (default 1)"
// @Success      200  {object}  realEstateListEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /realEstate [get]
func (h *RealEstateHandler) List(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, realEstateListEnvelope{Success: true, Data: items})
}

// Search handles GET /realEstate/search — conjunctive filter over optional
// bounds, unpaginated.
//
// @Summary      Advanced real estate search
// @Tags         realEstate
// @Produce      json
// @Param        priceMin  query  number  false  "Minimum price"
// @Param        priceMax  query  number  false  "Maximum price"
// @Param        areaMin   query  number  false  "Minimum area"
// @Param        areaMax   query  number  false  "Maximum area"
// @Param        location  query  string  false  "Case-insensitive location substring"
// @Param        bedrooms  query  int     false  "Exact bedroom count"
// @Success      200  {object}  searchResponse
// @Failure      400  {object}  errorResponse
// @Router       /realEstate/search [get]
func (h *RealEstateHandler) Search(c echo.Context) error {
	var filter ports.SearchFilter
	var err error

	if filter.PriceMin, err = floatQuery(c, "priceMin"); err != nil {
		return err
	}
	if filter.PriceMax, err = floatQuery(c, "priceMax"); err != nil {
		return err
	}
	if filter.AreaMin, err = floatQuery(c, "areaMin"); err != nil {
		return err
	}
	if filter.AreaMax, err = floatQuery(c, "areaMax"); err != nil {
		return err
	}
	if filter.Bedrooms, err = intQuery(c, "bedrooms"); err != nil {
		return err
	}
	filter.Location = c.QueryParam("location")

	results, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, searchResponse{Results: results})
}

// Create handles POST /realEstate — admin only.
//
// @Summary      Create a listing
// @Tags         realEstate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRealEstateRequest  true  "Listing details"
// @Success      201   {object}  realEstateEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /realEstate [post]
func (h *RealEstateHandler) Create(c echo.Context) error {
	var req createRealEstateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateRealEstateInput{
		Name:     req.Name,
		Address:  req.Address,
		Price:    *req.Price,
		Image:    req.Image,
		Area:     req.Area,
		Location: req.Location,
		Bedrooms: req.Bedrooms,
	})
	if err != nil {
		return err
	}

	metrics.RealEstateWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, realEstateEnvelope{Success: true, Data: created})
}

// Update handles PUT /realEstate/:id — admin only, partial merge.
//
// @Summary      Update a listing
// @Tags         realEstate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Listing id"
// @Param        body  body      updateRealEstateRequest  true  "Fields to change"
// @Success      200   {object}  realEstateEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /realEstate/{id} [put]
func (h *RealEstateHandler) Update(c echo.Context) error {
	var req updateRealEstateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.RealEstatePatch{
		Name:     req.Name,
		Address:  req.Address,
		Price:    req.Price,
		Image:    req.Image,
		Area:     req.Area,
		Location: req.Location,
		Bedrooms: req.Bedrooms,
	})
	if err != nil {
		return err
	}

	metrics.RealEstateWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, realEstateEnvelope{Success: true, Data: updated})
}

// Delete handles DELETE /realEstate/:id — admin only.
//
// @Summary      Delete a listing
// @Tags         realEstate
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      200  {object}  realEstateEnvelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /realEstate/{id} [delete]
func (h *RealEstateHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.RealEstateWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, realEstateEnvelope{Success: true, Data: deleted})
}
