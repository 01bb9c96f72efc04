package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// VisitHandler handles visit scheduling. All routes require an authenticated
// caller; no role restriction applies.
type VisitHandler struct {
	service ports.VisitService
}

func NewVisitHandler(service ports.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

type createVisitRequest struct {
	RealEstate string     `json:"realEstate" validate:"required"`
	Date       *time.Time `json:"date"`
}

// updateVisitRequest is a partial merge: absent fields are left untouched.
type updateVisitRequest struct {
	RealEstate *string    `json:"realEstate" validate:"omitempty,min=1"`
	Date       *time.Time `json:"date"`
}

type visitEnvelope struct {
	Success bool          `json:"success"`
	Data    *domain.Visit `json:"data"`
}

type visitListEnvelope struct {
	Success bool           `json:"success"`
	Data    []domain.Visit `json:"data"`
}

// List handles GET /visits.
//
// @Summary      List visits with pagination
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        limite  query  int  false  "Page size (default 10)"
// @Param        pagina  query  int  false  "1-indexed page (default 1)"
// @Success      200  {object}  visitListEnvelope
// @Failure      400  {object}  errorResponse
// @Router       /visits [get]
func (h *VisitHandler) List(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, visitListEnvelope{Success: true, Data: items})
}

// Create handles POST /visits. The date defaults to now when omitted.
//
// @Summary      Schedule a visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVisitRequest  true  "Visit details"
// @Success      201   {object}  visitEnvelope
// @Failure      400   {object}  errorResponse
// @Router       /visits [post]
func (h *VisitHandler) Create(c echo.Context) error {
	var req createVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateVisitInput{
		RealEstate: req.RealEstate,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, visitEnvelope{Success: true, Data: created})
}

// Update handles PUT /visits/:id.
//
// @Summary      Update a visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Visit id"
// @Param        body  body      updateVisitRequest  true  "Fields to change"
// @Success      200   {object}  visitEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /visits/{id} [put]
func (h *VisitHandler) Update(c echo.Context) error {
	var req updateVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.VisitPatch{
		RealEstate: req.RealEstate,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, visitEnvelope{Success: true, Data: updated})
}

// Delete handles DELETE /visits/:id.
//
// @Summary      Delete a visit
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Visit id"
// @Success      200  {object}  visitEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /visits/{id} [delete]
func (h *VisitHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, visitEnvelope{Success: true, Data: deleted})
}
