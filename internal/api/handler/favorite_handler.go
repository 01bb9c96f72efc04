package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// FavoriteHandler handles favorite-list operations. All routes require an
// authenticated caller; no role restriction applies.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

type createFavoriteRequest struct {
	RealEstates []string `json:"realEstates" validate:"required,min=1,dive,required"`
}

// updateFavoriteRequest is a partial merge: a missing realEstates field
// leaves the stored list untouched.
type updateFavoriteRequest struct {
	RealEstates []string `json:"realEstates" validate:"omitempty,min=1,dive,required"`
}

type favoriteResponse struct {
	Message  string           `json:"message"`
	Favorite *domain.Favorite `json:"favorite"`
}

type deletedFavoriteResponse struct {
	Message  string           `json:"message"`
	Favorite *domain.Favorite `json:"deletedFavorite"`
}

type favoriteListResponse struct {
	Favorites []domain.Favorite `json:"favorites"`
}

// List handles GET /favorites. Unlike the other collections, limite must be
// one of 5, 10 or 30.
//
// @Summary      List favorites with pagination
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        limite  query  int  true   "Page size: 5, 10 or 30"
// @Param        pagina  query  int  false  "1-indexed page"
// @Success      200  {object}  favoriteListResponse
// @Failure      400  {object}  errorResponse
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, favoriteListResponse{Favorites: items})
}

// Create handles POST /favorites.
//
// @Summary      Create a favorite list
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFavoriteRequest  true  "Listing references"
// @Success      201   {object}  favoriteResponse
// @Failure      400   {object}  errorResponse
// @Router       /favorites [post]
func (h *FavoriteHandler) Create(c echo.Context) error {
	var req createFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.RealEstates)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, favoriteResponse{Message: "favorite created", Favorite: created})
}

// Update handles PUT /favorites/:id.
//
// @Summary      Update a favorite list
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Favorite id"
// @Param        body  body      updateFavoriteRequest  true  "Fields to change"
// @Success      200   {object}  favoriteResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /favorites/{id} [put]
func (h *FavoriteHandler) Update(c echo.Context) error {
	var req updateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.FavoritePatch{
		RealEstates: req.RealEstates,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, favoriteResponse{Message: "favorite updated", Favorite: updated})
}

// Delete handles DELETE /favorites/:id.
//
// @Summary      Delete a favorite list
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Favorite id"
// @Success      200  {object}  deletedFavoriteResponse
// @Failure      404  {object}  errorResponse
// @Router       /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletedFavoriteResponse{Message: "favorite deleted", Favorite: deleted})
}
