package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/api/metrics"
	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// UserHandler handles account signup, login and maintenance.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Cadastro handles POST /users/cadastro — anonymous account signup.
//
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/cadastro [post]
func (h *UserHandler) Cadastro(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	}); err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(domain.RoleUser).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "user registered"})
}

// CreateAdmin handles POST /users/administradores — admin-only creation of
// further admin accounts.
//
// @Summary      Register a new administrator
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/administradores [post]
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.CreateAdmin(c.Request().Context(), ports.SignupInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	}); err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(domain.RoleAdmin).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "administrator registered"})
}

// Login handles POST /users/login — credential check and token issuance.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Update handles PUT /users/usuarios/:id — partial merge by the owner or an
// admin.
//
// @Summary      Update an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdateUserInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "user updated", User: user})
}

// Delete handles DELETE /users/usuarios/:id — admin-only removal of non-admin
// accounts.
//
// @Summary      Delete a non-admin account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
