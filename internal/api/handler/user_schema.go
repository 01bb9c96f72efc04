package handler

import "github.com/imovelhub/imoveis-api/internal/core/domain"

type signupRequest struct {
	Nome  string `json:"nome"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// updateUserRequest is a partial merge: absent fields are left untouched.
type updateUserRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha *string `json:"senha" validate:"omitempty,min=6"`
	Role  *string `json:"role"  validate:"omitempty,oneof=admin user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
