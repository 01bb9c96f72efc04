package ports

import (
	"context"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
)

// Caller identifies the authenticated actor behind a request, as resolved by
// the auth gate.
type Caller struct {
	ID   string
	Role string
}

// SignupInput carries the fields of an account creation request.
type SignupInput struct {
	Nome  string
	Email string
	Senha string
}

// UpdateUserInput carries a partial account update as requested over the
// wire. Senha is plaintext here; the service hashes it before persisting.
type UpdateUserInput struct {
	Nome  *string
	Email *string
	Senha *string
	Role  *string
}

// UserService defines account use-cases.
type UserService interface {
	// Signup creates a regular account. Fails with ErrEmailTaken when the
	// email is already registered.
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	// CreateAdmin creates an account with the admin role. Route wiring
	// restricts it to admin callers.
	CreateAdmin(ctx context.Context, in SignupInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token. Fails with
	// ErrUserNotFound for unknown emails, ErrInvalidCredentials for a wrong
	// password and ErrTooManyAttempts when the throttle window is exhausted.
	Login(ctx context.Context, email, senha string) (string, error)
	// Update applies a partial merge to the target account. Only admins may
	// update other accounts or change roles.
	Update(ctx context.Context, caller Caller, targetID string, in UpdateUserInput) (*domain.User, error)
	// Delete removes a non-admin account. Admin targets are reported as
	// ErrUserNotFound, matching the lookup filter.
	Delete(ctx context.Context, targetID string) error
}
