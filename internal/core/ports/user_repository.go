package ports

import (
	"context"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
)

// UserPatch carries a partial user update as persisted. Nil fields are left
// untouched. The credential arrives here already hashed.
type UserPatch struct {
	Nome      *string
	Email     *string
	SenhaHash *string
	Role      *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Nome == nil && p.Email == nil && p.SenhaHash == nil && p.Role == nil
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByRole returns any one user with the given role, or ErrUserNotFound.
	FindByRole(ctx context.Context, role string) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
