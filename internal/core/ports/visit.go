package ports

import (
	"context"
	"time"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
)

// CreateVisitInput carries the fields of a visit scheduling request. A nil
// Date schedules the visit for the creation time.
type CreateVisitInput struct {
	RealEstate string
	Date       *time.Time
}

// VisitPatch carries a partial visit update. Nil fields are left untouched.
type VisitPatch struct {
	RealEstate *string
	Date       *time.Time
}

func (p VisitPatch) IsEmpty() bool {
	return p.RealEstate == nil && p.Date == nil
}

// VisitRepository defines persistence operations for scheduled visits.
type VisitRepository interface {
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	List(ctx context.Context, limit, offset int) ([]domain.Visit, error)
	Update(ctx context.Context, id string, patch VisitPatch) (*domain.Visit, error)
	Delete(ctx context.Context, id string) (*domain.Visit, error)
}

// VisitService defines visit use-cases.
type VisitService interface {
	List(ctx context.Context, page PageInput) ([]domain.Visit, error)
	Create(ctx context.Context, in CreateVisitInput) (*domain.Visit, error)
	Update(ctx context.Context, id string, patch VisitPatch) (*domain.Visit, error)
	Delete(ctx context.Context, id string) (*domain.Visit, error)
}
