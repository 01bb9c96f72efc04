package ports

import (
	"context"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
)

// PageInput carries the limite/pagina query parameters. Zero values mean
// "not supplied"; each service applies its own defaulting or validation.
type PageInput struct {
	Limit int
	Page  int
}

// Offset returns the skip count for a 1-indexed page.
func (p PageInput) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CreateRealEstateInput carries the fields of a listing creation request.
type CreateRealEstateInput struct {
	Name     string
	Address  string
	Price    float64
	Image    string
	Area     *float64
	Location string
	Bedrooms *int
}

// RealEstateService defines listing use-cases.
type RealEstateService interface {
	List(ctx context.Context, page PageInput) ([]domain.RealEstate, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.RealEstate, error)
	Create(ctx context.Context, in CreateRealEstateInput) (*domain.RealEstate, error)
	Update(ctx context.Context, id string, patch RealEstatePatch) (*domain.RealEstate, error)
	Delete(ctx context.Context, id string) (*domain.RealEstate, error)
}
