package ports

import (
	"context"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
)

// SearchFilter is a conjunctive listing filter. Nil / empty members are
// excluded from the query entirely, never treated as a zero bound, so a
// one-sided range (only PriceMin, say) is valid.
type SearchFilter struct {
	PriceMin *float64
	PriceMax *float64
	AreaMin  *float64
	AreaMax  *float64
	// Location matches as a case-insensitive substring.
	Location string
	// Bedrooms matches exactly.
	Bedrooms *int
}

// RealEstatePatch carries a partial listing update. Nil fields are left
// untouched.
type RealEstatePatch struct {
	Name     *string
	Address  *string
	Price    *float64
	Image    *string
	Area     *float64
	Location *string
	Bedrooms *int
}

func (p RealEstatePatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Price == nil &&
		p.Image == nil && p.Area == nil && p.Location == nil && p.Bedrooms == nil
}

// RealEstateRepository defines persistence operations for listings.
type RealEstateRepository interface {
	Create(ctx context.Context, re *domain.RealEstate) (*domain.RealEstate, error)
	FindByID(ctx context.Context, id string) (*domain.RealEstate, error)
	List(ctx context.Context, limit, offset int) ([]domain.RealEstate, error)
	// Search returns every listing matching the filter, unpaginated.
	Search(ctx context.Context, filter SearchFilter) ([]domain.RealEstate, error)
	Update(ctx context.Context, id string, patch RealEstatePatch) (*domain.RealEstate, error)
	// Delete removes a listing and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.RealEstate, error)
	// CountByIDs reports how many of the given ids resolve to stored listings.
	// Malformed ids simply do not count.
	CountByIDs(ctx context.Context, ids []string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
