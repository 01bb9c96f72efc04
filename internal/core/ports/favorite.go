package ports

import (
	"context"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
)

// FavoritePatch carries a partial favorite update. A nil RealEstates slice
// leaves the list untouched; a non-nil one replaces it.
type FavoritePatch struct {
	RealEstates []string
}

// FavoriteRepository defines persistence operations for favorite lists.
type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error)
	List(ctx context.Context, limit, offset int) ([]domain.Favorite, error)
	Update(ctx context.Context, id string, patch FavoritePatch) (*domain.Favorite, error)
	Delete(ctx context.Context, id string) (*domain.Favorite, error)
}

// FavoriteService defines favorite-list use-cases.
type FavoriteService interface {
	// List fails with ErrInvalidLimit unless limite is 5, 10 or 30.
	List(ctx context.Context, page PageInput) ([]domain.Favorite, error)
	// Create fails with ErrUnknownRealEstate when any reference does not
	// resolve, and ErrInvalidInput when the list is empty.
	Create(ctx context.Context, realEstates []string) (*domain.Favorite, error)
	Update(ctx context.Context, id string, patch FavoritePatch) (*domain.Favorite, error)
	Delete(ctx context.Context, id string) (*domain.Favorite, error)
}
