package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// allowedFavoriteLimits is the enumerated set of page sizes the favorites
// listing accepts. Other collections take any positive limite; favorites are
// deliberately stricter.
var allowedFavoriteLimits = map[int]struct{}{5: {}, 10: {}, 30: {}}

// FavoriteService implements favorite-list use-cases. It holds the listing
// repository as well so that every stored reference is checked against an
// existing listing at write time.
type FavoriteService struct {
	repo        ports.FavoriteRepository
	realEstates ports.RealEstateRepository
	log         zerolog.Logger
}

func NewFavoriteService(repo ports.FavoriteRepository, realEstates ports.RealEstateRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, realEstates: realEstates, log: log}
}

func (s *FavoriteService) List(ctx context.Context, page ports.PageInput) ([]domain.Favorite, error) {
	if _, ok := allowedFavoriteLimits[page.Limit]; !ok {
		return nil, domain.ErrInvalidLimit
	}
	if page.Page <= 0 {
		page.Page = 1
	}
	return s.repo.List(ctx, page.Limit, page.Offset())
}

func (s *FavoriteService) Create(ctx context.Context, realEstates []string) (*domain.Favorite, error) {
	if err := s.checkReferences(ctx, realEstates); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Favorite{
		RealEstates: realEstates,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("favorite_id", created.ID).Int("count", len(realEstates)).Msg("favorite created")
	return created, nil
}

func (s *FavoriteService) Update(ctx context.Context, id string, patch ports.FavoritePatch) (*domain.Favorite, error) {
	if patch.RealEstates != nil {
		if err := s.checkReferences(ctx, patch.RealEstates); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("favorite_id", id).Msg("favorite updated")
	return updated, nil
}

func (s *FavoriteService) Delete(ctx context.Context, id string) (*domain.Favorite, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("favorite_id", id).Msg("favorite deleted")
	return deleted, nil
}

// checkReferences enforces the favorites invariant: a non-empty reference
// list in which every id resolves to a stored listing.
func (s *FavoriteService) checkReferences(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}

	unique := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, seen := unique[id]; seen {
			continue
		}
		unique[id] = struct{}{}
		distinct = append(distinct, id)
	}

	n, err := s.realEstates.CountByIDs(ctx, distinct)
	if err != nil {
		return err
	}
	if n != int64(len(distinct)) {
		return domain.ErrUnknownRealEstate
	}
	return nil
}
