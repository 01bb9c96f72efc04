package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

const defaultPageSize = 10

// RealEstateService implements listing use-cases.
type RealEstateService struct {
	repo ports.RealEstateRepository
	log  zerolog.Logger
}

func NewRealEstateService(repo ports.RealEstateRepository, log zerolog.Logger) *RealEstateService {
	return &RealEstateService{repo: repo, log: log}
}

// List returns one page of listings. limite defaults to 10 and pagina to 1;
// a page past the end of the collection yields an empty slice, not an error.
func (s *RealEstateService) List(ctx context.Context, page ports.PageInput) ([]domain.RealEstate, error) {
	page = normalizePage(page)
	return s.repo.List(ctx, page.Limit, page.Offset())
}

// Search returns every listing satisfying the conjunctive filter.
func (s *RealEstateService) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.RealEstate, error) {
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return nil, domain.ErrInvalidInput
	}
	if filter.AreaMin != nil && filter.AreaMax != nil && *filter.AreaMin > *filter.AreaMax {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.Search(ctx, filter)
}

func (s *RealEstateService) Create(ctx context.Context, in ports.CreateRealEstateInput) (*domain.RealEstate, error) {
	if in.Name == "" || in.Address == "" || in.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	re := &domain.RealEstate{
		Name:      in.Name,
		Address:   in.Address,
		Price:     in.Price,
		Image:     in.Image,
		Area:      in.Area,
		Location:  in.Location,
		Bedrooms:  in.Bedrooms,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, re)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("real_estate_id", created.ID).Str("name", created.Name).Msg("real estate created")
	return created, nil
}

func (s *RealEstateService) Update(ctx context.Context, id string, patch ports.RealEstatePatch) (*domain.RealEstate, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("real_estate_id", id).Msg("real estate updated")
	return updated, nil
}

func (s *RealEstateService) Delete(ctx context.Context, id string) (*domain.RealEstate, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("real_estate_id", id).Msg("real estate deleted")
	return deleted, nil
}

// normalizePage applies the unrestricted pagination defaults shared by the
// listing and visit collections.
func normalizePage(page ports.PageInput) ports.PageInput {
	if page.Limit <= 0 {
		page.Limit = defaultPageSize
	}
	if page.Page <= 0 {
		page.Page = 1
	}
	return page
}
