package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// VisitService implements visit-scheduling use-cases.
type VisitService struct {
	repo        ports.VisitRepository
	realEstates ports.RealEstateRepository
	log         zerolog.Logger
}

func NewVisitService(repo ports.VisitRepository, realEstates ports.RealEstateRepository, log zerolog.Logger) *VisitService {
	return &VisitService{repo: repo, realEstates: realEstates, log: log}
}

func (s *VisitService) List(ctx context.Context, page ports.PageInput) ([]domain.Visit, error) {
	page = normalizePage(page)
	return s.repo.List(ctx, page.Limit, page.Offset())
}

func (s *VisitService) Create(ctx context.Context, in ports.CreateVisitInput) (*domain.Visit, error) {
	if in.RealEstate == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.checkReference(ctx, in.RealEstate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if in.Date != nil {
		date = in.Date.UTC()
	}

	created, err := s.repo.Create(ctx, &domain.Visit{
		RealEstate: in.RealEstate,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("visit_id", created.ID).Str("real_estate_id", in.RealEstate).Time("date", date).Msg("visit scheduled")
	return created, nil
}

func (s *VisitService) Update(ctx context.Context, id string, patch ports.VisitPatch) (*domain.Visit, error) {
	if patch.RealEstate != nil {
		if *patch.RealEstate == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := s.checkReference(ctx, *patch.RealEstate); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("visit_id", id).Msg("visit updated")
	return updated, nil
}

func (s *VisitService) Delete(ctx context.Context, id string) (*domain.Visit, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("visit_id", id).Msg("visit deleted")
	return deleted, nil
}

func (s *VisitService) checkReference(ctx context.Context, id string) error {
	_, err := s.realEstates.FindByID(ctx, id)
	if errors.Is(err, domain.ErrRealEstateNotFound) {
		return domain.ErrUnknownRealEstate
	}
	return err
}
