package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

type stubVisitRepo struct {
	visits map[string]*domain.Visit
	order  []string
	next   int

	lastLimit  int
	lastOffset int
}

func newStubVisitRepo() *stubVisitRepo {
	return &stubVisitRepo{visits: make(map[string]*domain.Visit)}
}

func cloneVisit(v *domain.Visit) *domain.Visit {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

func (r *stubVisitRepo) Create(_ context.Context, v *domain.Visit) (*domain.Visit, error) {
	copy := cloneVisit(v)
	r.next++
	copy.ID = "visit_" + strconv.Itoa(r.next)
	r.visits[copy.ID] = cloneVisit(copy)
	r.order = append(r.order, copy.ID)
	return copy, nil
}

func (r *stubVisitRepo) List(_ context.Context, limit, offset int) ([]domain.Visit, error) {
	r.lastLimit = limit
	r.lastOffset = offset

	out := []domain.Visit{}
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		out = append(out, *r.visits[r.order[i]])
	}
	return out, nil
}

func (r *stubVisitRepo) Update(_ context.Context, id string, patch ports.VisitPatch) (*domain.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	if patch.RealEstate != nil {
		v.RealEstate = *patch.RealEstate
	}
	if patch.Date != nil {
		v.Date = *patch.Date
	}
	return cloneVisit(v), nil
}

func (r *stubVisitRepo) Delete(_ context.Context, id string) (*domain.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	delete(r.visits, id)
	return v, nil
}

func newVisitFixture(t *testing.T) (*VisitService, *stubVisitRepo) {
	t.Helper()
	visitRepo := newStubVisitRepo()
	reRepo := newStubRealEstateRepo()
	seedListings(t, reRepo, 1)
	return NewVisitService(visitRepo, reRepo, zerolog.Nop()), visitRepo
}

func TestVisitService_Create_DateDefaultsToNow(t *testing.T) {
	svc, _ := newVisitFixture(t)

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), ports.CreateVisitInput{RealEstate: "re_1"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	after := time.Now().UTC()

	if created.Date.Before(before) || created.Date.After(after) {
		t.Fatalf("date not defaulted to now: %v", created.Date)
	}
}

func TestVisitService_Create_ExplicitDate(t *testing.T) {
	svc, _ := newVisitFixture(t)

	date := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), ports.CreateVisitInput{RealEstate: "re_1", Date: &date})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !created.Date.Equal(date) {
		t.Fatalf("expected %v, got %v", date, created.Date)
	}
}

func TestVisitService_Create_ValidatesReference(t *testing.T) {
	svc, _ := newVisitFixture(t)

	if _, err := svc.Create(context.Background(), ports.CreateVisitInput{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing reference, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateVisitInput{RealEstate: "re_missing"}); !errors.Is(err, domain.ErrUnknownRealEstate) {
		t.Fatalf("expected ErrUnknownRealEstate, got %v", err)
	}
}

func TestVisitService_List_Defaults(t *testing.T) {
	svc, repo := newVisitFixture(t)

	if _, err := svc.List(context.Background(), ports.PageInput{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastLimit != 10 || repo.lastOffset != 0 {
		t.Fatalf("expected default limit 10 offset 0, got %d/%d", repo.lastLimit, repo.lastOffset)
	}
}

func TestVisitService_Update(t *testing.T) {
	svc, _ := newVisitFixture(t)

	created, err := svc.Create(context.Background(), ports.CreateVisitInput{RealEstate: "re_1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), created.ID, ports.VisitPatch{RealEstate: &empty}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty reference, got %v", err)
	}

	missing := "re_missing"
	if _, err := svc.Update(context.Background(), created.ID, ports.VisitPatch{RealEstate: &missing}); !errors.Is(err, domain.ErrUnknownRealEstate) {
		t.Fatalf("expected ErrUnknownRealEstate, got %v", err)
	}

	date := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ID, ports.VisitPatch{Date: &date})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.Date.Equal(date) {
		t.Fatalf("date not updated: %v", updated.Date)
	}

	if _, err := svc.Update(context.Background(), "missing", ports.VisitPatch{Date: &date}); !errors.Is(err, domain.ErrVisitNotFound) {
		t.Fatalf("expected ErrVisitNotFound, got %v", err)
	}
}

func TestVisitService_Delete(t *testing.T) {
	svc, _ := newVisitFixture(t)

	created, err := svc.Create(context.Background(), ports.CreateVisitInput{RealEstate: "re_1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected the removed document back, got %+v", deleted)
	}

	if _, err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrVisitNotFound) {
		t.Fatalf("expected ErrVisitNotFound, got %v", err)
	}
}
