package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

type stubFavoriteService struct {
	listFn   func(ctx context.Context, page ports.PageInput) ([]domain.Favorite, error)
	createFn func(ctx context.Context, realEstates []string) (*domain.Favorite, error)
	updateFn func(ctx context.Context, id string, patch ports.FavoritePatch) (*domain.Favorite, error)
	deleteFn func(ctx context.Context, id string) (*domain.Favorite, error)
}

func (s *stubFavoriteService) List(ctx context.Context, page ports.PageInput) ([]domain.Favorite, error) {
	return s.listFn(ctx, page)
}

func (s *stubFavoriteService) Create(ctx context.Context, realEstates []string) (*domain.Favorite, error) {
	return s.createFn(ctx, realEstates)
}

func (s *stubFavoriteService) Update(ctx context.Context, id string, patch ports.FavoritePatch) (*domain.Favorite, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubFavoriteService) Delete(ctx context.Context, id string) (*domain.Favorite, error) {
	return s.deleteFn(ctx, id)
}

func TestFavoriteHandler_List_Envelope(t *testing.T) {
	stub := &stubFavoriteService{
		listFn: func(_ context.Context, page ports.PageInput) ([]domain.Favorite, error) {
			if page.Limit != 5 {
				t.Fatalf("unexpected limit: %d", page.Limit)
			}
			return []domain.Favorite{{ID: "fav_1", RealEstates: []string{"re_1"}}}, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	_, c, rec := jsonRequest(http.MethodGet, "/favorites?limite=5", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	favs, ok := resp["favorites"].([]any)
	if !ok || len(favs) != 1 {
		t.Fatalf("expected favorites envelope: %+v", resp)
	}
}

func TestFavoriteHandler_List_InvalidLimitBubbles(t *testing.T) {
	stub := &stubFavoriteService{
		listFn: func(_ context.Context, _ ports.PageInput) ([]domain.Favorite, error) {
			return nil, domain.ErrInvalidLimit
		},
	}
	handler := NewFavoriteHandler(stub)

	_, c, _ := jsonRequest(http.MethodGet, "/favorites?limite=7", "")
	if err := handler.List(c); !errors.Is(err, domain.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestFavoriteHandler_Create(t *testing.T) {
	stub := &stubFavoriteService{
		createFn: func(_ context.Context, realEstates []string) (*domain.Favorite, error) {
			if len(realEstates) != 2 {
				t.Fatalf("unexpected references: %+v", realEstates)
			}
			return &domain.Favorite{ID: "fav_1", RealEstates: realEstates}, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	_, c, rec := jsonRequest(http.MethodPost, "/favorites", `{"realEstates":["re_1","re_2"]}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["favorite"]; !ok {
		t.Fatalf("expected favorite envelope: %+v", resp)
	}
}

func TestFavoriteHandler_Create_EmptyListRejected(t *testing.T) {
	handler := NewFavoriteHandler(&stubFavoriteService{})

	_, c, _ := jsonRequest(http.MethodPost, "/favorites", `{"realEstates":[]}`)
	if err := handler.Create(c); err == nil {
		t.Fatalf("expected validation error for empty list")
	}
}

func TestFavoriteHandler_Delete_Envelope(t *testing.T) {
	stub := &stubFavoriteService{
		deleteFn: func(_ context.Context, id string) (*domain.Favorite, error) {
			return &domain.Favorite{ID: id, RealEstates: []string{"re_1"}}, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	_, c, rec := jsonRequest(http.MethodDelete, "/favorites/fav_1", "")
	c.SetParamNames("id")
	c.SetParamValues("fav_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["deletedFavorite"]; !ok {
		t.Fatalf("expected deletedFavorite envelope: %+v", resp)
	}
}
