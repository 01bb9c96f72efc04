package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

type stubRealEstateService struct {
	listFn   func(ctx context.Context, page ports.PageInput) ([]domain.RealEstate, error)
	searchFn func(ctx context.Context, filter ports.SearchFilter) ([]domain.RealEstate, error)
	createFn func(ctx context.Context, in ports.CreateRealEstateInput) (*domain.RealEstate, error)
	updateFn func(ctx context.Context, id string, patch ports.RealEstatePatch) (*domain.RealEstate, error)
	deleteFn func(ctx context.Context, id string) (*domain.RealEstate, error)
}

func (s *stubRealEstateService) List(ctx context.Context, page ports.PageInput) ([]domain.RealEstate, error) {
	return s.listFn(ctx, page)
}

func (s *stubRealEstateService) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.RealEstate, error) {
	return s.searchFn(ctx, filter)
}

func (s *stubRealEstateService) Create(ctx context.Context, in ports.CreateRealEstateInput) (*domain.RealEstate, error) {
	return s.createFn(ctx, in)
}

func (s *stubRealEstateService) Update(ctx context.Context, id string, patch ports.RealEstatePatch) (*domain.RealEstate, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubRealEstateService) Delete(ctx context.Context, id string) (*domain.RealEstate, error) {
	return s.deleteFn(ctx, id)
}

func TestRealEstateHandler_List(t *testing.T) {
	stub := &stubRealEstateService{
		listFn: func(_ context.Context, page ports.PageInput) ([]domain.RealEstate, error) {
			if page.Limit != 5 || page.Page != 2 {
				t.Fatalf("unexpected page: %+v", page)
			}
			return []domain.RealEstate{{ID: "re_1", Name: "Casa 1"}}, nil
		},
	}
	handler := NewRealEstateHandler(stub)

	_, c, rec := jsonRequest(http.MethodGet, "/realEstate?limite=5&pagina=2", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data payload: %+v", resp)
	}
}

func TestRealEstateHandler_Search_ParsesFilters(t *testing.T) {
	stub := &stubRealEstateService{
		searchFn: func(_ context.Context, filter ports.SearchFilter) ([]domain.RealEstate, error) {
			if filter.PriceMin == nil || *filter.PriceMin != 100000 {
				t.Fatalf("priceMin not parsed: %+v", filter)
			}
			if filter.PriceMax != nil {
				t.Fatalf("absent priceMax must stay nil")
			}
			if filter.Location != "centro" {
				t.Fatalf("location not parsed: %q", filter.Location)
			}
			if filter.Bedrooms == nil || *filter.Bedrooms != 3 {
				t.Fatalf("bedrooms not parsed: %+v", filter)
			}
			return []domain.RealEstate{}, nil
		},
	}
	handler := NewRealEstateHandler(stub)

	_, c, rec := jsonRequest(http.MethodGet, "/realEstate/search?priceMin=100000&location=centro&bedrooms=3", "")
	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["results"]; !ok {
		t.Fatalf("expected results envelope: %+v", resp)
	}
}

func TestRealEstateHandler_Search_BadNumber(t *testing.T) {
	handler := NewRealEstateHandler(&stubRealEstateService{})

	_, c, _ := jsonRequest(http.MethodGet, "/realEstate/search?priceMin=cheap", "")
	err := handler.Search(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestRealEstateHandler_Create(t *testing.T) {
	stub := &stubRealEstateService{
		createFn: func(_ context.Context, in ports.CreateRealEstateInput) (*domain.RealEstate, error) {
			if in.Name != "Casa Nova" || in.Price != 250000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.RealEstate{ID: "re_1", Name: in.Name, Address: in.Address, Price: in.Price}, nil
		},
	}
	handler := NewRealEstateHandler(stub)

	_, c, rec := jsonRequest(http.MethodPost, "/realEstate", `{"name":"Casa Nova","address":"Rua 1","price":250000}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRealEstateHandler_Create_RequiresPrice(t *testing.T) {
	handler := NewRealEstateHandler(&stubRealEstateService{})

	_, c, _ := jsonRequest(http.MethodPost, "/realEstate", `{"name":"Casa","address":"Rua 1"}`)
	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}

	// price zero is a valid value, distinct from absent.
	stub := &stubRealEstateService{
		createFn: func(_ context.Context, in ports.CreateRealEstateInput) (*domain.RealEstate, error) {
			return &domain.RealEstate{ID: "re_1", Price: in.Price}, nil
		},
	}
	_, c, rec := jsonRequest(http.MethodPost, "/realEstate", `{"name":"Casa","address":"Rua 1","price":0}`)
	if err := NewRealEstateHandler(stub).Create(c); err != nil {
		t.Fatalf("zero price rejected: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRealEstateHandler_Update_PartialPatch(t *testing.T) {
	stub := &stubRealEstateService{
		updateFn: func(_ context.Context, id string, patch ports.RealEstatePatch) (*domain.RealEstate, error) {
			if id != "re_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if patch.Price == nil || *patch.Price != 300000 {
				t.Fatalf("price not forwarded: %+v", patch)
			}
			if patch.Name != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			return &domain.RealEstate{ID: id, Price: *patch.Price}, nil
		},
	}
	handler := NewRealEstateHandler(stub)

	_, c, rec := jsonRequest(http.MethodPut, "/realEstate/re_1", `{"price":300000}`)
	c.SetParamNames("id")
	c.SetParamValues("re_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRealEstateHandler_Delete_ReturnsDocument(t *testing.T) {
	stub := &stubRealEstateService{
		deleteFn: func(_ context.Context, id string) (*domain.RealEstate, error) {
			return &domain.RealEstate{ID: id, Name: "Casa 1"}, nil
		},
	}
	handler := NewRealEstateHandler(stub)

	_, c, rec := jsonRequest(http.MethodDelete, "/realEstate/re_1", "")
	c.SetParamNames("id")
	c.SetParamValues("re_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Casa 1"`) {
		t.Fatalf("deleted document missing from response: %s", rec.Body.String())
	}
}
