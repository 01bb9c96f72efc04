package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func queryContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageFromQuery(t *testing.T) {
	page, err := pageFromQuery(queryContext("/?limite=5&pagina=3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Limit != 5 || page.Page != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Offset() != 10 {
		t.Fatalf("expected offset 10, got %d", page.Offset())
	}
}

func TestPageFromQuery_AbsentStaysZero(t *testing.T) {
	page, err := pageFromQuery(queryContext("/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Limit != 0 || page.Page != 0 {
		t.Fatalf("absent parameters must stay zero: %+v", page)
	}
}

func TestPageFromQuery_NonInteger(t *testing.T) {
	for _, target := range []string{"/?limite=abc", "/?pagina=1.5"} {
		_, err := pageFromQuery(queryContext(target))
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 HTTPError, got %v", target, err)
		}
	}
}

func TestFloatQuery(t *testing.T) {
	v, err := floatQuery(queryContext("/?priceMin=150.5"), "priceMin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil || *v != 150.5 {
		t.Fatalf("unexpected value: %v", v)
	}

	v, err = floatQuery(queryContext("/"), "priceMin")
	if err != nil || v != nil {
		t.Fatalf("absent parameter must be nil, got %v/%v", v, err)
	}

	if _, err := floatQuery(queryContext("/?priceMin=cheap"), "priceMin"); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}

func TestIntQuery(t *testing.T) {
	v, err := intQuery(queryContext("/?bedrooms=3"), "bedrooms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil || *v != 3 {
		t.Fatalf("unexpected value: %v", v)
	}

	if _, err := intQuery(queryContext("/?bedrooms=many"), "bedrooms"); err == nil {
		t.Fatalf("expected error for non-integer value")
	}
}
