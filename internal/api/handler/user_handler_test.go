package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

type stubUserService struct {
	signupFn      func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	createAdminFn func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	loginFn       func(ctx context.Context, email, senha string) (string, error)
	updateFn      func(ctx context.Context, caller ports.Caller, targetID string, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn      func(ctx context.Context, targetID string) error
}

func (s *stubUserService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubUserService) CreateAdmin(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.createAdminFn(ctx, in)
}

func (s *stubUserService) Login(ctx context.Context, email, senha string) (string, error) {
	return s.loginFn(ctx, email, senha)
}

func (s *stubUserService) Update(ctx context.Context, caller ports.Caller, targetID string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, caller, targetID, in)
}

func (s *stubUserService) Delete(ctx context.Context, targetID string) error {
	return s.deleteFn(ctx, targetID)
}

func jsonRequest(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestUserHandler_Cadastro_Success(t *testing.T) {
	stub := &stubUserService{
		signupFn: func(_ context.Context, in ports.SignupInput) (*domain.User, error) {
			if in.Nome != "Alice" || in.Email != "alice@example.com" || in.Senha != "s3cret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "user_1", Nome: in.Nome, Email: in.Email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	_, c, rec := jsonRequest(http.MethodPost, "/users/cadastro", `{"nome":"Alice","email":"alice@example.com","senha":"s3cret1"}`)
	if err := handler.Cadastro(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in response: %+v", resp)
	}
}

func TestUserHandler_Cadastro_ValidationFailure(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	// senha below the minimum length never reaches the service.
	_, c, _ := jsonRequest(http.MethodPost, "/users/cadastro", `{"nome":"Alice","email":"alice@example.com","senha":"123"}`)
	err := handler.Cadastro(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Cadastro_DuplicateBubbles(t *testing.T) {
	stub := &stubUserService{
		signupFn: func(_ context.Context, _ ports.SignupInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewUserHandler(stub)

	_, c, _ := jsonRequest(http.MethodPost, "/users/cadastro", `{"nome":"Bob","email":"bob@example.com","senha":"s3cret1"}`)
	if err := handler.Cadastro(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to bubble to the error handler, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, email, senha string) (string, error) {
			if email != "alice@example.com" || senha != "s3cret1" {
				t.Fatalf("unexpected credentials: %s/%s", email, senha)
			}
			return "signed.jwt.token", nil
		},
	}
	handler := NewUserHandler(stub)

	_, c, rec := jsonRequest(http.MethodPost, "/users/login", `{"email":"alice@example.com","senha":"s3cret1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed.jwt.token" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestUserHandler_Login_BadCredentialsBubble(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewUserHandler(stub)

	_, c, _ := jsonRequest(http.MethodPost, "/users/login", `{"email":"alice@example.com","senha":"wrong"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_Update_ForwardsCaller(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, caller ports.Caller, targetID string, in ports.UpdateUserInput) (*domain.User, error) {
			if caller.ID != "user_1" || caller.Role != domain.RoleUser {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			if targetID != "user_1" {
				t.Fatalf("unexpected target: %s", targetID)
			}
			if in.Nome == nil || *in.Nome != "Alicia" {
				t.Fatalf("unexpected patch: %+v", in)
			}
			return &domain.User{ID: targetID, Nome: *in.Nome, Role: caller.Role}, nil
		},
	}
	handler := NewUserHandler(stub)

	_, c, rec := jsonRequest(http.MethodPut, "/users/usuarios/user_1", `{"nome":"Alicia"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_1")
	c.Set("user_id", "user_1")
	c.Set("role", domain.RoleUser)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["nome"] != "Alicia" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["senha_hash"]; leaked {
		t.Fatalf("credential hash must never be rendered")
	}
}

func TestUserHandler_Update_MissingClaims(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	_, c, _ := jsonRequest(http.MethodPut, "/users/usuarios/user_1", `{"nome":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	err := handler.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubUserService{
		deleteFn: func(_ context.Context, targetID string) error {
			deleted = targetID
			return nil
		},
	}
	handler := NewUserHandler(stub)

	_, c, rec := jsonRequest(http.MethodDelete, "/users/usuarios/user_2", "")
	c.SetParamNames("id")
	c.SetParamValues("user_2")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "user_2" {
		t.Fatalf("service not called with target id: %q", deleted)
	}
}
