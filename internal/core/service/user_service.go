package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis). A nil throttle
// disables throttling entirely.
type LoginThrottle interface {
	// Allowed reports whether the account may attempt a login.
	Allowed(ctx context.Context, email string) (bool, error)
	// RecordFailure bumps the failure counter for the account.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// UserService implements signup, login, admin creation and account
// maintenance.
type UserService struct {
	repo      ports.UserRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &UserService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *UserService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.create(ctx, in, domain.RoleUser)
}

func (s *UserService) CreateAdmin(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.create(ctx, in, domain.RoleAdmin)
}

func (s *UserService) create(ctx context.Context, in ports.SignupInput, role string) (*domain.User, error) {
	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}

	// Friendly pre-check; the unique email index closes the remaining race
	// at the storage level.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Nome:      in.Nome,
		Email:     strings.ToLower(in.Email),
		SenhaHash: string(hash),
		Role:      role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", role).Msg("user created")
	return created, nil
}

func (s *UserService) Login(ctx context.Context, email, senha string) (string, error) {
	if email == "" || senha == "" {
		return "", domain.ErrInvalidCredentials
	}
	email = strings.ToLower(email)

	if s.throttle != nil {
		ok, err := s.throttle.Allowed(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		} else if !ok {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)) != nil {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, email); err != nil {
				s.log.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	return s.generateToken(user)
}

func (s *UserService) Update(ctx context.Context, caller ports.Caller, targetID string, in ports.UpdateUserInput) (*domain.User, error) {
	if !domain.CanUpdateUser(caller.Role, caller.ID, targetID) {
		return nil, domain.ErrForbidden
	}
	// Role changes (promotion/demotion) are an admin-only operation even on
	// the caller's own account.
	if in.Role != nil {
		if caller.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		if !domain.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
	}

	patch := ports.UserPatch{Nome: in.Nome, Role: in.Role}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		email := strings.ToLower(*in.Email)
		patch.Email = &email
	}
	if in.Senha != nil {
		if *in.Senha == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.SenhaHash = &hashed
	}

	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, targetID)
	}

	updated, err := s.repo.Update(ctx, targetID, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", targetID).Str("caller_id", caller.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, targetID string) error {
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	// Admin accounts are never deletable; report as not found so the
	// response does not reveal which ids belong to admins.
	if target.Role == domain.RoleAdmin {
		return domain.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", targetID).Msg("user deleted")
	return nil
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
