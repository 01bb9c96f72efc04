// Package bootstrap seeds the database at process start: a default admin
// account so the system is never left without one, and an optional set of
// sample records for fresh environments.
//
// Both steps are idempotent check-then-create sequences. Failures are
// reported to the caller for logging but must never block route
// availability.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
	"github.com/imovelhub/imoveis-api/internal/pkg/config"
)

// Bootstrapper runs the startup seeding sequence.
type Bootstrapper struct {
	users       ports.UserRepository
	realEstates ports.RealEstateRepository
	favorites   ports.FavoriteRepository
	visits      ports.VisitRepository
	log         zerolog.Logger
}

func New(
	users ports.UserRepository,
	realEstates ports.RealEstateRepository,
	favorites ports.FavoriteRepository,
	visits ports.VisitRepository,
	log zerolog.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		users:       users,
		realEstates: realEstates,
		favorites:   favorites,
		visits:      visits,
		log:         log,
	}
}

// Run executes the seeding steps. Each step logs its own failure; Run never
// returns an error because bootstrap problems must not prevent serving.
func (b *Bootstrapper) Run(ctx context.Context, cfg config.BootstrapConfig) {
	if err := b.ensureDefaultAdmin(ctx, cfg); err != nil {
		b.log.Error().Err(err).Msg("default admin bootstrap failed")
	}
	if cfg.InstallSampleData {
		if err := b.installSampleData(ctx); err != nil {
			b.log.Error().Err(err).Msg("sample data installation failed")
		}
	}
}

// ensureDefaultAdmin creates the configured admin account when no admin
// exists yet.
func (b *Bootstrapper) ensureDefaultAdmin(ctx context.Context, cfg config.BootstrapConfig) error {
	_, err := b.users.FindByRole(ctx, domain.RoleAdmin)
	if err == nil {
		b.log.Debug().Msg("admin account present, skipping seed")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check for existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin, err := b.users.Create(ctx, &domain.User{
		Nome:      cfg.AdminName,
		Email:     cfg.AdminEmail,
		SenhaHash: string(hash),
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	b.log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("default admin created")
	return nil
}

// installSampleData populates an empty database with demonstration records.
func (b *Bootstrapper) installSampleData(ctx context.Context) error {
	n, err := b.realEstates.Count(ctx)
	if err != nil {
		return fmt.Errorf("count listings: %w", err)
	}
	if n > 0 {
		b.log.Debug().Int64("listings", n).Msg("database not empty, skipping sample data")
		return nil
	}

	sampleUsers := []struct{ nome, email, senha string }{
		{"Usuário 1", "usuario1@example.com", "senha123"},
		{"Usuário 2", "usuario2@example.com", "senha456"},
		{"Usuário 3", "usuario3@example.com", "senha123"},
		{"Usuário 4", "usuario4@example.com", "senha456"},
		{"Usuário 5", "usuario5@example.com", "senha123"},
	}
	for _, u := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.senha), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash sample password: %w", err)
		}
		if _, err := b.users.Create(ctx, &domain.User{
			Nome:      u.nome,
			Email:     u.email,
			SenhaHash: string(hash),
			Role:      domain.RoleUser,
		}); err != nil && !errors.Is(err, domain.ErrEmailTaken) {
			return fmt.Errorf("create sample user %s: %w", u.email, err)
		}
	}

	now := time.Now().UTC()
	sampleListings := []domain.RealEstate{
		{Name: "Propriedade 1", Address: "Endereço da propriedade 1", Price: 100000},
		{Name: "Propriedade 2", Address: "Endereço da propriedade 2", Price: 150000},
		{Name: "Propriedade 3", Address: "Endereço da propriedade 3", Price: 200000},
		{Name: "Propriedade 4", Address: "Endereço da propriedade 4", Price: 180000},
		{Name: "Propriedade 5", Address: "Endereço da propriedade 5", Price: 220000},
	}

	listingIDs := make([]string, 0, len(sampleListings))
	for i := range sampleListings {
		sampleListings[i].CreatedAt = now
		sampleListings[i].UpdatedAt = now
		created, err := b.realEstates.Create(ctx, &sampleListings[i])
		if err != nil {
			return fmt.Errorf("create sample listing: %w", err)
		}
		listingIDs = append(listingIDs, created.ID)
	}

	for i, id := range listingIDs {
		if _, err := b.favorites.Create(ctx, &domain.Favorite{
			RealEstates: []string{id},
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return fmt.Errorf("create sample favorite: %w", err)
		}

		if _, err := b.visits.Create(ctx, &domain.Visit{
			RealEstate: id,
			Date:       now.AddDate(0, 0, i+1),
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return fmt.Errorf("create sample visit: %w", err)
		}
	}

	b.log.Info().Int("listings", len(listingIDs)).Msg("sample data installed")
	return nil
}
