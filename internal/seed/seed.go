package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/repositories"
	"github.com/karan/societyhub/internal/config"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/auth"
)

// CreateDefaultAdmin makes sure at least one admin account exists so the
// management endpoints are reachable on a fresh database. Idempotent: an
// existing account with the configured email is left untouched.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("Admin seed credentials not configured, skipping default admin creation")
		return nil
	}

	adminRepo := repositories.NewAdminRepository(dbPool)

	_, err := adminRepo.GetByEmail(ctx, cfg.Seed.AdminEmail)
	if err == nil {
		lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("error checking for existing admin: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.Admin{
		Name:         cfg.Seed.AdminName,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		// Another instance may have seeded between the check and the insert
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin created concurrently, skipping")
			return nil
		}
		return fmt.Errorf("error creating default admin: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
