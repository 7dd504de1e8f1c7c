package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// GetByEmail retrieves an admin by email, matched case-insensitively
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT admin_id, name, email, password_hash, created_at
		FROM admins
		WHERE LOWER(email) = LOWER($1)
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		return nil, wrapErr("admins.getByEmail", err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by id
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `
		SELECT admin_id, name, email, password_hash, created_at
		FROM admins
		WHERE admin_id = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		return nil, wrapErr("admins.get", err)
	}

	return &admin, nil
}

// Create inserts an admin account. Used by first-run seeding.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING admin_id, created_at
	`

	err := r.db.QueryRow(ctx, query, admin.Name, admin.Email, admin.PasswordHash).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return wrapErrAs("admins.create", err, apperrors.ErrResourceAlreadyExists, apperrors.ErrEmailAlreadyExists)
	}

	return nil
}
