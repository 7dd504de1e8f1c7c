package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// ResidentRepository handles database operations for residents
type ResidentRepository struct {
	db *pgxpool.Pool
}

// NewResidentRepository creates a new resident repository
func NewResidentRepository(db *pgxpool.Pool) *ResidentRepository {
	return &ResidentRepository{
		db: db,
	}
}

// Create inserts a new resident and fills in the generated id and created_at
func (r *ResidentRepository) Create(ctx context.Context, resident *models.Resident) error {
	query := `
		INSERT INTO residents (name, email, phone, address, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING resident_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		resident.Name, resident.Email, resident.Phone, resident.Address, resident.PasswordHash,
	).Scan(&resident.ID, &resident.CreatedAt)
	if err != nil {
		return wrapErrAs("residents.create", err, apperrors.ErrResourceAlreadyExists, apperrors.ErrEmailAlreadyExists)
	}

	return nil
}

// GetByID retrieves a resident by id
func (r *ResidentRepository) GetByID(ctx context.Context, id int64) (*models.Resident, error) {
	query := `
		SELECT resident_id, name, email, phone, address, password_hash, created_at
		FROM residents
		WHERE resident_id = $1
	`

	var resident models.Resident
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resident.ID,
		&resident.Name,
		&resident.Email,
		&resident.Phone,
		&resident.Address,
		&resident.PasswordHash,
		&resident.CreatedAt,
	)
	if err != nil {
		return nil, wrapErrAs("residents.get", err, apperrors.ErrResourceNotFound, apperrors.ErrResidentNotFound)
	}

	return &resident, nil
}

// GetByEmail retrieves a resident by email, matched case-insensitively
func (r *ResidentRepository) GetByEmail(ctx context.Context, email string) (*models.Resident, error) {
	query := `
		SELECT resident_id, name, email, phone, address, password_hash, created_at
		FROM residents
		WHERE LOWER(email) = LOWER($1)
	`

	var resident models.Resident
	err := r.db.QueryRow(ctx, query, email).Scan(
		&resident.ID,
		&resident.Name,
		&resident.Email,
		&resident.Phone,
		&resident.Address,
		&resident.PasswordHash,
		&resident.CreatedAt,
	)
	if err != nil {
		return nil, wrapErrAs("residents.getByEmail", err, apperrors.ErrResourceNotFound, apperrors.ErrResidentNotFound)
	}

	return &resident, nil
}

// GetAll retrieves all residents, newest first
func (r *ResidentRepository) GetAll(ctx context.Context) ([]*models.Resident, error) {
	query := `
		SELECT resident_id, name, email, phone, address, password_hash, created_at
		FROM residents
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("residents.list", err)
	}
	defer rows.Close()

	var residents []*models.Resident
	for rows.Next() {
		var resident models.Resident
		if err := rows.Scan(
			&resident.ID,
			&resident.Name,
			&resident.Email,
			&resident.Phone,
			&resident.Address,
			&resident.PasswordHash,
			&resident.CreatedAt,
		); err != nil {
			return nil, wrapErr("residents.list", err)
		}
		residents = append(residents, &resident)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("residents.list", err)
	}

	return residents, nil
}

// Update updates a resident's contact fields by primary key
func (r *ResidentRepository) Update(ctx context.Context, resident *models.Resident) error {
	query := `
		UPDATE residents
		SET name = $1, email = $2, phone = $3, address = $4
		WHERE resident_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		resident.Name, resident.Email, resident.Phone, resident.Address, resident.ID)
	if err != nil {
		return wrapErrAs("residents.update", err, apperrors.ErrResourceAlreadyExists, apperrors.ErrEmailAlreadyExists)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResidentNotFound
	}

	return nil
}

// HasDependentRecords reports whether any property, bill, payment or
// maintenance request still references the resident.
func (r *ResidentRepository) HasDependentRecords(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM properties WHERE resident_id = $1)
			OR EXISTS(SELECT 1 FROM bills WHERE resident_id = $1)
			OR EXISTS(SELECT 1 FROM payments WHERE resident_id = $1)
			OR EXISTS(SELECT 1 FROM maintenance_requests WHERE resident_id = $1)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, wrapErr("residents.hasDependents", err)
	}

	return exists, nil
}

// Delete removes a resident by id. Deletion is blocked upstream while
// dependent records exist; a foreign key race still maps to a conflict here.
func (r *ResidentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM residents WHERE resident_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapErrAs("residents.delete", err, apperrors.ErrConflict, apperrors.ErrResidentHasRecords)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResidentNotFound
	}

	return nil
}
