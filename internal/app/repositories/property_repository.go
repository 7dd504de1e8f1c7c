package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *pgxpool.Pool
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{
		db: db,
	}
}

// Create inserts a new property
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (resident_id, address, property_type)
		VALUES ($1, $2, $3)
		RETURNING property_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		property.ResidentID, property.Address, property.PropertyType,
	).Scan(&property.ID, &property.CreatedAt)
	if err != nil {
		return wrapErrAs("properties.create", err, apperrors.ErrConflict, apperrors.ErrResidentNotFound)
	}

	return nil
}

// GetByID retrieves a property by id with the owner's name attached
func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	query := `
		SELECT p.property_id, p.resident_id, p.address, p.property_type, p.created_at, r.name
		FROM properties p
		JOIN residents r ON p.resident_id = r.resident_id
		WHERE p.property_id = $1
	`

	var property models.Property
	err := r.db.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.ResidentID,
		&property.Address,
		&property.PropertyType,
		&property.CreatedAt,
		&property.ResidentName,
	)
	if err != nil {
		return nil, wrapErrAs("properties.get", err, apperrors.ErrResourceNotFound, apperrors.ErrPropertyNotFound)
	}

	return &property, nil
}

// GetAll retrieves all properties with owner names, newest first
func (r *PropertyRepository) GetAll(ctx context.Context) ([]*models.Property, error) {
	query := `
		SELECT p.property_id, p.resident_id, p.address, p.property_type, p.created_at, r.name
		FROM properties p
		JOIN residents r ON p.resident_id = r.resident_id
		ORDER BY p.created_at DESC
	`

	return r.queryProperties(ctx, query)
}

// GetByResidentID retrieves a resident's properties, newest first
func (r *PropertyRepository) GetByResidentID(ctx context.Context, residentID int64) ([]*models.Property, error) {
	query := `
		SELECT p.property_id, p.resident_id, p.address, p.property_type, p.created_at, r.name
		FROM properties p
		JOIN residents r ON p.resident_id = r.resident_id
		WHERE p.resident_id = $1
		ORDER BY p.created_at DESC
	`

	return r.queryProperties(ctx, query, residentID)
}

func (r *PropertyRepository) queryProperties(ctx context.Context, query string, args ...interface{}) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("properties.list", err)
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		var property models.Property
		if err := rows.Scan(
			&property.ID,
			&property.ResidentID,
			&property.Address,
			&property.PropertyType,
			&property.CreatedAt,
			&property.ResidentName,
		); err != nil {
			return nil, wrapErr("properties.list", err)
		}
		properties = append(properties, &property)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("properties.list", err)
	}

	return properties, nil
}

// Update updates a property by primary key
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties
		SET resident_id = $1, address = $2, property_type = $3
		WHERE property_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		property.ResidentID, property.Address, property.PropertyType, property.ID)
	if err != nil {
		return wrapErrAs("properties.update", err, apperrors.ErrConflict, apperrors.ErrResidentNotFound)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property by id
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM properties WHERE property_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapErr("properties.delete", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}
