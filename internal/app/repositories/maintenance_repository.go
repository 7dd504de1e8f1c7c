package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// MaintenanceRepository handles database operations for maintenance requests
type MaintenanceRepository struct {
	db *pgxpool.Pool
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{
		db: db,
	}
}

// Create inserts a new maintenance request
func (r *MaintenanceRepository) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (resident_id, description, status)
		VALUES ($1, $2, $3)
		RETURNING request_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		request.ResidentID, request.Description, request.Status,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return wrapErrAs("maintenance.create", err, apperrors.ErrConflict, apperrors.ErrResidentNotFound)
	}

	return nil
}

// GetAll retrieves all maintenance requests with resident names, newest first
func (r *MaintenanceRepository) GetAll(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	query := `
		SELECT m.request_id, m.resident_id, m.description, m.status, m.created_at, r.name
		FROM maintenance_requests m
		JOIN residents r ON m.resident_id = r.resident_id
		ORDER BY m.created_at DESC
	`

	return r.queryRequests(ctx, query)
}

// GetByResidentID retrieves a resident's maintenance requests, newest first
func (r *MaintenanceRepository) GetByResidentID(ctx context.Context, residentID int64) ([]*models.MaintenanceRequest, error) {
	query := `
		SELECT m.request_id, m.resident_id, m.description, m.status, m.created_at, r.name
		FROM maintenance_requests m
		JOIN residents r ON m.resident_id = r.resident_id
		WHERE m.resident_id = $1
		ORDER BY m.created_at DESC
	`

	return r.queryRequests(ctx, query, residentID)
}

func (r *MaintenanceRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("maintenance.list", err)
	}
	defer rows.Close()

	var requests []*models.MaintenanceRequest
	for rows.Next() {
		var request models.MaintenanceRequest
		if err := rows.Scan(
			&request.ID,
			&request.ResidentID,
			&request.Description,
			&request.Status,
			&request.CreatedAt,
			&request.ResidentName,
		); err != nil {
			return nil, wrapErr("maintenance.list", err)
		}
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("maintenance.list", err)
	}

	return requests, nil
}

// UpdateStatus transitions a maintenance request's status by primary key
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	query := `UPDATE maintenance_requests SET status = $1 WHERE request_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return wrapErr("maintenance.updateStatus", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}
