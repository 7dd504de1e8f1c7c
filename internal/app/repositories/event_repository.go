package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// EventRepository handles database operations for community events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (admin_id, event_name, event_date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING event_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.AdminID, event.EventName, event.EventDate, event.Description,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return wrapErr("events.create", err)
	}

	return nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT event_id, admin_id, event_name, event_date, description, created_at
		FROM events
		WHERE event_id = $1
	`

	var event models.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.AdminID,
		&event.EventName,
		&event.EventDate,
		&event.Description,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, wrapErrAs("events.get", err, apperrors.ErrResourceNotFound, apperrors.ErrEventNotFound)
	}

	return &event, nil
}

// GetAll retrieves all events, upcoming and recent first
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT event_id, admin_id, event_name, event_date, description, created_at
		FROM events
		ORDER BY event_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("events.list", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.AdminID,
			&event.EventName,
			&event.EventDate,
			&event.Description,
			&event.CreatedAt,
		); err != nil {
			return nil, wrapErr("events.list", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("events.list", err)
	}

	return events, nil
}

// Update updates an event's details by primary key
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET event_name = $1, event_date = $2, description = $3
		WHERE event_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.EventName, event.EventDate, event.Description, event.ID)
	if err != nil {
		return wrapErr("events.update", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by id
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapErr("events.delete", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
