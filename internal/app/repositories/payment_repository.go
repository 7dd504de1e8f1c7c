package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Create inserts a payment inside the caller's transaction so the insert and
// any bill settlement commit or roll back together.
func (r *PaymentRepository) Create(ctx context.Context, tx pgx.Tx, payment *models.Payment) error {
	query := `
		INSERT INTO payments (resident_id, amount, payment_type, payment_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id, created_at
	`

	err := tx.QueryRow(ctx, query,
		payment.ResidentID, payment.Amount, payment.PaymentType, payment.PaymentDate, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return wrapErrAs("payments.create", err, apperrors.ErrConflict, apperrors.ErrResidentNotFound)
	}

	return nil
}

// GetAll retrieves all payments with resident names, newest first
func (r *PaymentRepository) GetAll(ctx context.Context) ([]*models.Payment, error) {
	query := `
		SELECT p.payment_id, p.resident_id, p.amount, p.payment_type, p.payment_date, p.status, p.created_at, r.name
		FROM payments p
		JOIN residents r ON p.resident_id = r.resident_id
		ORDER BY p.created_at DESC
	`

	return r.queryPayments(ctx, query)
}

// GetByResidentID retrieves a resident's payments, newest first
func (r *PaymentRepository) GetByResidentID(ctx context.Context, residentID int64) ([]*models.Payment, error) {
	query := `
		SELECT p.payment_id, p.resident_id, p.amount, p.payment_type, p.payment_date, p.status, p.created_at, r.name
		FROM payments p
		JOIN residents r ON p.resident_id = r.resident_id
		WHERE p.resident_id = $1
		ORDER BY p.created_at DESC
	`

	return r.queryPayments(ctx, query, residentID)
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...interface{}) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("payments.list", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.ResidentID,
			&payment.Amount,
			&payment.PaymentType,
			&payment.PaymentDate,
			&payment.Status,
			&payment.CreatedAt,
			&payment.ResidentName,
		); err != nil {
			return nil, wrapErr("payments.list", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("payments.list", err)
	}

	return payments, nil
}
