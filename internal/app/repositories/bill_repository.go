package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// BillRepository handles database operations for bills
type BillRepository struct {
	db *pgxpool.Pool
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{
		db: db,
	}
}

// Create inserts a new bill
func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	query := `
		INSERT INTO bills (resident_id, amount, bill_type, due_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING bill_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		bill.ResidentID, bill.Amount, bill.BillType, bill.DueDate, bill.Status,
	).Scan(&bill.ID, &bill.CreatedAt)
	if err != nil {
		return wrapErrAs("bills.create", err, apperrors.ErrConflict, apperrors.ErrResidentNotFound)
	}

	return nil
}

// GetAll retrieves all bills with resident names, due soonest first
func (r *BillRepository) GetAll(ctx context.Context) ([]*models.Bill, error) {
	query := `
		SELECT b.bill_id, b.resident_id, b.amount, b.bill_type, b.due_date, b.status, b.created_at, r.name
		FROM bills b
		JOIN residents r ON b.resident_id = r.resident_id
		ORDER BY b.due_date ASC
	`

	return r.queryBills(ctx, query)
}

// GetByResidentID retrieves a resident's bills, due soonest first
func (r *BillRepository) GetByResidentID(ctx context.Context, residentID int64) ([]*models.Bill, error) {
	query := `
		SELECT b.bill_id, b.resident_id, b.amount, b.bill_type, b.due_date, b.status, b.created_at, r.name
		FROM bills b
		JOIN residents r ON b.resident_id = r.resident_id
		WHERE b.resident_id = $1
		ORDER BY b.due_date ASC
	`

	return r.queryBills(ctx, query, residentID)
}

// GetByID retrieves a bill by id
func (r *BillRepository) GetByID(ctx context.Context, id int64) (*models.Bill, error) {
	query := `
		SELECT b.bill_id, b.resident_id, b.amount, b.bill_type, b.due_date, b.status, b.created_at, r.name
		FROM bills b
		JOIN residents r ON b.resident_id = r.resident_id
		WHERE b.bill_id = $1
	`

	var bill models.Bill
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bill.ID,
		&bill.ResidentID,
		&bill.Amount,
		&bill.BillType,
		&bill.DueDate,
		&bill.Status,
		&bill.CreatedAt,
		&bill.ResidentName,
	)
	if err != nil {
		return nil, wrapErrAs("bills.get", err, apperrors.ErrResourceNotFound, apperrors.ErrBillNotFound)
	}

	return &bill, nil
}

func (r *BillRepository) queryBills(ctx context.Context, query string, args ...interface{}) ([]*models.Bill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("bills.list", err)
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		var bill models.Bill
		if err := rows.Scan(
			&bill.ID,
			&bill.ResidentID,
			&bill.Amount,
			&bill.BillType,
			&bill.DueDate,
			&bill.Status,
			&bill.CreatedAt,
			&bill.ResidentName,
		); err != nil {
			return nil, wrapErr("bills.list", err)
		}
		bills = append(bills, &bill)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("bills.list", err)
	}

	return bills, nil
}

// UpdateStatus transitions a bill's status by primary key
func (r *BillRepository) UpdateStatus(ctx context.Context, id int64, status models.BillStatus) error {
	query := `UPDATE bills SET status = $1 WHERE bill_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return wrapErr("bills.updateStatus", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBillNotFound
	}

	return nil
}

// SettleOldestPending marks the single oldest pending bill of the given type
// as paid, inside the caller's transaction. The row lock is taken with SKIP
// LOCKED so two concurrent payments can never settle the same bill; the loser
// simply matches nothing. Returns the settled bill id, or ErrBillNotFound when
// no pending bill matches.
func (r *BillRepository) SettleOldestPending(ctx context.Context, tx pgx.Tx, residentID int64, billType string) (int64, error) {
	query := `
		UPDATE bills
		SET status = $1
		WHERE bill_id = (
			SELECT bill_id FROM bills
			WHERE resident_id = $2 AND bill_type = $3 AND status = $4
			ORDER BY due_date ASC, bill_id ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING bill_id
	`

	var billID int64
	err := tx.QueryRow(ctx, query, models.BillPaid, residentID, billType, models.BillPending).Scan(&billID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrBillNotFound
		}
		return 0, wrapErr("bills.settleOldestPending", err)
	}

	return billID, nil
}
