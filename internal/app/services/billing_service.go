package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/karan/societyhub/internal/app/auth"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/helpers"
	"github.com/karan/societyhub/internal/pkg/validation"
)

// BillStore is the repository surface BillingService needs for bills
type BillStore interface {
	Create(ctx context.Context, bill *models.Bill) error
	GetAll(ctx context.Context) ([]*models.Bill, error)
	GetByResidentID(ctx context.Context, residentID int64) ([]*models.Bill, error)
	GetByID(ctx context.Context, id int64) (*models.Bill, error)
	UpdateStatus(ctx context.Context, id int64, status models.BillStatus) error
	SettleOldestPending(ctx context.Context, tx pgx.Tx, residentID int64, billType string) (int64, error)
}

// PaymentStore is the repository surface BillingService needs for payments
type PaymentStore interface {
	Create(ctx context.Context, tx pgx.Tx, payment *models.Payment) error
	GetAll(ctx context.Context) ([]*models.Payment, error)
	GetByResidentID(ctx context.Context, residentID int64) ([]*models.Payment, error)
}

// BillingService handles bills, payments and the settlement rule that ties
// them together.
type BillingService struct {
	billRepo    BillStore
	paymentRepo PaymentStore
	tx          TxRunner
	policy      *auth.Policy
	views       *cache.ViewCache
	logger      zerolog.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo BillStore,
	paymentRepo PaymentStore,
	tx TxRunner,
	policy *auth.Policy,
	views *cache.ViewCache,
	logger zerolog.Logger,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		tx:          tx,
		policy:      policy,
		views:       views,
		logger:      logger,
	}
}

// ListBills returns bills in the caller's resolved scope
func (s *BillingService) ListBills(ctx context.Context, identity models.Identity, requestedResidentID int64) ([]*models.Bill, error) {
	scope, err := s.policy.ResolveResidentScope(identity, requestedResidentID)
	if err != nil {
		return nil, err
	}

	if scope == auth.ScopeAll {
		return listCached(ctx, s.views, cache.ViewBills, s.billRepo.GetAll)
	}

	return s.billRepo.GetByResidentID(ctx, scope)
}

// CreateBill raises a bill against a resident. Admin only.
func (s *BillingService) CreateBill(ctx context.Context, identity models.Identity, req *dto.CreateBillRequest) (*models.Bill, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}

	if req.ResidentID <= 0 {
		return nil, apperrors.NewValidationError("resident id must be positive")
	}
	if !validation.IsPositiveAmount(req.Amount) {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if !validation.IsNonEmpty(req.BillType) {
		return nil, apperrors.NewValidationError("bill type is required")
	}
	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("due date must be formatted YYYY-MM-DD")
	}

	status := req.Status
	if status == "" {
		status = models.BillPending
	}
	if !models.IsValidBillStatus(status) {
		return nil, apperrors.NewValidationError("status must be Pending or Paid")
	}

	bill := &models.Bill{
		ResidentID: req.ResidentID,
		Amount:     req.Amount,
		BillType:   strings.TrimSpace(req.BillType),
		DueDate:    dueDate,
		Status:     status,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewBills)
	return bill, nil
}

// UpdateBillStatus transitions a bill's status. Admin only.
func (s *BillingService) UpdateBillStatus(ctx context.Context, identity models.Identity, id int64, status models.BillStatus) (*models.Bill, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.NewValidationError("bill id must be positive")
	}
	if !models.IsValidBillStatus(status) {
		return nil, apperrors.NewValidationError("status must be Pending or Paid")
	}

	if err := s.billRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewBills)
	return s.billRepo.GetByID(ctx, id)
}

// ListPayments returns payments in the caller's resolved scope
func (s *BillingService) ListPayments(ctx context.Context, identity models.Identity, requestedResidentID int64) ([]*models.Payment, error) {
	scope, err := s.policy.ResolveResidentScope(identity, requestedResidentID)
	if err != nil {
		return nil, err
	}

	if scope == auth.ScopeAll {
		return listCached(ctx, s.views, cache.ViewPayments, s.paymentRepo.GetAll)
	}

	return s.paymentRepo.GetByResidentID(ctx, scope)
}

// RecordPayment records a payment and, for bill-settling payment types, marks
// the oldest matching pending bill as paid. Both writes run in one
// transaction: either the payment and the settlement land together or neither
// does. A payment with no matching pending bill is still recorded.
//
// Residents may only record payments against their own resident id.
func (s *BillingService) RecordPayment(ctx context.Context, identity models.Identity, req *dto.CreatePaymentRequest) (*dto.PaymentResult, error) {
	if req.ResidentID <= 0 {
		return nil, apperrors.NewValidationError("resident id must be positive")
	}
	if !validation.IsPositiveAmount(req.Amount) {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if !validation.IsNonEmpty(req.PaymentType) {
		return nil, apperrors.NewValidationError("payment type is required")
	}
	paymentDate, err := helpers.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, apperrors.NewValidationError("payment date must be formatted YYYY-MM-DD")
	}

	status := req.Status
	if status == "" {
		status = models.PaymentPaid
	}
	if !models.IsValidPaymentStatus(status) {
		return nil, apperrors.NewValidationError("status must be Pending or Paid")
	}

	if err := s.policy.RequireOwn(identity, req.ResidentID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ResidentID:  req.ResidentID,
		Amount:      req.Amount,
		PaymentType: strings.TrimSpace(req.PaymentType),
		PaymentDate: paymentDate,
		Status:      status,
	}

	var settledBillID *int64
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return err
		}

		if !models.SettlesBill(payment.PaymentType) {
			return nil
		}

		billID, err := s.billRepo.SettleOldestPending(ctx, tx, payment.ResidentID, payment.PaymentType)
		if err != nil {
			if errors.Is(err, apperrors.ErrBillNotFound) {
				// Nothing outstanding of this type; the payment stands alone
				return nil
			}
			return err
		}

		settledBillID = &billID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settledBillID != nil {
		s.logger.Info().
			Int64("paymentId", payment.ID).
			Int64("billId", *settledBillID).
			Msg("Payment settled pending bill")
	}

	s.views.Invalidate(ctx, cache.ViewPayments, cache.ViewBills)

	return &dto.PaymentResult{
		Payment:       *payment,
		SettledBillID: settledBillID,
	}, nil
}
