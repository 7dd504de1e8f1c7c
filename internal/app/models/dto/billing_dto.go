package dto

import "github.com/karan/societyhub/internal/app/models"

// CreateBillRequest represents the data needed to raise a bill.
// DueDate uses the YYYY-MM-DD wire format.
type CreateBillRequest struct {
	ResidentID int64             `json:"residentId" binding:"required,min=1"`
	Amount     float64           `json:"amount" binding:"required,gt=0"`
	BillType   string            `json:"billType" binding:"required"`
	DueDate    string            `json:"dueDate" binding:"required"`
	Status     models.BillStatus `json:"status,omitempty"`
}

// UpdateBillRequest represents a bill status transition
type UpdateBillRequest struct {
	Status models.BillStatus `json:"status" binding:"required"`
}

// CreatePaymentRequest represents the data needed to record a payment.
// PaymentDate uses the YYYY-MM-DD wire format.
type CreatePaymentRequest struct {
	ResidentID  int64                `json:"residentId" binding:"required,min=1"`
	Amount      float64              `json:"amount" binding:"required,gt=0"`
	PaymentType string               `json:"paymentType" binding:"required"`
	PaymentDate string               `json:"paymentDate" binding:"required"`
	Status      models.PaymentStatus `json:"status,omitempty"`
}

// PaymentResult reports a recorded payment plus the bill it settled, if any
type PaymentResult struct {
	Payment       models.Payment `json:"payment"`
	SettledBillID *int64         `json:"settledBillId,omitempty"`
}
