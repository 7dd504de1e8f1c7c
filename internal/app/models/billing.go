package models

import "time"

// Bill defines the bill model based on the 'bills' table
type Bill struct {
	ID           int64      `json:"billId" db:"bill_id"`
	ResidentID   int64      `json:"residentId" db:"resident_id"`
	Amount       float64    `json:"amount" db:"amount"`
	BillType     string     `json:"billType" db:"bill_type" example:"Society Fee"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	Status       BillStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	ResidentName string     `json:"residentName,omitempty" db:"resident_name"`
}

// Payment defines the payment model based on the 'payments' table
type Payment struct {
	ID           int64         `json:"paymentId" db:"payment_id"`
	ResidentID   int64         `json:"residentId" db:"resident_id"`
	Amount       float64       `json:"amount" db:"amount"`
	PaymentType  string        `json:"paymentType" db:"payment_type" example:"Society Fee"`
	PaymentDate  time.Time     `json:"paymentDate" db:"payment_date"`
	Status       PaymentStatus `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	ResidentName string        `json:"residentName,omitempty" db:"resident_name"`
}

// SettlesBill reports whether a payment of the given type settles an
// outstanding bill of the same type when one is pending.
func SettlesBill(paymentType string) bool {
	return paymentType == "Society Fee" || paymentType == "Utility Bill"
}
