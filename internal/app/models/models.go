package models

// Role defines the authenticated subject's role
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleResident Role = "resident"
)

// PropertyType defines the kind of property a resident owns
type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyHouse     PropertyType = "House"
	PropertyVilla     PropertyType = "Villa"
)

// BillStatus defines the payment state of a bill
type BillStatus string

const (
	BillPending BillStatus = "Pending"
	BillPaid    BillStatus = "Paid"
)

// PaymentStatus defines the state of a recorded payment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// RequestStatus defines the lifecycle state of a maintenance request
type RequestStatus string

const (
	RequestPending    RequestStatus = "Pending"
	RequestInProgress RequestStatus = "In Progress"
	RequestCompleted  RequestStatus = "Completed"
)

// IsValidPropertyType reports whether t is one of the known property types
func IsValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyVilla:
		return true
	}
	return false
}

// IsValidRequestStatus reports whether s is one of the known request states
func IsValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestPending, RequestInProgress, RequestCompleted:
		return true
	}
	return false
}

// IsValidBillStatus reports whether s is one of the known bill states
func IsValidBillStatus(s BillStatus) bool {
	return s == BillPending || s == BillPaid
}

// IsValidPaymentStatus reports whether s is one of the known payment states
func IsValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentPending || s == PaymentPaid
}
