package services

import (
	"context"

	"github.com/karan/societyhub/internal/db"
)

// Services defined in this package:
// - AuthService: credential checks, session issuance, resident registration
// - ResidentService: admin-managed resident records
// - PropertyService: properties and their resident ownership
// - BillingService: bills, payments and the payment/bill settlement rule
// - MaintenanceService: maintenance requests and status transitions
// - EventService: community-wide events
//
// Each service consumes its repositories through the interfaces declared
// alongside it, so tests can run against in-memory fakes.

// TxRunner runs a function inside a database transaction. Implemented by
// db.PostgresDB.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
