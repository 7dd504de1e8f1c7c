package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository       *AdminRepository
	ResidentRepository    *ResidentRepository
	PropertyRepository    *PropertyRepository
	BillRepository        *BillRepository
	PaymentRepository     *PaymentRepository
	MaintenanceRepository *MaintenanceRepository
	EventRepository       *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		ResidentRepository:    NewResidentRepository(db),
		PropertyRepository:    NewPropertyRepository(db),
		BillRepository:        NewBillRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		EventRepository:       NewEventRepository(db),
	}
}
