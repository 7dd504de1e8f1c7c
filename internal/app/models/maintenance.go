package models

import "time"

// MaintenanceRequest defines the model based on the 'maintenance_requests' table
type MaintenanceRequest struct {
	ID           int64         `json:"requestId" db:"request_id"`
	ResidentID   int64         `json:"residentId" db:"resident_id"`
	Description  string        `json:"description" db:"description"`
	Status       RequestStatus `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	ResidentName string        `json:"residentName,omitempty" db:"resident_name"`
}
