package dto

import "github.com/karan/societyhub/internal/app/models"

// CreateMaintenanceRequest represents the data needed to open a request.
// ResidentID is optional for residents, whose own id is always used.
type CreateMaintenanceRequest struct {
	ResidentID  int64  `json:"residentId"`
	Description string `json:"description" binding:"required"`
}

// UpdateMaintenanceRequest represents a maintenance status transition
type UpdateMaintenanceRequest struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}
