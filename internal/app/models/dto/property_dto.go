package dto

import "github.com/karan/societyhub/internal/app/models"

// CreatePropertyRequest represents the data needed to register a property
type CreatePropertyRequest struct {
	ResidentID   int64               `json:"residentId" binding:"required,min=1"`
	Address      string              `json:"address" binding:"required"`
	PropertyType models.PropertyType `json:"propertyType" binding:"required"`
}

// UpdatePropertyRequest represents updatable property fields
type UpdatePropertyRequest struct {
	ResidentID   int64               `json:"residentId" binding:"required,min=1"`
	Address      string              `json:"address" binding:"required"`
	PropertyType models.PropertyType `json:"propertyType" binding:"required"`
}
