package models

import "time"

// Property defines the property model based on the 'properties' table.
// ResidentName is populated by list queries that join the owning resident.
type Property struct {
	ID           int64        `json:"propertyId" db:"property_id"`
	ResidentID   int64        `json:"residentId" db:"resident_id"`
	Address      string       `json:"address" db:"address"`
	PropertyType PropertyType `json:"propertyType" db:"property_type"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	ResidentName string       `json:"residentName,omitempty" db:"resident_name"`
}
