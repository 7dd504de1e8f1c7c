package models

import "time"

// Resident defines the resident model based on the 'residents' table
type Resident struct {
	ID           int64     `json:"residentId" db:"resident_id" example:"1"`
	Name         string    `json:"name" db:"name" example:"Priya Sharma"`
	Email        string    `json:"email" db:"email" example:"priya@example.com"`
	Phone        string    `json:"phone" db:"phone" example:"+91-9876543210"`
	Address      string    `json:"address" db:"address" example:"A-101, Green Meadows"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// Admin defines the privileged account model based on the 'admins' table
type Admin struct {
	ID           int64     `json:"adminId" db:"admin_id" example:"1"`
	Name         string    `json:"name" db:"name" example:"Society Office"`
	Email        string    `json:"email" db:"email" example:"office@example.com"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
