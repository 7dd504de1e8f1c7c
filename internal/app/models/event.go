package models

import "time"

// Event defines the community event model based on the 'events' table.
// Events are community-wide: created by an admin, visible to every resident.
type Event struct {
	ID          int64     `json:"eventId" db:"event_id"`
	AdminID     int64     `json:"adminId" db:"admin_id"`
	EventName   string    `json:"eventName" db:"event_name"`
	EventDate   time.Time `json:"eventDate" db:"event_date"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
