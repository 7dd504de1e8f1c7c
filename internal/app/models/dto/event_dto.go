package dto

// CreateEventRequest represents the data needed to announce an event.
// The admin id is taken from the session, never from the payload.
// EventDate uses the YYYY-MM-DD wire format.
type CreateEventRequest struct {
	EventName   string `json:"eventName" binding:"required"`
	EventDate   string `json:"eventDate" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateEventRequest represents updatable event fields
type UpdateEventRequest struct {
	EventName   string `json:"eventName" binding:"required"`
	EventDate   string `json:"eventDate" binding:"required"`
	Description string `json:"description" binding:"required"`
}
