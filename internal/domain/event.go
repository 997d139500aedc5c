package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	EventDate   time.Time   `json:"event_date"`
	Status      EventStatus `json:"status"`
	// MaxAttendees caps confirmed bookings; nil means unlimited.
	MaxAttendees *int `json:"max_attendees"`
	// Attendees is a denormalized membership cache patched alongside
	// booking writes. Capacity is always gated on the confirmed-booking
	// count, never on this list.
	Attendees []string  `json:"attendees"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
