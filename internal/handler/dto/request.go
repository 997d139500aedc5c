package dto

// CreateBookingRequest carries the event to book; the user comes from the
// identity header.
type CreateBookingRequest struct {
	EventID string `json:"eventId" binding:"required,uuid"`
}
