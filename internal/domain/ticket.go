package domain

import "time"

// TicketPayload is the structured content encoded into the scannable ticket
// artifact and echoed back to clients. The wire form is the JSON
// serialization of this struct.
type TicketPayload struct {
	BookingID string    `json:"bookingId"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

type TicketRequest struct {
	BookingID string
	EventID   string
	UserID    string
	IssuedAt  time.Time
}

// Ticket is the issuer's result: an opaque reference to the rendered
// artifact plus the payload it encoded.
type Ticket struct {
	Ref     string
	Payload TicketPayload
}
