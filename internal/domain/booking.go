package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAttended  BookingStatus = "attended"
)

// TicketRefPending is the ticket_ref value while issuance is in flight or
// has failed and is awaiting reissue.
const TicketRefPending = "pending"

type Booking struct {
	ID               string        `json:"id"`
	EventID          string        `json:"event_id"`
	UserID           string        `json:"user_id"`
	Status           BookingStatus `json:"status"`
	AttendanceMarked bool          `json:"attendance_marked"`
	TicketRef        string        `json:"ticket_ref"`
	TicketPayload    TicketPayload `json:"ticket_payload"`
	ReminderSent     bool          `json:"reminder_sent"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// BookingDetails is a booking with its event and owner resolved for display.
type BookingDetails struct {
	Booking Booking `json:"booking"`
	Event   Event   `json:"event"`
	User    User    `json:"user"`
}

// UserBooking is a list row: the booking plus the event fields needed to
// render and filter it.
type UserBooking struct {
	Booking
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
}

// BookingFilter narrows a user's booking list. Upcoming selects bookings for
// events after (true) or before (false) now; nil means no date filter.
type BookingFilter struct {
	Status   BookingStatus
	Upcoming *bool
}
