package dto

import (
	"time"

	"github.com/Jgauri24/happenix/internal/domain"
)

type TicketPayloadResponse struct {
	BookingID string `json:"bookingId"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

type BookingResponse struct {
	ID               string                 `json:"id"`
	EventID          string                 `json:"event_id"`
	UserID           string                 `json:"user_id"`
	Status           string                 `json:"status"`
	AttendanceMarked bool                   `json:"attendance_marked"`
	TicketRef        string                 `json:"ticket_ref"`
	TicketPayload    *TicketPayloadResponse `json:"ticket_payload,omitempty"`
	CreatedAt        string                 `json:"created_at"`
}

type EventSummaryResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EventDate    string `json:"event_date"`
	Status       string `json:"status"`
	MaxAttendees *int   `json:"max_attendees"`
}

type UserSummaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AttendedCount int    `json:"attended_count"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse      `json:"booking"`
	Event   EventSummaryResponse `json:"event"`
	User    UserSummaryResponse  `json:"user"`
}

type UserBookingResponse struct {
	BookingResponse
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID,
		EventID:          b.EventID,
		UserID:           b.UserID,
		Status:           string(b.Status),
		AttendanceMarked: b.AttendanceMarked,
		TicketRef:        b.TicketRef,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
	if b.TicketPayload.BookingID != "" {
		resp.TicketPayload = &TicketPayloadResponse{
			BookingID: b.TicketPayload.BookingID,
			EventID:   b.TicketPayload.EventID,
			UserID:    b.TicketPayload.UserID,
			Timestamp: b.TicketPayload.Timestamp.Format(time.RFC3339),
		}
	}
	return resp
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	return BookingDetailsResponse{
		Booking: ToBookingResponse(&d.Booking),
		Event: EventSummaryResponse{
			ID:           d.Event.ID,
			Title:        d.Event.Title,
			Description:  d.Event.Description,
			EventDate:    d.Event.EventDate.Format(time.RFC3339),
			Status:       string(d.Event.Status),
			MaxAttendees: d.Event.MaxAttendees,
		},
		User: UserSummaryResponse{
			ID:            d.User.ID,
			Name:          d.User.Name,
			Email:         d.User.Email,
			AttendedCount: d.User.AttendedCount,
		},
	}
}

func ToUserBookingResponse(ub *domain.UserBooking) UserBookingResponse {
	return UserBookingResponse{
		BookingResponse: ToBookingResponse(&ub.Booking),
		EventTitle:      ub.EventTitle,
		EventDate:       ub.EventDate.Format(time.RFC3339),
	}
}
