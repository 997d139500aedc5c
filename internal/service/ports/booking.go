package ports

import (
	"context"
	"time"

	"github.com/Jgauri24/happenix/internal/domain"
)

type BookingRepo interface {
	// Create inserts a confirmed booking, enforcing capacity and the
	// (event_id, user_id) uniqueness constraint in a single transaction.
	Create(ctx context.Context, b *domain.Booking) error
	// Reactivate flips a cancelled booking back to confirmed, resetting
	// attendance and the ticket reference, re-checking capacity.
	Reactivate(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	SetTicket(ctx context.Context, id, ref string, payload domain.TicketPayload) error
	// Cancel transitions confirmed to cancelled. Cancelling an already
	// cancelled booking is a no-op; an attended booking is rejected.
	Cancel(ctx context.Context, id string) error
	// MarkAttended performs the single confirmed -> attended transition and
	// increments the owner's lifetime attended counter in the same
	// transaction, so the counter moves exactly once per booking.
	MarkAttended(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, f domain.BookingFilter) ([]*domain.UserBooking, error)
	ListDueReminders(ctx context.Context, within time.Duration) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, id string) error
}
