package ports

import (
	"context"

	"github.com/Jgauri24/happenix/internal/domain"
)

// Notifier delivers best-effort email. Implementations log failures and
// never return them; a lost notification must not fail a booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, user *domain.User, event *domain.Event, ticketRef string)
	SendEventUpdate(ctx context.Context, user *domain.User, event *domain.Event, message string)
	SendEventReminder(ctx context.Context, user *domain.User, event *domain.Event)
}
