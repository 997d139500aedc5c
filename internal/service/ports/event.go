package ports

import (
	"context"

	"github.com/Jgauri24/happenix/internal/domain"
)

// EventCatalog is the read/patch surface of the event catalog the ledger
// depends on. Catalog CRUD itself is owned elsewhere.
type EventCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// AddAttendee and RemoveAttendee patch the denormalized attendee cache
	// on the event row. Both are idempotent.
	AddAttendee(ctx context.Context, eventID, userID string) error
	RemoveAttendee(ctx context.Context, eventID, userID string) error
}
