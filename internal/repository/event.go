package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Jgauri24/happenix/internal/domain"
)

// EventRepository is the ledger's adapter onto the event catalog: lookups
// plus idempotent patches of the attendee cache.
type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, event_date, status, max_attendees, attendees, created_at, updated_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Status,
		&e.MaxAttendees, pq.Array(&e.Attendees), &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID string) error {
	// No-op when the user is already present, which keeps reactivation from
	// duplicating the membership entry.
	query := `UPDATE events
			  SET attendees = array_append(attendees, $2), updated_at = now()
			  WHERE id = $1 AND NOT ($2 = ANY(attendees))`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID); err != nil {
		return fmt.Errorf("add attendee: %w", err)
	}
	return nil
}

func (r *EventRepository) RemoveAttendee(ctx context.Context, eventID, userID string) error {
	query := `UPDATE events
			  SET attendees = array_remove(attendees, $2), updated_at = now()
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID); err != nil {
		return fmt.Errorf("remove attendee: %w", err)
	}
	return nil
}
