package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Jgauri24/happenix/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, event_id, user_id, status, attendance_marked,
	ticket_ref, ticket_payload, reminder_sent, created_at, updated_at`

type bookingScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingScanner) (*domain.Booking, error) {
	var b domain.Booking
	var payload []byte
	if err := row.Scan(
		&b.ID, &b.EventID, &b.UserID, &b.Status, &b.AttendanceMarked,
		&b.TicketRef, &payload, &b.ReminderSent, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &b.TicketPayload); err != nil {
			return nil, fmt.Errorf("decode ticket payload: %w", err)
		}
	}
	return &b, nil
}

// lockEventForBooking takes the per-event critical section: the row lock
// serializes concurrent capacity checks against writes for the same event.
func lockEventForBooking(ctx context.Context, tx *sql.Tx, eventID string) (maxAttendees *int, err error) {
	lockQuery := `SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&maxAttendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}
	return maxAttendees, nil
}

func confirmedCount(ctx context.Context, tx *sql.Tx, eventID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = $2`
	if err := tx.QueryRowContext(ctx, query, eventID, domain.BookingStatusConfirmed).Scan(&count); err != nil {
		return 0, fmt.Errorf("count confirmed bookings: %w", err)
	}
	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	maxAttendees, err := lockEventForBooking(ctx, tx, b.EventID)
	if err != nil {
		return err
	}

	if maxAttendees != nil {
		count, err := confirmedCount(ctx, tx, b.EventID)
		if err != nil {
			return err
		}
		if count >= *maxAttendees {
			return domain.ErrEventFull
		}
	}

	query := `INSERT INTO bookings (id, event_id, user_id, status, attendance_marked, ticket_ref, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.EventID, b.UserID,
		b.Status, b.AttendanceMarked, b.TicketRef, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) Reactivate(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	var maxAttendees *int
	lockQuery := `SELECT b.event_id, e.max_attendees
				  FROM bookings b
				  JOIN events e ON e.id = b.event_id
				  WHERE b.id = $1
				  FOR UPDATE OF e`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&eventID, &maxAttendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock event for reactivation: %w", err)
	}

	if maxAttendees != nil {
		count, err := confirmedCount(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if count >= *maxAttendees {
			return domain.ErrEventFull
		}
	}

	query := `UPDATE bookings
			  SET status = $2, attendance_marked = FALSE,
			      ticket_ref = $3, ticket_payload = NULL, updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := tx.ExecContext(
		ctx, query, id,
		domain.BookingStatusConfirmed, domain.TicketRefPending, domain.BookingStatusCancelled,
	)
	if err != nil {
		return fmt.Errorf("reactivate booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reactivate rows affected: %w", err)
	}
	if rows == 0 {
		// The row exists (the lock query found it) but is not cancelled.
		return domain.ErrAlreadyBooked
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking by event and user: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) SetTicket(ctx context.Context, id, ref string, payload domain.TicketPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode ticket payload: %w", err)
	}

	query := `UPDATE bookings
			  SET ticket_ref = $2, ticket_payload = $3, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ref, raw)
	if err != nil {
		return fmt.Errorf("set ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set ticket rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) error {
	// Attended is terminal: the guard in the WHERE clause holds even if a
	// concurrent validation slipped in after the caller's status check.
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.BookingStatusCancelled, domain.BookingStatusAttended,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return fmt.Errorf("check booking status: %w", err)
		}
		if err = row.Scan(&status); err != nil {
			return domain.ErrBookingNotFound
		}
		if status == domain.BookingStatusAttended {
			return domain.ErrBookingAttended
		}
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) MarkAttended(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Conditional transition: at most one caller ever sees a row move from
	// confirmed to attended, so the counter below increments exactly once
	// per booking.
	var userID string
	query := `UPDATE bookings
			  SET status = $2, attendance_marked = TRUE, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING user_id`
	err = tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusAttended, domain.BookingStatusConfirmed,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var status domain.BookingStatus
			checkQuery := `SELECT status FROM bookings WHERE id = $1`
			if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
				return domain.ErrBookingNotFound
			}
			return domain.ErrBookingNotConfirmed
		}
		return fmt.Errorf("mark attended: %w", err)
	}

	counterQuery := `UPDATE users SET attended_count = attended_count + 1 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, counterQuery, userID); err != nil {
		return fmt.Errorf("increment attended count: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string, f domain.BookingFilter) ([]*domain.UserBooking, error) {
	query := `SELECT b.id, b.event_id, b.user_id, b.status, b.attendance_marked,
					 b.ticket_ref, b.ticket_payload, b.reminder_sent, b.created_at, b.updated_at,
					 e.title, e.event_date
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.user_id = $1`
	args := []any{userID}

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	if f.Upcoming != nil {
		if *f.Upcoming {
			query += " AND e.event_date >= now()"
		} else {
			query += " AND e.event_date < now()"
		}
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.UserBooking
	for rows.Next() {
		var ub domain.UserBooking
		var payload []byte
		if err = rows.Scan(
			&ub.ID, &ub.EventID, &ub.UserID, &ub.Status, &ub.AttendanceMarked,
			&ub.TicketRef, &payload, &ub.ReminderSent, &ub.CreatedAt, &ub.UpdatedAt,
			&ub.EventTitle, &ub.EventDate,
		); err != nil {
			return nil, fmt.Errorf("scan user booking: %w", err)
		}
		if len(payload) > 0 {
			if err = json.Unmarshal(payload, &ub.TicketPayload); err != nil {
				return nil, fmt.Errorf("decode ticket payload: %w", err)
			}
		}
		res = append(res, &ub)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListDueReminders(ctx context.Context, within time.Duration) ([]*domain.Booking, error) {
	query := `SELECT ` + prefixedBookingColumns("b") + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.status = $1
			    AND b.reminder_sent = FALSE
			    AND e.status = $2
			    AND e.event_date > now()
			    AND e.event_date <= now() + make_interval(secs => $3)`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.EventStatusActive, within.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan due reminder: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, id string) error {
	query := `UPDATE bookings SET reminder_sent = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	return nil
}

func prefixedBookingColumns(alias string) string {
	return alias + `.id, ` + alias + `.event_id, ` + alias + `.user_id, ` + alias + `.status, ` +
		alias + `.attendance_marked, ` + alias + `.ticket_ref, ` + alias + `.ticket_payload, ` +
		alias + `.reminder_sent, ` + alias + `.created_at, ` + alias + `.updated_at`
}
