package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Jgauri24/happenix/internal/domain"
	"github.com/Jgauri24/happenix/internal/monitoring"
	"github.com/Jgauri24/happenix/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	events      ports.EventCatalog
	users       ports.UserDirectory
	tickets     ports.TicketIssuer
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	events ports.EventCatalog,
	users ports.UserDirectory,
	tickets ports.TicketIssuer,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		events:      events,
		users:       users,
		tickets:     tickets,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book creates a confirmed booking for (eventID, userID), or reactivates the
// user's previously cancelled booking for the same event. The repository
// enforces capacity and pair uniqueness; everything after the status write
// (ticket, attendee cache, email) is best effort.
func (s *BookingService) Book(ctx context.Context, eventID, userID string) (*domain.BookingDetails, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if event.Status != domain.EventStatusActive {
		return nil, domain.ErrEventNotBookable
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	existing, err := s.bookingRepo.GetByEventAndUser(ctx, eventID, userID)
	switch {
	case err == nil:
		if existing.Status != domain.BookingStatusCancelled {
			return nil, domain.ErrAlreadyBooked
		}
		if err = s.bookingRepo.Reactivate(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("reactivate booking: %w", err)
		}
		booking := *existing
		booking.Status = domain.BookingStatusConfirmed
		booking.AttendanceMarked = false
		booking.TicketRef = domain.TicketRefPending
		booking.TicketPayload = domain.TicketPayload{}

		s.logger.Info("booking reactivated",
			logger.String("booking_id", booking.ID),
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)
		monitoring.BookingsReactivated.Inc()

		return s.finalizeConfirmed(ctx, &booking, event, user), nil

	case errors.Is(err, domain.ErrBookingNotFound):
		booking := &domain.Booking{
			ID:        uuid.New().String(),
			EventID:   eventID,
			UserID:    userID,
			Status:    domain.BookingStatusConfirmed,
			TicketRef: domain.TicketRefPending,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		if err = s.bookingRepo.Create(ctx, booking); err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}

		s.logger.Info("booking created",
			logger.String("booking_id", booking.ID),
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)
		monitoring.BookingsCreated.Inc()

		return s.finalizeConfirmed(ctx, booking, event, user), nil

	default:
		return nil, fmt.Errorf("check existing booking: %w", err)
	}
}

// finalizeConfirmed runs the side effects of a durable confirmed booking:
// ticket issuance, the attendee cache patch and the confirmation email.
// None of them can fail the booking at this point.
func (s *BookingService) finalizeConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event, user *domain.User) *domain.BookingDetails {
	ticket, err := s.tickets.Issue(ctx, domain.TicketRequest{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		UserID:    booking.UserID,
		IssuedAt:  time.Now().UTC(),
	})
	if err != nil {
		// The booking stays confirmed with ticket_ref=pending; a later
		// re-book after cancellation reissues.
		monitoring.TicketIssueFailures.Inc()
		s.logger.Error("ticket issuance failed, booking left pending",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	} else {
		if err = s.bookingRepo.SetTicket(ctx, booking.ID, ticket.Ref, ticket.Payload); err != nil {
			s.logger.Error("failed to attach ticket to booking",
				logger.String("booking_id", booking.ID),
				logger.String("error", err.Error()),
			)
		} else {
			booking.TicketRef = ticket.Ref
			booking.TicketPayload = ticket.Payload
		}
	}

	if err = s.events.AddAttendee(ctx, booking.EventID, booking.UserID); err != nil {
		s.logger.Error("failed to update event attendees",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
	}

	go s.notifier.SendBookingConfirmation(context.WithoutCancel(ctx), user, event, booking.TicketRef)

	return &domain.BookingDetails{Booking: *booking, Event: *event, User: *user}
}

// Cancel sets the requesting user's booking to cancelled. Attended bookings
// are terminal and cannot be cancelled.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return domain.ErrNotAuthorized
	}

	if booking.Status == domain.BookingStatusAttended {
		return domain.ErrBookingAttended
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
	)
	monitoring.BookingsCancelled.Inc()

	if err = s.events.RemoveAttendee(ctx, booking.EventID, userID); err != nil {
		s.logger.Error("failed to update event attendees",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
	}

	go s.notifyUpdate(context.WithoutCancel(ctx), booking.EventID, userID, "Your booking has been cancelled.")

	return nil
}

func (s *BookingService) notifyUpdate(ctx context.Context, eventID, userID, message string) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.SendEventUpdate(ctx, user, event, message)
}

// Get returns a booking with details, visible to its owner and to admins.
func (s *BookingService) Get(ctx context.Context, bookingID, requesterID string) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get requester: %w", err)
	}

	if booking.UserID != requesterID && !requester.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}

	return s.resolveDetails(ctx, booking)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string, f domain.BookingFilter) ([]*domain.UserBooking, error) {
	return s.bookingRepo.ListByUser(ctx, userID, f)
}

// ValidateAttendance is the admin scan path: confirmed -> attended.
func (s *BookingService) ValidateAttendance(ctx context.Context, bookingID, actorID string) (*domain.BookingDetails, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get acting user: %w", err)
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}

	return s.markAttended(ctx, bookingID)
}

// SelfMarkAttended is the owner's self-report path, allowed only once the
// event date has passed.
func (s *BookingService) SelfMarkAttended(ctx context.Context, bookingID, userID string) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, domain.ErrNotAuthorized
	}

	event, err := s.events.GetByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.EventDate.After(time.Now()) {
		return nil, domain.ErrEventNotOccurred
	}

	return s.markAttended(ctx, bookingID)
}

// markAttended funnels both attendance entry points through the single
// repository transition, which pairs status=attended with attendance_marked
// and increments the lifetime counter exactly once.
func (s *BookingService) markAttended(ctx context.Context, bookingID string) (*domain.BookingDetails, error) {
	if err := s.bookingRepo.MarkAttended(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("mark attended: %w", err)
	}

	s.logger.Info("attendance marked",
		logger.String("booking_id", bookingID),
	)
	monitoring.BookingsAttended.Inc()

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}

	return s.resolveDetails(ctx, booking)
}

func (s *BookingService) resolveDetails(ctx context.Context, booking *domain.Booking) (*domain.BookingDetails, error) {
	event, err := s.events.GetByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("resolve event: %w", err)
	}

	user, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return &domain.BookingDetails{Booking: *booking, Event: *event, User: *user}, nil
}

// SendDueReminders dispatches reminder emails for confirmed bookings whose
// event starts within the given window. Invoked by the scheduler.
func (s *BookingService) SendDueReminders(ctx context.Context, within time.Duration) (int, error) {
	due, err := s.bookingRepo.ListDueReminders(ctx, within)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, b := range due {
		user, err := s.users.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", b.UserID),
			)
			continue
		}

		event, err := s.events.GetByID(ctx, b.EventID)
		if err != nil {
			s.logger.Error("failed to get event for reminder",
				logger.String("event_id", b.EventID),
			)
			continue
		}

		s.notifier.SendEventReminder(ctx, user, event)

		if err = s.bookingRepo.MarkReminderSent(ctx, b.ID); err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	return sent, nil
}
