package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Jgauri24/happenix/internal/domain"
	"github.com/Jgauri24/happenix/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type serviceMocks struct {
	bookingRepo *mocks.MockBookingRepo
	events      *mocks.MockEventCatalog
	users       *mocks.MockUserDirectory
	tickets     *mocks.MockTicketIssuer
	notifier    *mocks.MockNotifier
}

func newTestService(t *testing.T) (*BookingService, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		events:      mocks.NewMockEventCatalog(t),
		users:       mocks.NewMockUserDirectory(t),
		tickets:     mocks.NewMockTicketIssuer(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.events, m.users, m.tickets, m.notifier, newTestLogger(t))
	return svc, m
}

func intPtr(v int) *int { return &v }

func activeEvent(id string) *domain.Event {
	return &domain.Event{
		ID:        id,
		Title:     "Concert",
		EventDate: time.Now().Add(48 * time.Hour),
		Status:    domain.EventStatusActive,
	}
}

// --- Book ---

func TestBookingService_Book_CreatesConfirmedBooking(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
			return &domain.Ticket{
				Ref: "/uploads/qr-codes/qr-" + req.BookingID + ".png",
				Payload: domain.TicketPayload{
					BookingID: req.BookingID,
					EventID:   req.EventID,
					UserID:    req.UserID,
					Timestamp: req.IssuedAt,
				},
			}, nil
		})
	m.bookingRepo.EXPECT().SetTicket(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.events.EXPECT().AddAttendee(mock.Anything, "e1", "u1").Return(nil)
	m.notifier.EXPECT().SendBookingConfirmation(mock.Anything, user, event, mock.Anything).Return()

	details, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, details.Booking.Status)
	assert.False(t, details.Booking.AttendanceMarked)
	assert.NotEmpty(t, details.Booking.ID)
	assert.NotEqual(t, domain.TicketRefPending, details.Booking.TicketRef)
	assert.Equal(t, details.Booking.ID, details.Booking.TicketPayload.BookingID)
	assert.Equal(t, "e1", details.Event.ID)
	assert.Equal(t, "u1", details.User.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_EventNotActive(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	event.Status = domain.EventStatusCancelled
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotBookable)
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	user := &domain.User{ID: "u1"}
	existing := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_AttendedIsTerminal(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	user := &domain.User{ID: "u1"}
	existing := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusAttended}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_EventFull(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	event.MaxAttendees = intPtr(1)
	user := &domain.User{ID: "u2"}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u2").Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEventFull)

	_, err := svc.Book(context.Background(), "e1", "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestBookingService_Book_ReactivatesCancelled(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	existing := &domain.Booking{
		ID:               "b1",
		EventID:          "e1",
		UserID:           "u1",
		Status:           domain.BookingStatusCancelled,
		AttendanceMarked: false,
		TicketRef:        "/uploads/qr-codes/qr-b1-old.png",
	}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)
	m.bookingRepo.EXPECT().Reactivate(mock.Anything, "b1").Return(nil)
	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).Return(&domain.Ticket{
		Ref: "/uploads/qr-codes/qr-b1-new.png",
		Payload: domain.TicketPayload{
			BookingID: "b1", EventID: "e1", UserID: "u1", Timestamp: time.Now(),
		},
	}, nil)
	m.bookingRepo.EXPECT().SetTicket(mock.Anything, "b1", "/uploads/qr-codes/qr-b1-new.png", mock.Anything).Return(nil)
	m.events.EXPECT().AddAttendee(mock.Anything, "e1", "u1").Return(nil)
	m.notifier.EXPECT().SendBookingConfirmation(mock.Anything, user, event, mock.Anything).Return()

	details, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "b1", details.Booking.ID) // same row reused
	assert.Equal(t, domain.BookingStatusConfirmed, details.Booking.Status)
	assert.False(t, details.Booking.AttendanceMarked)
	assert.Equal(t, "/uploads/qr-codes/qr-b1-new.png", details.Booking.TicketRef)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_ReactivateEventFull(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	event.MaxAttendees = intPtr(1)
	user := &domain.User{ID: "u1"}
	existing := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusCancelled}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(existing, nil)
	m.bookingRepo.EXPECT().Reactivate(mock.Anything, "b1").Return(domain.ErrEventFull)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestBookingService_Book_TicketFailureLeavesPending(t *testing.T) {
	svc, m := newTestService(t)

	event := activeEvent("e1")
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).Return(nil, errors.New("encoder broken"))
	m.events.EXPECT().AddAttendee(mock.Anything, "e1", "u1").Return(nil)
	m.notifier.EXPECT().SendBookingConfirmation(mock.Anything, user, event, domain.TicketRefPending).Return()

	details, err := svc.Book(context.Background(), "e1", "u1")

	// The booking is durable before issuance; a ticket failure must not
	// fail the request.
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, details.Booking.Status)
	assert.Equal(t, domain.TicketRefPending, details.Booking.TicketRef)

	time.Sleep(50 * time.Millisecond)
}

// --- Cancel ---

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}
	event := activeEvent("e1")

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(nil)
	m.events.EXPECT().RemoveAttendee(mock.Anything, "e1", "u1").Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().SendEventUpdate(mock.Anything, user, event, "Your booking has been cancelled.").Return()

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_Cancel_AttendedIsTerminal(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusAttended}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingAttended)
}

// --- Get / ListByUser ---

func TestBookingService_Get_OwnerSees(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	owner := &domain.User{ID: "u1", Role: domain.UserRoleUser}
	event := activeEvent("e1")

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	details, err := svc.Get(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "b1", details.Booking.ID)
}

func TestBookingService_Get_AdminSees(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	admin := &domain.User{ID: "a1", Role: domain.UserRoleAdmin}
	owner := &domain.User{ID: "u1", Role: domain.UserRoleUser}
	event := activeEvent("e1")

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.users.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Get(context.Background(), "b1", "a1")

	require.NoError(t, err)
}

func TestBookingService_Get_StrangerForbidden(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	stranger := &domain.User{ID: "u2", Role: domain.UserRoleUser}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(stranger, nil)

	_, err := svc.Get(context.Background(), "b1", "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, m := newTestService(t)

	rows := []*domain.UserBooking{
		{Booking: domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, EventTitle: "Concert"},
	}
	m.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1", mock.Anything).Return(rows, nil)

	result, err := svc.ListByUser(context.Background(), "u1", domain.BookingFilter{})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

// --- Attendance ---

func TestBookingService_ValidateAttendance_Success(t *testing.T) {
	svc, m := newTestService(t)

	admin := &domain.User{ID: "a1", Role: domain.UserRoleAdmin}
	owner := &domain.User{ID: "u1", Role: domain.UserRoleUser, AttendedCount: 1}
	attended := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusAttended, AttendanceMarked: true}
	event := activeEvent("e1")

	m.users.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	m.bookingRepo.EXPECT().MarkAttended(mock.Anything, "b1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(attended, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)

	details, err := svc.ValidateAttendance(context.Background(), "b1", "a1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAttended, details.Booking.Status)
	assert.True(t, details.Booking.AttendanceMarked)
}

func TestBookingService_ValidateAttendance_NonAdmin(t *testing.T) {
	svc, m := newTestService(t)

	user := &domain.User{ID: "u1", Role: domain.UserRoleUser}
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.ValidateAttendance(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_ValidateAttendance_NotConfirmed(t *testing.T) {
	svc, m := newTestService(t)

	admin := &domain.User{ID: "a1", Role: domain.UserRoleAdmin}
	m.users.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	m.bookingRepo.EXPECT().MarkAttended(mock.Anything, "b1").Return(domain.ErrBookingNotConfirmed)

	_, err := svc.ValidateAttendance(context.Background(), "b1", "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotConfirmed)
}

func TestBookingService_SelfMarkAttended_Success(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	attended := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusAttended, AttendanceMarked: true}
	owner := &domain.User{ID: "u1", Role: domain.UserRoleUser}
	pastEvent := activeEvent("e1")
	pastEvent.EventDate = time.Now().Add(-24 * time.Hour)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Once()
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(pastEvent, nil)
	m.bookingRepo.EXPECT().MarkAttended(mock.Anything, "b1").Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(attended, nil).Once()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)

	details, err := svc.SelfMarkAttended(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAttended, details.Booking.Status)
}

func TestBookingService_SelfMarkAttended_FutureEvent(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	futureEvent := activeEvent("e1")
	futureEvent.EventDate = time.Now().Add(24 * time.Hour)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(futureEvent, nil)

	_, err := svc.SelfMarkAttended(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotOccurred)
}

func TestBookingService_SelfMarkAttended_NotOwner(t *testing.T) {
	svc, m := newTestService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.SelfMarkAttended(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_SelfMarkAttended_SecondCallFails(t *testing.T) {
	svc, m := newTestService(t)

	// The booking already moved to attended; the conditional transition
	// rejects the retry, so the counter cannot move twice.
	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusAttended, AttendanceMarked: true}
	pastEvent := activeEvent("e1")
	pastEvent.EventDate = time.Now().Add(-24 * time.Hour)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(pastEvent, nil)
	m.bookingRepo.EXPECT().MarkAttended(mock.Anything, "b1").Return(domain.ErrBookingNotConfirmed)

	_, err := svc.SelfMarkAttended(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotConfirmed)
}

// --- Reminders ---

func TestBookingService_SendDueReminders_Success(t *testing.T) {
	svc, m := newTestService(t)

	due := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", EventID: "e2", UserID: "u2", Status: domain.BookingStatusConfirmed},
	}
	user1 := &domain.User{ID: "u1", Email: "alice@example.com"}
	user2 := &domain.User{ID: "u2", Email: "bob@example.com"}
	event1 := activeEvent("e1")
	event2 := activeEvent("e2")

	m.bookingRepo.EXPECT().ListDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event1, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e2").Return(event2, nil)
	m.notifier.EXPECT().SendEventReminder(mock.Anything, user1, event1).Return()
	m.notifier.EXPECT().SendEventReminder(mock.Anything, user2, event2).Return()
	m.bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "b1").Return(nil)
	m.bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "b2").Return(nil)

	sent, err := svc.SendDueReminders(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestBookingService_SendDueReminders_RepoError(t *testing.T) {
	svc, m := newTestService(t)

	m.bookingRepo.EXPECT().ListDueReminders(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.SendDueReminders(context.Background(), 24*time.Hour)

	require.Error(t, err)
}

func TestBookingService_SendDueReminders_SkipsUnresolvedUser(t *testing.T) {
	svc, m := newTestService(t)

	due := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "gone", Status: domain.BookingStatusConfirmed},
	}
	m.bookingRepo.EXPECT().ListDueReminders(mock.Anything, mock.Anything).Return(due, nil)
	m.users.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrUserNotFound)

	sent, err := svc.SendDueReminders(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}
