package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Jgauri24/happenix/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := newBreaker(3, time.Minute)

	b.failure()
	b.failure()
	assert.True(t, b.allow())

	b.failure()
	assert.False(t, b.allow())
}

func TestBreaker_AllowsAfterCooldown(t *testing.T) {
	b := newBreaker(1, 20*time.Millisecond)

	b.failure()
	require.False(t, b.allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, b.allow())
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	b := newBreaker(3, time.Minute)

	b.failure()
	b.failure()
	b.success()

	b.failure()
	b.failure()
	assert.True(t, b.allow())
}

func TestBreaker_TripOpensImmediately(t *testing.T) {
	b := newBreaker(3, time.Minute)

	b.trip()
	assert.False(t, b.allow())
}

func TestEmailNotifier_DisabledWithoutHost(t *testing.T) {
	n := NewEmailNotifier(Config{}, newTestLogger(t))

	user := &domain.User{Name: "Alice", Email: "alice@example.com"}
	event := &domain.Event{Title: "Concert", EventDate: time.Now().Add(24 * time.Hour)}

	// All sends are no-ops when SMTP is not configured.
	n.SendBookingConfirmation(context.Background(), user, event, "pending")
	n.SendEventUpdate(context.Background(), user, event, "Your booking has been cancelled.")
	n.SendEventReminder(context.Background(), user, event)
}
