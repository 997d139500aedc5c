package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/Jgauri24/happenix/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_TickDispatchesReminders(t *testing.T) {
	dispatcher := mocks.NewMockReminderDispatcher(t)
	dispatcher.EXPECT().SendDueReminders(mock.Anything, 24*time.Hour).Return(2, nil)

	s := New(dispatcher, 50*time.Millisecond, 24*time.Hour, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(dispatcher.Calls), 1)
}

func TestScheduler_TickHandlesDispatchError(t *testing.T) {
	dispatcher := mocks.NewMockReminderDispatcher(t)
	dispatcher.EXPECT().SendDueReminders(mock.Anything, mock.Anything).
		Return(0, errors.New("db unavailable"))

	s := New(dispatcher, 50*time.Millisecond, 24*time.Hour, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	// Must not panic or stop ticking on a failed dispatch.
	s.Start(ctx)

	assert.GreaterOrEqual(t, len(dispatcher.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	dispatcher := mocks.NewMockReminderDispatcher(t)

	s := New(dispatcher, time.Hour, 24*time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}

	assert.Empty(t, dispatcher.Calls)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	dispatcher := mocks.NewMockReminderDispatcher(t)
	dispatcher.EXPECT().SendDueReminders(mock.Anything, mock.Anything).
		Return(1, nil).Times(3)

	s := New(dispatcher, 30*time.Millisecond, 24*time.Hour, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}
