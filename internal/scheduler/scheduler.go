package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// ReminderDispatcher sends reminder emails for confirmed bookings whose
// event starts within the given window. Implemented by the booking service.
type ReminderDispatcher interface {
	SendDueReminders(ctx context.Context, within time.Duration) (int, error)
}

type Scheduler struct {
	dispatcher ReminderDispatcher
	interval   time.Duration
	window     time.Duration
	logger     logger.Logger
}

func New(
	dispatcher ReminderDispatcher,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		interval:   interval,
		window:     window,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.dispatcher.SendDueReminders(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("event reminders sent",
			logger.Int("count", sent),
		)
	}
}
