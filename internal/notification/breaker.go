package notification

import (
	"sync"
	"time"
)

// breaker is a minimal circuit breaker around SMTP dispatch: after a run of
// consecutive failures, sends are skipped for a cooldown window and then
// retried. It replaces a process-global health flag with per-notifier state.
type breaker struct {
	threshold int
	cooldown  time.Duration

	mu        sync.Mutex
	failures  int
	openUntil time.Time
}

func newBreaker(threshold int, cooldown time.Duration) *breaker {
	return &breaker{threshold: threshold, cooldown: cooldown}
}

func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !time.Now().Before(b.openUntil)
}

func (b *breaker) success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.openUntil = time.Time{}
}

func (b *breaker) failure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = time.Now().Add(b.cooldown)
		b.failures = 0
	}
}

// trip opens the breaker immediately, used when startup verification fails.
func (b *breaker) trip() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.openUntil = time.Now().Add(b.cooldown)
	b.failures = 0
}
