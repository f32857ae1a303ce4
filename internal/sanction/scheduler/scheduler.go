// Package scheduler arms the single deferred action the system has: the
// dispute deadline. One cancellable timer per open dispute, fired at most
// once; everything the firing does is decided by the callback the engine
// supplies, keyed by the dispute token.
package scheduler

import (
	"log/slog"
	"sync"
	"time"
)

// Clock abstracts timer creation so deadline behavior is testable without
// waiting out real durations.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the cancellable handle AfterFunc returns.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scheduler tracks one pending timer per token. Arm and Cancel are the whole
// surface; a fired or cancelled timer leaves no trace.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]Timer
	clock  Clock
	logger *slog.Logger
}

func New(logger *slog.Logger) *Scheduler {
	return NewWithClock(logger, realClock{})
}

// NewWithClock injects a clock; tests drive expiry deterministically.
func NewWithClock(logger *slog.Logger, clock Clock) *Scheduler {
	return &Scheduler{
		timers: make(map[string]Timer),
		clock:  clock,
		logger: logger,
	}
}

// Arm schedules fire to run after d, keyed by token. Arming an already-armed
// token replaces the previous timer; the engine's token exclusivity check
// means that only happens after the earlier dispute closed.
func (s *Scheduler) Arm(token string, d time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[token]; ok {
		old.Stop()
		s.logger.Warn("replacing armed dispute timer", "token", token)
	}
	s.timers[token] = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, token)
		s.mu.Unlock()
		fire()
	})
}

// Cancel stops the timer for token. Idempotent; a timer that already fired
// or was never armed is a no-op.
func (s *Scheduler) Cancel(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[token]; ok {
		t.Stop()
		delete(s.timers, token)
	}
}

// Armed reports whether a timer is outstanding for token.
func (s *Scheduler) Armed(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[token]
	return ok
}
