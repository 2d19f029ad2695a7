package sim

import (
	"sync"
	"time"
)

// Scheduler schedules at most one pending action at a time. Scheduling
// replaces any pending action; Cancel guarantees no previously scheduled
// action fires afterwards. The pause transition is a plain Cancel.
type Scheduler interface {
	Schedule(after time.Duration, fn func())
	Cancel()
}

type timerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (s *timerScheduler) Schedule(after time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(after, fn)
}

func (s *timerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
