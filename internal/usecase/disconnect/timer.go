package usecase_disconnect

import (
	"sync"
	"time"
)

// Timers holds at most one pending callback per key.
type Timers struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewTimers() *Timers {
	return &Timers{
		pending: make(map[string]*time.Timer),
	}
}

// Set schedules fn after d, replacing any callback pending for key.
func (t *Timers) Set(key string, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.pending[key]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.pending[key] != timer {
			t.mu.Unlock()
			return
		}
		delete(t.pending, key)
		t.mu.Unlock()

		fn()
	})
	t.pending[key] = timer
}

// Clear cancels the callback pending for key and reports whether there was one.
func (t *Timers) Clear(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	timer, ok := t.pending[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(t.pending, key)
	return true
}

func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
