package eventloop

import (
	"sync"
	"time"
)

// Manual is a virtual-time Scheduler for tests. Nothing runs until Advance
// is called; due callbacks then run synchronously in deadline order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	at        time.Time
	seq       int
	fn        func()
	cancelled bool
}

func NewManual(start time.Time) *Manual {
	if start.IsZero() {
		start = time.Date(2026, 2, 26, 7, 0, 0, 0, time.UTC)
	}
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	m.seq++
	t := &manualTimer{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		t.cancelled = true
		m.mu.Unlock()
	}
}

// Post queues fn as a zero-delay timer; it runs on the next Advance.
func (m *Manual) Post(fn func()) bool {
	m.AfterFunc(0, fn)
	return true
}

// Advance moves virtual time forward by d, running every callback that
// becomes due, including ones scheduled by earlier callbacks in the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	if target.After(m.now) {
		m.now = target
	}
	m.mu.Unlock()
}

// Flush runs everything that is due right now.
func (m *Manual) Flush() {
	m.Advance(0)
}

// Pending counts scheduled callbacks that have not run or been cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, t := range m.timers {
		if !t.cancelled {
			count++
		}
	}
	return count
}

func (m *Manual) popDue(target time.Time) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	best := -1
	live := m.timers[:0]
	for _, t := range m.timers {
		if t.cancelled {
			continue
		}
		live = append(live, t)
	}
	m.timers = live

	for i, t := range m.timers {
		if t.at.After(target) {
			continue
		}
		if best < 0 || t.at.Before(m.timers[best].at) ||
			(t.at.Equal(m.timers[best].at) && t.seq < m.timers[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	t := m.timers[best]
	m.timers = append(m.timers[:best], m.timers[best+1:]...)
	if t.at.After(m.now) {
		m.now = t.at
	}
	return t
}
