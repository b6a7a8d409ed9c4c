// Package eventloop runs UI state on a single goroutine.
//
// Controllers in this module are not safe for concurrent use. They are
// owned by one Scheduler and every timer callback is delivered back onto
// it, so a Cancel issued during a turn always wins over a callback that
// has not been delivered yet.
package eventloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Cancel stops a scheduled callback. It is safe to call more than once and
// after the callback has already run.
type Cancel func()

// Scheduler is the cooperative timer source shared by all controllers.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Cancel
	// Post queues fn to run on the scheduler's goroutine. It reports false
	// when the scheduler has shut down.
	Post(fn func()) bool
}

// Loop is the production Scheduler: a single goroutine draining a task queue.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

func New(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 64
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run processes tasks until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(fn func()) bool {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-l.done:
		return false
	}
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	timer := time.AfterFunc(d, func() {
		l.Post(func() {
			if cancelled.Load() {
				return
			}
			fn()
		})
	})
	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}
