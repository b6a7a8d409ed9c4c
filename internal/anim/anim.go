// Package anim drives timed value transitions on an eventloop.Scheduler.
package anim

import (
	"math"
	"time"

	"github.com/jimezsa/zupro/internal/eventloop"
)

// FrameInterval is the spacing between animation frames (~60fps).
const FrameInterval = 16 * time.Millisecond

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(p float64) float64

func Linear(p float64) float64 { return p }

func EaseOutQuad(p float64) float64 { return 1 - (1-p)*(1-p) }

func EaseInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing
}

// Handle is a running tween. Cancel stops it where it is.
type Handle struct {
	sched    eventloop.Scheduler
	tween    Tween
	start    time.Time
	onFrame  func(float64)
	onDone   func()
	pending  eventloop.Cancel
	value    float64
	finished bool
	stopped  bool
}

// Start schedules the first frame of tw. onFrame receives every value
// including the final one; onDone runs only on natural completion.
func Start(sched eventloop.Scheduler, tw Tween, onFrame func(float64), onDone func()) *Handle {
	if tw.Easing == nil {
		tw.Easing = EaseInOutCubic
	}
	h := &Handle{
		sched:   sched,
		tween:   tw,
		start:   sched.Now(),
		onFrame: onFrame,
		onDone:  onDone,
		value:   tw.From,
	}
	first := FrameInterval
	if tw.Duration <= 0 {
		first = 0
	}
	h.pending = sched.AfterFunc(first, h.frame)
	return h
}

func (h *Handle) frame() {
	h.pending = nil
	if h.stopped {
		return
	}

	progress := 1.0
	if h.tween.Duration > 0 {
		progress = float64(h.sched.Now().Sub(h.start)) / float64(h.tween.Duration)
	}
	if progress > 1 {
		progress = 1
	}

	h.value = h.tween.From + (h.tween.To-h.tween.From)*h.tween.Easing(progress)
	if progress >= 1 {
		h.value = h.tween.To
	}
	if h.onFrame != nil {
		h.onFrame(h.value)
	}

	if progress >= 1 {
		h.finished = true
		h.stopped = true
		if h.onDone != nil {
			h.onDone()
		}
		return
	}
	h.pending = h.sched.AfterFunc(FrameInterval, h.frame)
}

// Cancel stops the animation. It reports whether a running animation was
// interrupted; repeated calls and calls after completion return false.
func (h *Handle) Cancel() bool {
	if h == nil || h.stopped {
		return false
	}
	h.stopped = true
	if h.pending != nil {
		h.pending()
		h.pending = nil
	}
	return true
}

func (h *Handle) Running() bool {
	return h != nil && !h.stopped
}

func (h *Handle) Finished() bool {
	return h != nil && h.finished
}

// Value is the last value delivered to onFrame (From before the first frame).
func (h *Handle) Value() float64 {
	return h.value
}
