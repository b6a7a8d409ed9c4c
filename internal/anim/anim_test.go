package anim

import (
	"math"
	"testing"
	"time"

	"github.com/jimezsa/zupro/internal/eventloop"
)

func TestTweenReachesTargetAndCallsDone(t *testing.T) {
	sched := eventloop.NewManual(time.Time{})
	var frames []float64
	done := 0
	h := Start(sched, Tween{From: 0, To: 100, Duration: 100 * time.Millisecond, Easing: Linear},
		func(v float64) { frames = append(frames, v) },
		func() { done++ })

	sched.Advance(time.Second)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
	if got := frames[len(frames)-1]; got != 100 {
		t.Fatalf("last frame = %v, want 100", got)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] < frames[i-1] {
			t.Fatalf("frames not monotonic: %v", frames)
		}
	}
	if !h.Finished() || h.Running() {
		t.Fatalf("Finished() = %v Running() = %v, want true false", h.Finished(), h.Running())
	}
}

func TestCancelLeavesValueWhereItWas(t *testing.T) {
	sched := eventloop.NewManual(time.Time{})
	var last float64
	done := false
	h := Start(sched, Tween{From: 0, To: 100, Duration: 160 * time.Millisecond, Easing: Linear},
		func(v float64) { last = v },
		func() { done = true })

	sched.Advance(48 * time.Millisecond)
	if !h.Cancel() {
		t.Fatalf("Cancel() = false on a running tween")
	}
	if h.Cancel() {
		t.Fatalf("second Cancel() = true, want false")
	}
	sched.Advance(time.Second)

	if done {
		t.Fatalf("onDone ran after Cancel")
	}
	if math.Abs(last-30) > 1e-9 || h.Value() != last {
		t.Fatalf("value after cancel = %v (handle %v), want 30", last, h.Value())
	}
}

func TestCancelAfterCompletionIsSafe(t *testing.T) {
	sched := eventloop.NewManual(time.Time{})
	h := Start(sched, Tween{From: 1, To: 2}, nil, nil)
	sched.Flush()
	if !h.Finished() {
		t.Fatalf("zero-duration tween did not finish on flush")
	}
	if h.Cancel() {
		t.Fatalf("Cancel() after completion = true, want false")
	}
	if h.Value() != 2 {
		t.Fatalf("Value() = %v, want 2", h.Value())
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, fn := range map[string]Easing{
		"linear":  Linear,
		"outQuad": EaseOutQuad,
		"inOut":   EaseInOutCubic,
	} {
		if fn(0) != 0 || fn(1) != 1 {
			t.Fatalf("%s: f(0)=%v f(1)=%v, want 0 and 1", name, fn(0), fn(1))
		}
	}
}
