package carousel

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/jimezsa/zupro/internal/anim"
	"github.com/jimezsa/zupro/internal/eventloop"
	"github.com/rs/zerolog"
)

const (
	testInterval   = 5 * time.Second
	testTransition = 350 * time.Millisecond
	testWidth      = 100.0
)

func newTestController(t *testing.T, count int) (*Controller, *eventloop.Manual) {
	t.Helper()
	sched := eventloop.NewManual(time.Time{})
	c := New(sched, Options{
		ItemCount:  count,
		ItemWidth:  testWidth,
		Interval:   testInterval,
		Transition: testTransition,
		Easing:     anim.Linear,
	}, zerolog.Nop())
	return c, sched
}

// cycle is one full autoplay step: the interval plus enough time for the
// transition to settle.
const cycle = testInterval + 400*time.Millisecond

func TestAutoplayWrapsAround(t *testing.T) {
	c, sched := newTestController(t, 3)
	var sequence []int
	c.Subscribe(func(s State) {
		if len(sequence) == 0 || sequence[len(sequence)-1] != s.ActiveIndex {
			sequence = append(sequence, s.ActiveIndex)
		}
	})

	c.Mount()
	for i := 0; i < 3; i++ {
		sched.Advance(cycle)
	}

	if want := []int{0, 1, 2, 0}; !reflect.DeepEqual(sequence, want) {
		t.Fatalf("index sequence = %v, want %v", sequence, want)
	}
	if c.Phase() != PhaseAutoplaying {
		t.Fatalf("Phase() = %v, want autoplaying", c.Phase())
	}
	if c.Offset() != 0 {
		t.Fatalf("Offset() = %v after wrapping, want 0", c.Offset())
	}
}

func TestIndexCommitsOnlyAfterTransition(t *testing.T) {
	c, sched := newTestController(t, 3)
	c.Mount()

	sched.Advance(testInterval + 100*time.Millisecond)
	if c.Phase() != PhaseSettling {
		t.Fatalf("Phase() = %v mid-transition, want settling", c.Phase())
	}
	if c.CurrentIndex() != 0 {
		t.Fatalf("CurrentIndex() = %d mid-transition, want 0", c.CurrentIndex())
	}
	if c.Offset() <= 0 || c.Offset() >= testWidth {
		t.Fatalf("Offset() = %v mid-transition, want between 0 and %v", c.Offset(), testWidth)
	}
	if c.TimerArmed() {
		t.Fatalf("autoplay timer armed while settling")
	}

	sched.Advance(300 * time.Millisecond)
	if c.CurrentIndex() != 1 || c.Offset() != testWidth {
		t.Fatalf("after transition index=%d offset=%v, want 1 and %v", c.CurrentIndex(), c.Offset(), testWidth)
	}
	if !c.TimerArmed() {
		t.Fatalf("autoplay timer not re-armed after settling")
	}
}

func TestSingleItemNeverStartsTimer(t *testing.T) {
	for _, count := range []int{0, 1} {
		c, sched := newTestController(t, count)
		emits := 0
		c.Subscribe(func(State) { emits++ })

		c.Mount()
		if sched.Pending() != 0 || c.TimerArmed() {
			t.Fatalf("count=%d: pending timers = %d after Mount, want 0", count, sched.Pending())
		}
		sched.Advance(time.Minute)
		if emits != 1 {
			t.Fatalf("count=%d: emits = %d, want only the mount emit", count, emits)
		}
		if c.Advance() {
			t.Fatalf("count=%d: Advance() = true", count)
		}
		c.Release()
		c.Hold()
		c.Release()
		if sched.Pending() != 0 {
			t.Fatalf("count=%d: hold/release armed a timer", count)
		}
		if c.CurrentIndex() != 0 {
			t.Fatalf("count=%d: CurrentIndex() = %d", count, c.CurrentIndex())
		}
	}
}

func TestHoldDuringTransitionCancelsIt(t *testing.T) {
	c, sched := newTestController(t, 3)
	c.Mount()

	sched.Advance(testInterval + 112*time.Millisecond)
	reached := c.Offset()
	if reached <= 0 {
		t.Fatalf("transition did not start, offset = %v", reached)
	}

	c.Hold()
	if !c.IsHeld() || c.Phase() != PhaseHeld {
		t.Fatalf("IsHeld() = %v Phase() = %v, want true held", c.IsHeld(), c.Phase())
	}
	if c.Offset() != reached {
		t.Fatalf("Offset() = %v after hold, want %v (no snap back)", c.Offset(), reached)
	}
	if sched.Pending() != 0 {
		t.Fatalf("pending callbacks after hold = %d, want 0", sched.Pending())
	}

	sched.Advance(3 * cycle)
	if c.CurrentIndex() != 0 || c.Offset() != reached {
		t.Fatalf("state moved while held: index=%d offset=%v", c.CurrentIndex(), c.Offset())
	}

	c.Release()
	if !c.TimerArmed() {
		t.Fatalf("Release() did not re-arm autoplay")
	}
	sched.Advance(testInterval - time.Millisecond)
	if c.Phase() != PhaseAutoplaying {
		t.Fatalf("timer fired early after release: phase %v", c.Phase())
	}
	sched.Advance(400 * time.Millisecond)
	if c.CurrentIndex() != 1 {
		t.Fatalf("CurrentIndex() = %d after release cycle, want 1", c.CurrentIndex())
	}
}

func TestHoldWhileAutoplayingStopsTimer(t *testing.T) {
	c, sched := newTestController(t, 3)
	c.Mount()
	sched.Advance(testInterval / 2)
	c.Hold()
	c.Hold()
	if c.TimerArmed() || sched.Pending() != 0 {
		t.Fatalf("timer still armed after hold")
	}
	sched.Advance(time.Minute)
	if c.CurrentIndex() != 0 {
		t.Fatalf("CurrentIndex() = %d while held, want 0", c.CurrentIndex())
	}

	c.Release()
	sched.Advance(testInterval / 2)
	if c.Phase() != PhaseAutoplaying {
		t.Fatalf("timer did not restart from zero on release")
	}
}

func TestSettleAtRecomputesIndex(t *testing.T) {
	c, _ := newTestController(t, 3)
	c.Mount()

	cases := []struct {
		offset float64
		want   int
	}{
		{160, 2},
		{140, 1},
		{-50, 0},
		{99 * testWidth, 2},
		{49, 0},
	}
	for _, tc := range cases {
		c.SettleAt(tc.offset)
		if c.CurrentIndex() != tc.want {
			t.Fatalf("SettleAt(%v) index = %d, want %d", tc.offset, c.CurrentIndex(), tc.want)
		}
		if c.Phase() != PhaseAutoplaying || !c.TimerArmed() {
			t.Fatalf("SettleAt(%v) phase = %v armed = %v", tc.offset, c.Phase(), c.TimerArmed())
		}
	}
}

func TestManualScrollWhileHeldThenSettle(t *testing.T) {
	c, sched := newTestController(t, 3)
	c.Mount()

	c.Hold()
	c.ScrollTo(80)
	c.ScrollTo(180)
	if c.Offset() != 180 {
		t.Fatalf("Offset() = %v, want 180", c.Offset())
	}
	c.SettleAt(190)
	if c.CurrentIndex() != 2 || !c.IsHeld() || c.TimerArmed() {
		t.Fatalf("settle while held: index=%d held=%v armed=%v", c.CurrentIndex(), c.IsHeld(), c.TimerArmed())
	}

	c.Release()
	sched.Advance(cycle)
	if c.CurrentIndex() != 0 {
		t.Fatalf("autoplay from index 2 should wrap to 0, got %d", c.CurrentIndex())
	}
}

func TestUnmountCancelsEverything(t *testing.T) {
	c, sched := newTestController(t, 3)
	emits := 0
	c.Subscribe(func(State) { emits++ })
	c.Mount()
	sched.Advance(testInterval + 50*time.Millisecond)

	c.Unmount()
	if sched.Pending() != 0 {
		t.Fatalf("pending callbacks after unmount = %d, want 0", sched.Pending())
	}
	before := emits
	sched.Advance(10 * cycle)
	if emits != before {
		t.Fatalf("controller emitted %d times after unmount", emits-before)
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v after unmount, want idle", c.Phase())
	}

	c.Hold()
	c.SettleAt(200)
	if c.IsHeld() || c.CurrentIndex() != 0 {
		t.Fatalf("commands after unmount changed state")
	}
}

func TestResizeSnapsToActiveItem(t *testing.T) {
	c, sched := newTestController(t, 3)
	c.Mount()
	sched.Advance(cycle)
	c.Resize(200)
	if c.Offset() != 200 || c.CurrentIndex() != 1 {
		t.Fatalf("after Resize offset=%v index=%d, want 200 and 1", c.Offset(), c.CurrentIndex())
	}
}

func TestNonFiniteOffsetsIgnored(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c, sched := newTestController(t, 3)
		c.Mount()
		c.ScrollTo(150)
		c.ScrollTo(bad)
		c.SettleAt(bad)
		c.Resize(bad)
		if c.Offset() != 150 {
			t.Fatalf("Offset() after %v = %v, want 150", bad, c.Offset())
		}
		for _, dot := range c.Indicators() {
			if !finite(dot.Opacity) || !finite(dot.Scale) {
				t.Fatalf("dot after %v = %+v, want finite values", bad, dot)
			}
		}
		sched.Advance(testInterval + testTransition/2)
		if off := c.Offset(); !finite(off) || off < 0 || off > 2*testWidth {
			t.Fatalf("Offset() mid-autoplay after %v = %v, want finite in range", bad, off)
		}
	}
}

func TestIndexStaysInRangeUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, count := range []int{0, 1, 2, 3, 5} {
		c, sched := newTestController(t, count)
		c.Mount()
		for step := 0; step < 500; step++ {
			switch rng.Intn(6) {
			case 0:
				c.Hold()
			case 1:
				c.Release()
			case 2:
				c.ScrollTo(rng.Float64()*600 - 100)
			case 3:
				c.SettleAt(rng.Float64()*600 - 100)
			case 4:
				c.Advance()
			default:
				sched.Advance(time.Duration(rng.Intn(6000)) * time.Millisecond)
			}
			idx := c.CurrentIndex()
			if idx < 0 || (count > 0 && idx > count-1) || (count == 0 && idx != 0) {
				t.Fatalf("count=%d step=%d: index %d out of range", count, step, idx)
			}
		}
	}
}

func TestIndicators(t *testing.T) {
	dots := Indicators(0, testWidth, 3)
	if len(dots) != 3 {
		t.Fatalf("len(dots) = %d, want 3", len(dots))
	}
	if !dots[0].Active || dots[0].Opacity != 1 || math.Abs(dots[0].Scale-1.3) > 1e-9 {
		t.Fatalf("dot 0 = %+v", dots[0])
	}
	if dots[1].Active || dots[1].Opacity != 0.5 || dots[1].Scale != 1 {
		t.Fatalf("dot 1 = %+v", dots[1])
	}

	half := Indicators(50, testWidth, 3)
	if math.Abs(half[0].Opacity-0.75) > 1e-9 || math.Abs(half[1].Opacity-0.75) > 1e-9 {
		t.Fatalf("halfway opacities = %v, %v, want 0.75", half[0].Opacity, half[1].Opacity)
	}
	if half[2].Opacity != 0.5 {
		t.Fatalf("far dot opacity = %v, want 0.5", half[2].Opacity)
	}

	if Indicators(0, testWidth, 0) != nil {
		t.Fatalf("Indicators with no items should be nil")
	}
}

func TestIndicatorsFollowAnimationFrames(t *testing.T) {
	c, sched := newTestController(t, 2)
	var opacities []float64
	c.Subscribe(func(s State) {
		dots := Indicators(s.Offset, s.ItemWidth, s.ItemCount)
		opacities = append(opacities, dots[1].Opacity)
	})
	c.Mount()
	sched.Advance(cycle)

	if len(opacities) < 5 {
		t.Fatalf("expected per-frame updates, got %d", len(opacities))
	}
	for i := 1; i < len(opacities); i++ {
		if opacities[i] < opacities[i-1] {
			t.Fatalf("dot opacity not monotonic during transition: %v", opacities)
		}
	}
	if opacities[len(opacities)-1] != 1 {
		t.Fatalf("target dot opacity = %v after settling, want 1", opacities[len(opacities)-1])
	}
}
