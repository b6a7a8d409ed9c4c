// Package carousel implements the hero carousel state machine: timed
// autoplay, hold-to-pause, scroll settling and the animated offset between
// items.
package carousel

import (
	"math"
	"time"

	"github.com/jimezsa/zupro/internal/anim"
	"github.com/jimezsa/zupro/internal/eventloop"
	"github.com/jimezsa/zupro/internal/events"
	"github.com/rs/zerolog"
)

const (
	DefaultInterval   = 5 * time.Second
	DefaultTransition = 350 * time.Millisecond
	DefaultItemWidth  = 390
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAutoplaying
	PhaseHeld
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseAutoplaying:
		return "autoplaying"
	case PhaseHeld:
		return "held"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

type Options struct {
	ItemCount  int
	ItemWidth  float64
	Interval   time.Duration
	Transition time.Duration
	Easing     anim.Easing
}

func (o Options) withDefaults() Options {
	if o.ItemCount < 0 {
		o.ItemCount = 0
	}
	if o.ItemWidth <= 0 {
		o.ItemWidth = DefaultItemWidth
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Transition < 0 {
		o.Transition = 0
	}
	if o.Easing == nil {
		o.Easing = anim.EaseInOutCubic
	}
	return o
}

// State is the snapshot published to subscribers.
type State struct {
	ActiveIndex int
	Held        bool
	Offset      float64
	Phase       Phase
	ItemCount   int
	ItemWidth   float64
}

// Controller owns the active index, hold flag and scroll offset. It must
// only be used from the goroutine that owns its Scheduler.
type Controller struct {
	sched  eventloop.Scheduler
	opts   Options
	logger zerolog.Logger

	active int
	held   bool
	offset float64
	phase  Phase

	timer eventloop.Cancel
	tween *anim.Handle
	hub   events.Hub[State]
}

func New(sched eventloop.Scheduler, opts Options, logger zerolog.Logger) *Controller {
	return &Controller{
		sched:  sched,
		opts:   opts.withDefaults(),
		logger: logger.With().Str("component", "carousel").Logger(),
	}
}

// Mount starts autoplay at index 0.
func (c *Controller) Mount() {
	if c.phase != PhaseIdle {
		return
	}
	c.active = 0
	c.offset = 0
	c.held = false
	c.setPhase(PhaseAutoplaying)
	c.armTimer()
	c.emit()
}

// Unmount cancels every pending timer and animation. No callback scheduled
// by this controller runs afterwards.
func (c *Controller) Unmount() {
	if c.phase == PhaseIdle {
		return
	}
	c.stopTimer()
	c.cancelTween()
	c.held = false
	c.setPhase(PhaseIdle)
}

// Advance is the autoplay timer body: animate to the next item, wrapping
// at the end. It reports whether a transition started.
func (c *Controller) Advance() bool {
	if c.phase != PhaseAutoplaying || c.opts.ItemCount <= 1 {
		return false
	}
	c.stopTimer()

	next := (c.active + 1) % c.opts.ItemCount
	target := float64(next) * c.opts.ItemWidth
	c.setPhase(PhaseSettling)
	c.tween = anim.Start(c.sched, anim.Tween{
		From:     c.offset,
		To:       target,
		Duration: c.opts.Transition,
		Easing:   c.opts.Easing,
	}, func(v float64) {
		c.offset = v
		c.emit()
	}, func() {
		c.tween = nil
		c.active = next
		c.offset = target
		c.setPhase(PhaseAutoplaying)
		c.armTimer()
		c.emit()
	})
	c.emit()
	return true
}

// Hold is touch-down on any item: autoplay stops and an in-flight
// transition is cancelled where it is.
func (c *Controller) Hold() {
	if c.phase == PhaseIdle || c.held {
		return
	}
	c.held = true
	c.stopTimer()
	c.cancelTween()
	c.setPhase(PhaseHeld)
	c.emit()
}

// Release is touch-up: autoplay resumes with a full interval.
func (c *Controller) Release() {
	if c.phase == PhaseIdle || !c.held {
		return
	}
	c.held = false
	c.setPhase(PhaseAutoplaying)
	c.armTimer()
	c.emit()
}

// ScrollTo applies a user drag or momentum frame. Non-finite offsets are
// dropped.
func (c *Controller) ScrollTo(offset float64) {
	if c.phase == PhaseIdle || !finite(offset) {
		return
	}
	if c.cancelTween() && !c.held {
		c.setPhase(PhaseAutoplaying)
		c.armTimer()
	}
	c.offset = c.clampOffset(offset)
	c.emit()
}

// SettleAt handles the end of scroll momentum: the active index becomes the
// item nearest to offset.
func (c *Controller) SettleAt(offset float64) {
	if c.phase == PhaseIdle || !finite(offset) {
		return
	}
	c.cancelTween()
	c.offset = c.clampOffset(offset)
	c.active = IndexAt(c.offset, c.opts.ItemWidth, c.opts.ItemCount)
	if !c.held {
		c.setPhase(PhaseAutoplaying)
		c.armTimer()
	}
	c.emit()
}

// Resize changes the item width, snapping to the active item.
func (c *Controller) Resize(itemWidth float64) {
	if !finite(itemWidth) || itemWidth <= 0 || itemWidth == c.opts.ItemWidth {
		return
	}
	c.opts.ItemWidth = itemWidth
	if c.cancelTween() && !c.held {
		c.setPhase(PhaseAutoplaying)
		c.armTimer()
	}
	c.offset = float64(c.active) * itemWidth
	c.emit()
}

func (c *Controller) CurrentIndex() int { return c.active }

func (c *Controller) IsHeld() bool { return c.held }

func (c *Controller) Offset() float64 { return c.offset }

func (c *Controller) Phase() Phase { return c.phase }

// TimerArmed reports whether the autoplay timer is pending.
func (c *Controller) TimerArmed() bool { return c.timer != nil }

func (c *Controller) State() State {
	return State{
		ActiveIndex: c.active,
		Held:        c.held,
		Offset:      c.offset,
		Phase:       c.phase,
		ItemCount:   c.opts.ItemCount,
		ItemWidth:   c.opts.ItemWidth,
	}
}

// Indicators derives the dots for the current offset.
func (c *Controller) Indicators() []Dot {
	return Indicators(c.offset, c.opts.ItemWidth, c.opts.ItemCount)
}

// Subscribe receives a State after every change, including each animation
// frame. The returned function unsubscribes.
func (c *Controller) Subscribe(fn func(State)) func() {
	return c.hub.Subscribe(fn)
}

func (c *Controller) armTimer() {
	c.stopTimer()
	if c.held || c.phase != PhaseAutoplaying || c.opts.ItemCount <= 1 {
		return
	}
	c.timer = c.sched.AfterFunc(c.opts.Interval, func() {
		c.timer = nil
		c.Advance()
	})
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer()
		c.timer = nil
	}
}

func (c *Controller) cancelTween() bool {
	if c.tween == nil {
		return false
	}
	interrupted := c.tween.Cancel()
	c.tween = nil
	return interrupted
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.logger.Debug().Str("from", c.phase.String()).Str("to", p.String()).Int("index", c.active).Msg("phase")
	c.phase = p
}

func (c *Controller) clampOffset(offset float64) float64 {
	limit := float64(max(c.opts.ItemCount-1, 0)) * c.opts.ItemWidth
	return math.Min(math.Max(offset, 0), limit)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c *Controller) emit() {
	c.hub.Publish(c.State())
}

// IndexAt maps a settled offset to round(offset/width), clamped to the
// valid index range.
func IndexAt(offset, width float64, count int) int {
	if count <= 0 || width <= 0 {
		return 0
	}
	index := int(math.Round(offset / width))
	if index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}
