// Package refresh simulates reloading the job feed.
package refresh

import (
	"time"

	"github.com/jimezsa/zupro/internal/eventloop"
	"github.com/jimezsa/zupro/internal/events"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/rs/zerolog"
)

const DefaultLatency = time.Second

// Source is what started a refresh. A pull gesture also owns the spinner
// shown above the list.
type Source int

const (
	SourceButton Source = iota
	SourcePull
)

func (s Source) String() string {
	if s == SourcePull {
		return "pull"
	}
	return "button"
}

// Reloader is the part of the job store a refresh needs.
type Reloader interface {
	Reload() []models.Job
}

type State struct {
	InFlight bool
	Spinner  bool
	Reloads  int
}

type Controller struct {
	sched   eventloop.Scheduler
	store   Reloader
	latency time.Duration
	logger  zerolog.Logger

	inFlight bool
	spinner  bool
	reloads  int
	pending  eventloop.Cancel
	hub      events.Hub[State]
}

func New(sched eventloop.Scheduler, store Reloader, latency time.Duration, logger zerolog.Logger) *Controller {
	if latency < 0 {
		latency = 0
	}
	return &Controller{
		sched:   sched,
		store:   store,
		latency: latency,
		logger:  logger.With().Str("component", "refresh").Logger(),
	}
}

// Trigger starts a refresh. It returns false, doing nothing, while another
// refresh is in flight.
func (c *Controller) Trigger(source Source) bool {
	if c.inFlight {
		c.logger.Debug().Str("source", source.String()).Msg("refresh already in flight")
		return false
	}

	c.inFlight = true
	c.spinner = source == SourcePull
	c.logger.Debug().Str("source", source.String()).Dur("latency", c.latency).Msg("refresh started")
	c.pending = c.sched.AfterFunc(c.latency, c.complete)
	c.emit()
	return true
}

func (c *Controller) complete() {
	c.pending = nil
	jobs := c.store.Reload()
	c.reloads++
	c.inFlight = false
	c.spinner = false
	c.logger.Debug().Int("jobs", len(jobs)).Msg("refresh finished")
	c.emit()
}

// Stop drops a pending reload without touching the store.
func (c *Controller) Stop() {
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
	c.inFlight = false
	c.spinner = false
}

func (c *Controller) InFlight() bool { return c.inFlight }

// Spinner reports whether the pull-to-refresh indicator is visible.
func (c *Controller) Spinner() bool { return c.spinner }

func (c *Controller) Reloads() int { return c.reloads }

func (c *Controller) State() State {
	return State{InFlight: c.inFlight, Spinner: c.spinner, Reloads: c.reloads}
}

func (c *Controller) Subscribe(fn func(State)) func() {
	return c.hub.Subscribe(fn)
}

func (c *Controller) emit() {
	c.hub.Publish(c.State())
}
