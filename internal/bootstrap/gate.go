// Package bootstrap decides when the splash screen may give way to the home
// view.
package bootstrap

import (
	"time"

	"github.com/jimezsa/zupro/internal/eventloop"
	"github.com/rs/zerolog"
)

const DefaultMinSplash = 1200 * time.Millisecond

// Gate opens once the minimum splash time has elapsed and preloading has
// finished, in either order.
type Gate struct {
	sched     eventloop.Scheduler
	minSplash time.Duration
	logger    zerolog.Logger

	started    bool
	minElapsed bool
	preloaded  bool
	ready      bool
	timer      eventloop.Cancel
	onReady    []func()
}

func NewGate(sched eventloop.Scheduler, minSplash time.Duration, logger zerolog.Logger) *Gate {
	if minSplash < 0 {
		minSplash = 0
	}
	return &Gate{
		sched:     sched,
		minSplash: minSplash,
		logger:    logger.With().Str("component", "bootstrap").Logger(),
	}
}

// OnReady registers fn to run once when the gate opens. Registering after
// the gate opened runs fn immediately.
func (g *Gate) OnReady(fn func()) {
	if g.ready {
		fn()
		return
	}
	g.onReady = append(g.onReady, fn)
}

// Start begins the minimum splash countdown.
func (g *Gate) Start() {
	if g.started {
		return
	}
	g.started = true
	g.timer = g.sched.AfterFunc(g.minSplash, func() {
		g.timer = nil
		g.minElapsed = true
		g.logger.Debug().Dur("min_splash", g.minSplash).Msg("minimum splash elapsed")
		g.check()
	})
}

// MarkPreloaded records that preloading finished, successfully or not.
func (g *Gate) MarkPreloaded() {
	if g.preloaded {
		return
	}
	g.preloaded = true
	g.logger.Debug().Msg("preload finished")
	g.check()
}

// Stop abandons the countdown; OnReady callbacks never run.
func (g *Gate) Stop() {
	if g.timer != nil {
		g.timer()
		g.timer = nil
	}
	g.onReady = nil
}

func (g *Gate) Ready() bool { return g.ready }

func (g *Gate) check() {
	if g.ready || !g.minElapsed || !g.preloaded {
		return
	}
	g.ready = true
	callbacks := g.onReady
	g.onReady = nil
	for _, fn := range callbacks {
		fn()
	}
}
