package home

import (
	"context"

	"github.com/jimezsa/zupro/internal/bootstrap"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/preload"
	"github.com/rs/zerolog"
)

// Stage is which top-level view is mounted.
type Stage int

const (
	StageSplash Stage = iota
	StageExiting
	StageHome
)

func (s Stage) String() string {
	switch s {
	case StageExiting:
		return "exiting"
	case StageHome:
		return "home"
	default:
		return "splash"
	}
}

// Warmer preloads hero images; preload.Preloader satisfies it.
type Warmer interface {
	Warm(ctx context.Context, images []models.HeroImage) preload.Report
}

// App switches from the splash view to the home screen once the bootstrap
// gate opens.
type App struct {
	gate   *bootstrap.Gate
	splash *bootstrap.Splash
	screen *Screen
	warmer Warmer
	heroes []models.HeroImage
	logger zerolog.Logger

	// spawn runs the preload off the event loop.
	spawn func(func())

	stage   Stage
	report  preload.Report
	onStage func(Stage)
}

type AppOption func(*App)

// WithSpawn replaces the goroutine launcher used for preloading.
func WithSpawn(spawn func(func())) AppOption {
	return func(a *App) { a.spawn = spawn }
}

// WithStageHook is called on the event loop whenever the stage changes.
func WithStageHook(fn func(Stage)) AppOption {
	return func(a *App) { a.onStage = fn }
}

func NewApp(gate *bootstrap.Gate, splash *bootstrap.Splash, screen *Screen, warmer Warmer, logger zerolog.Logger, opts ...AppOption) *App {
	a := &App{
		gate:   gate,
		splash: splash,
		screen: screen,
		warmer: warmer,
		heroes: screen.heroes,
		logger: logger,
		spawn:  func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start must run on the event loop. Preloading runs on its own goroutine
// and reports back through the scheduler.
func (a *App) Start(ctx context.Context) {
	a.gate.OnReady(func() {
		a.setStage(StageExiting)
		a.splash.Exit(func() {
			a.screen.Mount()
			a.setStage(StageHome)
		})
	})
	a.gate.Start()

	sched := a.screen.sched
	a.spawn(func() {
		var report preload.Report
		if a.warmer != nil {
			report = a.warmer.Warm(ctx, a.heroes)
		}
		sched.Post(func() {
			a.report = report
			if report.Failed() > 0 {
				a.logger.Debug().Int("failed", report.Failed()).Msg("some hero images were not preloaded")
			}
			a.gate.MarkPreloaded()
		})
	})
}

// Stop unmounts whatever is showing and cancels pending timers.
func (a *App) Stop() {
	a.gate.Stop()
	a.splash.Cancel()
	a.screen.Unmount()
}

func (a *App) Stage() Stage { return a.stage }

func (a *App) Screen() *Screen { return a.screen }

func (a *App) Splash() *bootstrap.Splash { return a.splash }

// PreloadReport is available once the gate has seen preloading finish.
func (a *App) PreloadReport() preload.Report { return a.report }

func (a *App) setStage(stage Stage) {
	if a.stage == stage {
		return
	}
	a.stage = stage
	if a.onStage != nil {
		a.onStage(stage)
	}
}
