package cmd

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/jimezsa/zupro/internal/bootstrap"
	"github.com/jimezsa/zupro/internal/carousel"
	"github.com/jimezsa/zupro/internal/eventloop"
	"github.com/jimezsa/zupro/internal/header"
	"github.com/jimezsa/zupro/internal/home"
	"github.com/jimezsa/zupro/internal/maps"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/render"
)

type HomeCmd struct {
	Seed      string `help:"Seed file with the jobs to show (JSON5)." type:"path"`
	Proxies   string `help:"Comma-separated proxy URLs for remote hero images." env:"ZUPRO_PROXIES"`
	NoPreload bool   `help:"Skip hero image preloading."`
}

func (h *HomeCmd) Run(ctx *Context) error {
	seed, err := loadSeed(ctx, h.Seed)
	if err != nil {
		return err
	}

	var warmer home.Warmer
	if !h.NoPreload {
		preloader, err := newPreloader(ctx, h.Proxies)
		if err != nil {
			return err
		}
		warmer = preloader
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := ctx.Config
	loop := eventloop.New(128)
	logger := ctx.Logger

	screen := home.NewScreen(home.Deps{
		Scheduler:       loop,
		Seed:            seed,
		Heroes:          cfg.Heroes(),
		DefaultLocation: cfg.DefaultLocation,
		Carousel: carousel.Options{
			ItemWidth:  cfg.ItemWidth,
			Interval:   cfg.Autoplay(),
			Transition: cfg.Transition(),
		},
		RefreshLatency: cfg.Refresh(),
		Maps:           maps.NewBrowserOpener(),
		Notifier:       ctx.UI,
		Search: header.SearchFunc(func(params models.SearchParams) {
			logger.Info().Str("query", params.Query).Str("location", params.Location).Msg("search submitted")
		}),
		Logger: logger,
	})

	session := newHomeSession(ctx, screen, render.NewPainter(ctx.Out, render.Options{
		ColorEnabled: ctx.UI.ColorEnabled,
		Hyperlinks:   isTTY(ctx.Out),
	}))
	session.quit = loop.Close

	app := home.NewApp(
		bootstrap.NewGate(loop, cfg.Splash(), logger),
		bootstrap.NewSplash(loop),
		screen,
		warmer,
		logger,
		home.WithStageHook(func(stage home.Stage) {
			if stage == home.StageHome {
				session.redraw(false)
			}
		}),
	)

	loop.Post(func() {
		session.splash()
		app.Start(runCtx)
	})
	go readCommands(runCtx, ctx, loop, session)

	err = loop.Run(runCtx)
	app.Stop()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readCommands feeds stdin lines to the session on the loop. EOF quits.
func readCommands(ctx context.Context, cmdCtx *Context, loop *eventloop.Loop, session *homeSession) {
	in := cmdCtx.In
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := scanner.Text()
		if !loop.Post(func() { session.Exec(line) }) {
			return
		}
	}
	loop.Close()
}
