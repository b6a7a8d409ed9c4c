package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jimezsa/zupro/internal/config"
	"github.com/jimezsa/zupro/internal/feed"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/network"
	"github.com/jimezsa/zupro/internal/preload"
)

const proxyBanDuration = 10 * time.Minute

// loadSeed returns the validated seed: the --seed flag, then the configured
// seed_file, then the bundled jobs.
func loadSeed(ctx *Context, flagValue string) ([]models.Job, error) {
	path := firstNonEmpty(flagValue, ctx.Config.SeedFile)
	jobs := feed.DefaultSeed()
	if path != "" {
		loaded, err := feed.LoadSeed(path)
		if err != nil {
			return nil, fmt.Errorf("load seed %s: %w", path, err)
		}
		jobs = loaded
	}

	kept, stats := feed.ValidateSeed(jobs)
	if stats.Dropped() > 0 {
		ctx.Logger.Warn().
			Int("missing_id", stats.MissingID).
			Int("duplicate", stats.Duplicate).
			Int("kept", stats.Kept).
			Msg("dropped seed entries")
	}
	return kept, nil
}

func newPreloader(ctx *Context, proxiesFlag string) (*preload.Preloader, error) {
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, proxyBanDuration)
		if err != nil {
			return nil, err
		}
	}

	cfg := ctx.Config.Preload(proxies)
	client, err := network.NewClient(rotator, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return preload.New(client, nil, cfg, ctx.Logger), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
