// Package preload warms hero images before the carousel is shown. Failures
// are logged and swallowed: a missing image never holds up the home view.
package preload

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jimezsa/zupro/internal/assets"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 4
	DefaultRate        = 4.0
)

// Fetcher downloads a remote reference. network.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, target string) ([]byte, string, error)
}

// Result is the outcome for one reference.
type Result struct {
	Ref      string
	Resolved string
	Bytes    int
	Err      error
}

type Report struct {
	Results []Result
}

func (r Report) Warmed() int {
	count := 0
	for _, res := range r.Results {
		if res.Err == nil {
			count++
		}
	}
	return count
}

func (r Report) Failed() int {
	return len(r.Results) - r.Warmed()
}

type Preloader struct {
	fetcher     Fetcher
	cache       *Cache
	limiter     *HostLimiter
	concurrency int
	readFile    func(string) ([]byte, error)
	bundled     fs.FS
	logger      zerolog.Logger
}

// New returns a Preloader. fetcher may be nil when only local assets are
// used; remote references then fail (and are logged).
func New(fetcher Fetcher, cache *Cache, cfg models.PreloadConfig, logger zerolog.Logger) *Preloader {
	if cache == nil {
		cache = NewCache()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	rate := cfg.RatePerSecond
	if rate == 0 {
		rate = DefaultRate
	}
	return &Preloader{
		fetcher:     fetcher,
		cache:       cache,
		limiter:     NewHostLimiter(rate, concurrency),
		concurrency: concurrency,
		readFile:    os.ReadFile,
		bundled:     assets.FS,
		logger:      logger.With().Str("component", "preload").Logger(),
	}
}

func (p *Preloader) Cache() *Cache {
	return p.cache
}

// Warm loads every reference into the cache. It never fails; per-reference
// errors are logged and reported.
func (p *Preloader) Warm(ctx context.Context, images []models.HeroImage) Report {
	if len(images) == 0 {
		return Report{}
	}

	results := make([]Result, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, image := range images {
		i, image := i, image
		g.Go(func() error {
			res := p.warmOne(gctx, image.Ref)
			if res.Err != nil {
				p.logger.Debug().Err(res.Err).Str("ref", image.Ref).Msg("hero image preload failed")
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return Report{Results: results}
}

func (p *Preloader) warmOne(ctx context.Context, ref string) Result {
	res := Result{Ref: ref, Resolved: ref}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		res.Err = fmt.Errorf("empty image reference")
		return res
	}
	if p.cache.Has(ref) {
		data, _ := p.cache.Get(ref)
		res.Bytes = len(data)
		return res
	}

	if name, ok := assets.Path(ref); ok {
		data, err := fs.ReadFile(p.bundled, name)
		if err != nil {
			res.Err = fmt.Errorf("read %s: %w", ref, err)
			return res
		}
		p.cache.Put(ref, data)
		res.Bytes = len(data)
		return res
	}

	if !isRemote(ref) {
		data, err := p.readFile(strings.TrimPrefix(ref, "file://"))
		if err != nil {
			res.Err = fmt.Errorf("read %s: %w", ref, err)
			return res
		}
		p.cache.Put(ref, data)
		res.Bytes = len(data)
		return res
	}

	if p.fetcher == nil {
		res.Err = fmt.Errorf("fetch %s: no http client configured", ref)
		return res
	}

	data, mediaType, err := p.fetch(ctx, ref)
	if err != nil {
		res.Err = err
		return res
	}
	if mediaType == "text/html" || mediaType == "application/xhtml+xml" {
		image, ok := imageFromHTML(ref, data)
		if !ok {
			res.Err = fmt.Errorf("fetch %s: page has no image", ref)
			return res
		}
		res.Resolved = image
		data, _, err = p.fetch(ctx, image)
		if err != nil {
			res.Err = err
			return res
		}
	}

	p.cache.Put(ref, data)
	res.Bytes = len(data)
	return res
}

func (p *Preloader) fetch(ctx context.Context, target string) ([]byte, string, error) {
	if err := p.limiter.WaitURL(ctx, target); err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", target, err)
	}
	data, mediaType, err := p.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", target, err)
	}
	return data, mediaType, nil
}
