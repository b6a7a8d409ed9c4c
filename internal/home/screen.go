// Package home is the composition root of the home view. It owns the job
// store and the controllers, wires the external collaborators, and
// publishes one View after every change.
package home

import (
	"time"

	"github.com/jimezsa/zupro/internal/apply"
	"github.com/jimezsa/zupro/internal/carousel"
	"github.com/jimezsa/zupro/internal/eventloop"
	"github.com/jimezsa/zupro/internal/events"
	"github.com/jimezsa/zupro/internal/feed"
	"github.com/jimezsa/zupro/internal/header"
	"github.com/jimezsa/zupro/internal/maps"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/refresh"
	"github.com/rs/zerolog"
)

const MapsUnavailable = maps.Unavailable

// Notifier shows a blocking, user-visible notice.
type Notifier = maps.Notifier

type Deps struct {
	Scheduler       eventloop.Scheduler
	Seed            []models.Job
	Heroes          []models.HeroImage
	DefaultLocation string
	Carousel        carousel.Options
	RefreshLatency  time.Duration
	Maps            maps.Opener
	Notifier        Notifier
	Search          header.SearchHandler
	Logger          zerolog.Logger
}

// View is everything the presentation layer needs to draw the home view.
type View struct {
	Jobs     []models.Job
	Heroes   []models.HeroImage
	Loading  bool
	Spinner  bool
	Empty    bool
	Carousel carousel.State
	Dots     []carousel.Dot
	Header   header.State
}

type Screen struct {
	sched    eventloop.Scheduler
	store    *feed.Store
	heroes   []models.HeroImage
	carousel *carousel.Controller
	refresh  *refresh.Controller
	header   *header.Controller
	applier  *apply.Applier
	maps     maps.Opener
	notifier Notifier
	logger   zerolog.Logger

	mounted bool
	unsubs  []func()
	hub     events.Hub[View]
}

func NewScreen(deps Deps) *Screen {
	logger := deps.Logger.With().Str("screen", "home").Logger()
	store := feed.NewStore(deps.Seed)

	opts := deps.Carousel
	opts.ItemCount = len(deps.Heroes)

	search := deps.Search
	if search == nil {
		search = header.NopSearch{Logger: logger}
	}
	latency := deps.RefreshLatency
	if latency == 0 {
		latency = refresh.DefaultLatency
	}

	return &Screen{
		sched:    deps.Scheduler,
		store:    store,
		heroes:   append([]models.HeroImage(nil), deps.Heroes...),
		carousel: carousel.New(deps.Scheduler, opts, logger),
		refresh:  refresh.New(deps.Scheduler, store, latency, logger),
		header:   header.New(deps.DefaultLocation, search),
		applier:  apply.New(deps.Notifier, logger),
		maps:     deps.Maps,
		notifier: deps.Notifier,
		logger:   logger,
	}
}

// Mount seeds the feed and starts the carousel.
func (s *Screen) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.store.Initialize()
	s.unsubs = append(s.unsubs,
		s.carousel.Subscribe(func(carousel.State) { s.emit() }),
		s.refresh.Subscribe(func(refresh.State) { s.emit() }),
		s.header.Subscribe(func(header.State) { s.emit() }),
	)
	s.carousel.Mount()
}

// Unmount stops every timer the screen owns and detaches the view.
func (s *Screen) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	s.carousel.Unmount()
	s.refresh.Stop()
}

func (s *Screen) Mounted() bool { return s.mounted }

// Skip hides a job until the next refresh.
func (s *Screen) Skip(id string) bool {
	if !s.mounted {
		return false
	}
	before := s.store.Len()
	s.store.Remove(id)
	if s.store.Len() == before {
		return false
	}
	s.emit()
	return true
}

func (s *Screen) Apply(id string) bool {
	if !s.mounted {
		return false
	}
	job, ok := s.store.Find(id)
	if !ok {
		return false
	}
	s.applier.Apply(job)
	return true
}

// OpenMap opens a job's location, surfacing a notice when it cannot be
// opened. There is no retry.
func (s *Screen) OpenMap(id string) bool {
	if !s.mounted {
		return false
	}
	job, ok := s.store.Find(id)
	if !ok {
		return false
	}
	return maps.OpenOrNotify(s.maps, job.MapURL, s.notifier, s.logger)
}

// Refresh is the header refresh button.
func (s *Screen) Refresh() bool {
	if !s.mounted {
		return false
	}
	return s.refresh.Trigger(refresh.SourceButton)
}

// Pull is the pull-to-refresh gesture.
func (s *Screen) Pull() bool {
	if !s.mounted {
		return false
	}
	return s.refresh.Trigger(refresh.SourcePull)
}

func (s *Screen) Carousel() *carousel.Controller { return s.carousel }

func (s *Screen) Header() *header.Controller { return s.header }

func (s *Screen) RefreshController() *refresh.Controller { return s.refresh }

func (s *Screen) Store() *feed.Store { return s.store }

func (s *Screen) View() View {
	cs := s.carousel.State()
	return View{
		Jobs:     s.store.Jobs(),
		Heroes:   append([]models.HeroImage(nil), s.heroes...),
		Loading:  s.refresh.InFlight(),
		Spinner:  s.refresh.Spinner(),
		Empty:    s.store.Empty(),
		Carousel: cs,
		Dots:     carousel.Indicators(cs.Offset, cs.ItemWidth, cs.ItemCount),
		Header:   s.header.State(),
	}
}

// Subscribe receives a View after every change while mounted.
func (s *Screen) Subscribe(fn func(View)) func() {
	return s.hub.Subscribe(fn)
}

func (s *Screen) emit() {
	if !s.mounted {
		return
	}
	s.hub.Publish(s.View())
}
