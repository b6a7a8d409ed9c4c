// Package header holds the title bar / search field above the job feed.
package header

import (
	"strings"

	"github.com/jimezsa/zupro/internal/events"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/rs/zerolog"
)

const Title = "Jobs near you"

type Mode int

const (
	ModeCollapsed Mode = iota
	ModeExpanded
)

func (m Mode) String() string {
	if m == ModeExpanded {
		return "expanded"
	}
	return "collapsed"
}

// SearchHandler receives submitted queries. Nothing filters the feed yet;
// the handler is the seam a backend search will plug into.
type SearchHandler interface {
	Search(params models.SearchParams)
}

type SearchFunc func(params models.SearchParams)

func (f SearchFunc) Search(params models.SearchParams) { f(params) }

// NopSearch logs the query and does nothing else.
type NopSearch struct {
	Logger zerolog.Logger
}

func (n NopSearch) Search(params models.SearchParams) {
	n.Logger.Debug().Str("query", params.Query).Str("location", params.Location).Msg("search submitted")
}

type State struct {
	Mode        Mode
	Query       string
	InfoVisible bool
}

type Controller struct {
	defaultLocation string
	handler         SearchHandler

	mode  Mode
	query string
	info  bool
	hub   events.Hub[State]
}

func New(defaultLocation string, handler SearchHandler) *Controller {
	if handler == nil {
		handler = NopSearch{Logger: zerolog.Nop()}
	}
	return &Controller{
		defaultLocation: defaultLocation,
		handler:         handler,
		query:           defaultLocation,
	}
}

// Expand shows the search field pre-filled with the default location.
func (c *Controller) Expand() {
	if c.mode == ModeExpanded {
		return
	}
	c.mode = ModeExpanded
	c.query = c.defaultLocation
	c.emit()
}

// SetQuery updates the in-progress edit. Ignored while collapsed.
func (c *Controller) SetQuery(text string) {
	if c.mode != ModeExpanded || text == c.query {
		return
	}
	c.query = text
	c.emit()
}

// Submit forwards the trimmed query. The field stays open.
func (c *Controller) Submit() (models.SearchParams, bool) {
	if c.mode != ModeExpanded {
		return models.SearchParams{}, false
	}
	params := models.SearchParams{
		Query:    strings.TrimSpace(c.query),
		Location: c.defaultLocation,
	}
	c.handler.Search(params)
	return params, true
}

// Close discards the edit and collapses without submitting.
func (c *Controller) Close() {
	if c.mode != ModeExpanded {
		return
	}
	c.mode = ModeCollapsed
	c.query = c.defaultLocation
	c.emit()
}

func (c *Controller) ShowInfo() {
	if c.info {
		return
	}
	c.info = true
	c.emit()
}

func (c *Controller) HideInfo() {
	if !c.info {
		return
	}
	c.info = false
	c.emit()
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Query() string { return c.query }

func (c *Controller) DefaultLocation() string { return c.defaultLocation }

func (c *Controller) InfoVisible() bool { return c.info }

func (c *Controller) State() State {
	return State{Mode: c.mode, Query: c.query, InfoVisible: c.info}
}

func (c *Controller) Subscribe(fn func(State)) func() {
	return c.hub.Subscribe(fn)
}

func (c *Controller) emit() {
	c.hub.Publish(c.State())
}
