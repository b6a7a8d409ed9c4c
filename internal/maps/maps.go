// Package maps opens job locations in an external maps application.
package maps

import (
	"errors"
	"net/url"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
)

var ErrUnsupported = errors.New("unsupported map url")

// Unavailable is the notice shown whenever a location cannot be opened.
const Unavailable = "Unable to open maps"

// Notifier shows a user-visible notice.
type Notifier interface {
	Notify(title, message string)
}

// Opener mirrors the platform linking API: ask first, then open.
type Opener interface {
	CanOpen(raw string) bool
	Open(raw string) error
}

// BrowserOpener hands map links to the system browser.
type BrowserOpener struct {
	open func(string) error
}

func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{open: browser.OpenURL}
}

// CanOpen accepts http(s) links with a host and geo: URIs with coordinates
// or a query.
func (b *BrowserOpener) CanOpen(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "geo":
		return u.Opaque != "" || u.RawQuery != ""
	default:
		return false
	}
}

func (b *BrowserOpener) Open(raw string) error {
	if !b.CanOpen(raw) {
		return ErrUnsupported
	}
	return b.open(strings.TrimSpace(raw))
}

// OpenOrNotify asks o before opening raw. Any failure ends in the
// Unavailable notice; there is no retry.
func OpenOrNotify(o Opener, raw string, n Notifier, logger zerolog.Logger) bool {
	if o == nil || !o.CanOpen(raw) {
		notifyUnavailable(n)
		return false
	}
	if err := o.Open(raw); err != nil {
		logger.Debug().Err(err).Str("url", raw).Msg("open map")
		notifyUnavailable(n)
		return false
	}
	return true
}

func notifyUnavailable(n Notifier) {
	if n != nil {
		n.Notify("", Unavailable)
	}
}
