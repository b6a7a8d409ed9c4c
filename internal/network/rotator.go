package network

import (
	"errors"
	"net/url"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
)

// ErrNoProxies means every configured proxy is benched, or none was given.
var ErrNoProxies = errors.New("no proxies available")

// Rotator spreads hero image downloads over the proxies from proxies.txt or
// ZUPRO_PROXIES. A CDN that starts refusing one proxy only costs that proxy
// for banDuration; the others keep serving the preload.
type Rotator struct {
	proxies     []*url.URL
	banDuration time.Duration
	benched     map[string]time.Time
	next        int
	now         func() time.Time
	mu          sync.Mutex
}

// NewRotator parses the proxy list. Entries need a scheme and host, so a
// bare "host:port" line is reported instead of silently dialing nothing.
func NewRotator(raw []string, banDuration time.Duration) (*Rotator, error) {
	r := &Rotator{
		banDuration: banDuration,
		benched:     map[string]time.Time{},
		now:         time.Now,
	}
	for _, entry := range raw {
		u, err := url.Parse(entry)
		if err != nil {
			return nil, err
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, &url.Error{Op: "parse", URL: entry, Err: errors.New("proxy needs scheme and host")}
		}
		r.proxies = append(r.proxies, u)
	}
	return r, nil
}

// Next returns the proxy for the next image request, skipping benched ones.
func (r *Rotator) Next() (*url.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for range r.proxies {
		proxy := r.proxies[r.next]
		r.next = (r.next + 1) % len(r.proxies)
		if !r.benchedLocked(proxy) {
			return proxy, nil
		}
	}
	return nil, ErrNoProxies
}

// Report records the status an image host answered through proxy. Refusals
// (403) and throttling (429) bench the proxy.
func (r *Rotator) Report(proxy *url.URL, status int) {
	if proxy == nil || (status != fhttp.StatusForbidden && status != fhttp.StatusTooManyRequests) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.benched[proxy.String()] = r.now().Add(r.banDuration)
}

func (r *Rotator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.proxies)
}

func (r *Rotator) benchedLocked(proxy *url.URL) bool {
	key := proxy.String()
	until, ok := r.benched[key]
	if !ok {
		return false
	}
	if r.now().After(until) {
		delete(r.benched, key)
		return false
	}
	return true
}
