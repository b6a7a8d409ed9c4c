package maps

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCanOpen(t *testing.T) {
	b := &BrowserOpener{open: func(string) error { return nil }}
	cases := map[string]bool{
		"https://maps.google.com/?q=Andheri+East+Mumbai": true,
		"http://maps.example.com/x":                       true,
		"geo:19.11,72.86":                                 true,
		"geo:0,0?q=Bhiwandi":                              true,
		"https:///no-host":                                false,
		"mailto:someone@example.com":                      false,
		"":                                                false,
		"not a url":                                       false,
	}
	for raw, want := range cases {
		if got := b.CanOpen(raw); got != want {
			t.Fatalf("CanOpen(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestOpen(t *testing.T) {
	var opened []string
	b := &BrowserOpener{open: func(raw string) error {
		opened = append(opened, raw)
		return nil
	}}

	if err := b.Open(" https://maps.google.com/?q=Thane "); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := b.Open("ftp://example.com"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Open(ftp) error = %v, want ErrUnsupported", err)
	}
	if len(opened) != 1 || opened[0] != "https://maps.google.com/?q=Thane" {
		t.Fatalf("opened = %v", opened)
	}
}

type stubOpener struct {
	can    bool
	err    error
	opened int
}

func (s *stubOpener) CanOpen(string) bool { return s.can }

func (s *stubOpener) Open(string) error {
	s.opened++
	return s.err
}

type notices []string

func (n *notices) Notify(_, message string) { *n = append(*n, message) }

func TestOpenOrNotify(t *testing.T) {
	const raw = "https://maps.google.com/?q=Thane"
	cases := []struct {
		name       string
		opener     Opener
		want       bool
		wantNotice bool
	}{
		{"nil opener", nil, false, true},
		{"cannot open", &stubOpener{can: false}, false, true},
		{"open fails", &stubOpener{can: true, err: errors.New("no browser")}, false, true},
		{"opened", &stubOpener{can: true}, true, false},
	}
	for _, tc := range cases {
		var got notices
		if ok := OpenOrNotify(tc.opener, raw, &got, zerolog.Nop()); ok != tc.want {
			t.Fatalf("%s: OpenOrNotify() = %v, want %v", tc.name, ok, tc.want)
		}
		if tc.wantNotice != (len(got) == 1 && got[0] == Unavailable) || len(got) > 1 {
			t.Fatalf("%s: notices = %v", tc.name, got)
		}
	}

	blocked := &stubOpener{can: false}
	if OpenOrNotify(blocked, raw, nil, zerolog.Nop()) || blocked.opened != 0 {
		t.Fatalf("OpenOrNotify() opened a link CanOpen rejected")
	}
}
