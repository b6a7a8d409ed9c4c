package assets

import (
	"io/fs"
	"testing"
)

func TestPath(t *testing.T) {
	cases := map[string]struct {
		path string
		ok   bool
	}{
		"bundled:hero/warehouse.svg":    {"hero/warehouse.svg", true},
		"bundled:/hero/painting.svg":    {"hero/painting.svg", true},
		"hero/warehouse.svg":            {"", false},
		"https://cdn.example.com/a.jpg": {"", false},
	}
	for in, want := range cases {
		got, ok := Path(in)
		if got != want.path || ok != want.ok {
			t.Fatalf("Path(%q) = %q, %v, want %q, %v", in, got, ok, want.path, want.ok)
		}
	}
}

func TestHeroImagesEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(FS, "hero")
	if err != nil {
		t.Fatalf("ReadDir(hero) error = %v", err)
	}
	if len(entries) < 3 {
		t.Fatalf("embedded hero images = %d, want at least 3", len(entries))
	}
}
