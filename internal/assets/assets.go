// Package assets ships the hero images the default config points at, so the
// carousel has something to warm without network access.
package assets

import (
	"embed"
	"strings"
)

// Scheme marks a hero reference that lives in FS rather than on disk or
// the network.
const Scheme = "bundled:"

//go:embed hero
var FS embed.FS

// Path returns the FS path of a bundled reference.
func Path(ref string) (string, bool) {
	if !strings.HasPrefix(ref, Scheme) {
		return "", false
	}
	return strings.TrimPrefix(strings.TrimPrefix(ref, Scheme), "/"), true
}
