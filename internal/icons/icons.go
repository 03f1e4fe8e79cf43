// Package icons maps catalog entries to icon art on the backing store.
// Absence of art is a normal outcome, not an error: the palette omits
// entries without a resolvable icon rather than failing on them.
package icons

import (
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultExt is the image extension used when none is configured.
const DefaultExt = ".png"

const cacheTTL = 30 * time.Second

// Ref locates a resolved icon image.
type Ref struct {
	Path string
}

// Resolver resolves (category, name) pairs to icon files under a fixed
// root using the {root}/{category}/{name}{ext} rule. Stat results are
// cached briefly so repeated lookups during rendering and drag feedback
// stay off the filesystem; the cache is a rendering-layer optimization and
// carries no catalog state.
type Resolver struct {
	root  string
	ext   string
	cache *gocache.Cache
}

// NewResolver builds a resolver rooted at root. An empty ext selects
// DefaultExt.
func NewResolver(root, ext string) *Resolver {
	if ext == "" {
		ext = DefaultExt
	}
	return &Resolver{
		root:  root,
		ext:   ext,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// IconPath returns the location an icon for the pair would occupy, whether
// or not anything exists there.
func (r *Resolver) IconPath(category, name string) string {
	return filepath.Join(r.root, category, name+r.ext)
}

// Resolve reports the icon location for the pair, or ok=false when the
// backing store holds nothing at the constructed path.
func (r *Resolver) Resolve(category, name string) (Ref, bool) {
	path := r.IconPath(category, name)
	if hit, found := r.cache.Get(path); found {
		if hit.(bool) {
			return Ref{Path: path}, true
		}
		return Ref{}, false
	}
	info, err := os.Stat(path)
	exists := err == nil && !info.IsDir()
	r.cache.Set(path, exists, gocache.DefaultExpiration)
	if !exists {
		return Ref{}, false
	}
	return Ref{Path: path}, true
}
