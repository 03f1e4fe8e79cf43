package events

import "github.com/atelier-tools/component-palette/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(path string, kept, skipped, malformed int) {
	logging.Trace("catalog.loaded", map[string]interface{}{
		"path":      path,
		"kept":      kept,
		"skipped":   skipped,
		"malformed": malformed,
	})
}

func (CatalogTracer) Built(categories, entries int) {
	logging.Trace("catalog.built", map[string]interface{}{
		"categories": categories,
		"entries":    entries,
	})
}

// Surface records how many entries made it onto the draggable surface and
// how many were dropped for lack of icon art.
func (CatalogTracer) Surface(shown, iconless int) {
	logging.Trace("catalog.surface", map[string]interface{}{
		"shown":    shown,
		"iconless": iconless,
	})
}
