// Package state tracks the interactive state of the palette surface: the
// fixed set of draggable entries, the filter text and its cursor, and the
// viewport. The catalog itself is immutable; everything here is derived
// view state.
package state

import (
	"strings"

	"github.com/atelier-tools/component-palette/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Palette holds the entry rows of the component surface. Full is the
// complete draggable set in category-major order; Items is Full narrowed
// by the current filter. Entries are never added or removed after
// construction, only hidden and shown.
type Palette struct {
	Full           []catalog.Entry
	Items          []catalog.Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPalette constructs palette state over the supplied entries.
func NewPalette(entries []catalog.Entry) *Palette {
	p := &Palette{
		Full:       CloneEntries(entries),
		Cursor:     0,
		LastCursor: -1,
	}
	p.applyFilter()
	return p
}

// IndexOf returns the index of the identity among the visible items.
func (p *Palette) IndexOf(id catalog.Identity) int {
	for i, entry := range p.Items {
		if entry.Identity() == id {
			return i
		}
	}
	return -1
}

// SetFilter updates the filter query and cursor position, recomputing
// visibility and keeping the selection cursor on a sensible row.
func (p *Palette) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(p.Filter)
	restore := -1
	p.Filter = query
	runes := []rune(p.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			p.LastCursor = p.Cursor
		}
		p.Cursor = 0
	} else if prevTrimmed != "" {
		restore = p.LastCursor
	}
	p.applyFilter()
	if trimmed != "" && len(p.Items) > 0 {
		if idx := BestMatchIndex(p.Items, trimmed); idx >= 0 {
			p.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(p.Items) {
			p.Cursor = restore
		} else if len(p.Items) > 0 {
			p.Cursor = len(p.Items) - 1
		}
		p.LastCursor = -1
	}
}

func (p *Palette) applyFilter() {
	p.Items = FilterEntries(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = len(p.Items) - 1
		return
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

// FilterEntries returns the entries passing the query under the catalog's
// substring visibility rule: only the empty query admits everything, and
// whitespace in a query matches literally. Visibility never uses fuzzy
// matching; fuzzy ranking only steers the cursor (see BestMatchIndex).
func FilterEntries(entries []catalog.Entry, query string) []catalog.Entry {
	if query == "" {
		return CloneEntries(entries)
	}
	filtered := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if catalog.Matches(entry, query) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// BestMatchIndex returns the most plausible row for the query among the
// provided entries: exact name, then name prefix, then name substring,
// then category substring, then the closest fuzzy rank.
func BestMatchIndex(entries []catalog.Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(entries) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.Name, trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Name), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Category), lower) {
			return i
		}
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return 0
	}
	return best.OriginalIndex
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []catalog.Entry) []catalog.Entry {
	dup := make([]catalog.Entry, len(entries))
	copy(dup, entries)
	return dup
}
