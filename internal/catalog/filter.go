package catalog

import "strings"

// Matches reports whether the entry passes the query: a case-insensitive
// substring match against either the entry name or its category. Only the
// empty query matches everything; whitespace in a query is part of the
// substring like any other rune.
func Matches(entry Entry, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(entry.Name), needle) ||
		strings.Contains(strings.ToLower(entry.Category), needle)
}

// VisibleSet computes the identities visible under the query. The scan is
// side-effect free and idempotent, and cheap enough to run on every
// keystroke for catalogs of a few thousand entries.
func VisibleSet(c *Catalog, query string) map[Identity]struct{} {
	visible := make(map[Identity]struct{}, c.Len())
	for _, entry := range c.All() {
		if Matches(entry, query) {
			visible[entry.Identity()] = struct{}{}
		}
	}
	return visible
}
