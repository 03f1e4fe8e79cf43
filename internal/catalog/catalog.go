package catalog

import "sort"

// Entry is one draggable catalog item. Entries are immutable after load;
// identity is the (category, name) pair.
type Entry struct {
	Category string
	Name     string
	Payload  string
}

// Identity keys an entry within the catalog.
type Identity struct {
	Category string
	Name     string
}

// Identity returns the grouping key for the entry.
func (e Entry) Identity() Identity {
	return Identity{Category: e.Category, Name: e.Name}
}

// Catalog holds every entry grouped by category with a fixed display order:
// categories ascending, entries within a category ascending by name. A
// Catalog is built once at startup and read-only afterwards.
type Catalog struct {
	categories []string
	entries    map[string][]Entry
	total      int
}

// Build indexes the supplied records. Categories are derived from the
// records rather than declared anywhere. When two records share an
// identity the later record wins. Build never fails; zero valid records
// produce an empty catalog.
func Build(records []Record) *Catalog {
	byIdentity := make(map[Identity]Entry, len(records))
	order := make([]Identity, 0, len(records))
	for _, rec := range records {
		entry := Entry{Category: rec.Parent, Name: rec.Name, Payload: rec.Object}
		id := entry.Identity()
		if _, seen := byIdentity[id]; !seen {
			order = append(order, id)
		}
		byIdentity[id] = entry
	}
	entries := make(map[string][]Entry, len(byIdentity))
	for _, id := range order {
		entries[id.Category] = append(entries[id.Category], byIdentity[id])
	}
	categories := make([]string, 0, len(entries))
	for category, group := range entries {
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return &Catalog{categories: categories, entries: entries, total: len(byIdentity)}
}

// Categories returns the category names in ascending lexical order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Entries returns the entries of one category ordered by name. Unknown
// categories yield nil.
func (c *Catalog) Entries(category string) []Entry {
	group, ok := c.entries[category]
	if !ok {
		return nil
	}
	return append([]Entry(nil), group...)
}

// All returns every entry flattened in category-major order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, c.total)
	for _, category := range c.categories {
		out = append(out, c.entries[category]...)
	}
	return out
}

// Len reports the number of entries across all categories.
func (c *Catalog) Len() int {
	return c.total
}
