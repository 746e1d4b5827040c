package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/Akaiko1/icon-browser/internal/iconfont"
)

// Catalog is the static, sorted list of icon strings across all collections.
type Catalog struct {
	Entries []string
	// Counts holds the number of glyphs per collection.
	Counts map[string]int
}

// Source is anything that can list its collections, such as *iconfont.Registry.
type Source interface {
	Collections() []iconfont.Collection
}

// Build enumerates every glyph of every collection as "collection:glyph".
func Build(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, fmt.Errorf("catalog source cannot be nil")
	}

	cat := &Catalog{Counts: make(map[string]int)}
	for _, c := range src.Collections() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		glyphs := c.Glyphs()
		for _, g := range glyphs {
			cat.Entries = append(cat.Entries, iconfont.IconString(c.Name(), g.Name))
		}
		cat.Counts[c.Name()] = len(glyphs)
	}

	sort.Strings(cat.Entries)
	return cat, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// CollectionNames returns the collection names in sorted order.
func (c *Catalog) CollectionNames() []string {
	names := make([]string, 0, len(c.Counts))
	for name := range c.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
