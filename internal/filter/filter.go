// Package filter narrows the icon catalog by collection and search term.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"fyne.io/fyne/v2/data/binding"

	"github.com/Akaiko1/icon-browser/internal/config"
	"github.com/Akaiko1/icon-browser/internal/iconfont"
)

// Matcher decides whether a "collection:glyph" entry is visible.
// Matching is case-insensitive.
type Matcher struct {
	collection string
	term       *regexp.Regexp
	literal    bool
}

// NewMatcher builds a matcher. An empty collection or config.AllCollections
// matches every collection. The term is a regular expression searched for in
// the glyph name; a term that does not compile is matched literally.
func NewMatcher(collection, term string) Matcher {
	m := Matcher{}
	if collection != config.AllCollections {
		m.collection = collection
	}
	if term == "" {
		return m
	}

	re, err := regexp.Compile("(?i)" + term)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
		m.literal = true
	}
	m.term = re
	return m
}

// Literal reports whether the term was not a valid expression and is matched as plain text.
func (m Matcher) Literal() bool {
	return m.literal
}

// Match reports whether entry passes the collection and term filters.
func (m Matcher) Match(entry string) bool {
	collection, glyph, err := iconfont.ParseIconString(entry)
	if err != nil {
		return false
	}
	if m.collection != "" && !strings.EqualFold(collection, m.collection) {
		return false
	}
	return m.term == nil || m.term.MatchString(glyph)
}

// Model wraps the static catalog and publishes the visible subset through a
// string list binding.
type Model struct {
	source  []string
	visible binding.StringList
	matcher Matcher
}

// NewModel creates a model showing every entry.
func NewModel(entries []string) (*Model, error) {
	source := make([]string, len(entries))
	copy(source, entries)

	m := &Model{
		source:  source,
		visible: binding.NewStringList(),
	}
	if _, err := m.Apply(config.AllCollections, ""); err != nil {
		return nil, err
	}
	return m, nil
}

// Apply recomputes the visible entries and returns how many there are.
// Listeners of Visible are notified of the new list.
func (m *Model) Apply(collection, term string) (int, error) {
	m.matcher = NewMatcher(collection, term)

	visible := make([]string, 0, len(m.source))
	for _, entry := range m.source {
		if m.matcher.Match(entry) {
			visible = append(visible, entry)
		}
	}

	if err := m.visible.Set(visible); err != nil {
		return 0, fmt.Errorf("failed to publish visible icons: %w", err)
	}
	return len(visible), nil
}

// Visible is the binding the icon grid renders.
func (m *Model) Visible() binding.StringList {
	return m.visible
}

// Matcher returns the matcher used by the last Apply.
func (m *Model) Matcher() Matcher {
	return m.matcher
}

// Len returns the number of visible entries.
func (m *Model) Len() int {
	return m.visible.Length()
}

// Total returns the number of entries in the catalog.
func (m *Model) Total() int {
	return len(m.source)
}

// At returns the visible entry at index i.
func (m *Model) At(i int) (string, bool) {
	if i < 0 || i >= m.visible.Length() {
		return "", false
	}
	v, err := m.visible.GetValue(i)
	if err != nil {
		return "", false
	}
	return v, true
}
