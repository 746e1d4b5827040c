// Package iconfont provides named icon collections that can be looked up by
// glyph name, rendered for display, and referenced from Go code.
package iconfont

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

// Separator joins a collection name and a glyph name in an icon string.
const Separator = ":"

var (
	ErrInvalidIconString = errors.New("invalid icon string")
	ErrUnknownCollection = errors.New("unknown icon collection")
	ErrUnknownGlyph      = errors.New("unknown glyph")
)

// Glyph is a single icon in a collection.
type Glyph struct {
	// Name is the symbolic name shown to the user.
	Name string
	// Ident is the Go identifier that refers to the glyph in generated code.
	Ident string
}

// Collection is a named bundle of glyphs.
type Collection interface {
	Name() string
	Glyphs() []Glyph
	Lookup(name string) (Glyph, bool)
	Resource(name string) (fyne.Resource, error)

	// Imports lists the Go packages the generated code needs.
	Imports() []string
	// Code returns Go statements that assign a displayable value for g to name.
	Code(g Glyph, name string) string
}

// IconString formats the identifier of a glyph within a collection.
func IconString(collection, glyph string) string {
	return collection + Separator + glyph
}

// ParseIconString splits "collection:glyph" at the first separator.
func ParseIconString(s string) (collection, glyph string, err error) {
	collection, glyph, ok := strings.Cut(s, Separator)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidIconString, s)
	}
	return collection, glyph, nil
}

// glyphIndex is shared lookup storage for the bundled collections.
type glyphIndex struct {
	glyphs []Glyph
	byName map[string]int
}

func newGlyphIndex(glyphs []Glyph) glyphIndex {
	idx := glyphIndex{glyphs: glyphs, byName: make(map[string]int, len(glyphs))}
	for i, g := range glyphs {
		idx.byName[g.Name] = i
	}
	return idx
}

func (idx glyphIndex) Glyphs() []Glyph {
	out := make([]Glyph, len(idx.glyphs))
	copy(out, idx.glyphs)
	return out
}

func (idx glyphIndex) Lookup(name string) (Glyph, bool) {
	i, ok := idx.byName[name]
	if !ok {
		return Glyph{}, false
	}
	return idx.glyphs[i], true
}
