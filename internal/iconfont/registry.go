package iconfont

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

// Registry maps collection names to collections, keeping registration order.
type Registry struct {
	order  []Collection
	byName map[string]Collection
}

// NewRegistry registers the given collections. Names must be unique, non-empty
// and free of the separator.
func NewRegistry(collections ...Collection) (*Registry, error) {
	r := &Registry{byName: make(map[string]Collection, len(collections))}
	for _, c := range collections {
		name := c.Name()
		if name == "" || strings.Contains(name, Separator) {
			return nil, fmt.Errorf("invalid collection name %q", name)
		}
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("collection %q registered twice", name)
		}
		r.byName[name] = c
		r.order = append(r.order, c)
	}
	return r, nil
}

// Default returns the registry of the bundled collections.
func Default() *Registry {
	r, err := NewRegistry(NewFyneCollection(), NewMaterialCollection())
	if err != nil {
		panic("iconfont: " + err.Error())
	}
	return r
}

// Collections returns the registered collections in registration order.
func (r *Registry) Collections() []Collection {
	out := make([]Collection, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered collection names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, c := range r.order {
		names = append(names, c.Name())
	}
	return names
}

// Collection returns the named collection.
func (r *Registry) Collection(name string) (Collection, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// Resolve finds the collection and glyph an icon string refers to.
func (r *Registry) Resolve(iconString string) (Collection, Glyph, error) {
	collection, name, err := ParseIconString(iconString)
	if err != nil {
		return nil, Glyph{}, err
	}

	c, err := r.Collection(collection)
	if err != nil {
		return nil, Glyph{}, err
	}

	g, ok := c.Lookup(name)
	if !ok {
		return nil, Glyph{}, fmt.Errorf("%w: %q in %s", ErrUnknownGlyph, name, collection)
	}
	return c, g, nil
}

// Resource renders the glyph an icon string refers to.
func (r *Registry) Resource(iconString string) (fyne.Resource, error) {
	c, g, err := r.Resolve(iconString)
	if err != nil {
		return nil, err
	}
	return c.Resource(g.Name)
}
