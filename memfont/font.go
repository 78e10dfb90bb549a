package memfont

import (
	"fmt"
	"slices"

	"github.com/npillmayer/fontparts"
)

// Font is an in-memory font: the exclusive owner of a set of named
// layers. The zero value is not usable; construct with [New].
type Font struct {
	name    string
	entries []*layerEntry
}

type layerEntry struct {
	store   *layerStore
	adapter *fontparts.Layer
}

// New creates an empty font.
func New(name string) *Font {
	return &Font{name: name}
}

// Name returns the font's name.
func (f *Font) Name() string {
	return f.name
}

// LayerOrder returns the layer names in creation order. Renames are
// reflected immediately.
func (f *Font) LayerOrder() []string {
	order := make([]string, len(f.entries))
	for i, entry := range f.entries {
		order[i] = entry.store.name
	}
	return order
}

// NewLayer creates a layer with the given name and returns its
// scripting adapter. The name is validated and checked for collisions
// with existing layers.
func (f *Font) NewLayer(name string) (*fontparts.Layer, error) {
	name, err := fontparts.ValidateLayerName(name)
	if err != nil {
		return nil, err
	}
	if slices.Contains(f.LayerOrder(), name) {
		return nil, &fontparts.DuplicateNameError{Name: name}
	}
	store := &layerStore{font: f, name: name, glyphs: make(map[string]*Glyph)}
	adapter := fontparts.NewLayer(store)
	if err := adapter.SetFont(f); err != nil {
		return nil, err
	}
	f.entries = append(f.entries, &layerEntry{store: store, adapter: adapter})
	tracer().Debugf("created layer %q in font %q", name, f.name)
	return adapter, nil
}

// Layer returns the layer stored under name, if any.
func (f *Font) Layer(name string) (*fontparts.Layer, bool) {
	for _, entry := range f.entries {
		if entry.store.name == name {
			return entry.adapter, true
		}
	}
	return nil, false
}

// Layers returns the font's layers in creation order.
func (f *Font) Layers() []*fontparts.Layer {
	layers := make([]*fontparts.Layer, len(f.entries))
	for i, entry := range f.entries {
		layers[i] = entry.adapter
	}
	return layers
}

// DefaultLayer returns the font's first layer, or nil for an empty
// font.
func (f *Font) DefaultLayer() *fontparts.Layer {
	if len(f.entries) == 0 {
		return nil
	}
	return f.entries[0].adapter
}

// RemoveLayer deletes the layer stored under name.
func (f *Font) RemoveLayer(name string) error {
	for i, entry := range f.entries {
		if entry.store.name == name {
			f.entries = slices.Delete(f.entries, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no layer named %q", name)
}

// Close releases the font's scripting handle. Afterwards every layer
// adapter attached to f observes "no font". The font must not be used
// for scripting again.
func (f *Font) Close() {
	fontparts.ReleaseFont(f)
}
