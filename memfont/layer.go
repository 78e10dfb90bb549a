package memfont

import (
	"maps"
	"slices"

	"github.com/npillmayer/fontparts"
)

// layerStore is the storage backend for one in-memory layer. All
// input validation has already happened in the adapter; the store
// deals with plain data only.
type layerStore struct {
	font   *Font
	name   string
	color  []float64
	lib    map[string]any
	glyphs map[string]*Glyph
}

var _ fontparts.Backend = (*layerStore)(nil)
var _ fontparts.GlyphCounter = (*layerStore)(nil)
var _ fontparts.GlyphContainer = (*layerStore)(nil)

// --- Identification --------------------------------------------------------

func (s *layerStore) Name() (string, error) {
	return s.name, nil
}

func (s *layerStore) SetName(name string) error {
	s.name = name
	return nil
}

func (s *layerStore) Color() ([]float64, error) {
	return slices.Clone(s.color), nil
}

func (s *layerStore) SetColor(components []float64) error {
	s.color = slices.Clone(components)
	return nil
}

func (s *layerStore) Lib() (map[string]any, error) {
	if s.lib == nil {
		s.lib = make(map[string]any)
	}
	return s.lib, nil
}

// --- Glyph storage ---------------------------------------------------------

func (s *layerStore) Glyph(name string) (fontparts.Glyph, error) {
	g, ok := s.glyphs[name]
	if !ok {
		return nil, &fontparts.NotFoundError{Name: name}
	}
	return g, nil
}

func (s *layerStore) GlyphNames() ([]string, error) {
	return slices.Sorted(maps.Keys(s.glyphs)), nil
}

func (s *layerStore) GlyphCount() (int, error) {
	return len(s.glyphs), nil
}

func (s *layerStore) HasGlyph(name string) (bool, error) {
	_, ok := s.glyphs[name]
	return ok, nil
}

func (s *layerStore) NewGlyph(name string, clear bool) (fontparts.Glyph, error) {
	if existing, ok := s.glyphs[name]; ok {
		if clear {
			existing.clear()
		}
		return existing, nil
	}
	g := &Glyph{name: name}
	s.glyphs[name] = g
	return g, nil
}

func (s *layerStore) RemoveGlyph(name string) error {
	if _, ok := s.glyphs[name]; !ok {
		return &fontparts.NotFoundError{Name: name}
	}
	delete(s.glyphs, name)
	return nil
}

func (s *layerStore) InsertGlyph(g fontparts.Glyph, name string) (fontparts.Glyph, error) {
	target := &Glyph{name: name}
	if src, ok := g.(*Glyph); ok {
		target.copyDataFrom(src)
	} else {
		// a glyph from a foreign environment carries no data we can see
		tracer().Infof("inserting foreign glyph %q by name only", name)
	}
	s.glyphs[name] = target
	return target, nil
}

// --- Global operations -----------------------------------------------------

func (s *layerStore) Round() error {
	for _, g := range s.glyphs {
		g.round()
	}
	return nil
}

func (s *layerStore) AutoUnicodes() error {
	for name, g := range s.glyphs {
		if r, ok := unicodeForGlyphName(name); ok {
			g.Unicodes = []rune{r}
		}
	}
	return nil
}

// --- Reference mappings ----------------------------------------------------

func (s *layerStore) CharacterMap() (map[rune][]string, error) {
	cmap := make(map[rune][]string)
	names, _ := s.GlyphNames()
	for _, name := range names {
		for _, r := range s.glyphs[name].Unicodes {
			cmap[r] = append(cmap[r], name)
		}
	}
	return cmap, nil
}

func (s *layerStore) ReverseComponentMap() (map[string][]string, error) {
	rmap := make(map[string][]string)
	names, _ := s.GlyphNames()
	for _, name := range names {
		for _, component := range s.glyphs[name].Components {
			if !slices.Contains(rmap[component.Base], name) {
				rmap[component.Base] = append(rmap[component.Base], name)
			}
		}
	}
	return rmap, nil
}
