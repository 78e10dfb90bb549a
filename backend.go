package fontparts

import "iter"

// Glyph is the adapter's view onto a glyph object. Environments return
// their own richer glyph types; the layer contract itself only needs
// the name.
type Glyph interface {
	// Name returns the glyph's name, or "" for an unnamed glyph.
	Name() string
}

// Backend is the set of storage hooks a concrete environment provides
// for one layer. The [Layer] adapter validates all input before a hook
// is called, so hooks may trust their arguments:
//
//   - names passed to Glyph, NewGlyph, RemoveGlyph and InsertGlyph are
//     syntactically valid glyph names,
//   - the name passed to Glyph is known to be present in the layer,
//   - the name passed to SetName is either empty (clear) or a valid
//     layer name that does not collide with a sibling layer,
//   - components passed to SetColor are either nil (clear) or a
//     validated 4-tuple.
//
// Environments that cannot serve the full contract embed
// [UnimplementedBackend] and override the hooks they support.
type Backend interface {
	// Name returns the stored layer name, "" if the layer is unnamed.
	Name() (string, error)
	// SetName stores a new layer name, "" clears it.
	SetName(name string) error

	// Color returns the stored color components, nil for "no color".
	Color() ([]float64, error)
	// SetColor stores new color components, nil clears the color.
	SetColor(components []float64) error

	// Lib returns the layer's key-value metadata store.
	Lib() (map[string]any, error)

	// Glyph returns the glyph stored under name.
	Glyph(name string) (Glyph, error)
	// GlyphNames returns all glyph names in the layer, in unspecified
	// order.
	GlyphNames() ([]string, error)

	// NewGlyph creates a glyph under name. If a glyph with that name
	// exists and clear is true, its data is cleared; if clear is
	// false, the existing glyph is returned untouched.
	NewGlyph(name string, clear bool) (Glyph, error)
	// RemoveGlyph deletes the glyph stored under name.
	RemoveGlyph(name string) error
	// InsertGlyph recreates the data of g in a new glyph under name.
	// The glyph object itself is not inserted.
	InsertGlyph(g Glyph, name string) (Glyph, error)

	// Round rounds all roundable numeric data of every glyph.
	Round() error
	// AutoUnicodes assigns Unicode values to the layer's glyphs using
	// environment-specific heuristics.
	AutoUnicodes() error

	// Interpolate blends glyph data between two layers; see
	// [Layer.Interpolate] for the full semantics.
	Interpolate(factor Factor, minLayer, maxLayer *Layer, opts InterpolateOptions) (InterpolationReport, error)

	// CharacterMap maps Unicode values to the glyph names claiming them.
	CharacterMap() (map[rune][]string, error)
	// ReverseComponentMap maps base glyph names to the names of glyphs
	// referencing them as a component.
	ReverseComponentMap() (map[string][]string, error)
}

// GlyphCounter is an optional backend capability. Environments that
// can count glyphs cheaper than listing all names implement it; the
// adapter falls back to len(GlyphNames()) otherwise.
type GlyphCounter interface {
	GlyphCount() (int, error)
}

// GlyphContainer is an optional backend capability for membership
// tests cheaper than a key-list scan.
type GlyphContainer interface {
	HasGlyph(name string) (bool, error)
}

// GlyphRanger is an optional backend capability replacing the
// adapter's default iteration strategy.
type GlyphRanger interface {
	Glyphs() iter.Seq[Glyph]
}

// UnimplementedBackend implements every Backend hook by returning an
// [UnimplementedError]. Partial environments embed it so that missing
// capabilities fail explicitly instead of not compiling.
type UnimplementedBackend struct{}

var _ Backend = UnimplementedBackend{}

func (UnimplementedBackend) Name() (string, error) {
	return "", unimplemented("Name")
}

func (UnimplementedBackend) SetName(name string) error {
	return unimplemented("SetName")
}

func (UnimplementedBackend) Color() ([]float64, error) {
	return nil, unimplemented("Color")
}

func (UnimplementedBackend) SetColor(components []float64) error {
	return unimplemented("SetColor")
}

func (UnimplementedBackend) Lib() (map[string]any, error) {
	return nil, unimplemented("Lib")
}

func (UnimplementedBackend) Glyph(name string) (Glyph, error) {
	return nil, unimplemented("Glyph")
}

func (UnimplementedBackend) GlyphNames() ([]string, error) {
	return nil, unimplemented("GlyphNames")
}

func (UnimplementedBackend) NewGlyph(name string, clear bool) (Glyph, error) {
	return nil, unimplemented("NewGlyph")
}

func (UnimplementedBackend) RemoveGlyph(name string) error {
	return unimplemented("RemoveGlyph")
}

func (UnimplementedBackend) InsertGlyph(g Glyph, name string) (Glyph, error) {
	return nil, unimplemented("InsertGlyph")
}

func (UnimplementedBackend) Round() error {
	return unimplemented("Round")
}

func (UnimplementedBackend) AutoUnicodes() error {
	return unimplemented("AutoUnicodes")
}

func (UnimplementedBackend) Interpolate(factor Factor, minLayer, maxLayer *Layer, opts InterpolateOptions) (InterpolationReport, error) {
	return nil, unimplemented("Interpolate")
}

func (UnimplementedBackend) CharacterMap() (map[rune][]string, error) {
	return nil, unimplemented("CharacterMap")
}

func (UnimplementedBackend) ReverseComponentMap() (map[string][]string, error) {
	return nil, unimplemented("ReverseComponentMap")
}
