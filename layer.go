package fontparts

import (
	"iter"
	"slices"
)

// Layer is the scripting adapter for one font layer. It validates
// input, enforces the cross-layer invariants (name uniqueness, the
// single font attachment) and delegates all storage to its [Backend].
//
// A Layer is created by the environment that owns the native storage,
// which attaches it to its font exactly once via [Layer.SetFont].
type Layer struct {
	backend Backend
	fontID  uint64 // handle into the font table, 0 while unattached
}

// NewLayer wraps an environment backend in a scripting adapter.
func NewLayer(b Backend) *Layer {
	return &Layer{backend: b}
}

// --- Parents ---------------------------------------------------------------

// Font returns the owning font, or nil if the layer was never attached
// or the font has been released.
func (l *Layer) Font() Font {
	if l.fontID == 0 {
		return nil
	}
	return lookupFont(l.fontID)
}

// Parent returns the owning font. It is a convenience alias for
// [Layer.Font].
func (l *Layer) Parent() Font {
	return l.Font()
}

// SetFont attaches the layer to its owning font. A layer is attached
// at most once; a second call fails with an [InvariantError] even for
// the same font. Passing nil while unattached is a no-op.
//
// The layer keeps only a non-owning handle, never the font itself.
func (l *Layer) SetFont(f Font) error {
	if l.fontID != 0 {
		return &InvariantError{Reason: "layer is already attached to a font"}
	}
	if f == nil {
		return nil
	}
	l.fontID = registerFont(f)
	return nil
}

// --- Identification --------------------------------------------------------

// Name returns the layer's name, validated, or "" for an unnamed
// layer.
func (l *Layer) Name() (string, error) {
	raw, err := l.backend.Name()
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}
	return ValidateLayerName(raw)
}

// SetName renames the layer. Setting the current name again is a
// no-op. A non-empty name is validated and checked against the owning
// font's layer order; a collision with a sibling fails with
// [DuplicateNameError] and leaves the stored name unchanged. An empty
// name clears the layer's name.
func (l *Layer) SetName(name string) error {
	current, err := l.Name()
	if err != nil {
		return err
	}
	if name == current {
		return nil
	}
	if name != "" {
		if name, err = ValidateLayerName(name); err != nil {
			return err
		}
		if font := l.Font(); font != nil {
			if slices.Contains(font.LayerOrder(), name) {
				return &DuplicateNameError{Name: name}
			}
		}
	}
	return l.backend.SetName(name)
}

// Color returns the layer's color, validated and wrapped, or None for
// a layer without color mark.
func (l *Layer) Color() (Option[Color], error) {
	raw, err := l.backend.Color()
	if err != nil {
		return None[Color](), err
	}
	if raw == nil {
		return None[Color](), nil
	}
	c, err := ValidateColorComponents(raw)
	if err != nil {
		return None[Color](), err
	}
	return Some(c), nil
}

// SetColor sets the layer's color from raw components. The components
// are validated before the backend stores them. nil clears the color.
func (l *Layer) SetColor(components []float64) error {
	if components != nil {
		if _, err := ValidateColorComponents(components); err != nil {
			return err
		}
	}
	return l.backend.SetColor(components)
}

// --- Sub-objects -----------------------------------------------------------

// Lib returns the layer's key-value metadata store. The adapter
// surfaces it read-only; environments define what, if anything, gets
// persisted.
func (l *Layer) Lib() (map[string]any, error) {
	return l.backend.Lib()
}

// --- Glyph interaction -----------------------------------------------------

// Len returns the number of glyphs in the layer. Backends implementing
// [GlyphCounter] are consulted directly; otherwise the key list is
// counted. Errors are traced and reported as 0.
func (l *Layer) Len() int {
	if c, ok := l.backend.(GlyphCounter); ok {
		n, err := c.GlyphCount()
		if err != nil {
			tracer().Errorf("glyph count: %v", err)
			return 0
		}
		return n
	}
	names, err := l.backend.GlyphNames()
	if err != nil {
		tracer().Errorf("glyph count: %v", err)
		return 0
	}
	return len(names)
}

// Glyphs iterates over the glyphs in the layer. The sequence is
// finite and restartable.
//
// The default strategy re-fetches the key list on every step and
// yields the first name not seen so far. It therefore tolerates
// mutation of the layer while iterating (removed names stop being
// yielded, added names are picked up), but callers must not assume
// any stability beyond that. Backends implementing [GlyphRanger]
// replace this strategy entirely.
func (l *Layer) Glyphs() iter.Seq[Glyph] {
	if r, ok := l.backend.(GlyphRanger); ok {
		return r.Glyphs()
	}
	return func(yield func(Glyph) bool) {
		seen := make(map[string]bool)
		for {
			names, err := l.backend.GlyphNames()
			if err != nil {
				tracer().Errorf("glyph iteration: %v", err)
				return
			}
			next := ""
			for _, name := range names {
				if !seen[name] {
					next = name
					break
				}
			}
			if next == "" {
				return
			}
			seen[next] = true
			g, err := l.backend.Glyph(next)
			if err != nil {
				// glyph vanished between the key fetch and the lookup
				tracer().Infof("glyph %q skipped during iteration: %v", next, err)
				continue
			}
			if !yield(g) {
				return
			}
		}
	}
}

// Glyph returns the glyph stored under name. The name is validated,
// then checked for membership; an absent glyph fails with
// [NotFoundError].
func (l *Layer) Glyph(name string) (Glyph, error) {
	name, err := ValidateGlyphName(name)
	if err != nil {
		return nil, err
	}
	ok, err := l.contains(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return l.backend.Glyph(name)
}

// GlyphNames returns the names of all glyphs in the layer. The order
// is unspecified.
func (l *Layer) GlyphNames() ([]string, error) {
	return l.backend.GlyphNames()
}

// Contains reports whether the layer holds a glyph under name.
func (l *Layer) Contains(name string) (bool, error) {
	name, err := ValidateGlyphName(name)
	if err != nil {
		return false, err
	}
	return l.contains(name)
}

// HasGlyph is an alias for [Layer.Contains].
func (l *Layer) HasGlyph(name string) (bool, error) {
	return l.Contains(name)
}

// contains expects a validated name. Backends implementing
// [GlyphContainer] are consulted directly; otherwise the key list is
// scanned.
func (l *Layer) contains(name string) (bool, error) {
	if c, ok := l.backend.(GlyphContainer); ok {
		return c.HasGlyph(name)
	}
	names, err := l.backend.GlyphNames()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// NewGlyph creates a glyph under name in the layer and returns it.
// If a glyph with that name already exists and clear is true, the
// existing glyph's data is cleared; with clear false the existing
// glyph is returned untouched.
func (l *Layer) NewGlyph(name string, clear bool) (Glyph, error) {
	name, err := ValidateGlyphName(name)
	if err != nil {
		return nil, err
	}
	return l.backend.NewGlyph(name, clear)
}

// RemoveGlyph deletes the glyph stored under name from the layer.
func (l *Layer) RemoveGlyph(name string) error {
	name, err := ValidateGlyphName(name)
	if err != nil {
		return err
	}
	return l.backend.RemoveGlyph(name)
}

// InsertGlyph recreates the data of g in a new glyph in this layer and
// returns the new glyph. The glyph object itself is not inserted. An
// empty name defaults to g's own name; if neither yields a name, the
// call fails with a [ValidationError].
func (l *Layer) InsertGlyph(g Glyph, name string) (Glyph, error) {
	if g == nil {
		return nil, &ValidationError{Kind: "glyph", Value: nil, Reason: "no glyph given"}
	}
	if name == "" {
		name = g.Name()
	}
	if name == "" {
		return nil, &ValidationError{
			Kind:   "glyph name",
			Value:  name,
			Reason: "no name given and the glyph is unnamed",
		}
	}
	name, err := ValidateGlyphName(name)
	if err != nil {
		return nil, err
	}
	return l.backend.InsertGlyph(g, name)
}

// --- Global operations -----------------------------------------------------

// Round rounds all roundable numeric data of every glyph in the layer
// to integers.
func (l *Layer) Round() error {
	return l.backend.Round()
}

// AutoUnicodes assigns Unicode values to the layer's glyphs using the
// environment's heuristics.
func (l *Layer) AutoUnicodes() error {
	return l.backend.AutoUnicodes()
}

// --- Interpolation ---------------------------------------------------------

// Interpolate fills this layer with glyph data lying at position
// factor on the line between minLayer (position 0) and maxLayer
// (position 1). Factors outside [0, 1] extrapolate.
//
// Structurally incompatible glyphs are skipped and listed in the
// returned report; [FailOnIncompatible] turns the first such glyph
// into an error instead. [AnalyzeOnly] performs the compatibility
// check without writing any glyph data.
func (l *Layer) Interpolate(factor Factor, minLayer, maxLayer *Layer, opts ...InterpolateOption) (InterpolationReport, error) {
	if minLayer == nil || maxLayer == nil {
		return nil, &ValidationError{
			Kind:   "layer",
			Value:  nil,
			Reason: "interpolation needs both a minimum and a maximum layer",
		}
	}
	var options InterpolateOptions
	for _, opt := range opts {
		opt(&options)
	}
	return l.backend.Interpolate(factor, minLayer, maxLayer, options)
}

// --- Reference mappings ----------------------------------------------------

// CharacterMap returns a mapping from Unicode value to the ordered
// list of glyph names claiming that value.
func (l *Layer) CharacterMap() (map[rune][]string, error) {
	return l.backend.CharacterMap()
}

// ReverseComponentMap returns a mapping from a base glyph name to the
// names of the glyphs referencing it as a component.
func (l *Layer) ReverseComponentMap() (map[string][]string, error) {
	return l.backend.ReverseComponentMap()
}
