package memfont

import (
	"maps"
	"math"
	"slices"
)

// Point is one point of a glyph contour, in font units.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// Component is a reference to another glyph, placed with an affine
// transformation.
type Component struct {
	Base             string // name of the referenced glyph
	XScale, XYScale  float64
	YXScale, YScale  float64
	XOffset, YOffset float64
}

// Glyph is an in-memory glyph: a named drawable unit with outline
// contours, component references, Unicode values and an advance width.
type Glyph struct {
	Unicodes   []rune
	Advance    float64
	Contours   [][]Point
	Components []Component
	Lib        map[string]any

	name string
}

// Name returns the glyph's name.
func (g *Glyph) Name() string {
	return g.name
}

// clear removes all data from the glyph but keeps its name.
func (g *Glyph) clear() {
	g.Unicodes = nil
	g.Advance = 0
	g.Contours = nil
	g.Components = nil
	g.Lib = nil
}

// copyDataFrom recreates src's data in g. Contours and components are
// deep-copied; lib values are copied per key (nested containers stay
// shared, which matches the scripting model's single-threaded use).
func (g *Glyph) copyDataFrom(src *Glyph) {
	g.Unicodes = slices.Clone(src.Unicodes)
	g.Advance = src.Advance
	g.Contours = make([][]Point, len(src.Contours))
	for i, contour := range src.Contours {
		g.Contours[i] = slices.Clone(contour)
	}
	g.Components = slices.Clone(src.Components)
	if src.Lib != nil {
		g.Lib = maps.Clone(src.Lib)
	} else {
		g.Lib = nil
	}
}

// round rounds all roundable numeric data of the glyph to integers.
func (g *Glyph) round() {
	g.Advance = math.Round(g.Advance)
	for _, contour := range g.Contours {
		for i := range contour {
			contour[i].X = math.Round(contour[i].X)
			contour[i].Y = math.Round(contour[i].Y)
		}
	}
	for i := range g.Components {
		g.Components[i].XOffset = math.Round(g.Components[i].XOffset)
		g.Components[i].YOffset = math.Round(g.Components[i].YOffset)
	}
}
