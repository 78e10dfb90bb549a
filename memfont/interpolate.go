package memfont

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/fontparts"
	"gonum.org/v1/gonum/floats"
)

// Interpolate fills the layer with glyph data at position factor
// between minLayer (0) and maxLayer (1). Only glyphs present in both
// source layers are considered; structural mismatches between the two
// versions of a glyph are recorded in the report and, unless
// FailOnIncompatible is set, skipped.
func (s *layerStore) Interpolate(factor fontparts.Factor, minLayer, maxLayer *fontparts.Layer,
	opts fontparts.InterpolateOptions) (fontparts.InterpolationReport, error) {
	//
	minNames, err := minLayer.GlyphNames()
	if err != nil {
		return nil, err
	}
	slices.Sort(minNames)
	report := make(fontparts.InterpolationReport)
	total := len(minNames)
	for i, name := range minNames {
		if opts.ShowProgress {
			tracer().Infof("interpolating glyph %d/%d: %q", i+1, total, name)
		}
		ok, err := maxLayer.Contains(name)
		if err != nil {
			return report, err
		}
		if !ok {
			continue // not a common glyph
		}
		gMin, err := sourceGlyph(minLayer, name)
		if err != nil {
			return report, err
		}
		gMax, err := sourceGlyph(maxLayer, name)
		if err != nil {
			return report, err
		}
		problems := compatibilityProblems(gMin, gMax)
		if len(problems) > 0 {
			report[name] = problems
			if opts.FailOnIncompatible {
				return report, fmt.Errorf("interpolation: glyph %q is not compatible: %s",
					name, strings.Join(problems, "; "))
			}
			continue
		}
		if opts.AnalyzeOnly {
			continue
		}
		s.glyphs[name] = interpolateGlyph(name, gMin, gMax, factor)
	}
	return report, nil
}

// sourceGlyph fetches a glyph from a source layer and requires it to
// be an in-memory glyph.
func sourceGlyph(layer *fontparts.Layer, name string) (*Glyph, error) {
	g, err := layer.Glyph(name)
	if err != nil {
		return nil, err
	}
	mg, ok := g.(*Glyph)
	if !ok {
		return nil, fmt.Errorf("glyph %q comes from a foreign environment", name)
	}
	return mg, nil
}

// compatibilityProblems lists the structural mismatches that prevent
// interpolating between two versions of a glyph.
func compatibilityProblems(gMin, gMax *Glyph) []string {
	var problems []string
	if len(gMin.Contours) != len(gMax.Contours) {
		problems = append(problems, fmt.Sprintf("contour count mismatch: %d vs %d",
			len(gMin.Contours), len(gMax.Contours)))
	} else {
		for i := range gMin.Contours {
			if len(gMin.Contours[i]) != len(gMax.Contours[i]) {
				problems = append(problems, fmt.Sprintf("contour %d point count mismatch: %d vs %d",
					i, len(gMin.Contours[i]), len(gMax.Contours[i])))
			}
		}
	}
	if len(gMin.Components) != len(gMax.Components) {
		problems = append(problems, fmt.Sprintf("component count mismatch: %d vs %d",
			len(gMin.Components), len(gMax.Components)))
	} else {
		for i := range gMin.Components {
			if gMin.Components[i].Base != gMax.Components[i].Base {
				problems = append(problems, fmt.Sprintf("component %d base mismatch: %q vs %q",
					i, gMin.Components[i].Base, gMax.Components[i].Base))
			}
		}
	}
	return problems
}

// interpolateGlyph blends two structurally compatible glyphs. The x
// and y axes are blended with their own factors; factors outside
// [0, 1] extrapolate.
func interpolateGlyph(name string, gMin, gMax *Glyph, f fontparts.Factor) *Glyph {
	out := &Glyph{
		name:     name,
		Unicodes: slices.Clone(gMin.Unicodes),
		Advance:  lerp(gMin.Advance, gMax.Advance, f.X),
	}
	out.Contours = make([][]Point, len(gMin.Contours))
	for i := range gMin.Contours {
		out.Contours[i] = interpolateContour(gMin.Contours[i], gMax.Contours[i], f)
	}
	out.Components = make([]Component, len(gMin.Components))
	for i := range gMin.Components {
		cMin, cMax := gMin.Components[i], gMax.Components[i]
		out.Components[i] = Component{
			Base:    cMin.Base,
			XScale:  lerp(cMin.XScale, cMax.XScale, f.X),
			XYScale: lerp(cMin.XYScale, cMax.XYScale, f.X),
			YXScale: lerp(cMin.YXScale, cMax.YXScale, f.Y),
			YScale:  lerp(cMin.YScale, cMax.YScale, f.Y),
			XOffset: lerp(cMin.XOffset, cMax.XOffset, f.X),
			YOffset: lerp(cMin.YOffset, cMax.YOffset, f.Y),
		}
	}
	return out
}

// interpolateContour blends the coordinate vectors of one contour.
// The point lists are flattened into x and y vectors so gonum can
// compute min + factor*(max-min) in bulk.
func interpolateContour(cMin, cMax []Point, f fontparts.Factor) []Point {
	n := len(cMin)
	minX, minY := make([]float64, n), make([]float64, n)
	maxX, maxY := make([]float64, n), make([]float64, n)
	for i := range cMin {
		minX[i], minY[i] = cMin[i].X, cMin[i].Y
		maxX[i], maxY[i] = cMax[i].X, cMax[i].Y
	}
	diffX, diffY := make([]float64, n), make([]float64, n)
	floats.SubTo(diffX, maxX, minX)
	floats.SubTo(diffY, maxY, minY)
	outX, outY := make([]float64, n), make([]float64, n)
	floats.AddScaledTo(outX, minX, f.X, diffX)
	floats.AddScaledTo(outY, minY, f.Y, diffY)
	contour := make([]Point, n)
	for i := range contour {
		contour[i] = Point{X: outX[i], Y: outY[i], OnCurve: cMin[i].OnCurve}
	}
	return contour
}

func lerp(min, max, factor float64) float64 {
	return min + factor*(max-min)
}
