package memfont

import (
	"testing"

	"github.com/npillmayer/fontparts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildMaster creates a layer with a single one-contour glyph "A".
func buildMaster(t *testing.T, font *Font, layerName string, x, y, advance float64) *fontparts.Layer {
	t.Helper()
	layer, err := font.NewLayer(layerName)
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}
	g, err := layer.NewGlyph("A", true)
	if err != nil {
		t.Fatalf("NewGlyph failed: %v", err)
	}
	mg := g.(*Glyph)
	mg.Advance = advance
	mg.Unicodes = []rune{'A'}
	mg.Contours = [][]Point{{
		{X: 0, Y: 0, OnCurve: true},
		{X: x, Y: y, OnCurve: true},
	}}
	return layer
}

func TestInterpolateMidpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontparts.mem")
	defer teardown()
	font := New("Interp")
	defer font.Close()
	light := buildMaster(t, font, "light", 100, 700, 400)
	bold := buildMaster(t, font, "bold", 200, 710, 600)
	target, err := font.NewLayer("medium")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}

	report, err := target.Interpolate(fontparts.Uniform(0.5), light, bold)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if len(report) != 0 {
		t.Fatalf("expected no incompatibilities, got %v", report)
	}
	g, err := target.Glyph("A")
	if err != nil {
		t.Fatalf("interpolated glyph missing: %v", err)
	}
	mg := g.(*Glyph)
	if mg.Advance != 500 {
		t.Fatalf("expected advance 500, got %g", mg.Advance)
	}
	p := mg.Contours[0][1]
	if p.X != 150 || p.Y != 705 {
		t.Fatalf("expected point (150, 705), got (%g, %g)", p.X, p.Y)
	}
	if len(mg.Unicodes) != 1 || mg.Unicodes[0] != 'A' {
		t.Fatalf("expected Unicode value to carry over, got %v", mg.Unicodes)
	}
}

func TestInterpolateSplitFactorAndExtrapolation(t *testing.T) {
	font := New("Interp")
	defer font.Close()
	light := buildMaster(t, font, "light", 100, 700, 400)
	bold := buildMaster(t, font, "bold", 200, 710, 600)
	target, err := font.NewLayer("wide")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}

	// x extrapolates beyond the bold master, y stays at the light one
	_, err = target.Interpolate(fontparts.FactorXY(2, 0), light, bold)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	g, err := target.Glyph("A")
	if err != nil {
		t.Fatalf("interpolated glyph missing: %v", err)
	}
	mg := g.(*Glyph)
	p := mg.Contours[0][1]
	if p.X != 300 || p.Y != 700 {
		t.Fatalf("expected point (300, 700), got (%g, %g)", p.X, p.Y)
	}
	if mg.Advance != 800 {
		t.Fatalf("expected advance 800 (x-extrapolated), got %g", mg.Advance)
	}
}

func TestInterpolateReportsIncompatibleGlyphs(t *testing.T) {
	font := New("Interp")
	defer font.Close()
	light := buildMaster(t, font, "light", 100, 700, 400)
	bold := buildMaster(t, font, "bold", 200, 710, 600)
	// break compatibility: give the bold master an extra contour
	g, err := bold.Glyph("A")
	if err != nil {
		t.Fatalf("Glyph failed: %v", err)
	}
	mg := g.(*Glyph)
	mg.Contours = append(mg.Contours, []Point{{X: 1, Y: 1, OnCurve: true}})

	target, err := font.NewLayer("medium")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}
	report, err := target.Interpolate(fontparts.Uniform(0.5), light, bold)
	if err != nil {
		t.Fatalf("incompatibilities must be skipped by default, got error %v", err)
	}
	if len(report["A"]) == 0 {
		t.Fatalf("expected a reported incompatibility for 'A', got %v", report)
	}
	if ok, _ := target.Contains("A"); ok {
		t.Fatal("incompatible glyph must not be written to the target layer")
	}

	if _, err = target.Interpolate(fontparts.Uniform(0.5), light, bold,
		fontparts.FailOnIncompatible()); err == nil {
		t.Fatal("expected an error with FailOnIncompatible")
	}
}

func TestInterpolateAnalyzeOnly(t *testing.T) {
	font := New("Interp")
	defer font.Close()
	light := buildMaster(t, font, "light", 100, 700, 400)
	bold := buildMaster(t, font, "bold", 200, 710, 600)
	target, err := font.NewLayer("medium")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}

	report, err := target.Interpolate(fontparts.Uniform(0.5), light, bold,
		fontparts.AnalyzeOnly())
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if len(report) != 0 {
		t.Fatalf("expected a clean compatibility report, got %v", report)
	}
	if target.Len() != 0 {
		t.Fatal("analyze-only must not write any glyph data")
	}
}

func TestInterpolateSkipsNonCommonGlyphs(t *testing.T) {
	font := New("Interp")
	defer font.Close()
	light := buildMaster(t, font, "light", 100, 700, 400)
	bold := buildMaster(t, font, "bold", 200, 710, 600)
	if _, err := light.NewGlyph("B", true); err != nil {
		t.Fatalf("NewGlyph failed: %v", err)
	}
	target, err := font.NewLayer("medium")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}
	report, err := target.Interpolate(fontparts.Uniform(0.5), light, bold)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if len(report) != 0 {
		t.Fatalf("a glyph missing from one master is not an incompatibility: %v", report)
	}
	if ok, _ := target.Contains("B"); ok {
		t.Fatal("glyph missing from the maximum layer must not be interpolated")
	}
}
