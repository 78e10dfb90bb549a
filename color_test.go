package fontparts

import (
	"image/color"
	"testing"
)

func TestValidateColorComponents(t *testing.T) {
	c, err := ValidateColorComponents([]float64{0.2, 0.4, 0.6, 1})
	if err != nil {
		t.Fatalf("validation failed: %v", err)
	}
	if (c != Color{R: 0.2, G: 0.4, B: 0.6, A: 1}) {
		t.Fatalf("unexpected color %v", c)
	}
	cases := [][]float64{
		{},
		{1, 0, 0},
		{1, 0, 0, 1, 1},
		{-0.1, 0, 0, 1},
		{0, 0, 0, 1.01},
	}
	for _, components := range cases {
		if _, err := ValidateColorComponents(components); err == nil {
			t.Fatalf("expected validation of %v to fail", components)
		}
	}
}

func TestColorComponentsRoundTrip(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.25}
	back, err := ValidateColorComponents(c.Components())
	if err != nil {
		t.Fatalf("validation failed: %v", err)
	}
	if back != c {
		t.Fatalf("round trip changed the color: %v vs %v", back, c)
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if c.NRGBA() != want {
		t.Fatalf("NRGBA conversion yielded %v", c.NRGBA())
	}
}
