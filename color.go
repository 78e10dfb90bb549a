package fontparts

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a validated layer color. Components are normalized to the
// range [0, 1]. The zero value is opaque black; an absent color is
// modeled as None[Color], not as a special Color value.
type Color struct {
	R, G, B, A float64
}

// Components returns the color as a raw 4-component slice, suitable
// for handing back to a [Backend].
func (c Color) Components() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// NRGBA converts the color to the standard library's 8-bit
// non-premultiplied representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// String returns a compact representation, e.g. "(1, 0, 0, 0.5)".
func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// ValidateColorComponents checks a raw color tuple as delivered by an
// environment or a scripting caller: exactly 4 components, each a
// finite number in [0, 1]. On success the components are wrapped in a
// Color value.
func ValidateColorComponents(components []float64) (Color, error) {
	if len(components) != 4 {
		return Color{}, &ValidationError{
			Kind:   "color",
			Value:  components,
			Reason: fmt.Sprintf("expected 4 components, got %d", len(components)),
		}
	}
	for i, v := range components {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, &ValidationError{
				Kind:   "color",
				Value:  components,
				Reason: fmt.Sprintf("component %d is not a finite number", i),
			}
		}
		if v < 0 || v > 1 {
			return Color{}, &ValidationError{
				Kind:   "color",
				Value:  components,
				Reason: fmt.Sprintf("component %d is outside the range 0..1", i),
			}
		}
	}
	return Color{R: components[0], G: components[1], B: components[2], A: components[3]}, nil
}
