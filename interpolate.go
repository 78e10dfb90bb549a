package fontparts

// Factor is an interpolation position on the line between a minimum
// layer (0) and a maximum layer (1). The x and y axes may be blended
// independently. Values outside [0, 1] extrapolate.
type Factor struct {
	X, Y float64
}

// Uniform returns a factor applying v to both axes.
func Uniform(v float64) Factor {
	return Factor{X: v, Y: v}
}

// FactorXY returns a factor with independent x and y values.
func FactorXY(x, y float64) Factor {
	return Factor{X: x, Y: y}
}

// InterpolateOptions collects the optional switches of
// [Layer.Interpolate]. The zero value means: skip incompatible glyphs
// silently, perform the interpolation, no progress reporting.
type InterpolateOptions struct {
	FailOnIncompatible bool
	AnalyzeOnly        bool
	ShowProgress       bool
}

// InterpolateOption configures a call to [Layer.Interpolate].
type InterpolateOption func(*InterpolateOptions)

// FailOnIncompatible makes interpolation return an error on the first
// structurally incompatible glyph instead of skipping it.
func FailOnIncompatible() InterpolateOption {
	return func(o *InterpolateOptions) { o.FailOnIncompatible = true }
}

// AnalyzeOnly turns the call into a dry-run compatibility check: no
// glyph data is written, and the returned report lists every detected
// incompatibility.
func AnalyzeOnly() InterpolateOption {
	return func(o *InterpolateOptions) { o.AnalyzeOnly = true }
}

// ShowProgress asks the environment to report interpolation progress
// through whatever channel it has (UI, trace log).
func ShowProgress() InterpolateOption {
	return func(o *InterpolateOptions) { o.ShowProgress = true }
}

// InterpolationReport maps a glyph name to the list of structural
// incompatibilities found between the two source layers for that
// glyph. An empty report means full compatibility.
type InterpolationReport map[string][]string
