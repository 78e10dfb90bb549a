/*
Package fontparts provides a uniform scripting surface for font-editor
"layers": named, colored containers of glyphs inside a font.

Different font editors store layers natively in very different ways.
This package normalizes them behind one consistent API: the [Layer]
adapter validates all input, then delegates the actual storage work to
an environment-specific [Backend]. Environments that only support part
of the contract embed [UnimplementedBackend] and override the hooks
they can serve; calling a missing hook yields an [UnimplementedError]
instead of undefined behavior.

A layer never owns its font. The font exclusively owns the layer, and
the layer's back-reference is a non-owning handle: once the environment
releases the font (see [ReleaseFont]), dereferencing yields nil rather
than a dangling font.

Two reference environments ship with this module: `memfont` (a fully
mutable in-memory font) and `sfntlayer` (a read-only view onto a
compiled OpenType font).

# Status

The scripting surface covers identification (name, color), the glyph
container protocol, glyph mutation, global operations (rounding,
automatic Unicode assignment), interpolation and the reference
mappings. Glyph-level editing beyond insertion/removal is an
environment concern.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontparts

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontparts'
func tracer() tracing.Trace {
	return tracing.Select("fontparts")
}
