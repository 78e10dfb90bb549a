/*
Package memfont is the in-memory reference environment for the
fontparts scripting surface.

It implements every storage hook of [fontparts.Backend] on plain Go
data structures: a [Font] owns named layers, each layer holds glyphs
with outlines, components, Unicode values and per-glyph metadata.
Nothing is persisted; the package exists as the canonical environment
for scripting sessions, tools and tests, and as a template for
adapters onto real editor storage.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package memfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontparts.mem'
func tracer() tracing.Trace {
	return tracing.Select("fontparts.mem")
}
