/*
Package sfntlayer exposes a compiled OpenType font (TTF or OTF) as a
read-only fontparts layer.

A compiled font has no layer model of its own; its flattened glyph set
is presented as a single layer named "foreground". Queries (glyph
names, membership, character map) are served from the font's `post`
and `cmap` tables via golang.org/x/image/font/sfnt. All mutating hooks
report an unimplemented operation, which makes this package the
canonical example of a partial environment built on
[fontparts.UnimplementedBackend].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntlayer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontparts.sfnt'
func tracer() tracing.Trace {
	return tracing.Select("fontparts.sfnt")
}
