package sfntlayer

import (
	"fmt"
	"os"

	"github.com/npillmayer/fontparts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// layerName is the name under which a compiled font's flattened glyph
// set is presented.
const layerName = "foreground"

// FontFile is a parsed scalable font with original bytes and SFNT view.
type FontFile struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// Load loads an OpenType font (TTF or OTF) from a file.
func Load(fontfile string) (*FontFile, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return Parse(bytez)
}

// Parse loads an OpenType font (TTF or OTF) from memory.
func Parse(fbytes []byte) (ff *FontFile, err error) {
	ff = &FontFile{Binary: fbytes}
	ff.SFNT, err = sfnt.Parse(ff.Binary)
	if err != nil {
		return nil, err
	}
	if ff.Fontname, err = ff.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", ff.Fontname)
	}
	return ff, nil
}

// LayerOrder implements fontparts.Font: a compiled font carries
// exactly one layer.
func (ff *FontFile) LayerOrder() []string {
	return []string{layerName}
}

// Layer returns the scripting adapter for the font's glyph set. The
// layer is attached to ff as its owning font.
func (ff *FontFile) Layer() (*fontparts.Layer, error) {
	b := &backend{ff: ff}
	b.buildNameIndex()
	layer := fontparts.NewLayer(b)
	if err := layer.SetFont(ff); err != nil {
		return nil, err
	}
	return layer, nil
}

// Close releases the font's scripting handle; layers handed out by
// [FontFile.Layer] observe "no font" afterwards.
func (ff *FontFile) Close() {
	fontparts.ReleaseFont(ff)
}

// Glyph is a read-only view onto one glyph of a compiled font.
type Glyph struct {
	name string
	id   sfnt.GlyphIndex
	ff   *FontFile
}

// Name returns the glyph's name from the font's post table, or a
// synthesized "glyphNNNNN" name if the font carries none.
func (g *Glyph) Name() string {
	return g.name
}

// Index returns the glyph's index in the compiled font.
func (g *Glyph) Index() sfnt.GlyphIndex {
	return g.id
}

// Advance returns the glyph's advance width in font units.
func (g *Glyph) Advance() (float64, error) {
	var buf sfnt.Buffer
	upem := fixed.I(int(g.ff.SFNT.UnitsPerEm()))
	adv, err := g.ff.SFNT.GlyphAdvance(&buf, g.id, upem, font.HintingNone)
	if err != nil {
		return 0, err
	}
	return float64(adv) / 64.0, nil
}

// backend serves the read-only subset of the layer contract; every
// mutating hook is inherited from UnimplementedBackend.
type backend struct {
	fontparts.UnimplementedBackend
	ff    *FontFile
	names []string
	index map[string]sfnt.GlyphIndex
}

var _ fontparts.Backend = (*backend)(nil)
var _ fontparts.GlyphCounter = (*backend)(nil)
var _ fontparts.GlyphContainer = (*backend)(nil)

// buildNameIndex reads glyph names from the post table once. Fonts
// without usable post names get synthesized "glyphNNNNN" names, as do
// duplicates.
func (b *backend) buildNameIndex() {
	var buf sfnt.Buffer
	n := b.ff.SFNT.NumGlyphs()
	b.names = make([]string, n)
	b.index = make(map[string]sfnt.GlyphIndex, n)
	for i := 0; i < n; i++ {
		id := sfnt.GlyphIndex(i)
		name, err := b.ff.SFNT.GlyphName(&buf, id)
		if err != nil || name == "" {
			name = fmt.Sprintf("glyph%05d", i)
		}
		if _, taken := b.index[name]; taken {
			tracer().Infof("duplicate glyph name %q in font, synthesizing", name)
			name = fmt.Sprintf("glyph%05d", i)
		}
		b.names[i] = name
		b.index[name] = id
	}
}

func (b *backend) Name() (string, error) {
	return layerName, nil
}

// Color returns "no color": compiled fonts have no layer color marks.
func (b *backend) Color() ([]float64, error) {
	return nil, nil
}

func (b *backend) Glyph(name string) (fontparts.Glyph, error) {
	id, ok := b.index[name]
	if !ok {
		return nil, &fontparts.NotFoundError{Name: name}
	}
	return &Glyph{name: name, id: id, ff: b.ff}, nil
}

func (b *backend) GlyphNames() ([]string, error) {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out, nil
}

func (b *backend) GlyphCount() (int, error) {
	return len(b.names), nil
}

func (b *backend) HasGlyph(name string) (bool, error) {
	_, ok := b.index[name]
	return ok, nil
}

// CharacterMap scans the font's cmap for the Basic Multilingual Plane
// plus the supplementary planes up to U+2FFFF, which covers the
// character repertoire of practically every text font.
func (b *backend) CharacterMap() (map[rune][]string, error) {
	var buf sfnt.Buffer
	cmap := make(map[rune][]string)
	for r := rune(0); r <= 0x2FFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue // surrogates
		}
		id, err := b.ff.SFNT.GlyphIndex(&buf, r)
		if err != nil || id == 0 || int(id) >= len(b.names) {
			continue
		}
		cmap[r] = append(cmap[r], b.names[int(id)])
	}
	return cmap, nil
}
