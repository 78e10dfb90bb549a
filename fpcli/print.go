package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/fontparts"
	"github.com/npillmayer/fontparts/memfont"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func printHelp() {
	pterm.Println(strings.TrimSpace(`
layers            list the font's layers
use <layer>       switch to a layer
info              show the current layer's name, color and size
glyphs [prefix]   list glyph names, optionally filtered by prefix
glyph <name>      show one glyph
cmap              show the layer's character mapping
color none        clear the layer color
color r g b a     set the layer color (components in 0..1)
rename <name>     rename the current layer
round             round all glyph data to integers
auto              assign Unicode values heuristically
quit              leave the CLI
`))
}

func printLayerList(layers []*fontparts.Layer) {
	data := pterm.TableData{
		{"Layer", "Color", "Glyphs"},
	}
	for _, layer := range layers {
		name, err := layer.Name()
		if err != nil {
			name = "?"
		}
		data = append(data, []string{name, colorLabel(layer), fmt.Sprintf("%d", layer.Len())})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLayerInfo(layer *fontparts.Layer) {
	name, err := layer.Name()
	if err != nil {
		name = "?"
	}
	pterm.Printf("Layer %q, color %s, %d glyph(s)\n", name, colorLabel(layer), layer.Len())
}

func colorLabel(layer *fontparts.Layer) string {
	opt, err := layer.Color()
	if err != nil {
		return "?"
	}
	if c, ok := opt.Unwrap(); ok {
		return c.String()
	}
	return "none"
}

func printGlyphList(layer *fontparts.Layer, prefix string) error {
	names, err := layer.GlyphNames()
	if err != nil {
		return err
	}
	slices.Sort(names)
	count := 0
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		pterm.Printf("%s\n", name)
		count++
	}
	pterm.Printf("%d glyph(s)\n", count)
	return nil
}

func printGlyph(layer *fontparts.Layer, name string) error {
	g, err := layer.Glyph(name)
	if err != nil {
		return err
	}
	pterm.Printf("Glyph %q\n", g.Name())
	if mg, ok := g.(*memfont.Glyph); ok {
		pterm.Printf("  advance    %g\n", mg.Advance)
		pterm.Printf("  contours   %d\n", len(mg.Contours))
		pterm.Printf("  components %d\n", len(mg.Components))
		for _, r := range mg.Unicodes {
			pterm.Printf("  unicode    %U %s\n", r, runenames.Name(r))
		}
	}
	return nil
}

func printCharacterMap(layer *fontparts.Layer) error {
	cmap, err := layer.CharacterMap()
	if err != nil {
		return err
	}
	runes := make([]rune, 0, len(cmap))
	for r := range cmap {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	data := pterm.TableData{
		{"Code point", "Character name", "Glyphs"},
	}
	for _, r := range runes {
		data = append(data, []string{
			fmt.Sprintf("%U", r),
			runenames.Name(r),
			strings.Join(cmap[r], ", "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d code point(s) mapped\n", len(runes))
	return nil
}
