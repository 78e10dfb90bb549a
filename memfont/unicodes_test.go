package memfont

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnicodeForGlyphName(t *testing.T) {
	cases := []struct {
		name string
		want rune
		ok   bool
	}{
		{"A", 'A', true},
		{"ä", 'ä', true},
		{"a.alt", 'a', true},
		{"comma", ',', true},
		{"space", ' ', true},
		{"uni0041", 'A', true},
		{"uni0041.sc", 'A', true},
		{"u1F4A9", '\U0001F4A9', true},
		{"uniXYZW", 0, false},
		{"uniD800", 0, false}, // surrogate
		{"Aacute.alt1.alt2", 0, false},
		{".notdef", 0, false},
	}
	for _, c := range cases {
		got, ok := unicodeForGlyphName(c.name)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("unicodeForGlyphName(%q) = %q, %v; want %q, %v",
				c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestAutoUnicodes(t *testing.T) {
	font := New("Demo")
	defer font.Close()
	layer, err := font.NewLayer("foreground")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}
	for _, name := range []string{"A", "comma", "uni00E9", "mysteryglyph"} {
		if _, err := layer.NewGlyph(name, true); err != nil {
			t.Fatalf("NewGlyph(%q) failed: %v", name, err)
		}
	}
	if err := layer.AutoUnicodes(); err != nil {
		t.Fatalf("AutoUnicodes failed: %v", err)
	}
	want := map[string][]rune{
		"A":            {'A'},
		"comma":        {','},
		"uni00E9":      {'é'},
		"mysteryglyph": nil,
	}
	for name, unicodes := range want {
		g, err := layer.Glyph(name)
		if err != nil {
			t.Fatalf("Glyph(%q) failed: %v", name, err)
		}
		if diff := cmp.Diff(unicodes, g.(*Glyph).Unicodes); diff != "" {
			t.Errorf("unicodes of %q (-want +got):\n%s", name, diff)
		}
	}
}

func TestCharacterMap(t *testing.T) {
	font := New("Demo")
	defer font.Close()
	layer, err := font.NewLayer("foreground")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}
	a, _ := layer.NewGlyph("A", true)
	a.(*Glyph).Unicodes = []rune{'A'}
	alt, _ := layer.NewGlyph("A.alt", true)
	alt.(*Glyph).Unicodes = []rune{'A'}
	b, _ := layer.NewGlyph("B", true)
	b.(*Glyph).Unicodes = []rune{'B'}
	if _, err := layer.NewGlyph("unmapped", true); err != nil {
		t.Fatalf("NewGlyph failed: %v", err)
	}

	cmap, err := layer.CharacterMap()
	if err != nil {
		t.Fatalf("CharacterMap failed: %v", err)
	}
	want := map[rune][]string{
		'A': {"A", "A.alt"},
		'B': {"B"},
	}
	if diff := cmp.Diff(want, cmap); diff != "" {
		t.Errorf("character map mismatch (-want +got):\n%s", diff)
	}
}

func TestReverseComponentMap(t *testing.T) {
	font := New("Demo")
	defer font.Close()
	layer, err := font.NewLayer("foreground")
	if err != nil {
		t.Fatalf("NewLayer failed: %v", err)
	}
	if _, err := layer.NewGlyph("A", true); err != nil {
		t.Fatalf("NewGlyph failed: %v", err)
	}
	aacute, _ := layer.NewGlyph("Aacute", true)
	aacute.(*Glyph).Components = []Component{
		{Base: "A", XScale: 1, YScale: 1},
		{Base: "acutecomb", XScale: 1, YScale: 1, YOffset: 200},
	}
	agrave, _ := layer.NewGlyph("Agrave", true)
	agrave.(*Glyph).Components = []Component{
		{Base: "A", XScale: 1, YScale: 1},
		{Base: "gravecomb", XScale: 1, YScale: 1, YOffset: 200},
	}

	rmap, err := layer.ReverseComponentMap()
	if err != nil {
		t.Fatalf("ReverseComponentMap failed: %v", err)
	}
	want := map[string][]string{
		"A":         {"Aacute", "Agrave"},
		"acutecomb": {"Aacute"},
		"gravecomb": {"Agrave"},
	}
	if diff := cmp.Diff(want, rmap); diff != "" {
		t.Errorf("reverse component map mismatch (-want +got):\n%s", diff)
	}
}
