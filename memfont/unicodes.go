package memfont

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// commonNames maps conventional glyph names to their Unicode values.
// This is a deliberately small excerpt of the Adobe Glyph List,
// covering the names that show up in practically every Latin font.
var commonNames = map[string]rune{
	"space":        ' ',
	"exclam":       '!',
	"quotedbl":     '"',
	"numbersign":   '#',
	"dollar":       '$',
	"percent":      '%',
	"ampersand":    '&',
	"quotesingle":  '\'',
	"parenleft":    '(',
	"parenright":   ')',
	"asterisk":     '*',
	"plus":         '+',
	"comma":        ',',
	"hyphen":       '-',
	"period":       '.',
	"slash":        '/',
	"zero":         '0',
	"one":          '1',
	"two":          '2',
	"three":        '3',
	"four":         '4',
	"five":         '5',
	"six":          '6',
	"seven":        '7',
	"eight":        '8',
	"nine":         '9',
	"colon":        ':',
	"semicolon":    ';',
	"less":         '<',
	"equal":        '=',
	"greater":      '>',
	"question":     '?',
	"at":           '@',
	"bracketleft":  '[',
	"backslash":    '\\',
	"bracketright": ']',
	"underscore":   '_',
	"braceleft":    '{',
	"bar":          '|',
	"braceright":   '}',
}

// unicodeForGlyphName guesses the Unicode value a glyph name stands
// for. Suffixes after the first period ("a.alt") are ignored, per the
// usual glyph naming convention. Recognized forms, in order:
//
//   - conventional names from the common-names table ("comma"),
//   - single-character names ("A", "ä"),
//   - "uni" followed by exactly four hex digits ("uni0041"),
//   - "u" followed by four to six hex digits ("u1F4A9").
func unicodeForGlyphName(name string) (rune, bool) {
	base, _, _ := strings.Cut(name, ".")
	if r, ok := commonNames[base]; ok {
		return r, true
	}
	if utf8.RuneCountInString(base) == 1 {
		r, _ := utf8.DecodeRuneInString(base)
		return r, r != utf8.RuneError
	}
	if hex, ok := strings.CutPrefix(base, "uni"); ok && len(hex) == 4 {
		return parseCodePoint(hex)
	}
	if hex, ok := strings.CutPrefix(base, "u"); ok && len(hex) >= 4 && len(hex) <= 6 {
		return parseCodePoint(hex)
	}
	return 0, false
}

func parseCodePoint(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if r > '\U0010FFFF' || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, false
	}
	return r, true
}
