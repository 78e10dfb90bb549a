package fontparts

import (
	"unicode"
	"unicode/utf8"
)

// ValidateLayerName checks that name is a well-formed layer name:
// non-empty, valid UTF-8, and free of control characters. The
// validated name is returned unchanged.
func ValidateLayerName(name string) (string, error) {
	if err := validateName("layer name", name); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateGlyphName checks that name is a well-formed glyph name.
// The rules are the same as for layer names.
func ValidateGlyphName(name string) (string, error) {
	if err := validateName("glyph name", name); err != nil {
		return "", err
	}
	return name, nil
}

func validateName(kind string, name string) error {
	if name == "" {
		return &ValidationError{Kind: kind, Value: name, Reason: "must not be empty"}
	}
	if !utf8.ValidString(name) {
		return &ValidationError{Kind: kind, Value: name, Reason: "is not valid UTF-8"}
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return &ValidationError{Kind: kind, Value: name, Reason: "contains a control character"}
		}
	}
	return nil
}
