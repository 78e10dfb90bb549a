package fontparts

import (
	"errors"
	"testing"
)

func TestValidateLayerName(t *testing.T) {
	for _, name := range []string{"foreground", "public.default", "Ébauche", "layer 1"} {
		validated, err := ValidateLayerName(name)
		if err != nil {
			t.Fatalf("expected %q to validate, got %v", name, err)
		}
		if validated != name {
			t.Fatalf("validation altered the name: %q vs %q", validated, name)
		}
	}
	var verr *ValidationError
	for _, name := range []string{"", "a\nb", "tab\there", string([]byte{0xff, 0xfe})} {
		if _, err := ValidateLayerName(name); !errors.As(err, &verr) {
			t.Fatalf("expected %q to fail validation, got %v", name, err)
		}
	}
}

func TestValidateGlyphName(t *testing.T) {
	if _, err := ValidateGlyphName("uni0041.alt"); err != nil {
		t.Fatalf("expected glyph name to validate, got %v", err)
	}
	var verr *ValidationError
	if _, err := ValidateGlyphName(""); !errors.As(err, &verr) {
		t.Fatalf("expected empty glyph name to fail, got %v", err)
	}
}
