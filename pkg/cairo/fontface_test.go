package cairo

import (
	"errors"
	"testing"
)

func mustToyFace(t *testing.T, family string, slant FontSlant, weight FontWeight) *ToyFontFace {
	t.Helper()
	face, err := NewToyFontFace(family, slant, weight)
	if err != nil {
		t.Fatalf("NewToyFontFace(%q) failed: %v", family, err)
	}
	t.Cleanup(face.Destroy)
	return face
}

func TestNewToyFontFace(t *testing.T) {
	tests := []struct {
		family string
		slant  FontSlant
		weight FontWeight
	}{
		{"", FontSlantNormal, FontWeightNormal},
		{"serif", FontSlantItalic, FontWeightBold},
		{"sans-serif", FontSlantOblique, FontWeightNormal},
	}
	for _, tt := range tests {
		face := mustToyFace(t, tt.family, tt.slant, tt.weight)
		if err := face.Status(); err != nil {
			t.Errorf("face %q status = %v, want nil", tt.family, err)
		}
		if got := face.Type(); got != FontTypeToy {
			t.Errorf("face %q type = %v, want FontTypeToy", tt.family, got)
		}
		if got := face.Slant(); got != tt.slant {
			t.Errorf("face %q slant = %v, want %v", tt.family, got, tt.slant)
		}
		if got := face.Weight(); got != tt.weight {
			t.Errorf("face %q weight = %v, want %v", tt.family, got, tt.weight)
		}
	}
}

func TestToyFontFaceFamily(t *testing.T) {
	face := mustToyFace(t, "serif", FontSlantNormal, FontWeightNormal)
	if got := face.Family(); got != "serif" {
		t.Errorf("Family() = %q, want %q", got, "serif")
	}
}

func TestToyFontFaceDefaultFamily(t *testing.T) {
	face := mustToyFace(t, "", FontSlantNormal, FontWeightNormal)
	// The empty family resolves to a platform default; it must be readable
	// back, whatever it is.
	_ = face.Family()
	if err := face.Status(); err != nil {
		t.Errorf("status after Family() = %v, want nil", err)
	}
}

func TestFontFaceFromRawResolvesToyVariant(t *testing.T) {
	face := mustToyFace(t, "serif", FontSlantNormal, FontWeightNormal)
	resolved, err := FontFaceFromRaw(face.Raw(), Reference)
	if err != nil {
		t.Fatalf("FontFaceFromRaw failed: %v", err)
	}
	defer resolved.Destroy()
	toy, ok := resolved.(*ToyFontFace)
	if !ok {
		t.Fatalf("resolved face is %T, want *ToyFontFace", resolved)
	}
	if got := toy.Family(); got != "serif" {
		t.Errorf("resolved family = %q, want %q", got, "serif")
	}
}

func TestFontFaceFromRawUnknownTagFallsBack(t *testing.T) {
	// Temporarily drop the toy wrapper registration so the toy tag behaves
	// like a tag this binding does not model.
	orig := faceWrappers[FontTypeToy]
	delete(faceWrappers, FontTypeToy)
	defer func() { faceWrappers[FontTypeToy] = orig }()

	face := mustToyFace(t, "serif", FontSlantNormal, FontWeightNormal)
	resolved, err := FontFaceFromRaw(face.Raw(), Reference)
	if err != nil {
		t.Fatalf("FontFaceFromRaw failed: %v", err)
	}
	defer resolved.Destroy()
	if _, ok := resolved.(*FontFace); !ok {
		t.Errorf("resolved face is %T, want generic *FontFace", resolved)
	}
	if got := resolved.Type(); got != FontTypeToy {
		t.Errorf("resolved type = %v, want FontTypeToy", got)
	}
}

func TestFontFaceFromRawNil(t *testing.T) {
	for _, mode := range []RefMode{Adopt, Reference} {
		if _, err := FontFaceFromRaw(nil, mode); !errors.Is(err, ErrNilPointer) {
			t.Errorf("FontFaceFromRaw(nil, %v) = %v, want ErrNilPointer", mode, err)
		}
	}
}

func TestReferenceCountSymmetry(t *testing.T) {
	face, err := NewToyFontFace("serif", FontSlantNormal, FontWeightNormal)
	if err != nil {
		t.Fatalf("NewToyFontFace failed: %v", err)
	}
	base := face.ReferenceCount()

	a, err := FontFaceFromRaw(face.Raw(), Reference)
	if err != nil {
		t.Fatalf("first wrap failed: %v", err)
	}
	b, err := FontFaceFromRaw(face.Raw(), Reference)
	if err != nil {
		t.Fatalf("second wrap failed: %v", err)
	}
	if got := face.ReferenceCount(); got != base+2 {
		t.Errorf("reference count after two wraps = %d, want %d", got, base+2)
	}

	a.Destroy()
	b.Destroy()
	if got := face.ReferenceCount(); got != base {
		t.Errorf("reference count after releases = %d, want %d", got, base)
	}
	if err := face.Status(); err != nil {
		t.Errorf("status after releases = %v, want nil", err)
	}
	face.Destroy()
}

func TestDestroyIdempotent(t *testing.T) {
	face, err := NewToyFontFace("serif", FontSlantNormal, FontWeightNormal)
	if err != nil {
		t.Fatalf("NewToyFontFace failed: %v", err)
	}
	face.Destroy()
	face.Destroy() // must be a no-op
}
