package cairo

import "testing"

func mustContext(t *testing.T) *Context {
	t.Helper()
	surface := mustImageSurface(t, FormatARGB32, 200, 100)
	ctx, err := NewContext(surface)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	t.Cleanup(ctx.Destroy)
	return ctx
}

func TestNewContextNilSurface(t *testing.T) {
	if _, err := NewContext(nil); err != ErrNilPointer {
		t.Errorf("NewContext(nil) = %v, want ErrNilPointer", err)
	}
}

func TestSelectFontFaceAndShowText(t *testing.T) {
	ctx := mustContext(t)
	if err := ctx.SelectFontFace("serif", FontSlantNormal, FontWeightBold); err != nil {
		t.Fatalf("SelectFontFace failed: %v", err)
	}
	if err := ctx.SetFontSize(14); err != nil {
		t.Fatalf("SetFontSize failed: %v", err)
	}
	ctx.MoveTo(10, 50)
	ctx.SetSourceRGB(0, 0, 0)
	if err := ctx.ShowText("Hello"); err != nil {
		t.Fatalf("ShowText failed: %v", err)
	}
	if err := ctx.Status(); err != nil {
		t.Errorf("status after ShowText = %v, want nil", err)
	}
}

func TestContextFontFaceResolution(t *testing.T) {
	ctx := mustContext(t)
	if err := ctx.SelectFontFace("serif", FontSlantItalic, FontWeightNormal); err != nil {
		t.Fatalf("SelectFontFace failed: %v", err)
	}
	face, err := ctx.FontFace()
	if err != nil {
		t.Fatalf("FontFace failed: %v", err)
	}
	defer face.Destroy()
	toy, ok := face.(*ToyFontFace)
	if !ok {
		t.Fatalf("FontFace() = %T, want *ToyFontFace", face)
	}
	if got := toy.Family(); got != "serif" {
		t.Errorf("family = %q, want %q", got, "serif")
	}
	if got := toy.Slant(); got != FontSlantItalic {
		t.Errorf("slant = %v, want italic", got)
	}
}

func TestContextSetFontFace(t *testing.T) {
	ctx := mustContext(t)
	face := mustToyFace(t, "monospace", FontSlantNormal, FontWeightNormal)
	if err := ctx.SetFontFace(face); err != nil {
		t.Fatalf("SetFontFace failed: %v", err)
	}
	got, err := ctx.FontFace()
	if err != nil {
		t.Fatalf("FontFace failed: %v", err)
	}
	defer got.Destroy()
	toy, ok := got.(*ToyFontFace)
	if !ok {
		t.Fatalf("FontFace() = %T, want *ToyFontFace", got)
	}
	if family := toy.Family(); family != "monospace" {
		t.Errorf("family = %q, want %q", family, "monospace")
	}
}

func TestContextScaledFontRoundTrip(t *testing.T) {
	ctx := mustContext(t)
	font := mustScaledFont(t)
	if err := ctx.SetScaledFont(font); err != nil {
		t.Fatalf("SetScaledFont failed: %v", err)
	}
	got, err := ctx.ScaledFont()
	if err != nil {
		t.Fatalf("ScaledFont failed: %v", err)
	}
	defer got.Destroy()
	fm := got.FontMatrix()
	if fm.XX != 10 || fm.YY != 10 {
		t.Errorf("font matrix scale = (%v, %v), want (10, 10)", fm.XX, fm.YY)
	}
}

func TestContextFontMatrixRoundTrip(t *testing.T) {
	ctx := mustContext(t)
	want := Scaling(12, 18)
	if err := ctx.SetFontMatrix(want); err != nil {
		t.Fatalf("SetFontMatrix failed: %v", err)
	}
	if got := ctx.FontMatrix(); got != want {
		t.Errorf("FontMatrix() = %+v, want %+v", got, want)
	}
}

func TestContextFontOptionsRoundTrip(t *testing.T) {
	ctx := mustContext(t)
	options := mustFontOptions(t)
	if err := options.SetHintStyle(HintStyleNone); err != nil {
		t.Fatalf("SetHintStyle failed: %v", err)
	}
	if err := ctx.SetFontOptions(options); err != nil {
		t.Fatalf("SetFontOptions failed: %v", err)
	}
	got, err := ctx.FontOptionsCopy()
	if err != nil {
		t.Fatalf("FontOptionsCopy failed: %v", err)
	}
	defer got.Destroy()
	if style := got.HintStyle(); style != HintStyleNone {
		t.Errorf("hint style = %v, want none", style)
	}
}

func TestContextFontExtents(t *testing.T) {
	ctx := mustContext(t)
	if err := ctx.SetFontSize(20); err != nil {
		t.Fatalf("SetFontSize failed: %v", err)
	}
	extents, err := ctx.FontExtents()
	if err != nil {
		t.Fatalf("FontExtents failed: %v", err)
	}
	if extents.Ascent <= 0 || extents.Height <= 0 {
		t.Errorf("extents = %+v, want positive ascent and height", extents)
	}
}

func TestContextShowGlyphs(t *testing.T) {
	ctx := mustContext(t)
	font := mustScaledFont(t)
	if err := ctx.SetScaledFont(font); err != nil {
		t.Fatalf("SetScaledFont failed: %v", err)
	}
	glyphs, err := font.TextToGlyphs(10, 50, "Ab")
	if err != nil {
		t.Fatalf("TextToGlyphs failed: %v", err)
	}
	if err := ctx.ShowGlyphs(glyphs); err != nil {
		t.Fatalf("ShowGlyphs failed: %v", err)
	}
	if err := ctx.ShowGlyphs(nil); err != nil {
		t.Errorf("ShowGlyphs(nil) = %v, want nil", err)
	}
}

func TestContextShowTextGlyphs(t *testing.T) {
	ctx := mustContext(t)
	font := mustScaledFont(t)
	if err := ctx.SetScaledFont(font); err != nil {
		t.Fatalf("SetScaledFont failed: %v", err)
	}
	text := "Ab"
	glyphs, clusters, flags, err := font.TextToGlyphsClustered(10, 50, text)
	if err != nil {
		t.Fatalf("TextToGlyphsClustered failed: %v", err)
	}
	if err := ctx.ShowTextGlyphs(text, glyphs, clusters, flags); err != nil {
		t.Fatalf("ShowTextGlyphs failed: %v", err)
	}
}

func TestContextShowTextGlyphsEmpty(t *testing.T) {
	ctx := mustContext(t)
	err := ctx.ShowTextGlyphs("x", nil, nil, 0)
	if _, ok := err.(*ArgumentError); !ok {
		t.Errorf("ShowTextGlyphs with no glyphs = %v, want ArgumentError", err)
	}
}

func TestContextTextExtents(t *testing.T) {
	ctx := mustContext(t)
	if err := ctx.SetFontSize(16); err != nil {
		t.Fatalf("SetFontSize failed: %v", err)
	}
	extents, err := ctx.TextExtents("Hello")
	if err != nil {
		t.Fatalf("TextExtents failed: %v", err)
	}
	if extents.XAdvance <= 0 {
		t.Errorf("x advance = %v, want > 0", extents.XAdvance)
	}
	empty, err := ctx.GlyphExtents(nil)
	if err != nil {
		t.Fatalf("GlyphExtents(nil) failed: %v", err)
	}
	if empty != (TextExtents{}) {
		t.Errorf("GlyphExtents(nil) = %+v, want zero extents", empty)
	}
}
