package cairo

import (
	"math"
	"testing"
)

func mustScaledFont(t *testing.T) *ScaledFont {
	t.Helper()
	face := mustToyFace(t, "serif", FontSlantNormal, FontWeightNormal)
	font, err := NewScaledFont(face, Scaling(10, 10), Identity(), nil)
	if err != nil {
		t.Fatalf("NewScaledFont failed: %v", err)
	}
	t.Cleanup(font.Destroy)
	return font
}

func finiteExtents(e TextExtents) bool {
	for _, v := range []float64{e.XBearing, e.YBearing, e.Width, e.Height, e.XAdvance, e.YAdvance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestNewScaledFont(t *testing.T) {
	font := mustScaledFont(t)
	if err := font.Status(); err != nil {
		t.Errorf("status = %v, want nil", err)
	}
}

func TestNewScaledFontNilFace(t *testing.T) {
	if _, err := NewScaledFont(nil, Scaling(10, 10), Identity(), nil); err != ErrNilPointer {
		t.Errorf("NewScaledFont(nil face) = %v, want ErrNilPointer", err)
	}
}

func TestScaledFontFace(t *testing.T) {
	font := mustScaledFont(t)
	face, err := font.FontFace()
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
}

func TestScaledFontMatrices(t *testing.T) {
	font := mustScaledFont(t)
	fm := font.FontMatrix()
	if fm.XX != 10 || fm.YY != 10 {
		t.Errorf("font matrix scale = (%v, %v), want (10, 10)", fm.XX, fm.YY)
	}
	ctm := font.CTM()
	if ctm != Identity() {
		t.Errorf("ctm = %+v, want identity", ctm)
	}
	scale := font.ScaleMatrix()
	if scale.XX != 10 || scale.YY != 10 {
		t.Errorf("scale matrix = (%v, %v), want (10, 10)", scale.XX, scale.YY)
	}
}

func TestScaledFontCTMDropsTranslation(t *testing.T) {
	face := mustToyFace(t, "serif", FontSlantNormal, FontWeightNormal)
	ctm := Identity()
	ctm.Translate(25, 50)
	font, err := NewScaledFont(face, Scaling(10, 10), ctm, nil)
	if err != nil {
		t.Fatalf("NewScaledFont failed: %v", err)
	}
	defer font.Destroy()
	got := font.CTM()
	if got.X0 != 0 || got.Y0 != 0 {
		t.Errorf("ctm offsets = (%v, %v), want (0, 0)", got.X0, got.Y0)
	}
}

func TestScaledFontExtents(t *testing.T) {
	font := mustScaledFont(t)
	extents, err := font.Extents()
	if err != nil {
		t.Fatalf("Extents failed: %v", err)
	}
	if extents.Ascent <= 0 {
		t.Errorf("ascent = %v, want > 0", extents.Ascent)
	}
	if extents.Height <= 0 {
		t.Errorf("height = %v, want > 0", extents.Height)
	}
}

func TestScaledFontTextExtents(t *testing.T) {
	font := mustScaledFont(t)
	extents, err := font.TextExtents("Hello")
	if err != nil {
		t.Fatalf("TextExtents failed: %v", err)
	}
	if !finiteExtents(extents) {
		t.Errorf("extents not finite: %+v", extents)
	}
	if extents.XAdvance <= 0 {
		t.Errorf("x advance = %v, want > 0", extents.XAdvance)
	}
}

func TestTextToGlyphs(t *testing.T) {
	font := mustScaledFont(t)
	glyphs, err := font.TextToGlyphs(0, 0, "A")
	if err != nil {
		t.Fatalf("TextToGlyphs failed: %v", err)
	}
	if len(glyphs) == 0 {
		t.Fatal("expected at least one glyph")
	}
	if glyphs[0].X != 0 {
		t.Errorf("first glyph x = %v, want 0", glyphs[0].X)
	}
}

func TestTextToGlyphsOrigin(t *testing.T) {
	font := mustScaledFont(t)
	glyphs, err := font.TextToGlyphs(5, 7, "A")
	if err != nil {
		t.Fatalf("TextToGlyphs failed: %v", err)
	}
	if len(glyphs) == 0 {
		t.Fatal("expected at least one glyph")
	}
	if glyphs[0].X != 5 || glyphs[0].Y != 7 {
		t.Errorf("first glyph at (%v, %v), want (5, 7)", glyphs[0].X, glyphs[0].Y)
	}
}

func TestTextToGlyphsEmbeddedNul(t *testing.T) {
	font := mustScaledFont(t)
	// The exact byte length is passed to cairo, so a NUL byte is an
	// ordinary codepoint rather than a terminator.
	glyphs, err := font.TextToGlyphs(0, 0, "A\x00B")
	if err != nil {
		t.Fatalf("TextToGlyphs failed: %v", err)
	}
	if len(glyphs) != 3 {
		t.Errorf("got %d glyphs for 3 codepoints, want 3", len(glyphs))
	}
}

func TestTextToGlyphsEmpty(t *testing.T) {
	font := mustScaledFont(t)
	glyphs, err := font.TextToGlyphs(0, 0, "")
	if err != nil {
		t.Fatalf("TextToGlyphs failed: %v", err)
	}
	if len(glyphs) != 0 {
		t.Errorf("got %d glyphs for empty text, want 0", len(glyphs))
	}
}

func TestTextToGlyphsClustered(t *testing.T) {
	font := mustScaledFont(t)
	text := "Ag"
	glyphs, clusters, flags, err := font.TextToGlyphsClustered(0, 0, text)
	if err != nil {
		t.Fatalf("TextToGlyphsClustered failed: %v", err)
	}
	if len(glyphs) == 0 {
		t.Fatal("expected glyphs")
	}
	if len(clusters) == 0 {
		t.Fatal("expected clusters")
	}
	if flags&ClusterFlagBackward != 0 {
		t.Error("latin text reported backward clusters")
	}
	var bytes, count int
	for _, c := range clusters {
		bytes += c.NumBytes
		count += c.NumGlyphs
	}
	if bytes != len(text) {
		t.Errorf("cluster bytes sum = %d, want %d", bytes, len(text))
	}
	if count != len(glyphs) {
		t.Errorf("cluster glyph sum = %d, want %d", count, len(glyphs))
	}
}

func TestGlyphExtentsEmpty(t *testing.T) {
	font := mustScaledFont(t)
	extents, err := font.GlyphExtents(nil)
	if err != nil {
		t.Fatalf("GlyphExtents(nil) failed: %v", err)
	}
	if extents != (TextExtents{}) {
		t.Errorf("GlyphExtents(nil) = %+v, want zero extents", extents)
	}
}

func TestGlyphExtentsRoundTrip(t *testing.T) {
	font := mustScaledFont(t)
	glyphs, err := font.TextToGlyphs(0, 0, "Ag")
	if err != nil {
		t.Fatalf("TextToGlyphs failed: %v", err)
	}
	extents, err := font.GlyphExtents(glyphs)
	if err != nil {
		t.Fatalf("GlyphExtents failed: %v", err)
	}
	if !finiteExtents(extents) {
		t.Errorf("extents not finite: %+v", extents)
	}
	if extents.Width <= 0 || extents.Height <= 0 {
		t.Errorf("inked rectangle = %vx%v, want positive", extents.Width, extents.Height)
	}
}

func TestScaledFontFromRawReferenceSymmetry(t *testing.T) {
	font := mustScaledFont(t)
	base := font.ReferenceCount()
	wrapped, err := ScaledFontFromRaw(font.Raw(), Reference)
	if err != nil {
		t.Fatalf("ScaledFontFromRaw failed: %v", err)
	}
	if got := font.ReferenceCount(); got != base+1 {
		t.Errorf("reference count after wrap = %d, want %d", got, base+1)
	}
	wrapped.Destroy()
	if got := font.ReferenceCount(); got != base {
		t.Errorf("reference count after release = %d, want %d", got, base)
	}
}

func TestScaledFontOptionsCopy(t *testing.T) {
	face := mustToyFace(t, "serif", FontSlantNormal, FontWeightNormal)
	options := mustFontOptions(t)
	if err := options.SetHintMetrics(HintMetricsOff); err != nil {
		t.Fatalf("SetHintMetrics failed: %v", err)
	}
	font, err := NewScaledFont(face, Scaling(10, 10), Identity(), options)
	if err != nil {
		t.Fatalf("NewScaledFont failed: %v", err)
	}
	defer font.Destroy()

	got, err := font.FontOptionsCopy()
	if err != nil {
		t.Fatalf("FontOptionsCopy failed: %v", err)
	}
	defer got.Destroy()
	if got.HintMetrics() != HintMetricsOff {
		t.Errorf("hint metrics = %v, want off", got.HintMetrics())
	}
}
