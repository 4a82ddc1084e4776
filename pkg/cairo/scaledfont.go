package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Glyph is a positioned glyph, matching cairo_glyph_t. Index identifies the
// glyph in the font's internal numbering; X and Y position it in user
// space.
type Glyph struct {
	Index uint64
	X     float64
	Y     float64
}

// TextCluster maps a run of NumBytes UTF-8 bytes to a run of NumGlyphs
// consecutive glyphs, matching cairo_text_cluster_t.
type TextCluster struct {
	NumBytes  int
	NumGlyphs int
}

// FontExtents are font-wide metrics in user space.
type FontExtents struct {
	Ascent      float64
	Descent     float64
	Height      float64
	MaxXAdvance float64
	MaxYAdvance float64
}

// TextExtents describe the inked rectangle and advance of a piece of text
// or a glyph sequence, in user space.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

// ScaledFont is a font face scaled to a particular size and device
// transformation, with a particular set of font options.
type ScaledFont struct {
	ptr *C.cairo_scaled_font_t
}

// NewScaledFont creates a scaled font from a face, a font-space matrix (in
// the simplest case Scaling(size, size)), a user-to-device matrix, and font
// options. A nil options uses cairo's defaults.
func NewScaledFont(face Face, fontMatrix, ctm Matrix, options *FontOptions) (*ScaledFont, error) {
	if face == nil || face.raw() == nil {
		return nil, ErrNilPointer
	}
	if options == nil {
		defaults, err := NewFontOptions()
		if err != nil {
			return nil, err
		}
		defer defaults.Destroy()
		options = defaults
	}
	cfm := fontMatrix.toC()
	cctm := ctm.toC()
	ptr := C.cairo_scaled_font_create(face.raw(), &cfm, &cctm, options.ptr)
	runtime.KeepAlive(face)
	runtime.KeepAlive(options)
	return newScaledFont(ptr, Adopt)
}

// newScaledFont is the base initialization path for scaled font wrappers,
// shared by creation and by resolution of pre-existing handles.
func newScaledFont(ptr *C.cairo_scaled_font_t, mode RefMode) (*ScaledFont, error) {
	if ptr == nil {
		return nil, ErrNilPointer
	}
	if mode == Reference {
		C.cairo_scaled_font_reference(ptr)
	}
	f := &ScaledFont{ptr: ptr}
	runtime.SetFinalizer(f, (*ScaledFont).Destroy)
	if err := f.Status(); err != nil {
		f.Destroy()
		return nil, err
	}
	return f, nil
}

// ScaledFontFromRaw wraps an existing cairo_scaled_font_t pointer obtained
// from another cairo binding or API. mode must say whether the caller is
// handing over its own reference (Adopt) or sharing one owned elsewhere
// (Reference).
func ScaledFontFromRaw(ptr unsafe.Pointer, mode RefMode) (*ScaledFont, error) {
	return newScaledFont((*C.cairo_scaled_font_t)(ptr), mode)
}

// Status polls the scaled font's cairo status.
func (f *ScaledFont) Status() error {
	err := checkStatus(C.cairo_scaled_font_status(f.ptr))
	runtime.KeepAlive(f)
	return err
}

// ReferenceCount returns the scaled font's current cairo reference count.
func (f *ScaledFont) ReferenceCount() uint {
	n := uint(C.cairo_scaled_font_get_reference_count(f.ptr))
	runtime.KeepAlive(f)
	return n
}

// Destroy releases the scaled font's reference. Safe to call more than
// once; the finalizer becomes a no-op after an explicit Destroy.
func (f *ScaledFont) Destroy() {
	if f == nil || f.ptr == nil {
		return
	}
	runtime.SetFinalizer(f, nil)
	C.cairo_scaled_font_destroy(f.ptr)
	f.ptr = nil
}

// Raw exposes the underlying cairo_scaled_font_t pointer for interop. The
// pointer stays owned by the wrapper.
func (f *ScaledFont) Raw() unsafe.Pointer {
	return unsafe.Pointer(f.ptr)
}

// FontFace returns the face this scaled font uses, resolved to its
// concrete variant. The face handle is borrowed from cairo, so it is
// wrapped with Reference mode.
func (f *ScaledFont) FontFace() (Face, error) {
	face, err := wrapFontFace(C.cairo_scaled_font_get_font_face(f.ptr), Reference)
	runtime.KeepAlive(f)
	return face, err
}

// FontOptionsCopy returns a copy of the scaled font's options with an
// independent lifetime.
func (f *ScaledFont) FontOptionsCopy() (*FontOptions, error) {
	options, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	C.cairo_scaled_font_get_font_options(f.ptr, options.ptr)
	runtime.KeepAlive(f)
	if err := options.Status(); err != nil {
		options.Destroy()
		return nil, err
	}
	return options, nil
}

// FontMatrix returns a copy of the scaled font's font-space matrix.
func (f *ScaledFont) FontMatrix() Matrix {
	var cm C.cairo_matrix_t
	C.cairo_scaled_font_get_font_matrix(f.ptr, &cm)
	runtime.KeepAlive(f)
	return matrixFromC(&cm)
}

// CTM returns a copy of the scaled font's user-to-device matrix. Cairo
// drops the translation offsets, so X0 and Y0 are always zero.
func (f *ScaledFont) CTM() Matrix {
	var cm C.cairo_matrix_t
	C.cairo_scaled_font_get_ctm(f.ptr, &cm)
	runtime.KeepAlive(f)
	return matrixFromC(&cm)
}

// ScaleMatrix returns the product of the font matrix and the CTM, the
// transformation from font space to device space.
func (f *ScaledFont) ScaleMatrix() Matrix {
	var cm C.cairo_matrix_t
	C.cairo_scaled_font_get_scale_matrix(f.ptr, &cm)
	runtime.KeepAlive(f)
	return matrixFromC(&cm)
}

// Extents returns the scaled font's font-wide metrics.
func (f *ScaledFont) Extents() (FontExtents, error) {
	var ce C.cairo_font_extents_t
	C.cairo_scaled_font_extents(f.ptr, &ce)
	if err := f.Status(); err != nil {
		return FontExtents{}, err
	}
	return fontExtentsFromC(&ce), nil
}

// TextExtents returns the inked rectangle and advance for a UTF-8 string,
// as it would be drawn with this scaled font.
func (f *ScaledFont) TextExtents(text string) (TextExtents, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	var ce C.cairo_text_extents_t
	C.cairo_scaled_font_text_extents(f.ptr, ctext, &ce)
	if err := f.Status(); err != nil {
		return TextExtents{}, err
	}
	return textExtentsFromC(&ce), nil
}

// GlyphExtents returns the inked rectangle and advance for a glyph
// sequence, as returned by TextToGlyphs. An empty sequence yields zero
// extents without a cairo call.
func (f *ScaledFont) GlyphExtents(glyphs []Glyph) (TextExtents, error) {
	if len(glyphs) == 0 {
		return TextExtents{}, nil
	}
	cglyphs := glyphsToC(glyphs)
	var ce C.cairo_text_extents_t
	C.cairo_scaled_font_glyph_extents(f.ptr, &cglyphs[0], C.int(len(cglyphs)), &ce)
	if err := f.Status(); err != nil {
		return TextExtents{}, err
	}
	return textExtentsFromC(&ce), nil
}

// TextToGlyphs converts a UTF-8 string to glyphs positioned for rendering
// with this scaled font, placing the first glyph at (x, y). The exact byte
// length of text is passed to cairo, so strings containing NUL bytes
// convert intact.
//
// This is part of cairo's "toy" text API: convenient for simple programs,
// not adequate for serious text layout.
func (f *ScaledFont) TextToGlyphs(x, y float64, text string) ([]Glyph, error) {
	glyphs, _, _, err := f.textToGlyphs(x, y, text, false)
	return glyphs, err
}

// TextToGlyphsClustered is TextToGlyphs plus the cluster mapping from text
// bytes to glyphs, for use with Context.ShowTextGlyphs.
func (f *ScaledFont) TextToGlyphsClustered(x, y float64, text string) ([]Glyph, []TextCluster, ClusterFlags, error) {
	return f.textToGlyphs(x, y, text, true)
}

// textToGlyphs runs cairo's two-phase conversion protocol: query into
// cairo-allocated arrays, bind each array to its own deallocator, check
// status, then copy into Go slices before the arrays are freed. Cairo
// distinguishes "do not compute clusters" from "compute an empty cluster
// list" purely by the nullity of the cluster out-arguments.
func (f *ScaledFont) textToGlyphs(x, y float64, text string, withClusters bool) ([]Glyph, []TextCluster, ClusterFlags, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	var cglyphs *C.cairo_glyph_t
	var numGlyphs C.int
	var cclusters *C.cairo_text_cluster_t
	var numClusters C.int
	var cflags C.cairo_text_cluster_flags_t

	var status C.cairo_status_t
	if withClusters {
		status = C.cairo_scaled_font_text_to_glyphs(f.ptr,
			C.double(x), C.double(y), ctext, C.int(len(text)),
			&cglyphs, &numGlyphs, &cclusters, &numClusters, &cflags)
	} else {
		status = C.cairo_scaled_font_text_to_glyphs(f.ptr,
			C.double(x), C.double(y), ctext, C.int(len(text)),
			&cglyphs, &numGlyphs, nil, nil, nil)
	}
	runtime.KeepAlive(f)

	// The glyph and cluster arrays have distinct deallocators; each is
	// freed exactly once, on every return path, after the copy below.
	if cglyphs != nil {
		defer C.cairo_glyph_free(cglyphs)
	}
	if cclusters != nil {
		defer C.cairo_text_cluster_free(cclusters)
	}
	if err := checkStatus(status); err != nil {
		return nil, nil, 0, err
	}

	glyphs := make([]Glyph, int(numGlyphs))
	if numGlyphs > 0 {
		for i, g := range unsafe.Slice(cglyphs, int(numGlyphs)) {
			glyphs[i] = Glyph{Index: uint64(g.index), X: float64(g.x), Y: float64(g.y)}
		}
	}
	if !withClusters {
		return glyphs, nil, 0, nil
	}
	clusters := make([]TextCluster, int(numClusters))
	if numClusters > 0 {
		for i, c := range unsafe.Slice(cclusters, int(numClusters)) {
			clusters[i] = TextCluster{NumBytes: int(c.num_bytes), NumGlyphs: int(c.num_glyphs)}
		}
	}
	return glyphs, clusters, ClusterFlags(cflags), nil
}

// glyphsToC marshals glyphs into a contiguous array for input-only cairo
// calls. Nothing to release afterwards; the array is Go-allocated.
func glyphsToC(glyphs []Glyph) []C.cairo_glyph_t {
	out := make([]C.cairo_glyph_t, len(glyphs))
	for i, g := range glyphs {
		out[i] = C.cairo_glyph_t{
			index: C.ulong(g.Index),
			x:     C.double(g.X),
			y:     C.double(g.Y),
		}
	}
	return out
}

func clustersToC(clusters []TextCluster) []C.cairo_text_cluster_t {
	out := make([]C.cairo_text_cluster_t, len(clusters))
	for i, c := range clusters {
		out[i] = C.cairo_text_cluster_t{
			num_bytes: C.int(c.NumBytes),
			num_glyphs: C.int(c.NumGlyphs),
		}
	}
	return out
}

func fontExtentsFromC(ce *C.cairo_font_extents_t) FontExtents {
	return FontExtents{
		Ascent:      float64(ce.ascent),
		Descent:     float64(ce.descent),
		Height:      float64(ce.height),
		MaxXAdvance: float64(ce.max_x_advance),
		MaxYAdvance: float64(ce.max_y_advance),
	}
}

func textExtentsFromC(ce *C.cairo_text_extents_t) TextExtents {
	return TextExtents{
		XBearing: float64(ce.x_bearing),
		YBearing: float64(ce.y_bearing),
		Width:    float64(ce.width),
		Height:   float64(ce.height),
		XAdvance: float64(ce.x_advance),
		YAdvance: float64(ce.y_advance),
	}
}
