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

// Context is a cairo drawing context. This binding exposes the text and
// font portion of the context API plus the minimal drawing calls needed to
// put glyphs on a surface.
type Context struct {
	ptr *C.cairo_t
}

// NewContext creates a drawing context targeting the given surface. The
// context keeps its own reference to the surface.
func NewContext(surface *ImageSurface) (*Context, error) {
	if surface == nil || surface.ptr == nil {
		return nil, ErrNilPointer
	}
	ptr := C.cairo_create(surface.ptr)
	runtime.KeepAlive(surface)
	if ptr == nil {
		return nil, ErrNilPointer
	}
	c := &Context{ptr: ptr}
	runtime.SetFinalizer(c, (*Context).Destroy)
	if err := c.Status(); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

// Status polls the context's cairo status.
func (c *Context) Status() error {
	err := checkStatus(C.cairo_status(c.ptr))
	runtime.KeepAlive(c)
	return err
}

// Destroy releases the context's reference. Safe to call more than once.
func (c *Context) Destroy() {
	if c == nil || c.ptr == nil {
		return
	}
	runtime.SetFinalizer(c, nil)
	C.cairo_destroy(c.ptr)
	c.ptr = nil
}

// MoveTo sets the current point.
func (c *Context) MoveTo(x, y float64) {
	C.cairo_move_to(c.ptr, C.double(x), C.double(y))
	runtime.KeepAlive(c)
}

// SetSourceRGB sets the source to an opaque color.
func (c *Context) SetSourceRGB(r, g, b float64) {
	C.cairo_set_source_rgb(c.ptr, C.double(r), C.double(g), C.double(b))
	runtime.KeepAlive(c)
}

// SetSourceRGBA sets the source to a translucent color.
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	C.cairo_set_source_rgba(c.ptr, C.double(r), C.double(g), C.double(b), C.double(a))
	runtime.KeepAlive(c)
}

// Paint paints the source over the whole clip region.
func (c *Context) Paint() error {
	C.cairo_paint(c.ptr)
	return c.Status()
}

// SelectFontFace installs a toy font face selected by family, slant and
// weight.
func (c *Context) SelectFontFace(family string, slant FontSlant, weight FontWeight) error {
	cfamily := C.CString(family)
	defer C.free(unsafe.Pointer(cfamily))
	C.cairo_select_font_face(c.ptr, cfamily,
		C.cairo_font_slant_t(slant), C.cairo_font_weight_t(weight))
	return c.Status()
}

// SetFontSize sets the font matrix to a scale by size.
func (c *Context) SetFontSize(size float64) error {
	C.cairo_set_font_size(c.ptr, C.double(size))
	return c.Status()
}

// SetFontMatrix sets the font-space transformation matrix.
func (c *Context) SetFontMatrix(m Matrix) error {
	cm := m.toC()
	C.cairo_set_font_matrix(c.ptr, &cm)
	return c.Status()
}

// FontMatrix returns a copy of the current font matrix.
func (c *Context) FontMatrix() Matrix {
	var cm C.cairo_matrix_t
	C.cairo_get_font_matrix(c.ptr, &cm)
	runtime.KeepAlive(c)
	return matrixFromC(&cm)
}

// SetFontOptions sets the custom font rendering options for the context.
func (c *Context) SetFontOptions(options *FontOptions) error {
	if options == nil || options.ptr == nil {
		return ErrNilPointer
	}
	C.cairo_set_font_options(c.ptr, options.ptr)
	runtime.KeepAlive(options)
	return c.Status()
}

// FontOptionsCopy returns a copy of the context's font options with an
// independent lifetime.
func (c *Context) FontOptionsCopy() (*FontOptions, error) {
	options, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	C.cairo_get_font_options(c.ptr, options.ptr)
	runtime.KeepAlive(c)
	if err := options.Status(); err != nil {
		options.Destroy()
		return nil, err
	}
	return options, nil
}

// SetFontFace replaces the context's current font face.
func (c *Context) SetFontFace(face Face) error {
	if face == nil || face.raw() == nil {
		return ErrNilPointer
	}
	C.cairo_set_font_face(c.ptr, face.raw())
	runtime.KeepAlive(face)
	return c.Status()
}

// FontFace returns the current font face, resolved to its concrete
// variant. The handle is borrowed from the context, so it is wrapped with
// Reference mode; destroying the returned face never invalidates the
// context's own reference.
func (c *Context) FontFace() (Face, error) {
	face, err := wrapFontFace(C.cairo_get_font_face(c.ptr), Reference)
	runtime.KeepAlive(c)
	return face, err
}

// SetScaledFont replaces the context's font face, font matrix and options
// with the scaled font's.
func (c *Context) SetScaledFont(font *ScaledFont) error {
	if font == nil || font.ptr == nil {
		return ErrNilPointer
	}
	C.cairo_set_scaled_font(c.ptr, font.ptr)
	runtime.KeepAlive(font)
	return c.Status()
}

// ScaledFont returns the current scaled font. The handle is borrowed from
// the context, so it is wrapped with Reference mode.
func (c *Context) ScaledFont() (*ScaledFont, error) {
	font, err := newScaledFont(C.cairo_get_scaled_font(c.ptr), Reference)
	runtime.KeepAlive(c)
	return font, err
}

// ShowText draws text at the current point, advancing it by the text's
// advance. Part of cairo's toy text API.
func (c *Context) ShowText(text string) error {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	C.cairo_show_text(c.ptr, ctext)
	return c.Status()
}

// ShowGlyphs draws positioned glyphs.
func (c *Context) ShowGlyphs(glyphs []Glyph) error {
	if len(glyphs) == 0 {
		return c.Status()
	}
	cglyphs := glyphsToC(glyphs)
	C.cairo_show_glyphs(c.ptr, &cglyphs[0], C.int(len(cglyphs)))
	return c.Status()
}

// ShowTextGlyphs draws glyphs with the cluster mapping back to the source
// text, which lets backends like PDF embed selectable text. glyphs and
// clusters should come from ScaledFont.TextToGlyphsClustered on the same
// scaled font. The exact byte length of text is passed to cairo.
func (c *Context) ShowTextGlyphs(text string, glyphs []Glyph, clusters []TextCluster, flags ClusterFlags) error {
	if len(glyphs) == 0 || len(clusters) == 0 {
		return &ArgumentError{Op: "ShowTextGlyphs", Reason: "empty glyph or cluster sequence"}
	}
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	cglyphs := glyphsToC(glyphs)
	cclusters := clustersToC(clusters)
	C.cairo_show_text_glyphs(c.ptr, ctext, C.int(len(text)),
		&cglyphs[0], C.int(len(cglyphs)),
		&cclusters[0], C.int(len(cclusters)),
		C.cairo_text_cluster_flags_t(flags))
	return c.Status()
}

// FontExtents returns the font-wide metrics for the current font.
func (c *Context) FontExtents() (FontExtents, error) {
	var ce C.cairo_font_extents_t
	C.cairo_font_extents(c.ptr, &ce)
	if err := c.Status(); err != nil {
		return FontExtents{}, err
	}
	return fontExtentsFromC(&ce), nil
}

// TextExtents returns the inked rectangle and advance for a UTF-8 string
// drawn with the current font.
func (c *Context) TextExtents(text string) (TextExtents, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	var ce C.cairo_text_extents_t
	C.cairo_text_extents(c.ptr, ctext, &ce)
	if err := c.Status(); err != nil {
		return TextExtents{}, err
	}
	return textExtentsFromC(&ce), nil
}

// GlyphExtents returns the inked rectangle and advance for a glyph
// sequence drawn with the current font. An empty sequence yields zero
// extents without a cairo call.
func (c *Context) GlyphExtents(glyphs []Glyph) (TextExtents, error) {
	if len(glyphs) == 0 {
		return TextExtents{}, nil
	}
	cglyphs := glyphsToC(glyphs)
	var ce C.cairo_text_extents_t
	C.cairo_glyph_extents(c.ptr, &cglyphs[0], C.int(len(cglyphs)), &ce)
	if err := c.Status(); err != nil {
		return TextExtents{}, err
	}
	return textExtentsFromC(&ce), nil
}
