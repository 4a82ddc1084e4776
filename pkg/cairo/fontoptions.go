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

// FontOptions holds all options used when rendering fonts. Cairo may grow
// new options over time, so Equal, Hash, Copy and Merge delegate entirely
// to cairo and cover options this binding has no named accessor for.
//
// Font options are not reference counted; Copy is the only way to share
// state, and copies are fully independent.
type FontOptions struct {
	ptr *C.cairo_font_options_t
}

// NewFontOptions creates a font options object with all options at their
// default values.
func NewFontOptions() (*FontOptions, error) {
	return newFontOptions(C.cairo_font_options_create())
}

func newFontOptions(ptr *C.cairo_font_options_t) (*FontOptions, error) {
	if ptr == nil {
		return nil, ErrNilPointer
	}
	o := &FontOptions{ptr: ptr}
	runtime.SetFinalizer(o, (*FontOptions).Destroy)
	if err := o.Status(); err != nil {
		o.Destroy()
		return nil, err
	}
	return o, nil
}

// Status polls the options object's cairo status.
func (o *FontOptions) Status() error {
	err := checkStatus(C.cairo_font_options_status(o.ptr))
	runtime.KeepAlive(o)
	return err
}

// Destroy releases the options object. Safe to call more than once.
func (o *FontOptions) Destroy() {
	if o == nil || o.ptr == nil {
		return
	}
	runtime.SetFinalizer(o, nil)
	C.cairo_font_options_destroy(o.ptr)
	o.ptr = nil
}

// Copy returns a new options object with the same values and an independent
// lifetime. Mutating either copy never affects the other.
func (o *FontOptions) Copy() (*FontOptions, error) {
	ptr := C.cairo_font_options_copy(o.ptr)
	runtime.KeepAlive(o)
	return newFontOptions(ptr)
}

// Merge overlays other onto o in place: options set to a non-default value
// in other replace o's values, options left at their default in other
// leave o untouched. The operation is directional, so a.Merge(b) and
// b.Merge(a) generally produce different results.
func (o *FontOptions) Merge(other *FontOptions) error {
	if other == nil || other.ptr == nil {
		return ErrNilPointer
	}
	C.cairo_font_options_merge(o.ptr, other.ptr)
	runtime.KeepAlive(other)
	return o.Status()
}

// Equal reports whether both objects hold the same values for every option
// cairo stores, including options this binding exposes no accessor for.
func (o *FontOptions) Equal(other *FontOptions) bool {
	if other == nil || other.ptr == nil {
		return false
	}
	eq := C.cairo_font_options_equal(o.ptr, other.ptr) != 0
	runtime.KeepAlive(o)
	runtime.KeepAlive(other)
	return eq
}

// Hash returns a hash of the full option set, consistent with Equal.
func (o *FontOptions) Hash() uint64 {
	h := uint64(C.cairo_font_options_hash(o.ptr))
	runtime.KeepAlive(o)
	return h
}

// SetAntialias sets the antialiasing mode.
func (o *FontOptions) SetAntialias(antialias Antialias) error {
	C.cairo_font_options_set_antialias(o.ptr, C.cairo_antialias_t(antialias))
	return o.Status()
}

// Antialias returns the antialiasing mode.
func (o *FontOptions) Antialias() Antialias {
	a := Antialias(C.cairo_font_options_get_antialias(o.ptr))
	runtime.KeepAlive(o)
	return a
}

// SetSubpixelOrder sets the order of color elements within each pixel when
// rendering with AntialiasSubpixel.
func (o *FontOptions) SetSubpixelOrder(order SubpixelOrder) error {
	C.cairo_font_options_set_subpixel_order(o.ptr, C.cairo_subpixel_order_t(order))
	return o.Status()
}

// SubpixelOrder returns the subpixel order.
func (o *FontOptions) SubpixelOrder() SubpixelOrder {
	s := SubpixelOrder(C.cairo_font_options_get_subpixel_order(o.ptr))
	runtime.KeepAlive(o)
	return s
}

// SetHintStyle sets whether and how strongly to fit outlines to the pixel
// grid.
func (o *FontOptions) SetHintStyle(style HintStyle) error {
	C.cairo_font_options_set_hint_style(o.ptr, C.cairo_hint_style_t(style))
	return o.Status()
}

// HintStyle returns the hint style.
func (o *FontOptions) HintStyle() HintStyle {
	h := HintStyle(C.cairo_font_options_get_hint_style(o.ptr))
	runtime.KeepAlive(o)
	return h
}

// SetHintMetrics sets whether metrics are quantized to integer device
// units.
func (o *FontOptions) SetHintMetrics(metrics HintMetrics) error {
	C.cairo_font_options_set_hint_metrics(o.ptr, C.cairo_hint_metrics_t(metrics))
	return o.Status()
}

// HintMetrics returns the metrics hinting mode.
func (o *FontOptions) HintMetrics() HintMetrics {
	h := HintMetrics(C.cairo_font_options_get_hint_metrics(o.ptr))
	runtime.KeepAlive(o)
	return h
}

// SetVariations sets the OpenType font variations, as a comma-separated
// list of axis assignments like "wght=200,wdth=140.5". The empty string is
// a valid value distinct from the unset state; use ClearVariations to
// unset.
//
// Requires cairo 1.16 or newer.
func (o *FontOptions) SetVariations(variations string) error {
	cvariations := C.CString(variations)
	defer C.free(unsafe.Pointer(cvariations))
	C.cairo_font_options_set_variations(o.ptr, cvariations)
	return o.Status()
}

// ClearVariations resets the variations to the unset state.
func (o *FontOptions) ClearVariations() error {
	C.cairo_font_options_set_variations(o.ptr, nil)
	return o.Status()
}

// Variations returns the OpenType font variations and whether any are set.
func (o *FontOptions) Variations() (string, bool) {
	cvariations := C.cairo_font_options_get_variations(o.ptr)
	runtime.KeepAlive(o)
	if cvariations == nil {
		return "", false
	}
	return C.GoString(cvariations), true
}
