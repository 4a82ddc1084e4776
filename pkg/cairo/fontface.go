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

// Face is implemented by all font face wrappers. Concrete variants embed
// *FontFace, so a Face always exposes the base wrapper's lifetime and
// status behavior regardless of its reported type.
type Face interface {
	// Status polls the face's cairo status.
	Status() error
	// Type returns the tag cairo reports for the face's concrete kind.
	Type() FontType
	// Destroy releases the face's reference. Safe to call more than once.
	Destroy()
	// Raw exposes the underlying cairo_font_face_t pointer for interop
	// with other cairo bindings. The pointer stays owned by the wrapper.
	Raw() unsafe.Pointer

	raw() *C.cairo_font_face_t
}

// FontFace is the generic font face wrapper. It is returned directly when
// cairo reports a font type this binding has no concrete variant for, which
// keeps resolution forward-compatible with newer cairo versions.
type FontFace struct {
	ptr *C.cairo_font_face_t
}

// faceWrappers maps cairo font type tags to concrete variant constructors.
// Variants are built around an already-initialized base wrapper rather than
// through their own creation path, since resolution wraps a pre-existing
// face instead of creating one.
var faceWrappers = map[FontType]func(*FontFace) Face{
	FontTypeToy: func(f *FontFace) Face { return &ToyFontFace{FontFace: f} },
}

// newFontFace is the base initialization path shared by every face wrapper.
// It refuses NULL, applies the ref mode, arms the finalizer, and polls
// status before exposing the wrapper.
func newFontFace(ptr *C.cairo_font_face_t, mode RefMode) (*FontFace, error) {
	if ptr == nil {
		return nil, ErrNilPointer
	}
	if mode == Reference {
		C.cairo_font_face_reference(ptr)
	}
	f := &FontFace{ptr: ptr}
	runtime.SetFinalizer(f, (*FontFace).Destroy)
	if err := f.Status(); err != nil {
		f.Destroy()
		return nil, err
	}
	return f, nil
}

// wrapFontFace resolves a pre-existing face pointer to the registered
// concrete variant for its type tag, or to the generic *FontFace when the
// tag is unrecognized.
func wrapFontFace(ptr *C.cairo_font_face_t, mode RefMode) (Face, error) {
	if ptr == nil {
		return nil, ErrNilPointer
	}
	tag := FontType(C.cairo_font_face_get_type(ptr))
	base, err := newFontFace(ptr, mode)
	if err != nil {
		return nil, err
	}
	if wrap, ok := faceWrappers[tag]; ok {
		return wrap(base), nil
	}
	return base, nil
}

// FontFaceFromRaw wraps an existing cairo_font_face_t pointer obtained from
// another cairo binding or API. The returned Face is the concrete variant
// matching the face's reported type, or a generic *FontFace for types this
// binding does not model. mode must say whether the caller is handing over
// its own reference (Adopt) or sharing one owned elsewhere (Reference).
func FontFaceFromRaw(ptr unsafe.Pointer, mode RefMode) (Face, error) {
	return wrapFontFace((*C.cairo_font_face_t)(ptr), mode)
}

// Status polls the face's cairo status.
func (f *FontFace) Status() error {
	err := checkStatus(C.cairo_font_face_status(f.ptr))
	runtime.KeepAlive(f)
	return err
}

// Type returns the tag cairo reports for the face's concrete kind.
func (f *FontFace) Type() FontType {
	t := FontType(C.cairo_font_face_get_type(f.ptr))
	runtime.KeepAlive(f)
	return t
}

// ReferenceCount returns the face's current cairo reference count.
func (f *FontFace) ReferenceCount() uint {
	n := uint(C.cairo_font_face_get_reference_count(f.ptr))
	runtime.KeepAlive(f)
	return n
}

// Destroy releases the face's reference. The release runs at most once;
// calling Destroy again, or letting the finalizer fire afterwards, is a
// no-op. Releasing a face whose status is an error is fine.
func (f *FontFace) Destroy() {
	if f == nil || f.ptr == nil {
		return
	}
	runtime.SetFinalizer(f, nil)
	C.cairo_font_face_destroy(f.ptr)
	f.ptr = nil
}

// Raw exposes the underlying pointer for interop. See Face.Raw.
func (f *FontFace) Raw() unsafe.Pointer {
	return unsafe.Pointer(f.ptr)
}

func (f *FontFace) raw() *C.cairo_font_face_t {
	return f.ptr
}

// ToyFontFace is a font face built from a family/slant/weight triplet, part
// of cairo's "toy" text API.
type ToyFontFace struct {
	*FontFace
}

// NewToyFontFace creates a toy font face. An empty family selects the
// platform-specific default family, which can then be read back with
// Family.
func NewToyFontFace(family string, slant FontSlant, weight FontWeight) (*ToyFontFace, error) {
	cfamily := C.CString(family)
	defer C.free(unsafe.Pointer(cfamily))
	base, err := newFontFace(C.cairo_toy_font_face_create(
		cfamily, C.cairo_font_slant_t(slant), C.cairo_font_weight_t(weight)), Adopt)
	if err != nil {
		return nil, err
	}
	return &ToyFontFace{FontFace: base}, nil
}

// Family returns the face's family name.
func (f *ToyFontFace) Family() string {
	s := C.GoString(C.cairo_toy_font_face_get_family(f.ptr))
	runtime.KeepAlive(f)
	return s
}

// Slant returns the face's slant.
func (f *ToyFontFace) Slant() FontSlant {
	s := FontSlant(C.cairo_toy_font_face_get_slant(f.ptr))
	runtime.KeepAlive(f)
	return s
}

// Weight returns the face's weight.
func (f *ToyFontFace) Weight() FontWeight {
	w := FontWeight(C.cairo_toy_font_face_get_weight(f.ptr))
	runtime.KeepAlive(f)
	return w
}
