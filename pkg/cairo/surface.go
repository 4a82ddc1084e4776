package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
#include <stdlib.h>

extern cairo_status_t goSurfaceWrite(void *closure, unsigned char *data, unsigned int length);

static cairo_write_func_t go_surface_write_func(void) {
	return (cairo_write_func_t)goSurfaceWrite;
}
*/
import "C"

import (
	"io"
	"runtime"
	"runtime/cgo"
	"unsafe"
)

// ImageSurface is an in-memory raster surface.
type ImageSurface struct {
	ptr *C.cairo_surface_t
}

// NewImageSurface creates an image surface of the given format and size,
// initially fully transparent (or black for opaque formats).
func NewImageSurface(format Format, width, height int) (*ImageSurface, error) {
	return newImageSurface(C.cairo_image_surface_create(
		C.cairo_format_t(format), C.int(width), C.int(height)))
}

func newImageSurface(ptr *C.cairo_surface_t) (*ImageSurface, error) {
	if ptr == nil {
		return nil, ErrNilPointer
	}
	s := &ImageSurface{ptr: ptr}
	runtime.SetFinalizer(s, (*ImageSurface).Destroy)
	if err := s.Status(); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

// Status polls the surface's cairo status.
func (s *ImageSurface) Status() error {
	err := checkStatus(C.cairo_surface_status(s.ptr))
	runtime.KeepAlive(s)
	return err
}

// Destroy releases the surface's reference. Safe to call more than once.
func (s *ImageSurface) Destroy() {
	if s == nil || s.ptr == nil {
		return
	}
	runtime.SetFinalizer(s, nil)
	C.cairo_surface_destroy(s.ptr)
	s.ptr = nil
}

// Raw exposes the underlying cairo_surface_t pointer for interop. The
// pointer stays owned by the wrapper.
func (s *ImageSurface) Raw() unsafe.Pointer {
	return unsafe.Pointer(s.ptr)
}

// Flush completes any pending drawing so the surface's pixel data is
// consistent. Call before reading pixels directly.
func (s *ImageSurface) Flush() {
	C.cairo_surface_flush(s.ptr)
	runtime.KeepAlive(s)
}

// MarkDirty tells cairo the pixel data was modified outside of cairo.
func (s *ImageSurface) MarkDirty() {
	C.cairo_surface_mark_dirty(s.ptr)
	runtime.KeepAlive(s)
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	w := int(C.cairo_image_surface_get_width(s.ptr))
	runtime.KeepAlive(s)
	return w
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	h := int(C.cairo_image_surface_get_height(s.ptr))
	runtime.KeepAlive(s)
	return h
}

// Stride returns the byte distance between the starts of consecutive rows.
func (s *ImageSurface) Stride() int {
	n := int(C.cairo_image_surface_get_stride(s.ptr))
	runtime.KeepAlive(s)
	return n
}

// Format returns the surface's pixel format.
func (s *ImageSurface) Format() Format {
	f := Format(C.cairo_image_surface_get_format(s.ptr))
	runtime.KeepAlive(s)
	return f
}

// WriteToPNG writes the surface to a PNG file.
func (s *ImageSurface) WriteToPNG(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	status := C.cairo_surface_write_to_png(s.ptr, cpath)
	runtime.KeepAlive(s)
	return checkStatus(status)
}

// WriteToPNGStream encodes the surface as PNG to w. The writer is pinned
// through a cgo.Handle for the duration of the call.
func (s *ImageSurface) WriteToPNGStream(w io.Writer) error {
	if w == nil {
		return &ArgumentError{Op: "WriteToPNGStream", Reason: "nil writer"}
	}
	h := cgo.NewHandle(w)
	defer h.Delete()
	status := C.cairo_surface_write_to_png_stream(
		s.ptr, C.go_surface_write_func(), unsafe.Pointer(uintptr(h)))
	runtime.KeepAlive(s)
	return checkStatus(status)
}
