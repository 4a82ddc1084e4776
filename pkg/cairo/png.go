package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
*/
import "C"

// This file only hosts the exported write callback; WriteToPNGStream lives
// in surface.go. Cgo forbids C function definitions in a file that uses
// //export, so the function-pointer bridge is defined there.

import (
	"io"
	"runtime/cgo"
	"unsafe"
)

// goSurfaceWrite is the write callback handed to cairo's PNG encoder. The
// closure carries a cgo.Handle to an io.Writer; Go pointers must never be
// stored in C memory directly.
//
//export goSurfaceWrite
func goSurfaceWrite(closure unsafe.Pointer, data *C.uchar, length C.uint) C.cairo_status_t {
	w := cgo.Handle(uintptr(closure)).Value().(io.Writer)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	if _, err := w.Write(buf); err != nil {
		return C.CAIRO_STATUS_WRITE_ERROR
	}
	return C.CAIRO_STATUS_SUCCESS
}
