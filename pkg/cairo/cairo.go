// Package cairo provides CGO bindings to the cairo 2D graphics library,
// focused on the font subsystem: font faces, scaled fonts, font options,
// and text-to-glyph conversion.
//
// Every wrapper type owns exactly one cairo handle and releases it exactly
// once, either through an explicit Destroy call or through a finalizer when
// the wrapper becomes unreachable. Handles obtained from cairo rather than
// created here are wrapped with an explicit RefMode so the reference count
// stays symmetric.
//
// Handles are not safe for concurrent use; callers that share a wrapper
// across goroutines must synchronize externally, matching cairo's own
// threading contract.
package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
*/
import "C"

// RefMode says how a wrapper takes ownership of a pre-existing cairo handle.
type RefMode int

const (
	// Adopt takes over a fresh reference; the wrapper becomes the sole
	// owner and does not touch the reference count at wrap time.
	Adopt RefMode = iota
	// Reference borrows a handle owned elsewhere; the reference count is
	// incremented at wrap time so the wrapper's eventual release is
	// symmetric.
	Reference
)

// Version returns the runtime cairo version, encoded as
// major*10000 + minor*100 + micro.
func Version() int {
	return int(C.cairo_version())
}

// VersionString returns the runtime cairo version as a string, e.g. "1.18.0".
func VersionString() string {
	return C.GoString(C.cairo_version_string())
}
