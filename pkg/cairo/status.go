package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
*/
import "C"

import (
	"errors"
	"fmt"
)

// Status mirrors cairo_status_t. Cairo calls never fail by return value
// alone; failure is reported through a status that must be polled after
// every mutating call.
type Status int

// Status codes. The set is open-ended: cairo versions newer than this
// binding may report codes with no named constant here, and those still
// translate into a StatusError with cairo's own message.
const (
	StatusSuccess             Status = C.CAIRO_STATUS_SUCCESS
	StatusNoMemory            Status = C.CAIRO_STATUS_NO_MEMORY
	StatusInvalidRestore      Status = C.CAIRO_STATUS_INVALID_RESTORE
	StatusNoCurrentPoint      Status = C.CAIRO_STATUS_NO_CURRENT_POINT
	StatusInvalidMatrix       Status = C.CAIRO_STATUS_INVALID_MATRIX
	StatusInvalidStatus       Status = C.CAIRO_STATUS_INVALID_STATUS
	StatusNullPointer         Status = C.CAIRO_STATUS_NULL_POINTER
	StatusInvalidString       Status = C.CAIRO_STATUS_INVALID_STRING
	StatusReadError           Status = C.CAIRO_STATUS_READ_ERROR
	StatusWriteError          Status = C.CAIRO_STATUS_WRITE_ERROR
	StatusSurfaceFinished     Status = C.CAIRO_STATUS_SURFACE_FINISHED
	StatusInvalidContent      Status = C.CAIRO_STATUS_INVALID_CONTENT
	StatusInvalidFormat       Status = C.CAIRO_STATUS_INVALID_FORMAT
	StatusFileNotFound        Status = C.CAIRO_STATUS_FILE_NOT_FOUND
	StatusInvalidStride       Status = C.CAIRO_STATUS_INVALID_STRIDE
	StatusFontTypeMismatch    Status = C.CAIRO_STATUS_FONT_TYPE_MISMATCH
	StatusUserFontError       Status = C.CAIRO_STATUS_USER_FONT_ERROR
	StatusNegativeCount       Status = C.CAIRO_STATUS_NEGATIVE_COUNT
	StatusInvalidClusters     Status = C.CAIRO_STATUS_INVALID_CLUSTERS
	StatusInvalidSlant        Status = C.CAIRO_STATUS_INVALID_SLANT
	StatusInvalidWeight       Status = C.CAIRO_STATUS_INVALID_WEIGHT
	StatusInvalidSize         Status = C.CAIRO_STATUS_INVALID_SIZE
	StatusDeviceError         Status = C.CAIRO_STATUS_DEVICE_ERROR
)

// String returns cairo's human-readable description for the status.
func (s Status) String() string {
	return C.GoString(C.cairo_status_to_string(C.cairo_status_t(s)))
}

// ErrNilPointer reports that a required cairo handle was NULL. Wrapping a
// NULL handle is unconditionally fatal to that construction; no
// partially-initialized wrapper is ever returned.
var ErrNilPointer = errors.New("cairo: nil pointer")

// StatusError reports a non-success status polled after a cairo call.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cairo: %s (status %d)", e.Status, int(e.Status))
}

// ArgumentError reports a caller-side argument problem detected before any
// cairo call is made.
type ArgumentError struct {
	Op     string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("cairo: %s: %s", e.Op, e.Reason)
}

// checkStatus translates a cairo status into an error. The success sentinel
// passes silently; everything else becomes a StatusError.
func checkStatus(status C.cairo_status_t) error {
	if Status(status) == StatusSuccess {
		return nil
	}
	return &StatusError{Status: Status(status)}
}
