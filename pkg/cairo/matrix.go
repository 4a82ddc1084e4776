package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
*/
import "C"

// Matrix is an affine transformation, laid out like cairo_matrix_t:
// a point (x, y) transforms to (XX*x + XY*y + X0, YX*x + YY*y + Y0).
// Matrices are plain values; they are copied into cairo on every call and
// carry no handle of their own.
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Scaling returns a matrix scaling by sx and sy. A scaled font built from
// Scaling(n, n) and an identity CTM behaves like an n-point font.
func Scaling(sx, sy float64) Matrix {
	var m C.cairo_matrix_t
	C.cairo_matrix_init_scale(&m, C.double(sx), C.double(sy))
	return matrixFromC(&m)
}

// Translation returns a matrix translating by tx and ty.
func Translation(tx, ty float64) Matrix {
	var m C.cairo_matrix_t
	C.cairo_matrix_init_translate(&m, C.double(tx), C.double(ty))
	return matrixFromC(&m)
}

// Rotation returns a matrix rotating by radians.
func Rotation(radians float64) Matrix {
	var m C.cairo_matrix_t
	C.cairo_matrix_init_rotate(&m, C.double(radians))
	return matrixFromC(&m)
}

// Translate applies a translation before the existing transformation.
func (m *Matrix) Translate(tx, ty float64) {
	cm := m.toC()
	C.cairo_matrix_translate(&cm, C.double(tx), C.double(ty))
	*m = matrixFromC(&cm)
}

// Scale applies a scale before the existing transformation.
func (m *Matrix) Scale(sx, sy float64) {
	cm := m.toC()
	C.cairo_matrix_scale(&cm, C.double(sx), C.double(sy))
	*m = matrixFromC(&cm)
}

// Rotate applies a rotation before the existing transformation.
func (m *Matrix) Rotate(radians float64) {
	cm := m.toC()
	C.cairo_matrix_rotate(&cm, C.double(radians))
	*m = matrixFromC(&cm)
}

// Multiply returns a*b, the transformation that first applies a, then b.
func Multiply(a, b Matrix) Matrix {
	ca := a.toC()
	cb := b.toC()
	var result C.cairo_matrix_t
	C.cairo_matrix_multiply(&result, &ca, &cb)
	return matrixFromC(&result)
}

// Invert replaces m with its inverse. A degenerate matrix fails with a
// StatusError carrying StatusInvalidMatrix.
func (m *Matrix) Invert() error {
	cm := m.toC()
	if err := checkStatus(C.cairo_matrix_invert(&cm)); err != nil {
		return err
	}
	*m = matrixFromC(&cm)
	return nil
}

// TransformPoint maps the point (x, y) through the matrix.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	cm := m.toC()
	cx := C.double(x)
	cy := C.double(y)
	C.cairo_matrix_transform_point(&cm, &cx, &cy)
	return float64(cx), float64(cy)
}

// TransformDistance maps the vector (dx, dy) through the matrix, ignoring
// its translation component.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	cm := m.toC()
	cx := C.double(dx)
	cy := C.double(dy)
	C.cairo_matrix_transform_distance(&cm, &cx, &cy)
	return float64(cx), float64(cy)
}

func (m Matrix) toC() C.cairo_matrix_t {
	return C.cairo_matrix_t{
		xx: C.double(m.XX), yx: C.double(m.YX),
		xy: C.double(m.XY), yy: C.double(m.YY),
		x0: C.double(m.X0), y0: C.double(m.Y0),
	}
}

func matrixFromC(cm *C.cairo_matrix_t) Matrix {
	return Matrix{
		XX: float64(cm.xx), YX: float64(cm.yx),
		XY: float64(cm.xy), YY: float64(cm.yy),
		X0: float64(cm.x0), Y0: float64(cm.y0),
	}
}
