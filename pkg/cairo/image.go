package cairo

/*
#cgo pkg-config: cairo
#include <cairo.h>
*/
import "C"

import (
	"image"
	"runtime"
	"unsafe"

	xdraw "golang.org/x/image/draw"
)

// Image copies the surface's pixels into an image.RGBA. Both cairo ARGB32
// and image.RGBA store alpha-premultiplied color, so conversion is a byte
// reorder: cairo keeps pixels as native-endian BGRA words, image.RGBA as
// R, G, B, A bytes. Only FormatARGB32 and FormatRGB24 surfaces are
// supported.
func (s *ImageSurface) Image() (*image.RGBA, error) {
	format := s.Format()
	if format != FormatARGB32 && format != FormatRGB24 {
		return nil, &ArgumentError{Op: "Image", Reason: "surface format has no RGBA conversion"}
	}
	s.Flush()
	data := C.cairo_image_surface_get_data(s.ptr)
	if data == nil {
		return nil, ErrNilPointer
	}
	width := s.Width()
	height := s.Height()
	stride := s.Stride()
	src := unsafe.Slice((*byte)(unsafe.Pointer(data)), stride*height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := src[y*stride:]
		out := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			b := row[x*4+0]
			g := row[x*4+1]
			r := row[x*4+2]
			a := row[x*4+3]
			if format == FormatRGB24 {
				a = 0xFF
			}
			out[x*4+0] = r
			out[x*4+1] = g
			out[x*4+2] = b
			out[x*4+3] = a
		}
	}
	runtime.KeepAlive(s)
	return img, nil
}

// NewImageSurfaceFromImage creates an ARGB32 surface holding a copy of img.
// Sources that are not already premultiplied RGBA are converted first.
func NewImageSurfaceFromImage(img image.Image) (*ImageSurface, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds() != bounds {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	surface, err := NewImageSurface(FormatARGB32, width, height)
	if err != nil {
		return nil, err
	}
	data := C.cairo_image_surface_get_data(surface.ptr)
	if data == nil {
		surface.Destroy()
		return nil, ErrNilPointer
	}
	stride := surface.Stride()
	dst := unsafe.Slice((*byte)(unsafe.Pointer(data)), stride*height)
	for y := 0; y < height; y++ {
		row := rgba.Pix[rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y+y):]
		out := dst[y*stride:]
		for x := 0; x < width; x++ {
			out[x*4+0] = row[x*4+2] // B
			out[x*4+1] = row[x*4+1] // G
			out[x*4+2] = row[x*4+0] // R
			out[x*4+3] = row[x*4+3] // A
		}
	}
	surface.MarkDirty()
	return surface, nil
}
