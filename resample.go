package govips

// #include "resample.h"
import "C"

import "image"

func Shrink(img *Image, xshrink, yshrink float64) (*Image, error) {
	return transform(img, ErrShrink, func(out **C.VipsImage) C.int {
		return C.govips_shrink(img.image, out, C.double(xshrink), C.double(yshrink))
	})
}

func ShrinkH(img *Image, xshrink float64) (*Image, error) {
	return transform(img, ErrShrink, func(out **C.VipsImage) C.int {
		return C.govips_shrinkh(img.image, out, C.double(xshrink))
	})
}

func ShrinkV(img *Image, yshrink float64) (*Image, error) {
	return transform(img, ErrShrink, func(out **C.VipsImage) C.int {
		return C.govips_shrinkv(img.image, out, C.double(yshrink))
	})
}

func Reduce(img *Image, xshrink, yshrink float64, kernel Kernel) (*Image, error) {
	return transform(img, ErrReduce, func(out **C.VipsImage) C.int {
		return C.govips_reduce(img.image, out, C.double(xshrink), C.double(yshrink), kernel.toC())
	})
}

func ReduceH(img *Image, xshrink float64, kernel Kernel) (*Image, error) {
	return transform(img, ErrReduce, func(out **C.VipsImage) C.int {
		return C.govips_reduceh(img.image, out, C.double(xshrink), kernel.toC())
	})
}

func ReduceV(img *Image, yshrink float64, kernel Kernel) (*Image, error) {
	return transform(img, ErrReduce, func(out **C.VipsImage) C.int {
		return C.govips_reducev(img.image, out, C.double(yshrink), kernel.toC())
	})
}

// Resize scales img by scale horizontally and vscale vertically. A zero
// vscale keeps the aspect ratio.
func Resize(img *Image, scale, vscale float64, kernel Kernel) (*Image, error) {
	vscale = floatOption(vscale, scale)
	return transform(img, ErrResize, func(out **C.VipsImage) C.int {
		return C.govips_resize(img.image, out, C.double(scale), C.double(vscale), kernel.toC())
	})
}

type SimilarityOptions struct {
	// Scale defaults to 1.
	Scale float64
	// Angle is the clockwise rotation in degrees.
	Angle float64
	// Interpolate defaults to bilinear.
	Interpolate *Interpolator
	Idx         float64
	Idy         float64
	Odx         float64
	Ody         float64
}

// Similarity scales and rotates img about its origin.
func Similarity(img *Image, options *SimilarityOptions) (*Image, error) {
	if options == nil {
		options = &SimilarityOptions{}
	}
	interpolate, release, err := interpolatorOrDefault(options.Interpolate)
	if err != nil {
		return nil, err
	}
	defer release()
	scale := C.gdouble(floatOption(options.Scale, 1))
	angle := C.gdouble(options.Angle)
	return transform(img, ErrAffine, func(out **C.VipsImage) C.int {
		return C.govips_similarity(img.image, out, scale, angle, interpolate.interpolate,
			C.gdouble(options.Idx), C.gdouble(options.Idy), C.gdouble(options.Odx), C.gdouble(options.Ody))
	})
}

type AffineOptions struct {
	// Interpolate defaults to bilinear.
	Interpolate *Interpolator
	// OutputArea fixes the output rectangle in output space. Nil lets
	// libvips size the output to hold the whole transformed input.
	OutputArea *image.Rectangle
	Idx        float64
	Idy        float64
	Odx        float64
	Ody        float64
}

// Affine applies the matrix [a b; c d] to img.
func Affine(img *Image, a, b, c, d float64, options *AffineOptions) (*Image, error) {
	if options == nil {
		options = &AffineOptions{}
	}
	interpolate, release, err := interpolatorOrDefault(options.Interpolate)
	if err != nil {
		return nil, err
	}
	defer release()
	var oarea *C.VipsArrayInt
	if r := options.OutputArea; r != nil {
		oarea = newVipsArrayInt([]int{r.Min.X, r.Min.Y, r.Dx(), r.Dy()})
		defer unrefVipsArrayInt(oarea)
	}
	return transform(img, ErrAffine, func(out **C.VipsImage) C.int {
		return C.govips_affine(img.image, out, C.double(a), C.double(b), C.double(c), C.double(d),
			interpolate.interpolate, oarea,
			C.gdouble(options.Idx), C.gdouble(options.Idy), C.gdouble(options.Odx), C.gdouble(options.Ody))
	})
}
