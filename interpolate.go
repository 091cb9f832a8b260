package govips

// #include <vips/vips.h>
import "C"

import (
	"fmt"
	"unsafe"
)

// Interpolator names understood by NewInterpolator.
const (
	InterpolatorNearest  = "nearest"
	InterpolatorBilinear = "bilinear"
	InterpolatorBicubic  = "bicubic"
	InterpolatorLBB      = "lbb"
	InterpolatorNohalo   = "nohalo"
	InterpolatorVSQBS    = "vsqbs"
)

// Interpolator is a libvips interpolation method used by Similarity and
// Affine. Operations take their own reference, so it can be closed as soon
// as the last call using it returns.
type Interpolator struct {
	name        string
	interpolate *C.VipsInterpolate
}

func NewInterpolator(name string) (*Interpolator, error) {
	cName := C.CString(name)
	defer freeCString(cName)
	interpolate := C.vips_interpolate_new(cName)
	if interpolate == nil {
		takeErrorBuffer()
		return nil, fmt.Errorf("%w: unknown interpolator %q", ErrInvalidParam, name)
	}
	return &Interpolator{name: name, interpolate: interpolate}, nil
}

func (i *Interpolator) Name() string {
	return i.name
}

func (i *Interpolator) Close() {
	if i == nil || i.interpolate == nil {
		return
	}
	C.g_object_unref(C.gpointer(unsafe.Pointer(i.interpolate)))
	i.interpolate = nil
}

// interpolatorOrDefault returns in when it is usable. Otherwise it creates
// a bilinear interpolator and a release func for it.
func interpolatorOrDefault(in *Interpolator) (*Interpolator, func(), error) {
	if in != nil && in.interpolate != nil {
		return in, func() {}, nil
	}
	bilinear, err := NewInterpolator(InterpolatorBilinear)
	if err != nil {
		return nil, nil, err
	}
	return bilinear, bilinear.Close, nil
}
