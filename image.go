package govips

// #include "colour.h"
import "C"

import (
	"image"
	"runtime"
	"unsafe"
)

// Image is a decoded libvips image holding one reference to the underlying
// VipsImage. The encoded bytes it was loaded from live in C memory owned by
// the loaded image, so derived images keep them alive through libvips.
//
// Transforms return new Images and never close their input. Callers must
// Close every Image they receive. Metadata accessors return zero values on a
// closed Image.
type Image struct {
	image *C.VipsImage
}

func newImage(in *C.VipsImage) *Image {
	return &Image{image: in}
}

func (img *Image) valid() bool {
	return img != nil && img.image != nil
}

func (img *Image) Width() int {
	if !img.valid() {
		return 0
	}
	return int(C.vips_image_get_width(img.image))
}

func (img *Image) Height() int {
	if !img.valid() {
		return 0
	}
	return int(C.vips_image_get_height(img.image))
}

// Bounds returns the image rectangle anchored at the origin.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

func (img *Image) Bands() int {
	if !img.valid() {
		return 0
	}
	return int(C.vips_image_get_bands(img.image))
}

func (img *Image) BandFormat() BandFormat {
	if !img.valid() {
		return BandFormatNotSet
	}
	return BandFormat(C.vips_image_get_format(img.image))
}

func (img *Image) Interpretation() Interpretation {
	if !img.valid() {
		return InterpretationError
	}
	return Interpretation(C.vips_image_get_interpretation(img.image))
}

func (img *Image) HasAlpha() bool {
	if !img.valid() {
		return false
	}
	return fromGBool(C.vips_image_hasalpha(img.image))
}

// HasProfile reports whether an ICC profile is attached to the image.
func (img *Image) HasProfile() bool {
	return img.ICC() != nil
}

// ICC returns a copy of the attached ICC profile, or nil if there is none.
func (img *Image) ICC() []byte {
	if !img.valid() {
		return nil
	}
	var (
		data   unsafe.Pointer
		length C.size_t
	)
	if C.govips_image_get_icc(img.image, &data, &length) != 0 || length == 0 {
		return nil
	}
	icc := C.GoBytes(data, C.int(length))
	runtime.KeepAlive(img)
	return icc
}

// RemoveProfile returns a copy of the image with its ICC profile removed.
func (img *Image) RemoveProfile() (*Image, error) {
	if !img.valid() {
		return nil, ErrInvalidImage
	}
	var out *C.VipsImage
	code := C.govips_remove_icc(img.image, &out)
	runtime.KeepAlive(img)
	if err := handleVipsError(code, ErrICCRemove); err != nil {
		return nil, err
	}
	return newImage(out), nil
}

// Close drops the reference to the underlying image. It is safe to call
// more than once.
func (img *Image) Close() {
	if img == nil || img.image == nil {
		return
	}
	C.g_object_unref(C.gpointer(unsafe.Pointer(img.image)))
	img.image = nil
}

// transform runs an operation shim on img and wraps its output.
func transform(img *Image, op error, call func(out **C.VipsImage) C.int) (*Image, error) {
	if !img.valid() {
		return nil, ErrInvalidImage
	}
	var out *C.VipsImage
	code := call(&out)
	runtime.KeepAlive(img)
	if err := handleVipsError(code, op); err != nil {
		return nil, err
	}
	return newImage(out), nil
}
