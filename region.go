package govips

// #include "region.h"
import "C"

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"unsafe"
)

// region is a fully prepared VipsRegion covering an image.
type region struct {
	img    *Image
	region *C.VipsRegion
	bounds image.Rectangle
	bands  int
}

func newRegion(img *Image) (*region, error) {
	bounds := img.Bounds()
	r := C.vips_region_new(img.image)
	if r == nil {
		return nil, &Error{Op: ErrRegion, Code: -1, Message: takeErrorBuffer()}
	}
	rect := C.govips_rect_new(C.int(bounds.Min.X), C.int(bounds.Min.Y), C.int(bounds.Dx()), C.int(bounds.Dy()))
	code := C.vips_region_prepare(r, &rect)
	runtime.KeepAlive(img)
	if err := handleVipsError(code, ErrRegion); err != nil {
		C.g_object_unref(C.gpointer(unsafe.Pointer(r)))
		return nil, err
	}
	bands := 0
	if bounds.Dx() > 0 {
		bands = int(C.govips_region_n_elements(r)) / bounds.Dx()
	}
	return &region{img: img, region: r, bounds: bounds, bands: bands}, nil
}

// pel returns band n of the pixel at x, y.
func (r *region) pel(x, y, n int) uint8 {
	if r.region == nil {
		return 0
	}
	p := C.govips_region_addr(r.region, C.int(x), C.int(y))
	if n > 0 {
		p = C.govips_pel_band(p, C.int(n))
	}
	return uint8(*p)
}

func (r *region) close() {
	if r.region != nil {
		C.g_object_unref(C.gpointer(unsafe.Pointer(r.region)))
		r.region = nil
	}
}

func checkPixelLayout(img *Image, bands []int, interpretation Interpretation) error {
	if !img.valid() {
		return ErrInvalidImage
	}
	got := img.Bands()
	ok := false
	for _, b := range bands {
		ok = ok || got == b
	}
	if !ok {
		return fmt.Errorf("%w: %d bands", ErrInvalidImage, got)
	}
	if f := img.BandFormat(); f != BandFormatUchar {
		return fmt.Errorf("%w: band format %d", ErrInvalidImage, f)
	}
	if i := img.Interpretation(); i != interpretation {
		return fmt.Errorf("%w: interpretation %d", ErrInvalidImage, i)
	}
	return nil
}

// NRGBAImage reads an 8-bit sRGB image, with or without alpha, as an
// image.Image. It does not own the Image it reads from.
type NRGBAImage struct {
	r *region
}

func NewNRGBAImage(img *Image) (*NRGBAImage, error) {
	if err := checkPixelLayout(img, []int{3, 4}, InterpretationSRGB); err != nil {
		return nil, err
	}
	r, err := newRegion(img)
	if err != nil {
		return nil, err
	}
	return &NRGBAImage{r: r}, nil
}

func (m *NRGBAImage) ColorModel() color.Model { return color.NRGBAModel }

func (m *NRGBAImage) Bounds() image.Rectangle { return m.r.bounds }

func (m *NRGBAImage) At(x, y int) color.Color {
	return m.NRGBAAt(x, y)
}

func (m *NRGBAImage) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(m.r.bounds)) {
		return color.NRGBA{}
	}
	c := color.NRGBA{R: m.r.pel(x, y, 0), G: m.r.pel(x, y, 1), B: m.r.pel(x, y, 2), A: 0xff}
	if m.r.bands == 4 {
		c.A = m.r.pel(x, y, 3)
	}
	return c
}

// Close releases the region. The underlying Image stays open.
func (m *NRGBAImage) Close() {
	m.r.close()
}

// CMYKImage reads an 8-bit CMYK image as an image.Image.
type CMYKImage struct {
	r *region
}

func NewCMYKImage(img *Image) (*CMYKImage, error) {
	if err := checkPixelLayout(img, []int{4}, InterpretationCMYK); err != nil {
		return nil, err
	}
	r, err := newRegion(img)
	if err != nil {
		return nil, err
	}
	return &CMYKImage{r: r}, nil
}

func (m *CMYKImage) ColorModel() color.Model { return color.CMYKModel }

func (m *CMYKImage) Bounds() image.Rectangle { return m.r.bounds }

func (m *CMYKImage) At(x, y int) color.Color {
	return m.CMYKAt(x, y)
}

func (m *CMYKImage) CMYKAt(x, y int) color.CMYK {
	if !(image.Point{x, y}.In(m.r.bounds)) {
		return color.CMYK{}
	}
	return color.CMYK{C: m.r.pel(x, y, 0), M: m.r.pel(x, y, 1), Y: m.r.pel(x, y, 2), K: m.r.pel(x, y, 3)}
}

func (m *CMYKImage) Close() {
	m.r.close()
}

// GrayImage reads an 8-bit single band B_W image as an image.Image.
type GrayImage struct {
	r *region
}

func NewGrayImage(img *Image) (*GrayImage, error) {
	if err := checkPixelLayout(img, []int{1}, InterpretationBW); err != nil {
		return nil, err
	}
	r, err := newRegion(img)
	if err != nil {
		return nil, err
	}
	return &GrayImage{r: r}, nil
}

func (m *GrayImage) ColorModel() color.Model { return color.GrayModel }

func (m *GrayImage) Bounds() image.Rectangle { return m.r.bounds }

func (m *GrayImage) At(x, y int) color.Color {
	return m.GrayAt(x, y)
}

func (m *GrayImage) GrayAt(x, y int) color.Gray {
	if !(image.Point{x, y}.In(m.r.bounds)) {
		return color.Gray{}
	}
	return color.Gray{Y: m.r.pel(x, y, 0)}
}

func (m *GrayImage) Close() {
	m.r.close()
}
