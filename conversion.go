package govips

// #include "conversion.h"
import "C"

import "image"

type EmbedOptions struct {
	Extend Extend
	// Background is ignored unless Extend is ExtendBackground. Nil keeps
	// the libvips default of black.
	Background []float64
}

// Embed places img at x, y inside a width by height canvas. Pixels outside
// img are filled according to options.Extend.
func Embed(img *Image, x, y, width, height int, options *EmbedOptions) (*Image, error) {
	if options == nil {
		options = &EmbedOptions{}
	}
	extend := options.Extend.toC()
	background := newVipsArrayDouble(options.Background)
	defer unrefVipsArrayDouble(background)
	return transform(img, ErrEmbed, func(out **C.VipsImage) C.int {
		return C.govips_embed(img.image, out, C.int(x), C.int(y), C.int(width), C.int(height), extend, background)
	})
}

func ExtractArea(img *Image, left, top, width, height int) (*Image, error) {
	return transform(img, ErrCrop, func(out **C.VipsImage) C.int {
		return C.govips_extract_area(img.image, out, C.int(left), C.int(top), C.int(width), C.int(height))
	})
}

// Crop extracts rect from img.
func Crop(img *Image, rect image.Rectangle) (*Image, error) {
	return ExtractArea(img, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy())
}

const DefaultFlattenMaxAlpha = 255

type FlattenOptions struct {
	// Background is the colour composited under transparent pixels. Nil
	// keeps the libvips default of black.
	Background []float64
	MaxAlpha   float64
}

// Flatten removes the alpha band by blending img onto a solid background.
func Flatten(img *Image, options *FlattenOptions) (*Image, error) {
	if options == nil {
		options = &FlattenOptions{}
	}
	background := newVipsArrayDouble(options.Background)
	defer unrefVipsArrayDouble(background)
	maxAlpha := C.double(floatOption(options.MaxAlpha, DefaultFlattenMaxAlpha))
	return transform(img, ErrFlatten, func(out **C.VipsImage) C.int {
		return C.govips_flatten(img.image, out, background, maxAlpha)
	})
}
