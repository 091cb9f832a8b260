package govips

// #include "colour.h"
import "C"

import "runtime"

const DefaultICCDepth = 8

type ColourspaceOptions struct {
	// SourceSpace is the interpretation to convert from. Nil lets libvips
	// guess it from the image.
	SourceSpace *Interpretation
}

func colourspaceSource(img *Image, options *ColourspaceOptions) C.VipsInterpretation {
	if options != nil && options.SourceSpace != nil {
		return options.SourceSpace.toC()
	}
	return C.vips_image_guess_interpretation(img.image)
}

// Colourspace converts img to space.
func Colourspace(img *Image, space Interpretation, options *ColourspaceOptions) (*Image, error) {
	if !img.valid() {
		return nil, ErrInvalidImage
	}
	source := colourspaceSource(img, options)
	return transform(img, ErrColourspace, func(out **C.VipsImage) C.int {
		return C.govips_colourspace(img.image, out, space.toC(), source)
	})
}

// ColourspaceIsSupported reports whether Colourspace can convert img.
func ColourspaceIsSupported(img *Image) bool {
	if !img.valid() {
		return false
	}
	supported := fromGBool(C.vips_colourspace_issupported(img.image))
	runtime.KeepAlive(img)
	return supported
}

type ICCTransformOptions struct {
	// InputProfile is used when the image has no embedded profile, or
	// always when Embedded is false.
	InputProfile string
	Intent       Intent
	// Depth is 8 or 16. Zero selects DefaultICCDepth.
	Depth    int
	Embedded bool
}

// ICCTransform converts img to the colour space of outputProfile, which is
// a profile file path or one of the built-in names such as "srgb".
func ICCTransform(img *Image, outputProfile string, options *ICCTransformOptions) (*Image, error) {
	if options == nil {
		options = &ICCTransformOptions{}
	}
	depth := intOption(options.Depth, DefaultICCDepth)
	if depth != 8 && depth != 16 {
		return nil, ErrInvalidParam
	}
	cOutput := C.CString(outputProfile)
	defer freeCString(cOutput)
	cInput := cStringOption(options.InputProfile)
	defer freeCString(cInput)
	intent := options.Intent.toC()
	embedded := toGBool(options.Embedded)
	return transform(img, ErrICCTransform, func(out **C.VipsImage) C.int {
		return C.govips_icc_transform(img.image, out, cOutput, cInput, intent, C.int(depth), embedded)
	})
}
