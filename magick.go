package govips

// #include "foreign.h"
import "C"

import (
	"io"
	"unsafe"
)

// DecodeMagickOptions configure the ImageMagick loader, which handles the
// formats libvips has no native loader for.
type DecodeMagickOptions struct {
	DecodeOptions
	AllFrames bool
	// Density is the rendering resolution for vector formats, for example
	// "72x72". Empty keeps the loader default.
	Density string
	Page    int
}

func DecodeMagickBytes(buf []byte, options *DecodeMagickOptions) (*Image, error) {
	if options == nil {
		options = &DecodeMagickOptions{}
	}
	access, disc := options.DecodeOptions.toC()
	allFrames := toGBool(options.AllFrames)
	page := C.gint(max(options.Page, 0))
	density := cStringOption(options.Density)
	defer freeCString(density)
	return loadBuffer(buf, func(p unsafe.Pointer, n C.size_t, out **C.VipsImage) C.int {
		return C.govips_magickload_buffer(p, n, out, allFrames, density, page, access, disc)
	})
}

func DecodeMagickReader(r io.Reader, options *DecodeMagickOptions) (*Image, error) {
	buf, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeMagickBytes(buf, options)
}
