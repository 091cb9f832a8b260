package govips

// #include "foreign.h"
import "C"

import (
	"io"
	"unsafe"
)

type DecodeGifOptions struct {
	DecodeOptions
	// Page is the zero-based frame to load.
	Page int
}

func DecodeGifBytes(buf []byte, options *DecodeGifOptions) (*Image, error) {
	if options == nil {
		options = &DecodeGifOptions{}
	}
	access, disc := options.DecodeOptions.toC()
	page := C.gint(max(options.Page, 0))
	return loadBuffer(buf, func(p unsafe.Pointer, n C.size_t, out **C.VipsImage) C.int {
		return C.govips_gifload_buffer(p, n, out, page, access, disc)
	})
}

func DecodeGifReader(r io.Reader, options *DecodeGifOptions) (*Image, error) {
	buf, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeGifBytes(buf, options)
}
