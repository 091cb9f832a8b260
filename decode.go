package govips

// #include "foreign.h"
import "C"

import (
	"io"
	"unsafe"
)

// DecodeOptions are the options shared by every loader.
type DecodeOptions struct {
	// Access hints how pixels will be read. Sequential access lets libvips
	// stream the decode when the image is processed top to bottom.
	Access Access
	// Disc allows large images to be decompressed to a temporary file.
	Disc bool
}

func (o *DecodeOptions) toC() (C.VipsAccess, C.gboolean) {
	if o == nil {
		return AccessRandom.toC(), toGBool(false)
	}
	return o.Access.toC(), toGBool(o.Disc)
}

type loadFunc func(buf unsafe.Pointer, length C.size_t, out **C.VipsImage) C.int

// loadBuffer runs a loader shim over a C copy of buf. Loaders read their
// input lazily, so the copy is freed when libvips closes the loaded image
// rather than when the call returns.
func loadBuffer(buf []byte, load loadFunc) (*Image, error) {
	if len(buf) == 0 {
		return nil, errEmptyLoad()
	}
	input := C.CBytes(buf)
	var out *C.VipsImage
	code := load(input, C.size_t(len(buf)), &out)
	if err := handleVipsError(code, ErrLoad); err != nil {
		C.free(input)
		return nil, err
	}
	C.govips_free_on_close(out, input)
	return newImage(out), nil
}

func readAll(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, errEmptyLoad()
	}
	return buf, nil
}
