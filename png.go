package govips

// #include "foreign.h"
import "C"

import (
	"io"
	"unsafe"
)

const DefaultPngCompression = 6

func DecodePngBytes(buf []byte, options *DecodeOptions) (*Image, error) {
	access, disc := options.toC()
	return loadBuffer(buf, func(p unsafe.Pointer, n C.size_t, out **C.VipsImage) C.int {
		return C.govips_pngload_buffer(p, n, out, access, disc)
	})
}

func DecodePngReader(r io.Reader, options *DecodeOptions) (*Image, error) {
	buf, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return DecodePngBytes(buf, options)
}

type EncodePngOptions struct {
	// Compression is the zlib level, 0 to 9. Zero selects
	// DefaultPngCompression; use IntZero for no compression.
	Compression int
	Interlace   bool
	Profile     string
	Filter      PngFilter
}

type pngSaveParams struct {
	compression C.gint
	interlace   C.gboolean
	profile     *C.char
	filter      C.VipsForeignPngFilter
}

func (o *EncodePngOptions) toC() (*pngSaveParams, error) {
	if o == nil {
		o = &EncodePngOptions{}
	}
	compression := intOption(o.Compression, DefaultPngCompression)
	if compression < 0 || compression > 9 {
		return nil, ErrInvalidParam
	}
	return &pngSaveParams{
		compression: C.gint(compression),
		interlace:   toGBool(o.Interlace),
		profile:     cStringOption(o.Profile),
		filter:      o.Filter.toC(),
	}, nil
}

func (p *pngSaveParams) free() {
	freeCString(p.profile)
}

func EncodePngBytes(img *Image, options *EncodePngOptions) ([]byte, error) {
	if !img.valid() {
		return nil, ErrInvalidImage
	}
	p, err := options.toC()
	if err != nil {
		return nil, err
	}
	defer p.free()
	return saveBuffer(img, func(out *unsafe.Pointer, length *C.size_t) C.int {
		return C.govips_pngsave_buffer(img.image, out, length, p.compression, p.interlace, p.profile, p.filter)
	})
}

func EncodePngFile(img *Image, path string, options *EncodePngOptions) error {
	if !img.valid() {
		return ErrInvalidImage
	}
	p, err := options.toC()
	if err != nil {
		return err
	}
	defer p.free()
	return saveFile(img, path, func(filename *C.char) C.int {
		return C.govips_pngsave(img.image, filename, p.compression, p.interlace, p.profile, p.filter)
	})
}

func EncodePngWriter(w io.Writer, img *Image, options *EncodePngOptions) error {
	buf, err := EncodePngBytes(img, options)
	return writeEncoded(w, buf, err)
}
