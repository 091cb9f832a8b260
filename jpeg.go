package govips

// #include "foreign.h"
import "C"

import (
	"io"
	"unsafe"
)

const DefaultJpegQuality = 75

type DecodeJpegOptions struct {
	DecodeOptions
	// Shrink decodes at 1/Shrink of the full size. libjpeg only supports
	// 1, 2, 4 and 8; other values snap down to the nearest of those.
	Shrink int
	// Fail aborts the decode on the first libjpeg warning.
	Fail bool
	// Autorotate applies the EXIF orientation and clears the tag.
	Autorotate bool
}

func jpegShrink(shrink int) int {
	switch {
	case shrink >= 8:
		return 8
	case shrink >= 4:
		return 4
	case shrink >= 2:
		return 2
	}
	return 1
}

func DecodeJpegBytes(buf []byte, options *DecodeJpegOptions) (*Image, error) {
	if options == nil {
		options = &DecodeJpegOptions{}
	}
	access, disc := options.DecodeOptions.toC()
	shrink := C.gint(jpegShrink(options.Shrink))
	fail := toGBool(options.Fail)
	autorotate := toGBool(options.Autorotate)
	return loadBuffer(buf, func(p unsafe.Pointer, n C.size_t, out **C.VipsImage) C.int {
		return C.govips_jpegload_buffer(p, n, out, shrink, fail, autorotate, access, disc)
	})
}

func DecodeJpegReader(r io.Reader, options *DecodeJpegOptions) (*Image, error) {
	buf, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeJpegBytes(buf, options)
}

type EncodeJpegOptions struct {
	// Q is the quality factor, 1 to 100. Zero selects DefaultJpegQuality.
	Q int
	// Profile names an ICC profile file to embed.
	Profile            string
	OptimizeCoding     bool
	Interlace          bool
	Strip              bool
	NoSubsample        bool
	TrellisQuant       bool
	OvershootDeringing bool
	OptimizeScans      bool
	// QuantTable selects one of the JpegQuantTable tables.
	QuantTable int
}

type jpegSaveParams struct {
	q                  C.gint
	profile            *C.char
	optimizeCoding     C.gboolean
	interlace          C.gboolean
	strip              C.gboolean
	noSubsample        C.gboolean
	trellisQuant       C.gboolean
	overshootDeringing C.gboolean
	optimizeScans      C.gboolean
	quantTable         C.gint
}

func (o *EncodeJpegOptions) toC() (*jpegSaveParams, error) {
	if o == nil {
		o = &EncodeJpegOptions{}
	}
	q := intOption(o.Q, DefaultJpegQuality)
	if q < 0 || q > 100 {
		return nil, ErrInvalidParam
	}
	quantTable := intOption(o.QuantTable, JpegQuantTableDefault)
	if quantTable < JpegQuantTableDefault || quantTable > JpegQuantTablePeterson {
		quantTable = JpegQuantTableDefault
	}
	return &jpegSaveParams{
		q:                  C.gint(q),
		profile:            cStringOption(o.Profile),
		optimizeCoding:     toGBool(o.OptimizeCoding),
		interlace:          toGBool(o.Interlace),
		strip:              toGBool(o.Strip),
		noSubsample:        toGBool(o.NoSubsample),
		trellisQuant:       toGBool(o.TrellisQuant),
		overshootDeringing: toGBool(o.OvershootDeringing),
		optimizeScans:      toGBool(o.OptimizeScans),
		quantTable:         C.gint(quantTable),
	}, nil
}

func (p *jpegSaveParams) free() {
	freeCString(p.profile)
}

func EncodeJpegBytes(img *Image, options *EncodeJpegOptions) ([]byte, error) {
	if !img.valid() {
		return nil, ErrInvalidImage
	}
	p, err := options.toC()
	if err != nil {
		return nil, err
	}
	defer p.free()
	return saveBuffer(img, func(out *unsafe.Pointer, length *C.size_t) C.int {
		return C.govips_jpegsave_buffer(img.image, out, length, p.q, p.profile,
			p.optimizeCoding, p.interlace, p.strip, p.noSubsample,
			p.trellisQuant, p.overshootDeringing, p.optimizeScans, p.quantTable)
	})
}

func EncodeJpegFile(img *Image, path string, options *EncodeJpegOptions) error {
	if !img.valid() {
		return ErrInvalidImage
	}
	p, err := options.toC()
	if err != nil {
		return err
	}
	defer p.free()
	return saveFile(img, path, func(filename *C.char) C.int {
		return C.govips_jpegsave(img.image, filename, p.q, p.profile,
			p.optimizeCoding, p.interlace, p.strip, p.noSubsample,
			p.trellisQuant, p.overshootDeringing, p.optimizeScans, p.quantTable)
	})
}

func EncodeJpegWriter(w io.Writer, img *Image, options *EncodeJpegOptions) error {
	buf, err := EncodeJpegBytes(img, options)
	return writeEncoded(w, buf, err)
}
