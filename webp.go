package govips

// #include "foreign.h"
import "C"

import (
	"io"
	"unsafe"
)

const (
	DefaultWebpQuality      = 75
	DefaultWebpAlphaQuality = 100
)

type DecodeWebpOptions struct {
	DecodeOptions
	// Shrink decodes at 1/Shrink of the full size. Values below 1 are
	// treated as 1.
	Shrink int
}

func DecodeWebpBytes(buf []byte, options *DecodeWebpOptions) (*Image, error) {
	if options == nil {
		options = &DecodeWebpOptions{}
	}
	access, disc := options.DecodeOptions.toC()
	shrink := C.gint(max(options.Shrink, 1))
	return loadBuffer(buf, func(p unsafe.Pointer, n C.size_t, out **C.VipsImage) C.int {
		return C.govips_webpload_buffer(p, n, out, shrink, access, disc)
	})
}

func DecodeWebpReader(r io.Reader, options *DecodeWebpOptions) (*Image, error) {
	buf, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeWebpBytes(buf, options)
}

type EncodeWebpOptions struct {
	// Q is the quality factor, 0 to 100. Zero selects DefaultWebpQuality.
	Q              int
	Lossless       bool
	Preset         WebpPreset
	SmartSubsample bool
	NearLossless   bool
	// AlphaQ is the alpha plane quality, 0 to 100. Zero selects
	// DefaultWebpAlphaQuality.
	AlphaQ int
}

type webpSaveParams struct {
	q              C.gint
	lossless       C.gboolean
	preset         C.VipsForeignWebpPreset
	smartSubsample C.gboolean
	nearLossless   C.gboolean
	alphaQ         C.gint
}

func (o *EncodeWebpOptions) toC() (*webpSaveParams, error) {
	if o == nil {
		o = &EncodeWebpOptions{}
	}
	q := intOption(o.Q, DefaultWebpQuality)
	alphaQ := intOption(o.AlphaQ, DefaultWebpAlphaQuality)
	if q < 0 || q > 100 || alphaQ < 0 || alphaQ > 100 {
		return nil, ErrInvalidParam
	}
	return &webpSaveParams{
		q:              C.gint(q),
		lossless:       toGBool(o.Lossless),
		preset:         o.Preset.toC(),
		smartSubsample: toGBool(o.SmartSubsample),
		nearLossless:   toGBool(o.NearLossless),
		alphaQ:         C.gint(alphaQ),
	}, nil
}

func EncodeWebpBytes(img *Image, options *EncodeWebpOptions) ([]byte, error) {
	if !img.valid() {
		return nil, ErrInvalidImage
	}
	p, err := options.toC()
	if err != nil {
		return nil, err
	}
	return saveBuffer(img, func(out *unsafe.Pointer, length *C.size_t) C.int {
		return C.govips_webpsave_buffer(img.image, out, length, p.q, p.lossless, p.preset,
			p.smartSubsample, p.nearLossless, p.alphaQ)
	})
}

func EncodeWebpFile(img *Image, path string, options *EncodeWebpOptions) error {
	if !img.valid() {
		return ErrInvalidImage
	}
	p, err := options.toC()
	if err != nil {
		return err
	}
	return saveFile(img, path, func(filename *C.char) C.int {
		return C.govips_webpsave(img.image, filename, p.q, p.lossless, p.preset,
			p.smartSubsample, p.nearLossless, p.alphaQ)
	})
}

func EncodeWebpWriter(w io.Writer, img *Image, options *EncodeWebpOptions) error {
	buf, err := EncodeWebpBytes(img, options)
	return writeEncoded(w, buf, err)
}
