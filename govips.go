// Package govips exposes libvips decoders, encoders and transforms through
// fixed-signature cgo shims.
package govips

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrInitialize      = errors.New("failed to initialize libvips")
	ErrConfigure       = errors.New("failed to configure libvips")
	ErrInvalidImage    = errors.New("unrecognized image format")
	ErrEmptyBuffer     = errors.New("buffer is empty")
	ErrInvalidParam    = errors.New("invalid parameter")
	ErrUnsupportedSave = errors.New("image type cannot be saved")
	ErrRegion          = errors.New("failed to prepare image region")

	ErrLoad = errors.New("failed to load image")
	ErrSave = errors.New("failed to save image")

	ErrEmbed        = errors.New("failed to embed image")
	ErrCrop         = errors.New("failed to crop image")
	ErrShrink       = errors.New("failed to shrink image")
	ErrReduce       = errors.New("failed to reduce image")
	ErrResize       = errors.New("failed to resize image")
	ErrAffine       = errors.New("failed to affine image")
	ErrBlur         = errors.New("failed to blur image")
	ErrSharpen      = errors.New("failed to sharpen image")
	ErrFlatten      = errors.New("failed to flatten image")
	ErrColourspace  = errors.New("failed to convert colourspace of image")
	ErrICCTransform = errors.New("failed to transform colourspace of image")
	ErrICCRemove    = errors.New("failed to remove icc profile")

	jpegMagic  = []byte{0xff, 0xd8, 0xff}
	pngMagic   = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	gif87Magic = []byte("GIF87a")
	gif89Magic = []byte("GIF89a")
	riffMagic  = []byte("RIFF")
	webpMagic  = []byte("WEBP")
)

// ImageType identifies an encoded image format.
type ImageType int

const (
	ImageTypeUnknown ImageType = iota
	ImageTypeJPEG
	ImageTypePNG
	ImageTypeGIF
	ImageTypeWEBP
)

func (t ImageType) String() string {
	switch t {
	case ImageTypeJPEG:
		return "jpeg"
	case ImageTypePNG:
		return "png"
	case ImageTypeGIF:
		return "gif"
	case ImageTypeWEBP:
		return "webp"
	default:
		return "unknown"
	}
}

// Extension returns the canonical file extension, including the dot.
func (t ImageType) Extension() string {
	if t == ImageTypeJPEG {
		return ".jpg"
	}
	if t == ImageTypeUnknown {
		return ""
	}
	return "." + t.String()
}

// ImageTypeFromExtension maps a file name or extension such as ".JPEG" to
// its ImageType.
func ImageTypeFromExtension(name string) ImageType {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = "." + strings.ToLower(strings.TrimPrefix(name, "."))
	}
	switch ext {
	case ".jpg", ".jpeg":
		return ImageTypeJPEG
	case ".png":
		return ImageTypePNG
	case ".gif":
		return ImageTypeGIF
	case ".webp":
		return ImageTypeWEBP
	}
	return ImageTypeUnknown
}

func isGIF(maybeGIF []byte) bool {
	return bytes.HasPrefix(maybeGIF, gif87Magic) || bytes.HasPrefix(maybeGIF, gif89Magic)
}

func isWebP(maybeWebP []byte) bool {
	return len(maybeWebP) >= 12 && bytes.HasPrefix(maybeWebP, riffMagic) && bytes.Equal(maybeWebP[8:12], webpMagic)
}

// DetectImageType inspects the leading magic bytes of buf.
func DetectImageType(buf []byte) ImageType {
	switch {
	case bytes.HasPrefix(buf, jpegMagic):
		return ImageTypeJPEG
	case bytes.HasPrefix(buf, pngMagic):
		return ImageTypePNG
	case isGIF(buf):
		return ImageTypeGIF
	case isWebP(buf):
		return ImageTypeWEBP
	}
	return ImageTypeUnknown
}

// DecodeBytes decodes buf with the loader matching its magic bytes, using
// default options and sequential access.
func DecodeBytes(buf []byte) (*Image, ImageType, error) {
	if len(buf) == 0 {
		return nil, ImageTypeUnknown, errEmptyLoad()
	}
	sequential := DecodeOptions{Access: AccessSequential}
	t := DetectImageType(buf)
	var (
		img *Image
		err error
	)
	switch t {
	case ImageTypeJPEG:
		img, err = DecodeJpegBytes(buf, &DecodeJpegOptions{DecodeOptions: sequential})
	case ImageTypePNG:
		img, err = DecodePngBytes(buf, &sequential)
	case ImageTypeGIF:
		img, err = DecodeGifBytes(buf, &DecodeGifOptions{DecodeOptions: sequential})
	case ImageTypeWEBP:
		img, err = DecodeWebpBytes(buf, &DecodeWebpOptions{DecodeOptions: sequential})
	default:
		return nil, ImageTypeUnknown, ErrInvalidImage
	}
	return img, t, err
}

// EncodeBytes encodes img as t. quality applies to JPEG and WebP; zero
// selects the encoder default.
func EncodeBytes(img *Image, t ImageType, quality int) ([]byte, error) {
	switch t {
	case ImageTypeJPEG:
		return EncodeJpegBytes(img, &EncodeJpegOptions{Q: quality, OptimizeCoding: true, Strip: true})
	case ImageTypePNG:
		return EncodePngBytes(img, nil)
	case ImageTypeWEBP:
		return EncodeWebpBytes(img, &EncodeWebpOptions{Q: quality})
	}
	return nil, ErrUnsupportedSave
}
