package main

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"time"

	"github.com/disintegration/imaging"
	"github.com/mnemonic-labs/govips"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var scalerByName = map[string]draw.Scaler{
	"NearestNeighbor": draw.NearestNeighbor,
	"ApproxBiLinear":  draw.ApproxBiLinear,
	"BiLinear":        draw.BiLinear,
	"CatmullRom":      draw.CatmullRom,
}

// transformNative runs the same pipeline as govips.ImageOps with the
// standard image packages, x/image/draw and imaging.
func transformNative(buf []byte, opts *options, t *timings) ([]byte, error) {
	start := time.Now()
	img, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	t.decode = time.Since(start)

	if opts.cropRect != (image.Rectangle{}) {
		start = time.Now()
		img = imaging.Crop(img, opts.cropRect)
		t.crop = time.Since(start)
	}

	if opts.resizePoint != (image.Point{}) {
		start = time.Now()
		img = resizeNative(img, opts.resizePoint.X, opts.resizePoint.Y, scalerByName[opts.scaler], opts.fastResize)
		t.resize = time.Since(start)
	}

	if opts.blur > 0 {
		start = time.Now()
		img = imaging.Blur(img, opts.blur)
		t.blur = time.Since(start)
	}

	start = time.Now()
	var out bytes.Buffer
	switch govips.ImageTypeFromExtension(format) {
	case govips.ImageTypeGIF:
		err = gif.Encode(&out, img, &gif.Options{NumColors: 256})
	case govips.ImageTypeJPEG:
		err = jpeg.Encode(&out, img, &jpeg.Options{Quality: opts.quality})
	case govips.ImageTypePNG, govips.ImageTypeWEBP:
		err = png.Encode(&out, img)
	default:
		err = fmt.Errorf("invalid image format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	t.encode = time.Since(start)
	return out.Bytes(), nil
}

// resizeNative fits img inside width by height. With fast set, a nearest
// neighbour pass first brings the image within a factor of two of the
// target.
func resizeNative(img image.Image, width, height int, scaler draw.Scaler, fast bool) image.Image {
	if scaler == nil {
		scaler = draw.BiLinear
	}
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	scale := math.Min(float64(width)/w, float64(height)/h)
	if scale >= 1 {
		return img
	}

	if fast && scaler != draw.NearestNeighbor {
		if shrink := math.Max(1, math.Floor(1/(scale*2))); shrink > 1 {
			dst := image.NewNRGBA(image.Rect(0, 0, int(math.Round(w/shrink)), int(math.Round(h/shrink))))
			draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
			img = dst
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, int(math.Round(w*scale)), int(math.Round(h*scale))))
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
