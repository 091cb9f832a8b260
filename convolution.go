package govips

// #include "convolution.h"
import "C"

const DefaultBlurMinAmplitude = 0.2

type BlurOptions struct {
	Precision Precision
	// MinAmplitude bounds the mask size. Zero selects
	// DefaultBlurMinAmplitude.
	MinAmplitude float64
}

// Blur applies a Gaussian blur of the given sigma.
func Blur(img *Image, sigma float64, options *BlurOptions) (*Image, error) {
	if options == nil {
		options = &BlurOptions{}
	}
	precision := options.Precision.toC()
	minAmpl := C.double(floatOption(options.MinAmplitude, DefaultBlurMinAmplitude))
	return transform(img, ErrBlur, func(out **C.VipsImage) C.int {
		return C.govips_gaussblur(img.image, out, C.double(sigma), precision, minAmpl)
	})
}

// SharpenOptions mirror the parameters of vips_sharpen. Zero fields take
// the defaults below; FloatZero requests an explicit zero.
type SharpenOptions struct {
	Sigma float64 // 0.5
	X1    float64 // 2
	Y2    float64 // 10
	Y3    float64 // 20
	M1    float64 // 0
	M2    float64 // 3
}

func (o *SharpenOptions) resolve() SharpenOptions {
	return SharpenOptions{
		Sigma: floatOption(o.Sigma, 0.5),
		X1:    floatOption(o.X1, 2),
		Y2:    floatOption(o.Y2, 10),
		Y3:    floatOption(o.Y3, 20),
		M1:    floatOption(o.M1, 0),
		M2:    floatOption(o.M2, 3),
	}
}

// Sharpen applies an unsharp mask to the L channel in LabS space.
func Sharpen(img *Image, options *SharpenOptions) (*Image, error) {
	if options == nil {
		options = &SharpenOptions{}
	}
	o := options.resolve()
	return transform(img, ErrSharpen, func(out **C.VipsImage) C.int {
		return C.govips_sharpen(img.image, out, C.double(o.Sigma), C.double(o.X1),
			C.double(o.Y2), C.double(o.Y3), C.double(o.M1), C.double(o.M2))
	})
}
