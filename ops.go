package govips

import (
	"image"
	"math"
	"time"
)

type ImageOpsSizeMethod int

const (
	ImageOpsNoResize ImageOpsSizeMethod = iota
	ImageOpsFit
)

// Pipeline stages reported to ImageOps.Trace.
const (
	StageDecode = "decode"
	StageCrop   = "crop"
	StageResize = "resize"
	StageBlur   = "blur"
	StageEncode = "encode"
)

type ImageOptions struct {
	// FileType is the output extension, such as ".webp". Empty keeps the
	// input format. GIF output is written as PNG.
	FileType string
	// Crop is applied before resizing. Nil or empty skips the crop.
	Crop         *image.Rectangle
	Width        int
	Height       int
	ResizeMethod ImageOpsSizeMethod
	// FastResize runs an integer box shrink before the kernel reduce.
	FastResize bool
	// Kernel is used by the reduce step. Zero is KernelNearest, so callers
	// usually want KernelLanczos3.
	Kernel Kernel
	// Blur is the Gaussian sigma. Zero skips the blur.
	Blur float64
	// Quality applies to JPEG and WebP output.
	Quality int
	// NormalizeOrientation applies the EXIF orientation of JPEG input.
	NormalizeOrientation bool
}

// ImageOps runs the decode, crop, fit, blur and encode pipeline. It holds
// no per-call state and can be shared between goroutines.
type ImageOps struct {
	// Trace, when set, is called with the elapsed time of every stage that
	// ran.
	Trace func(stage string, elapsed time.Duration)
}

func NewImageOps() *ImageOps {
	return &ImageOps{}
}

func (o *ImageOps) trace(stage string, start time.Time) {
	elapsed := time.Since(start)
	logger().Debug("pipeline stage", "stage", stage, "elapsed", elapsed)
	if o.Trace != nil {
		o.Trace(stage, elapsed)
	}
}

// OutputType returns the format Transform writes for input type in.
func (opt *ImageOptions) OutputType(in ImageType) ImageType {
	out := in
	if opt.FileType != "" {
		out = ImageTypeFromExtension(opt.FileType)
	}
	if out == ImageTypeGIF {
		return ImageTypePNG
	}
	return out
}

func (o *ImageOps) decode(buf []byte, opt *ImageOptions) (*Image, ImageType, error) {
	if len(buf) == 0 {
		return nil, ImageTypeUnknown, errEmptyLoad()
	}
	t := DetectImageType(buf)
	if t == ImageTypeJPEG && opt.NormalizeOrientation {
		img, err := DecodeJpegBytes(buf, &DecodeJpegOptions{
			DecodeOptions: DecodeOptions{Access: AccessSequential},
			Autorotate:    true,
		})
		return img, t, err
	}
	return DecodeBytes(buf)
}

// replace closes img and returns next, so each stage can drop its input.
func replace(img, next *Image) *Image {
	img.Close()
	return next
}

func (o *ImageOps) fit(img *Image, width, height int, fast bool, kernel Kernel) (*Image, error) {
	scale := fitScale(img.Bounds(), width, height)
	if scale >= 1 {
		return img, nil
	}
	if fast {
		if shrink := math.Max(1, math.Floor(1/(scale*2))); shrink > 1 {
			shrunk, err := Shrink(img, shrink, shrink)
			if err != nil {
				return img, err
			}
			img = replace(img, shrunk)
			scale = fitScale(img.Bounds(), width, height)
		}
	}
	if scale < 1 {
		reduced, err := Reduce(img, 1/scale, 1/scale, kernel)
		if err != nil {
			return img, err
		}
		img = replace(img, reduced)
	}
	return img, nil
}

// fitScale returns the factor that fits bounds inside width by height
// while keeping the aspect ratio.
func fitScale(bounds image.Rectangle, width, height int) float64 {
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 1
	}
	return math.Min(float64(width)/float64(bounds.Dx()), float64(height)/float64(bounds.Dy()))
}

// Transform decodes buf and applies opt, returning the encoded result.
// Intermediate images are closed as soon as the next stage has run.
func (o *ImageOps) Transform(buf []byte, opt *ImageOptions) ([]byte, error) {
	if opt == nil {
		opt = &ImageOptions{}
	}

	start := time.Now()
	img, inType, err := o.decode(buf, opt)
	if err != nil {
		return nil, err
	}
	defer func() { img.Close() }()
	o.trace(StageDecode, start)

	outType := opt.OutputType(inType)
	if !SupportsSave(outType) {
		return nil, ErrUnsupportedSave
	}

	if opt.Crop != nil && !opt.Crop.Empty() {
		start = time.Now()
		cropped, err := Crop(img, *opt.Crop)
		if err != nil {
			return nil, err
		}
		img = replace(img, cropped)
		o.trace(StageCrop, start)
	}

	if opt.ResizeMethod == ImageOpsFit && opt.Width > 0 && opt.Height > 0 {
		start = time.Now()
		img, err = o.fit(img, opt.Width, opt.Height, opt.FastResize, opt.Kernel)
		if err != nil {
			return nil, err
		}
		o.trace(StageResize, start)
	}

	if opt.Blur > 0 {
		start = time.Now()
		blurred, err := Blur(img, opt.Blur, nil)
		if err != nil {
			return nil, err
		}
		img = replace(img, blurred)
		o.trace(StageBlur, start)
	}

	start = time.Now()
	content, err := EncodeBytes(img, outType, opt.Quality)
	if err != nil {
		return nil, err
	}
	o.trace(StageEncode, start)
	return content, nil
}
