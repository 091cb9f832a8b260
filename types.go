package govips

// #include <vips/vips.h>
import "C"

// Special values used to request an explicit zero where the zero value of
// an option field means "use the default".
const (
	IntZero    = -1
	FloatZero  = -1.0
	StringZero = "GOVIPS_STRING_ZERO"
)

var (
	BackgroundBlack = []float64{0}
	BackgroundWhite = []float64{255}
)

// Access is the access-pattern hint given to loaders.
type Access int

const (
	AccessRandom               Access = C.VIPS_ACCESS_RANDOM
	AccessSequential           Access = C.VIPS_ACCESS_SEQUENTIAL
	AccessSequentialUnbuffered Access = C.VIPS_ACCESS_SEQUENTIAL_UNBUFFERED
	accessLast                 Access = C.VIPS_ACCESS_LAST
)

func (a Access) toC() C.VipsAccess {
	if a < AccessRandom || a >= accessLast {
		return C.VIPS_ACCESS_RANDOM
	}
	return C.VipsAccess(a)
}

// Interpretation is the colour space an image's pixels are in.
type Interpretation int

const (
	InterpretationError     Interpretation = C.VIPS_INTERPRETATION_ERROR
	InterpretationMultiband Interpretation = C.VIPS_INTERPRETATION_MULTIBAND
	InterpretationBW        Interpretation = C.VIPS_INTERPRETATION_B_W
	InterpretationHistogram Interpretation = C.VIPS_INTERPRETATION_HISTOGRAM
	InterpretationXYZ       Interpretation = C.VIPS_INTERPRETATION_XYZ
	InterpretationLAB       Interpretation = C.VIPS_INTERPRETATION_LAB
	InterpretationCMYK      Interpretation = C.VIPS_INTERPRETATION_CMYK
	InterpretationLABQ      Interpretation = C.VIPS_INTERPRETATION_LABQ
	InterpretationRGB       Interpretation = C.VIPS_INTERPRETATION_RGB
	InterpretationCMC       Interpretation = C.VIPS_INTERPRETATION_CMC
	InterpretationLCH       Interpretation = C.VIPS_INTERPRETATION_LCH
	InterpretationLABS      Interpretation = C.VIPS_INTERPRETATION_LABS
	InterpretationSRGB      Interpretation = C.VIPS_INTERPRETATION_sRGB
	InterpretationYXY       Interpretation = C.VIPS_INTERPRETATION_YXY
	InterpretationFourier   Interpretation = C.VIPS_INTERPRETATION_FOURIER
	InterpretationRGB16     Interpretation = C.VIPS_INTERPRETATION_RGB16
	InterpretationGrey16    Interpretation = C.VIPS_INTERPRETATION_GREY16
	InterpretationMatrix    Interpretation = C.VIPS_INTERPRETATION_MATRIX
	InterpretationScRGB     Interpretation = C.VIPS_INTERPRETATION_scRGB
	InterpretationHSV       Interpretation = C.VIPS_INTERPRETATION_HSV
)

func (i Interpretation) toC() C.VipsInterpretation {
	return C.VipsInterpretation(i)
}

// BandFormat is the numeric type of each band element.
type BandFormat int

const (
	BandFormatNotSet    BandFormat = C.VIPS_FORMAT_NOTSET
	BandFormatUchar     BandFormat = C.VIPS_FORMAT_UCHAR
	BandFormatChar      BandFormat = C.VIPS_FORMAT_CHAR
	BandFormatUshort    BandFormat = C.VIPS_FORMAT_USHORT
	BandFormatShort     BandFormat = C.VIPS_FORMAT_SHORT
	BandFormatUint      BandFormat = C.VIPS_FORMAT_UINT
	BandFormatInt       BandFormat = C.VIPS_FORMAT_INT
	BandFormatFloat     BandFormat = C.VIPS_FORMAT_FLOAT
	BandFormatComplex   BandFormat = C.VIPS_FORMAT_COMPLEX
	BandFormatDouble    BandFormat = C.VIPS_FORMAT_DOUBLE
	BandFormatDpComplex BandFormat = C.VIPS_FORMAT_DPCOMPLEX
)

// Extend selects how pixels are synthesised when a canvas grows.
type Extend int

const (
	ExtendBlack      Extend = C.VIPS_EXTEND_BLACK
	ExtendCopy       Extend = C.VIPS_EXTEND_COPY
	ExtendRepeat     Extend = C.VIPS_EXTEND_REPEAT
	ExtendMirror     Extend = C.VIPS_EXTEND_MIRROR
	ExtendWhite      Extend = C.VIPS_EXTEND_WHITE
	ExtendBackground Extend = C.VIPS_EXTEND_BACKGROUND
	extendLast       Extend = C.VIPS_EXTEND_LAST
)

func (e Extend) toC() C.VipsExtend {
	if e < ExtendBlack || e >= extendLast {
		return C.VIPS_EXTEND_BLACK
	}
	return C.VipsExtend(e)
}

// Kernel is the resampling kernel used by reduce and resize.
type Kernel int

const (
	KernelNearest  Kernel = C.VIPS_KERNEL_NEAREST
	KernelLinear   Kernel = C.VIPS_KERNEL_LINEAR
	KernelCubic    Kernel = C.VIPS_KERNEL_CUBIC
	KernelMitchell Kernel = C.VIPS_KERNEL_MITCHELL
	KernelLanczos2 Kernel = C.VIPS_KERNEL_LANCZOS2
	KernelLanczos3 Kernel = C.VIPS_KERNEL_LANCZOS3
	kernelLast     Kernel = C.VIPS_KERNEL_LAST
)

func (k Kernel) toC() C.VipsKernel {
	if k < KernelNearest || k >= kernelLast {
		return C.VIPS_KERNEL_LANCZOS3
	}
	return C.VipsKernel(k)
}

// Precision selects integer, float or approximate convolution.
type Precision int

const (
	PrecisionInteger     Precision = C.VIPS_PRECISION_INTEGER
	PrecisionFloat       Precision = C.VIPS_PRECISION_FLOAT
	PrecisionApproximate Precision = C.VIPS_PRECISION_APPROXIMATE
	precisionLast        Precision = C.VIPS_PRECISION_LAST
)

func (p Precision) toC() C.VipsPrecision {
	if p < PrecisionInteger || p >= precisionLast {
		return C.VIPS_PRECISION_INTEGER
	}
	return C.VipsPrecision(p)
}

// Intent is the ICC rendering intent.
type Intent int

const (
	IntentPerceptual Intent = C.VIPS_INTENT_PERCEPTUAL
	IntentRelative   Intent = C.VIPS_INTENT_RELATIVE
	IntentSaturation Intent = C.VIPS_INTENT_SATURATION
	IntentAbsolute   Intent = C.VIPS_INTENT_ABSOLUTE
	intentLast       Intent = C.VIPS_INTENT_LAST
)

func (i Intent) toC() C.VipsIntent {
	if i < IntentPerceptual || i >= intentLast {
		return C.VIPS_INTENT_PERCEPTUAL
	}
	return C.VipsIntent(i)
}

// PngFilter selects the PNG row filter. PngFilterDefault lets libpng try
// all of them.
type PngFilter int

const (
	PngFilterDefault PngFilter = iota
	PngFilterNone
	PngFilterSub
	PngFilterUp
	PngFilterAvg
	PngFilterPaeth
	PngFilterAll
)

func (p PngFilter) toC() C.VipsForeignPngFilter {
	switch p {
	case PngFilterNone:
		return C.VIPS_FOREIGN_PNG_FILTER_NONE
	case PngFilterSub:
		return C.VIPS_FOREIGN_PNG_FILTER_SUB
	case PngFilterUp:
		return C.VIPS_FOREIGN_PNG_FILTER_UP
	case PngFilterAvg:
		return C.VIPS_FOREIGN_PNG_FILTER_AVG
	case PngFilterPaeth:
		return C.VIPS_FOREIGN_PNG_FILTER_PAETH
	default:
		return C.VIPS_FOREIGN_PNG_FILTER_ALL
	}
}

// WebpPreset tunes the WebP encoder for a kind of content.
type WebpPreset int

const (
	WebpPresetDefault WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_DEFAULT
	WebpPresetPicture WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_PICTURE
	WebpPresetPhoto   WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_PHOTO
	WebpPresetDrawing WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_DRAWING
	WebpPresetIcon    WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_ICON
	WebpPresetText    WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_TEXT
	webpPresetLast    WebpPreset = C.VIPS_FOREIGN_WEBP_PRESET_LAST
)

func (p WebpPreset) toC() C.VipsForeignWebpPreset {
	if p < WebpPresetDefault || p >= webpPresetLast {
		return C.VIPS_FOREIGN_WEBP_PRESET_DEFAULT
	}
	return C.VipsForeignWebpPreset(p)
}

// JPEG quantization tables understood by mozjpeg builds of libjpeg.
const (
	JpegQuantTableDefault = iota
	JpegQuantTableFlat
	JpegQuantTableMSSIM
	JpegQuantTableImageMagick
	JpegQuantTablePSNRHVSM
	JpegQuantTableKlein
	JpegQuantTableWatson
	JpegQuantTableAhumada
	JpegQuantTablePeterson
)

// intOption resolves an integer option: zero selects def and IntZero
// selects an explicit zero.
func intOption(v, def int) int {
	switch v {
	case 0:
		return def
	case IntZero:
		return 0
	}
	return v
}

// floatOption is intOption for float parameters.
func floatOption(v, def float64) float64 {
	switch v {
	case 0:
		return def
	case FloatZero:
		return 0
	}
	return v
}
