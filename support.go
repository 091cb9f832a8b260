package govips

// #include "foreign.h"
import "C"

var (
	loadOperations = map[ImageType]string{
		ImageTypeJPEG: "jpegload_buffer",
		ImageTypePNG:  "pngload_buffer",
		ImageTypeGIF:  "gifload_buffer",
		ImageTypeWEBP: "webpload_buffer",
	}
	saveOperations = map[ImageType]string{
		ImageTypeJPEG: "jpegsave_buffer",
		ImageTypePNG:  "pngsave_buffer",
		ImageTypeWEBP: "webpsave_buffer",
	}
)

// SupportsLoad reports whether the linked libvips was built with a buffer
// loader for t.
func SupportsLoad(t ImageType) bool {
	return operationExists(loadOperations[t])
}

// SupportsSave reports whether the linked libvips was built with a buffer
// saver for t. GIF is never supported.
func SupportsSave(t ImageType) bool {
	return operationExists(saveOperations[t])
}

// SupportsMagick reports whether libvips was built with ImageMagick.
func SupportsMagick() bool {
	return operationExists("magickload_buffer")
}

func operationExists(nickname string) bool {
	if nickname == "" {
		return false
	}
	cName := C.CString(nickname)
	defer freeCString(cName)
	return C.govips_type_supported(cName) != 0
}
