package govips

/*
#cgo pkg-config: vips
#include <vips/vips.h>
*/
import "C"

// VipsVersion is the libvips version the package was compiled against.
const VipsVersion = string(C.VIPS_VERSION)
