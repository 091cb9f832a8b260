package govips

// #include <vips/vips.h>
import "C"

import "unsafe"

// newVipsArrayDouble copies values into a libvips array. It returns nil for
// an empty slice so the shim omits the option.
func newVipsArrayDouble(values []float64) *C.VipsArrayDouble {
	if len(values) == 0 {
		return nil
	}
	return C.vips_array_double_new((*C.double)(unsafe.Pointer(&values[0])), C.int(len(values)))
}

func newVipsArrayInt(values []int) *C.VipsArrayInt {
	if len(values) == 0 {
		return nil
	}
	ints := make([]C.int, len(values))
	for i, v := range values {
		ints[i] = C.int(v)
	}
	return C.vips_array_int_new(&ints[0], C.int(len(ints)))
}

func unrefVipsArrayDouble(a *C.VipsArrayDouble) {
	if a != nil {
		C.vips_area_unref((*C.VipsArea)(unsafe.Pointer(a)))
	}
}

func unrefVipsArrayInt(a *C.VipsArrayInt) {
	if a != nil {
		C.vips_area_unref((*C.VipsArea)(unsafe.Pointer(a)))
	}
}
