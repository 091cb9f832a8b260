package govips

// #include "foreign.h"
import "C"

import (
	"bytes"
	"io"
	"runtime"
	"unsafe"
)

type saveFunc func(out *unsafe.Pointer, length *C.size_t) C.int

// saveBuffer runs a saver shim and copies the libvips allocated result into
// Go memory.
func saveBuffer(img *Image, save saveFunc) ([]byte, error) {
	var (
		ptr    unsafe.Pointer
		length C.size_t
	)
	code := save(&ptr, &length)
	runtime.KeepAlive(img)
	if err := handleVipsError(code, ErrSave); err != nil {
		return nil, err
	}
	defer C.g_free(C.gpointer(ptr))
	if ptr == nil || length == 0 {
		return []byte{}, nil
	}
	return bytes.Clone(unsafe.Slice((*byte)(ptr), int(length))), nil
}

// saveFile runs a saver shim that writes to path.
func saveFile(img *Image, path string, save func(filename *C.char) C.int) error {
	cPath := C.CString(path)
	defer freeCString(cPath)
	code := save(cPath)
	runtime.KeepAlive(img)
	return handleVipsError(code, ErrSave)
}

func writeEncoded(w io.Writer, buf []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
