package govips

/*
#include <stdlib.h>
#include <vips/vips.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"
)

var (
	initializeLock sync.Mutex
	initialized    atomic.Bool

	cApplicationName = C.CString("govips")
)

// Error is returned when a libvips call reports a non-zero status. Op is the
// sentinel for the failed operation, so errors.Is(err, ErrLoad) works.
type Error struct {
	Op      error
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Op, e.Code)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Op, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Op
}

// MemoryStats reports the allocations libvips is tracking.
type MemoryStats struct {
	Memory          int64
	MemoryHighwater int64
	Allocations     int64
	Files           int64
}

// Initialize starts libvips with the default configuration. It is safe to
// call more than once.
func Initialize() error {
	initializeLock.Lock()
	defer initializeLock.Unlock()
	if initialized.Load() {
		return nil
	}
	if C.vips_init(cApplicationName) != 0 {
		C.vips_shutdown()
		return ErrInitialize
	}
	initialized.Store(true)
	logger().Debug("libvips initialized", "version", Version())
	return applyConfig(Config{})
}

func InitializeWithConfig(config Config) error {
	if err := Initialize(); err != nil {
		return err
	}
	return Configure(config)
}

// Configure applies config to a running libvips. Unset fields fall back to
// the package defaults.
func Configure(config Config) error {
	initializeLock.Lock()
	defer initializeLock.Unlock()
	if !initialized.Load() {
		return ErrConfigure
	}
	return applyConfig(config)
}

// applyConfig expects initializeLock to be held.
func applyConfig(config Config) error {
	config = config.withDefaults()
	if config.Logger != nil {
		SetLogger(config.Logger)
	}
	C.vips_concurrency_set(C.int(config.Concurrency))
	C.vips_cache_set_max(C.int(config.CacheMax))
	C.vips_cache_set_max_files(C.int(config.CacheMaxFiles))
	C.vips_cache_set_max_mem(C.size_t(config.CacheMaxMemory))
	C.vips_vector_set_enabled(toGBool(*config.VectorEnabled))
	logger().Debug("libvips configured",
		"concurrency", config.Concurrency,
		"cache_max", config.CacheMax,
		"cache_max_files", config.CacheMaxFiles,
		"cache_max_memory", config.CacheMaxMemory,
		"vector", *config.VectorEnabled,
	)
	return nil
}

func Shutdown() {
	initializeLock.Lock()
	defer initializeLock.Unlock()
	if initialized.Load() {
		C.vips_shutdown()
		initialized.Store(false)
		logger().Debug("libvips shut down")
	}
}

// ThreadShutdown frees the per-thread state libvips keeps for the calling
// OS thread.
func ThreadShutdown() {
	C.vips_thread_shutdown()
}

// Version returns the version string of the linked libvips.
func Version() string {
	return C.GoString(C.vips_version_string())
}

func CacheDropAll() {
	C.vips_cache_drop_all()
}

func ReadMemoryStats() MemoryStats {
	return MemoryStats{
		Memory:          int64(C.vips_tracked_get_mem()),
		MemoryHighwater: int64(C.vips_tracked_get_mem_highwater()),
		Allocations:     int64(C.vips_tracked_get_allocs()),
		Files:           int64(C.vips_tracked_get_files()),
	}
}

// ErrorBuffer drains the libvips error buffer. It returns nil when the
// buffer is empty.
func ErrorBuffer() error {
	msg := takeErrorBuffer()
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

func takeErrorBuffer() string {
	C.vips_error_freeze()
	defer C.vips_error_thaw()
	msg := C.GoString(C.vips_error_buffer())
	if msg != "" {
		C.vips_error_clear()
	}
	return msg
}

// handleVipsError converts the status of a shim call into an error.
func handleVipsError(code C.int, op error) error {
	if code == 0 {
		return nil
	}
	err := &Error{Op: op, Code: int(code), Message: takeErrorBuffer()}
	logger().Debug("libvips call failed", "op", op.Error(), "status", err.Code, "message", err.Message)
	return err
}

func errEmptyLoad() error {
	return fmt.Errorf("%w: %w", ErrLoad, ErrEmptyBuffer)
}

var defaultLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for lifecycle events and libvips
// failures. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	defaultLogger.Store(l)
}

func logger() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func toGBool(b bool) C.gboolean {
	if b {
		return C.gboolean(1)
	}
	return C.gboolean(0)
}

func fromGBool(b C.gboolean) bool {
	return b != 0
}

// cStringOption converts an optional string parameter. The empty string
// becomes NULL and StringZero becomes "".
func cStringOption(s string) *C.char {
	switch s {
	case "":
		return nil
	case StringZero:
		return C.CString("")
	}
	return C.CString(s)
}

func freeCString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}
