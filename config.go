package govips

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

const (
	DefaultConcurrency    = 0
	DefaultCacheMax       = 1000
	DefaultCacheMaxFiles  = 100
	DefaultCacheMaxMemory = 100 * 1024 * 1024
)

// Environment variables read by ConfigFromEnv.
const (
	EnvConcurrency    = "GOVIPS_CONCURRENCY"
	EnvCacheMax       = "GOVIPS_CACHE_MAX"
	EnvCacheMaxFiles  = "GOVIPS_CACHE_MAX_FILES"
	EnvCacheMaxMemory = "GOVIPS_CACHE_MAX_MEMORY"
	EnvVector         = "GOVIPS_VECTOR"
)

// Config tunes the libvips worker pool and operation cache. Zero values
// select the package defaults.
type Config struct {
	Concurrency    int
	CacheMax       int
	CacheMaxFiles  int
	CacheMaxMemory int

	// VectorEnabled toggles SIMD paths inside libvips. When nil, SIMD is
	// enabled if the host CPU supports it.
	VectorEnabled *bool

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.CacheMax <= 0 {
		c.CacheMax = DefaultCacheMax
	}
	if c.CacheMaxFiles <= 0 {
		c.CacheMaxFiles = DefaultCacheMaxFiles
	}
	if c.CacheMaxMemory <= 0 {
		c.CacheMaxMemory = DefaultCacheMaxMemory
	}
	if c.VectorEnabled == nil {
		enabled := hostHasVectorUnits()
		c.VectorEnabled = &enabled
	}
	return c
}

// ConfigFromEnv builds a Config from the GOVIPS_* environment variables.
// Unset variables leave the corresponding field at its zero value.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	var c Config
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvConcurrency, &c.Concurrency},
		{EnvCacheMax, &c.CacheMax},
		{EnvCacheMaxFiles, &c.CacheMaxFiles},
		{EnvCacheMaxMemory, &c.CacheMaxMemory},
	}
	for _, v := range ints {
		raw, ok := lookup(v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidParam, v.name, raw)
		}
		*v.dst = n
	}
	if raw, ok := lookup(EnvVector); ok && raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidParam, EnvVector, raw)
		}
		c.VectorEnabled = &enabled
	}
	return c, nil
}

func hostHasVectorUnits() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasSSE41
	case "arm64":
		return cpu.ARM64.HasASIMD
	}
	return false
}
