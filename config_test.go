package govips

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "Zero value",
			in:   Config{VectorEnabled: boolPtr(false)},
			want: Config{
				Concurrency:    DefaultConcurrency,
				CacheMax:       DefaultCacheMax,
				CacheMaxFiles:  DefaultCacheMaxFiles,
				CacheMaxMemory: DefaultCacheMaxMemory,
				VectorEnabled:  boolPtr(false),
			},
		},
		{
			name: "Explicit values",
			in:   Config{Concurrency: 4, CacheMax: 10, CacheMaxFiles: 2, CacheMaxMemory: 1 << 20, VectorEnabled: boolPtr(true)},
			want: Config{Concurrency: 4, CacheMax: 10, CacheMaxFiles: 2, CacheMaxMemory: 1 << 20, VectorEnabled: boolPtr(true)},
		},
		{
			name: "Negative values",
			in:   Config{Concurrency: -1, CacheMax: -1, VectorEnabled: boolPtr(true)},
			want: Config{
				Concurrency:    DefaultConcurrency,
				CacheMax:       DefaultCacheMax,
				CacheMaxFiles:  DefaultCacheMaxFiles,
				CacheMaxMemory: DefaultCacheMaxMemory,
				VectorEnabled:  boolPtr(true),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.in.withDefaults()); diff != "" {
				t.Errorf("withDefaults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigVectorDefaultFollowsHost(t *testing.T) {
	c := Config{}.withDefaults()
	if c.VectorEnabled == nil {
		t.Fatalf("Expected VectorEnabled to be set")
	}
	if *c.VectorEnabled != hostHasVectorUnits() {
		t.Errorf("Expected VectorEnabled %v, got %v", hostHasVectorUnits(), *c.VectorEnabled)
	}
}

func TestConfigFromLookup(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{name: "Empty environment", env: nil, want: Config{}},
		{
			name: "All set",
			env: map[string]string{
				EnvConcurrency:    "8",
				EnvCacheMax:       "50",
				EnvCacheMaxFiles:  "5",
				EnvCacheMaxMemory: "1048576",
				EnvVector:         "false",
			},
			want: Config{Concurrency: 8, CacheMax: 50, CacheMaxFiles: 5, CacheMaxMemory: 1048576, VectorEnabled: boolPtr(false)},
		},
		{name: "Empty values ignored", env: map[string]string{EnvCacheMax: "", EnvVector: ""}, want: Config{}},
		{name: "Bad integer", env: map[string]string{EnvCacheMax: "lots"}, wantErr: true},
		{name: "Negative integer", env: map[string]string{EnvConcurrency: "-2"}, wantErr: true},
		{name: "Bad bool", env: map[string]string{EnvVector: "sometimes"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			got, err := configFromLookup(lookup)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParam) {
					t.Fatalf("Expected ErrInvalidParam, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("configFromLookup() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvCacheMaxFiles, "7")
	t.Setenv(EnvVector, "1")
	c, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if c.CacheMaxFiles != 7 || c.VectorEnabled == nil || !*c.VectorEnabled {
		t.Errorf("Unexpected config %+v", c)
	}
}
