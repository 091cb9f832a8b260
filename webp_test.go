package govips

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/webp"
)

func TestEncodeWebpOptions(t *testing.T) {
	tests := []struct {
		name       string
		options    *EncodeWebpOptions
		wantQ      int
		wantAlphaQ int
		wantErr    error
	}{
		{name: "Nil options", wantQ: DefaultWebpQuality, wantAlphaQ: DefaultWebpAlphaQuality},
		{name: "Explicit zeros", options: &EncodeWebpOptions{Q: IntZero, AlphaQ: IntZero}, wantQ: 0, wantAlphaQ: 0},
		{name: "Custom", options: &EncodeWebpOptions{Q: 50, AlphaQ: 60}, wantQ: 50, wantAlphaQ: 60},
		{name: "Quality too high", options: &EncodeWebpOptions{Q: 200}, wantErr: ErrInvalidParam},
		{name: "Alpha quality too high", options: &EncodeWebpOptions{AlphaQ: 101}, wantErr: ErrInvalidParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.options.toC()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if int(p.q) != tt.wantQ || int(p.alphaQ) != tt.wantAlphaQ {
				t.Errorf("Expected Q %d alpha_q %d, got %d %d", tt.wantQ, tt.wantAlphaQ, int(p.q), int(p.alphaQ))
			}
		})
	}
}

// decodeStdWebp decodes buf with x/image/webp, independently of libvips.
func decodeStdWebp(t *testing.T, buf []byte) image.Image {
	t.Helper()
	if DetectImageType(buf) != ImageTypeWEBP {
		t.Fatalf("Output is not webp")
	}
	img, err := webp.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("x/image/webp could not decode output: %v", err)
	}
	return img
}

func TestWebpLosslessRoundTripIsExact(t *testing.T) {
	src := gradient(32, 24)
	img := decodeTestPNG(t, src)

	buf, err := EncodeWebpBytes(img, &EncodeWebpOptions{Lossless: true})
	if err != nil {
		t.Fatalf("EncodeWebpBytes failed: %v", err)
	}
	if diff := meanAbsDiff(t, src, decodeStdWebp(t, buf)); diff != 0 {
		t.Errorf("Expected an exact round trip, mean difference %.4f", diff)
	}

	decoded, err := DecodeWebpBytes(buf, nil)
	decoded = keep(t, decoded, err)
	if diff := meanAbsDiff(t, src, pixels(t, decoded)); diff != 0 {
		t.Errorf("Expected libvips to read back the same pixels, mean difference %.4f", diff)
	}
}

func TestWebpLossyRoundTrip(t *testing.T) {
	src := gradient(64, 48)
	img := decodeTestPNG(t, src)

	tests := []struct {
		name    string
		options *EncodeWebpOptions
	}{
		{name: "Default", options: nil},
		{name: "High quality photo", options: &EncodeWebpOptions{Q: 95, Preset: WebpPresetPhoto, SmartSubsample: true}},
		{name: "Near lossless", options: &EncodeWebpOptions{NearLossless: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := EncodeWebpBytes(img, tt.options)
			if err != nil {
				t.Fatalf("EncodeWebpBytes failed: %v", err)
			}
			if diff := meanAbsDiff(t, src, decodeStdWebp(t, buf)); diff > 6 {
				t.Errorf("Mean absolute difference %.2f exceeds tolerance", diff)
			}
		})
	}
}

func TestDecodeWebpShrink(t *testing.T) {
	img := decodeTestPNG(t, gradient(64, 48))
	buf, err := EncodeWebpBytes(img, nil)
	if err != nil {
		t.Fatalf("EncodeWebpBytes failed: %v", err)
	}
	tests := []struct {
		shrink int
		want   image.Point
	}{
		{-1, image.Pt(64, 48)},
		{0, image.Pt(64, 48)},
		{1, image.Pt(64, 48)},
		{2, image.Pt(32, 24)},
		{4, image.Pt(16, 12)},
	}
	for _, tt := range tests {
		decoded, err := DecodeWebpBytes(buf, &DecodeWebpOptions{Shrink: tt.shrink})
		decoded = keep(t, decoded, err)
		if got := decoded.Bounds().Size(); got != tt.want {
			t.Errorf("Shrink %d: expected %v, got %v", tt.shrink, tt.want, got)
		}
	}
}

func TestEncodeWebpFileAndWriter(t *testing.T) {
	img := decodeTestPNG(t, gradient(16, 16))
	path := filepath.Join(t.TempDir(), "out.webp")
	if err := EncodeWebpFile(img, path, &EncodeWebpOptions{Lossless: true}); err != nil {
		t.Fatalf("EncodeWebpFile failed: %v", err)
	}
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var w bytes.Buffer
	if err := EncodeWebpWriter(&w, img, &EncodeWebpOptions{Lossless: true}); err != nil {
		t.Fatalf("EncodeWebpWriter failed: %v", err)
	}
	for _, buf := range [][]byte{fileBytes, w.Bytes()} {
		if got := decodeStdWebp(t, buf).Bounds(); got != image.Rect(0, 0, 16, 16) {
			t.Errorf("Unexpected bounds %v", got)
		}
	}
}
