package govips

import (
	"image"
	"image/color"
	"testing"
)

// checkerboard alternates black and white pixels.
func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 0xff
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

func TestBlur(t *testing.T) {
	src := checkerboard(32, 32)
	img := decodeTestPNG(t, src)

	tests := []struct {
		name    string
		sigma   float64
		options *BlurOptions
	}{
		{name: "Default options", sigma: 2},
		{name: "Float precision", sigma: 1.5, options: &BlurOptions{Precision: PrecisionFloat}},
		{name: "Approximate", sigma: 3, options: &BlurOptions{Precision: PrecisionApproximate, MinAmplitude: 0.1}},
		{name: "Unknown precision", sigma: 1, options: &BlurOptions{Precision: Precision(12)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blurred, err := Blur(img, tt.sigma, tt.options)
			blurred = keep(t, blurred, err)
			if blurred.Bounds() != src.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", src.Bounds(), blurred.Bounds())
			}
			c := pixels(t, blurred).NRGBAAt(16, 16)
			if c.R < 0x40 || c.R > 0xc0 {
				t.Errorf("Expected a blurred checkerboard to be mid grey, got %v", c)
			}
		})
	}
}

func TestSharpenOptions(t *testing.T) {
	tests := []struct {
		name    string
		options SharpenOptions
		want    SharpenOptions
	}{
		{
			name: "Defaults",
			want: SharpenOptions{Sigma: 0.5, X1: 2, Y2: 10, Y3: 20, M1: 0, M2: 3},
		},
		{
			name:    "Explicit zeros",
			options: SharpenOptions{X1: FloatZero, M2: FloatZero},
			want:    SharpenOptions{Sigma: 0.5, X1: 0, Y2: 10, Y3: 20, M1: 0, M2: 0},
		},
		{
			name:    "Custom",
			options: SharpenOptions{Sigma: 1, X1: 1, Y2: 5, Y3: 15, M1: 0.5, M2: 2},
			want:    SharpenOptions{Sigma: 1, X1: 1, Y2: 5, Y3: 15, M1: 0.5, M2: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.options.resolve(); got != tt.want {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSharpen(t *testing.T) {
	src := gradient(32, 24)
	img := decodeTestPNG(t, src)
	for _, options := range []*SharpenOptions{nil, {Sigma: 1.5, M2: 5}} {
		sharpened, err := Sharpen(img, options)
		sharpened = keep(t, sharpened, err)
		if sharpened.Bounds() != src.Bounds() {
			t.Errorf("Expected bounds %v, got %v", src.Bounds(), sharpened.Bounds())
		}
	}
}
