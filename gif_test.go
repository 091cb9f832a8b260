package govips

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestDecodeGifPages(t *testing.T) {
	red := imaging.New(10, 8, color.NRGBA{R: 0xff, A: 0xff})
	green := imaging.New(10, 8, color.NRGBA{G: 0xff, A: 0xff})
	buf := encodeTestGIF(t, red, green)

	tests := []struct {
		name string
		page int
		want color.NRGBA
	}{
		{name: "First frame", page: 0, want: color.NRGBA{R: 0xff, A: 0xff}},
		{name: "Second frame", page: 1, want: color.NRGBA{G: 0xff, A: 0xff}},
		{name: "Negative page", page: -4, want: color.NRGBA{R: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeGifBytes(buf, &DecodeGifOptions{Page: tt.page})
			img = keep(t, img, err)
			if img.Bounds() != image.Rect(0, 0, 10, 8) {
				t.Fatalf("Unexpected bounds %v", img.Bounds())
			}
			got := pixels(t, img).NRGBAAt(5, 4)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDecodeGifReader(t *testing.T) {
	img, err := DecodeGifReader(bytes.NewReader(encodeTestGIF(t, gradient(6, 6))), nil)
	img = keep(t, img, err)
	if img.Bounds() != image.Rect(0, 0, 6, 6) {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
}
