package govips

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestEmbed(t *testing.T) {
	white := imaging.New(4, 4, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	img := decodeTestPNG(t, white)

	black := color.NRGBA{A: 0xff}
	tests := []struct {
		name    string
		options *EmbedOptions
		corner  color.NRGBA
	}{
		{name: "Nil options", options: nil, corner: black},
		{name: "Black", options: &EmbedOptions{Extend: ExtendBlack}, corner: black},
		{name: "White", options: &EmbedOptions{Extend: ExtendWhite}, corner: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{
			name:    "Background colour",
			options: &EmbedOptions{Extend: ExtendBackground, Background: []float64{255, 0, 0}},
			corner:  color.NRGBA{R: 0xff, A: 0xff},
		},
		{
			name:    "Background mode without colour",
			options: &EmbedOptions{Extend: ExtendBackground},
			corner:  black,
		},
		{
			name:    "Colour ignored outside background mode",
			options: &EmbedOptions{Extend: ExtendBlack, Background: []float64{255, 0, 0}},
			corner:  black,
		},
		{
			name:    "Unknown extend falls back to black",
			options: &EmbedOptions{Extend: Extend(99)},
			corner:  black,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedded, err := Embed(img, 2, 2, 8, 8, tt.options)
			embedded = keep(t, embedded, err)
			if embedded.Bounds() != image.Rect(0, 0, 8, 8) {
				t.Fatalf("Unexpected bounds %v", embedded.Bounds())
			}
			px := pixels(t, embedded)
			if got := px.NRGBAAt(0, 0); got != tt.corner {
				t.Errorf("Expected corner %v, got %v", tt.corner, got)
			}
			if got := px.NRGBAAt(3, 3); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
				t.Errorf("Expected the source pixel at 3,3, got %v", got)
			}
		})
	}
}

func TestEmbedLarge(t *testing.T) {
	img := decodeTestPNG(t, gradient(64, 48))
	embedded, err := Embed(img, 100, 100, 5000, 5000, &EmbedOptions{Extend: ExtendMirror})
	embedded = keep(t, embedded, err)
	if embedded.Bounds() != image.Rect(0, 0, 5000, 5000) {
		t.Errorf("Unexpected bounds %v", embedded.Bounds())
	}
}

func TestExtractAreaAndCrop(t *testing.T) {
	src := gradient(64, 48)
	img := decodeTestPNG(t, src)

	area, err := ExtractArea(img, 10, 5, 20, 15)
	area = keep(t, area, err)
	if area.Bounds() != image.Rect(0, 0, 20, 15) {
		t.Fatalf("Unexpected bounds %v", area.Bounds())
	}
	if got, want := pixels(t, area).NRGBAAt(0, 0), src.NRGBAAt(10, 5); got != want {
		t.Errorf("Expected %v at the crop origin, got %v", want, got)
	}

	cropped, err := Crop(img, image.Rect(10, 5, 30, 20))
	cropped = keep(t, cropped, err)
	if diff := meanAbsDiff(t, pixels(t, area), pixels(t, cropped)); diff != 0 {
		t.Errorf("Crop and ExtractArea disagree, mean difference %.4f", diff)
	}

	if _, err := ExtractArea(img, 60, 40, 20, 20); !errors.Is(err, ErrCrop) {
		t.Errorf("Expected ErrCrop for an area outside the image, got: %v", err)
	}
}

func TestFlatten(t *testing.T) {
	// One opaque blue pixel and one fully transparent pixel.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{B: 0xff, A: 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0})
	img := decodeTestPNG(t, src)
	if !img.HasAlpha() {
		t.Fatalf("Expected fixture to have alpha")
	}

	tests := []struct {
		name        string
		options     *FlattenOptions
		transparent color.NRGBA
	}{
		{name: "Nil options", options: nil, transparent: color.NRGBA{A: 0xff}},
		{name: "Black", options: &FlattenOptions{Background: BackgroundBlack}, transparent: color.NRGBA{A: 0xff}},
		{name: "White", options: &FlattenOptions{Background: BackgroundWhite}, transparent: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{name: "Red", options: &FlattenOptions{Background: []float64{255, 0, 0}}, transparent: color.NRGBA{R: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, err := Flatten(img, tt.options)
			flat = keep(t, flat, err)
			if flat.HasAlpha() || flat.Bands() != 3 {
				t.Fatalf("Expected 3 bands without alpha, got %d", flat.Bands())
			}
			px := pixels(t, flat)
			if got := px.NRGBAAt(0, 0); got != (color.NRGBA{B: 0xff, A: 0xff}) {
				t.Errorf("Expected the opaque pixel unchanged, got %v", got)
			}
			if got := px.NRGBAAt(1, 0); got != tt.transparent {
				t.Errorf("Expected %v for the transparent pixel, got %v", tt.transparent, got)
			}
		})
	}
}
