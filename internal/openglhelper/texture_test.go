package openglhelper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

// twoRowImage is 2x2 with a red top row and a blue bottom row
func twoRowImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		img.SetNRGBA(x, 0, red)
		img.SetNRGBA(x, 1, blue)
	}
	return img
}

func TestDecodeImageFlipsVertically(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"bmp": func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf, twoRowImage()); err != nil {
				t.Fatalf("encode: %v", err)
			}

			img, err := DecodeImage(&buf)
			if err != nil {
				t.Fatalf("DecodeImage() error = %v", err)
			}
			if img.Rect.Dx() != 2 || img.Rect.Dy() != 2 {
				t.Fatalf("size = %v, want 2x2", img.Rect)
			}

			if got := img.NRGBAAt(0, 0); got.B != 255 || got.R != 0 {
				t.Errorf("first row = %v, want blue (bottom of source)", got)
			}
			if got := img.NRGBAAt(1, 1); got.R != 255 || got.B != 0 {
				t.Errorf("last row = %v, want red (top of source)", got)
			}
		})
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("definitely not an image"))
	if err == nil {
		t.Fatal("DecodeImage() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("error = %q, want decode failure", err)
	}
}
