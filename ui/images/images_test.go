package images

import (
	"encoding/base64"
	"image"
	"image/color"
	"testing"

	"github.com/mvail/pixpress/domain/geometry"
)

func TestFitWithin(t *testing.T) {
	tests := []struct {
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{1000, 500, 500, 500, 500, 250},
		{500, 1000, 500, 500, 250, 500},
		{100, 100, 500, 500, 100, 100}, // never upscale
		{1000, 1000, 300, 200, 200, 200},
		{0, 0, 100, 100, 1, 1},
	}
	for _, tt := range tests {
		w, h := FitWithin(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Fatalf("FitWithin(%d,%d,%d,%d) = %dx%d, want %dx%d",
				tt.srcW, tt.srcH, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	out := ScaleToFit(src, 400, 400)
	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != 200 {
		t.Fatalf("got %v, want 400x200", out.Bounds())
	}
}

func TestDecodeDataURI_RoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 12, 9))
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(EncodePNG(src))
	img, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("got %v, want 12x9", b)
	}
}

func TestDecodeDataURI_Malformed(t *testing.T) {
	for _, uri := range []string{"", "http://x/y.png", "data:image/png;base64", "data:image/png;base64,!!!"} {
		if _, err := DecodeDataURI(uri); err == nil {
			t.Fatalf("DecodeDataURI(%q) succeeded, want error", uri)
		}
	}
}

func TestDrawCropBox(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for i := range dst.Pix {
		dst.Pix[i] = 200
	}
	DrawCropBox(dst, geometry.DisplayRect{Left: 20, Top: 20, Width: 60, Height: 60})

	// outside the box is dimmed
	if got := dst.RGBAAt(5, 5); got.R != 100 {
		t.Fatalf("outside pixel not dimmed: %+v", got)
	}
	// inside, away from border and handles, is untouched
	if got := dst.RGBAAt(50, 40); got.R != 200 {
		t.Fatalf("inside pixel changed: %+v", got)
	}
	// border stroked along the top edge
	if got := dst.RGBAAt(40, 20); got != (color.RGBA{R: 59, G: 130, B: 246, A: 255}) {
		t.Fatalf("border pixel not stroked: %+v", got)
	}
	// corner handle filled
	if got := dst.RGBAAt(21, 21); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("corner handle not filled: %+v", got)
	}
}
