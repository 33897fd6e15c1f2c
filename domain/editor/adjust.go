package editor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Adjustments are multiplicative enhancement factors. 1.0 is identity, 0
// removes the property entirely, values above 1 amplify it.
type Adjustments struct {
	Brightness float64
	Contrast   float64
	Saturation float64
	Sharpness  float64
}

// DefaultAdjustments returns the identity adjustment set.
func DefaultAdjustments() Adjustments {
	return Adjustments{Brightness: 1, Contrast: 1, Saturation: 1, Sharpness: 1}
}

// IsIdentity reports whether applying a would leave an image unchanged.
func (a Adjustments) IsIdentity() bool {
	return a.Brightness == 1 && a.Contrast == 1 && a.Saturation == 1 && a.Sharpness == 1
}

// Clamp limits each factor to [0, 5], the range the editor exposes.
func (a Adjustments) Clamp() Adjustments {
	clamp := func(f float64) float64 {
		if f < 0 {
			return 0
		}
		if f > 5 {
			return 5
		}
		return f
	}
	return Adjustments{
		Brightness: clamp(a.Brightness),
		Contrast:   clamp(a.Contrast),
		Saturation: clamp(a.Saturation),
		Sharpness:  clamp(a.Sharpness),
	}
}

// Apply runs the adjustments in a fixed order: brightness, contrast,
// saturation, sharpness.
func (a Adjustments) Apply(img image.Image) image.Image {
	out := img
	if a.Brightness != 1 {
		out = scaleChannels(out, a.Brightness)
	}
	if a.Contrast != 1 {
		out = imaging.AdjustContrast(out, (a.Contrast-1)*100)
	}
	if a.Saturation != 1 {
		out = imaging.AdjustSaturation(out, (a.Saturation-1)*100)
	}
	switch {
	case a.Sharpness > 1:
		out = imaging.Sharpen(out, a.Sharpness-1)
	case a.Sharpness < 1:
		out = imaging.Blur(out, 1-a.Sharpness)
	}
	return out
}

// scaleChannels multiplies each RGB channel by factor, leaving alpha alone.
func scaleChannels(img image.Image, factor float64) image.Image {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clampByte(float64(c.R) * factor),
			G: clampByte(float64(c.G) * factor),
			B: clampByte(float64(c.B) * factor),
			A: c.A,
		}
	})
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Flatten composites img onto a white background, discarding transparency.
// Opaque images pass through untouched.
func Flatten(img image.Image) image.Image {
	if isOpaque(img) {
		return img
	}
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.NRGBA{255, 255, 255, 255})
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func isOpaque(img image.Image) bool {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
