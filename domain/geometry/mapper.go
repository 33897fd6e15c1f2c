// Package geometry defines the crop box data model and the pure conversions
// between image (pixel) space and the scaled, offset display surface.
package geometry

import "math"

// scales resolves the display-per-pixel factors and offsets for a layout.
// Unknown bounds collapse the mapping to identity so callers never divide by
// zero on an image that has not finished decoding.
func scales(m DisplayMetrics, b ImageBounds) (sx, sy, offL, offT float64) {
	if !b.Known() {
		return 1, 1, 0, 0
	}
	sx = m.DisplayedWidth / float64(b.NaturalWidth)
	sy = m.DisplayedHeight / float64(b.NaturalHeight)
	return sx, sy, m.OffsetLeft, m.OffsetTop
}

// ToDisplay projects an image-space rectangle onto the preview surface.
func ToDisplay(r CropRect, m DisplayMetrics, b ImageBounds) DisplayRect {
	sx, sy, offL, offT := scales(m, b)
	return DisplayRect{
		Left:   float64(r.X)*sx + offL,
		Top:    float64(r.Y)*sy + offT,
		Width:  float64(r.Width) * sx,
		Height: float64(r.Height) * sy,
	}
}

// ToImage converts a display rectangle back to image space. Each coordinate
// rounds to the nearest pixel; the origin floors at zero and each dimension
// floors at one pixel.
func ToImage(d DisplayRect, m DisplayMetrics, b ImageBounds) CropRect {
	sx, sy, offL, offT := scales(m, b)
	r := CropRect{
		X:      int(math.Round((d.Left - offL) / sx)),
		Y:      int(math.Round((d.Top - offT) / sy)),
		Width:  int(math.Round(d.Width / sx)),
		Height: int(math.Round(d.Height / sy)),
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.Width < 1 {
		r.Width = 1
	}
	if r.Height < 1 {
		r.Height = 1
	}
	return r
}
