package images

import (
	"image"
	"image/color"

	"github.com/mvail/pixpress/domain/geometry"
)

const (
	borderThickness = 2
	handleSide      = 8
)

var (
	borderColor = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	handleColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawCropBox renders the crop rectangle onto a preview bitmap: the area
// outside the box is dimmed, the border is stroked, and the eight grab
// handles are filled. The rectangle is in bitmap coordinates.
func DrawCropBox(dst *image.RGBA, box geometry.DisplayRect) {
	if dst == nil {
		return
	}
	b := dst.Bounds()
	x0 := clampInt(int(box.Left+0.5), b.Min.X, b.Max.X)
	y0 := clampInt(int(box.Top+0.5), b.Min.Y, b.Max.Y)
	x1 := clampInt(int(box.Right()+0.5), b.Min.X, b.Max.X)
	y1 := clampInt(int(box.Bottom()+0.5), b.Min.Y, b.Max.Y)

	dimOutside(dst, image.Rect(x0, y0, x1, y1))
	strokeRect(dst, x0, y0, x1, y1)

	midX := (x0 + x1) / 2
	midY := (y0 + y1) / 2
	for _, pt := range []image.Point{
		{x0, y0}, {midX, y0}, {x1, y0},
		{x0, midY}, {x1, midY},
		{x0, y1}, {midX, y1}, {x1, y1},
	} {
		fillHandle(dst, pt.X, pt.Y)
	}
}

// dimOutside darkens every pixel outside keep.
func dimOutside(dst *image.RGBA, keep image.Rectangle) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if image.Pt(x, y).In(keep) {
				continue
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i] = dst.Pix[i] / 2
			dst.Pix[i+1] = dst.Pix[i+1] / 2
			dst.Pix[i+2] = dst.Pix[i+2] / 2
		}
	}
}

func strokeRect(dst *image.RGBA, x0, y0, x1, y1 int) {
	for t := 0; t < borderThickness; t++ {
		for x := x0; x < x1; x++ {
			setPx(dst, x, y0+t)
			setPx(dst, x, y1-1-t)
		}
		for y := y0; y < y1; y++ {
			setPx(dst, x0+t, y)
			setPx(dst, x1-1-t, y)
		}
	}
}

func fillHandle(dst *image.RGBA, cx, cy int) {
	half := handleSide / 2
	b := dst.Bounds()
	for y := cy - half; y < cy+half; y++ {
		for x := cx - half; x < cx+half; x++ {
			if image.Pt(x, y).In(b) {
				dst.SetRGBA(x, y, handleColor)
			}
		}
	}
}

func setPx(dst *image.RGBA, x, y int) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, borderColor)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
