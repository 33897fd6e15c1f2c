package geometry

// ImageBounds holds the intrinsic pixel dimensions of the loaded image.
// It is set once per load and replaced wholesale when the next image arrives.
type ImageBounds struct {
	NaturalWidth  int
	NaturalHeight int
}

// Known reports whether the image has been decoded far enough to expose
// usable dimensions.
func (b ImageBounds) Known() bool {
	return b.NaturalWidth > 0 && b.NaturalHeight > 0
}

// FullRect returns the rectangle covering the whole image.
func (b ImageBounds) FullRect() CropRect {
	return CropRect{X: 0, Y: 0, Width: b.NaturalWidth, Height: b.NaturalHeight}
}

// DisplayMetrics describes the rendered preview surface: its size and its
// offset inside the containing widget. It is derived whenever layout may have
// changed (image load, resize, mode toggle) and never persisted.
type DisplayMetrics struct {
	DisplayedWidth  float64
	DisplayedHeight float64
	OffsetLeft      float64
	OffsetTop       float64
}

// CropRect is the authoritative crop rectangle in image (pixel) space.
type CropRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Clamp constrains the rectangle to lie fully inside bounds. Values are
// adjusted, never rejected: the origin floors at zero, each dimension floors
// at one pixel, and overhanging edges are pulled back inside the image.
// Unknown bounds only apply the floors.
func (r CropRect) Clamp(b ImageBounds) CropRect {
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
	if !b.Known() {
		return r
	}
	if r.X > b.NaturalWidth-1 {
		r.X = b.NaturalWidth - 1
	}
	if r.Y > b.NaturalHeight-1 {
		r.Y = b.NaturalHeight - 1
	}
	if r.X+r.Width > b.NaturalWidth {
		r.Width = b.NaturalWidth - r.X
	}
	if r.Y+r.Height > b.NaturalHeight {
		r.Height = b.NaturalHeight - r.Y
	}
	return r
}

// DisplayRect is the projection of a CropRect onto the preview surface,
// container-relative.
type DisplayRect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r DisplayRect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r DisplayRect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r DisplayRect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}
