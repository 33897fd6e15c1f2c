package editor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/mvail/pixpress/domain/geometry"
)

// Crop cuts r out of img. The rectangle is clamped to the image bounds
// first, so a slightly-overshooting rectangle from a drag still succeeds.
func Crop(img image.Image, r geometry.CropRect) (image.Image, error) {
	bounds := geometry.ImageBounds{
		NaturalWidth:  img.Bounds().Dx(),
		NaturalHeight: img.Bounds().Dy(),
	}
	r = r.Clamp(bounds)
	if r.Width < 1 || r.Height < 1 {
		return nil, fmt.Errorf("crop rectangle %dx%d is empty", r.Width, r.Height)
	}
	return imaging.Crop(img, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)), nil
}
