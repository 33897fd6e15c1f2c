package crop

import (
	"math"

	"github.com/mvail/pixpress/domain/geometry"
)

// Preset names an aspect-ratio preset for the crop rectangle.
type Preset string

const (
	PresetLandscape Preset = "landscape" // 16:9
	PresetPortrait  Preset = "portrait"  // 9:16
	PresetSquare    Preset = "square"
	PresetCustom    Preset = "custom" // UI state only, leaves geometry alone
)

// Fallback bounds assumed when the image dimensions are not known yet.
const (
	DefaultBoundsWidth  = 800
	DefaultBoundsHeight = 600
)

// ParsePreset maps a preset tag to its Preset value.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetLandscape, PresetPortrait, PresetSquare, PresetCustom:
		return Preset(s), true
	default:
		return "", false
	}
}

// Apply computes the largest rectangle with the preset's aspect ratio that
// fits inside bounds, centered. The second return is false for PresetCustom
// (and unknown tags), which perform no geometry change. The result is stable:
// applying the same preset twice yields the identical rectangle.
func (p Preset) Apply(b geometry.ImageBounds) (geometry.CropRect, bool) {
	if !b.Known() {
		b = geometry.ImageBounds{NaturalWidth: DefaultBoundsWidth, NaturalHeight: DefaultBoundsHeight}
	}
	var w, h int
	switch p {
	case PresetLandscape:
		w = b.NaturalWidth
		h = round(float64(w) * 9.0 / 16.0)
		if h > b.NaturalHeight {
			h = b.NaturalHeight
			w = round(float64(h) * 16.0 / 9.0)
		}
	case PresetPortrait:
		h = b.NaturalHeight
		w = round(float64(h) * 9.0 / 16.0)
		if w > b.NaturalWidth {
			w = b.NaturalWidth
			h = round(float64(w) * 16.0 / 9.0)
		}
	case PresetSquare:
		side := b.NaturalWidth
		if b.NaturalHeight < side {
			side = b.NaturalHeight
		}
		w, h = side, side
	default:
		return geometry.CropRect{}, false
	}
	// Integer halving matches the observed centering (a half-pixel remainder
	// goes to the far side).
	return geometry.CropRect{
		X:      (b.NaturalWidth - w) / 2,
		Y:      (b.NaturalHeight - h) / 2,
		Width:  w,
		Height: h,
	}, true
}

func round(v float64) int { return int(math.Round(v)) }
