package model

import (
	"github.com/mvail/pixpress/domain/geometry"
)

// placeholderRect is shown before the image dimensions are known.
var placeholderRect = geometry.CropRect{X: 0, Y: 0, Width: 100, Height: 100}

// CropModel holds the crop rectangle in natural image pixels plus the image
// bounds it is clamped against. Zero value has no bounds and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type CropModel struct {
	bounds geometry.ImageBounds
	rect   geometry.CropRect
	active bool
	hasSet bool
}

func NewCropModel() *CropModel { return &CropModel{} }

// SetBounds records the natural image dimensions and clamps the current
// rectangle against them. A first SetBounds with no prior rectangle selects
// the full image.
func (m *CropModel) SetBounds(b geometry.ImageBounds) {
	if m == nil {
		return
	}
	m.bounds = b
	if !b.Known() {
		return
	}
	if !m.hasSet {
		m.rect = b.FullRect()
		m.hasSet = true
		return
	}
	m.rect = m.rect.Clamp(b)
}

// Bounds returns the natural image dimensions (may be unknown).
func (m *CropModel) Bounds() geometry.ImageBounds {
	if m == nil {
		return geometry.ImageBounds{}
	}
	return m.bounds
}

// SetRect stores a rectangle, clamped to the bounds when they are known.
func (m *CropModel) SetRect(r geometry.CropRect) {
	if m == nil {
		return
	}
	if m.bounds.Known() {
		r = r.Clamp(m.bounds)
	}
	m.rect = r
	m.hasSet = true
}

// Rect returns the current rectangle, or a placeholder while the image
// dimensions are unknown.
func (m *CropModel) Rect() geometry.CropRect {
	if m == nil {
		return placeholderRect
	}
	if !m.hasSet {
		return placeholderRect
	}
	return m.rect
}

// SetActive toggles crop mode.
func (m *CropModel) SetActive(b bool) {
	if m == nil {
		return
	}
	m.active = b
}

// Active reports whether crop mode is on.
func (m *CropModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active
}

// Reset drops the rectangle and bounds, returning to the placeholder.
func (m *CropModel) Reset() {
	if m == nil {
		return
	}
	*m = CropModel{}
}
