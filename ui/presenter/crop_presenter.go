package presenter

import (
	"log/slog"

	"github.com/mvail/pixpress/domain/crop"
	"github.com/mvail/pixpress/domain/geometry"
	"github.com/mvail/pixpress/ui/model"
)

// CropApplier commits a crop rectangle to the server.
type CropApplier interface {
	RequestCrop(geometry.CropRect)
}

// CropView is the UI surface for crop mode: the numeric fields, the overlay
// visibility, and the overlay redraw.
type CropView interface {
	SetCropVisible(bool)
	SetCropFields(r geometry.CropRect)
	RedrawOverlay()
	ShowError(msg string)
}

// MetricsProvider reports the current preview layout.
type MetricsProvider interface {
	Metrics() geometry.DisplayMetrics
}

// CropPresenter keeps the crop rectangle, its overlay projection, and the
// numeric fields in sync. Pointer events are applied synchronously in
// delivery order; the image-space model is the single source of truth and
// the display box is recomputed from it on every change.
type CropPresenter struct {
	Model   *model.CropModel
	Drag    *crop.DragController
	View    CropView
	Metrics MetricsProvider
	Applier CropApplier
	logger  *slog.Logger
}

func NewCropPresenter(m *model.CropModel, drag *crop.DragController, view CropView, metrics MetricsProvider, applier CropApplier, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{Model: m, Drag: drag, View: view, Metrics: metrics, Applier: applier, logger: logger}
}

// EnterCropMode shows the overlay and fields. Idempotent.
func (p *CropPresenter) EnterCropMode() {
	if p == nil || p.Model == nil || p.View == nil {
		return
	}
	if p.Model.Active() {
		return
	}
	p.Model.SetActive(true)
	p.View.SetCropVisible(true)
	p.View.SetCropFields(p.Model.Rect())
	p.View.RedrawOverlay()
}

// ExitCropMode hides the overlay, dropping any drag in flight. Idempotent.
func (p *CropPresenter) ExitCropMode() {
	if p == nil || p.Model == nil || p.View == nil {
		return
	}
	if !p.Model.Active() {
		return
	}
	p.Drag.Cancel()
	p.Model.SetActive(false)
	p.View.SetCropVisible(false)
	p.View.RedrawOverlay()
}

// OnPointerDown hit-tests the box and opens a drag session on a handle.
func (p *CropPresenter) OnPointerDown(x, y float64) {
	if p == nil || p.Model == nil || !p.Model.Active() || p.Metrics == nil {
		return
	}
	m := p.Metrics.Metrics()
	box := geometry.ToDisplay(p.Model.Rect(), m, p.Model.Bounds())
	h := crop.HitTest(box, x, y)
	if h == crop.HandleNone {
		return
	}
	p.Drag.Begin(h, x, y, box, m)
}

// OnPointerMove advances an active drag. Events while idle are ignored.
func (p *CropPresenter) OnPointerMove(x, y float64) {
	if p == nil {
		return
	}
	s, active := p.Drag.Session()
	d, ok := p.Drag.Move(x, y)
	if !active || !ok {
		return
	}
	p.applyDisplayRect(d, s.Metrics)
}

// OnPointerUp finishes the drag and applies the final rectangle.
func (p *CropPresenter) OnPointerUp(x, y float64) {
	if p == nil {
		return
	}
	s, active := p.Drag.Session()
	d, ok := p.Drag.End(x, y)
	if !active || !ok {
		return
	}
	p.applyDisplayRect(d, s.Metrics)
}

// applyDisplayRect converts with the session's frozen metrics so a reflow
// during the drag cannot skew the mapping.
func (p *CropPresenter) applyDisplayRect(d geometry.DisplayRect, m geometry.DisplayMetrics) {
	r := geometry.ToImage(d, m, p.Model.Bounds())
	p.Model.SetRect(r)
	p.View.SetCropFields(p.Model.Rect())
	p.View.RedrawOverlay()
}

// OnFieldEdit applies numeric field input. Widths or heights below one
// pixel are rejected and the fields snap back to the current rectangle.
func (p *CropPresenter) OnFieldEdit(x, y, w, h int) {
	if p == nil || p.Model == nil || p.View == nil {
		return
	}
	if w < 1 || h < 1 {
		p.View.SetCropFields(p.Model.Rect())
		return
	}
	p.Model.SetRect(geometry.CropRect{X: x, Y: y, Width: w, Height: h})
	p.View.SetCropFields(p.Model.Rect())
	p.View.RedrawOverlay()
}

// OnPreset applies an aspect-ratio preset centered on the image. Unknown
// names and "custom" leave the rectangle as is.
func (p *CropPresenter) OnPreset(name string) {
	if p == nil || p.Model == nil || p.View == nil {
		return
	}
	pr, _ := crop.ParsePreset(name)
	r, ok := pr.Apply(p.Model.Bounds())
	if !ok {
		return
	}
	p.Model.SetRect(r)
	p.View.SetCropFields(p.Model.Rect())
	p.View.RedrawOverlay()
	if p.logger != nil {
		p.logger.Debug("preset applied", "preset", name, "x", r.X, "y", r.Y, "w", r.Width, "h", r.Height)
	}
}

// Apply commits the current rectangle to the server and leaves crop mode.
func (p *CropPresenter) Apply() {
	if p == nil || p.Model == nil || p.Applier == nil {
		return
	}
	r := p.Model.Rect()
	if r.Width < 1 || r.Height < 1 {
		if p.View != nil {
			p.View.ShowError("Crop area must be at least 1x1 pixels")
		}
		return
	}
	p.Applier.RequestCrop(r)
	p.ExitCropMode()
}
