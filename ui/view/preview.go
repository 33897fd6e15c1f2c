package view

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mvail/pixpress/domain/geometry"
	"github.com/mvail/pixpress/ui/images"
	"github.com/mvail/pixpress/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview renders the working image, letterboxed into a fixed surface, with
// the crop overlay composited on top while crop mode is active. It also
// reports the layout metrics the geometry mapping needs.
type Preview interface {
	Redraw()
	Reset()
	Metrics() geometry.DisplayMetrics
	Widget() *LabelWidget
}

type preview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
	editorM   *model.EditorModel
	cropM     *model.CropModel
	surfaceW  int
	surfaceH  int
}

const (
	// Preview surface dimensions. The image is scaled to fit and centered;
	// the margins around it are part of the pointer coordinate space.
	surfaceW = 640
	surfaceH = 420
)

var surfaceBg = color.RGBA{R: 30, G: 41, B: 59, A: 255}

// NewPreview creates the preview label and grids it at the given row.
func NewPreview(row int, editorM *model.EditorModel, cropM *model.CropModel) Preview {
	v := &preview{editorM: editorM, cropM: cropM, surfaceW: surfaceW, surfaceH: surfaceH}
	pngBytes := images.EncodePNG(v.compose())
	photo := NewPhoto(Data(pngBytes))
	v.label = Label(Image(photo), Borderwidth(1), Relief("sunken"))
	v.prevPhoto = photo
	Grid(v.label, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return v
}

// Metrics derives the displayed size and centering offsets for the loaded
// image. Unknown bounds yield zero metrics, which the mapper treats as
// identity.
func (v *preview) Metrics() geometry.DisplayMetrics {
	b := v.cropM.Bounds()
	if !b.Known() {
		return geometry.DisplayMetrics{}
	}
	w, h := images.FitWithin(b.NaturalWidth, b.NaturalHeight, v.surfaceW, v.surfaceH)
	return geometry.DisplayMetrics{
		DisplayedWidth:  float64(w),
		DisplayedHeight: float64(h),
		OffsetLeft:      float64((v.surfaceW - w) / 2),
		OffsetTop:       float64((v.surfaceH - h) / 2),
	}
}

// compose renders the surface bitmap: background, centered image, overlay.
func (v *preview) compose() *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, v.surfaceW, v.surfaceH))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(surfaceBg), image.Point{}, draw.Src)

	src := v.editorM.Preview()
	if src == nil {
		return frame
	}
	m := v.Metrics()
	scaled := images.ScaleToFit(src, v.surfaceW, v.surfaceH)
	target := image.Rect(int(m.OffsetLeft), int(m.OffsetTop),
		int(m.OffsetLeft)+scaled.Bounds().Dx(), int(m.OffsetTop)+scaled.Bounds().Dy())
	draw.Draw(frame, target, scaled, image.Point{}, draw.Src)

	if v.cropM.Active() {
		box := geometry.ToDisplay(v.cropM.Rect(), m, v.cropM.Bounds())
		images.DrawCropBox(frame, box)
	}
	return frame
}

// Redraw re-renders the surface from the models and swaps the photo.
// Replace previous photo to avoid retaining obsolete pixel buffers.
func (v *preview) Redraw() {
	if v == nil || v.label == nil {
		return
	}
	pngBytes := images.EncodePNG(v.compose())
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

// Reset redraws the empty surface.
func (v *preview) Reset() {
	v.Redraw()
}

// Widget exposes the label for pointer event bindings.
func (v *preview) Widget() *LabelWidget {
	if v == nil {
		return nil
	}
	return v.label
}
