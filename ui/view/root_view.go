package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/domain/geometry"
	"github.com/mvail/pixpress/ui/model"
	"github.com/mvail/pixpress/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Preview       Preview
	CropPanel     CropPanel
	AdjustPanel   AdjustPanel
	CompressPanel CompressPanel

	// Widgets
	StatusLabel *LabelWidget
	InfoLabel   *LabelWidget
	cropBtn     *ButtonWidget
	pathField   *TextWidget
}

// RootHandlers carries the callbacks invoked on top-level user actions.
// Panel-specific callbacks ride along in the embedded handler structs.
type RootHandlers struct {
	OnOpen        func(path string)
	OnCropToggle  func()
	OnResetImage  func()
	OnExit        func()
	OnPointerDown func(x, y float64)
	OnPointerMove func(x, y float64)
	OnPointerUp   func(x, y float64)

	Crop     CropHandlers
	Adjust   AdjustHandlers
	Compress CompressHandlers
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout and binds all user actions.
func (rv *RootView) Build(editorM *model.EditorModel, cropM *model.CropModel, h RootHandlers) {
	if rv == nil {
		return
	}
	// Row 0: open field + action buttons
	rv.pathField = Text(Height(1), Width(32))
	Grid(rv.pathField, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	openBtn := Button(Txt("Open"), Command(func() {
		path := strings.TrimSpace(strings.Join(rv.pathField.Get("1.0", END), ""))
		if path != "" && h.OnOpen != nil {
			h.OnOpen(path)
		}
	}))
	Grid(openBtn, Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.cropBtn = Button(Txt("Crop Mode"), Style(theme.StylePrimaryButton), Command(h.OnCropToggle))
	Grid(rv.cropBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	resetBtn := Button(Txt("Reset Image"), Style(theme.StyleDangerButton), Command(h.OnResetImage))
	Grid(resetBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: status and image info
	rv.StatusLabel = Label(Txt("No image loaded"), Borderwidth(1), Relief("ridge"), Anchor("w"))
	Grid(rv.StatusLabel, Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.InfoLabel = Label(Txt(""), Anchor("e"), Foreground(theme.ColorTextMuted))
	Grid(rv.InfoLabel, Row(1), Column(2), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Row 2: preview with pointer bindings for the crop box
	rv.Preview = NewPreview(2, editorM, cropM)
	if w := rv.Preview.Widget(); w != nil {
		Bind(w, "<ButtonPress-1>", Command(func(e *Event) {
			if h.OnPointerDown != nil {
				h.OnPointerDown(float64(e.X), float64(e.Y))
			}
		}))
		Bind(w, "<B1-Motion>", Command(func(e *Event) {
			if h.OnPointerMove != nil {
				h.OnPointerMove(float64(e.X), float64(e.Y))
			}
		}))
		Bind(w, "<ButtonRelease-1>", Command(func(e *Event) {
			if h.OnPointerUp != nil {
				h.OnPointerUp(float64(e.X), float64(e.Y))
			}
		}))
	}

	// Rows 3+: crop form on the left, adjust and export forms on the right
	rv.CropPanel = NewCropPanel(h.Crop, rv.logger)
	leftEnd := rv.CropPanel.Build(3)
	rv.AdjustPanel = NewAdjustPanel(h.Adjust)
	rightEnd := rv.AdjustPanel.Build(3)
	rv.CompressPanel = NewCompressPanel(h.Compress, rv.logger)
	rightEnd = rv.CompressPanel.Build(rightEnd)
	_ = leftEnd
	_ = rightEnd

	rv.CropPanel.SetEnabled(false)
	rv.AdjustPanel.SetEnabled(false)
	rv.CompressPanel.SetEnabled(false)
}

// --- EditorView contract methods ---

// ShowPreview re-renders the preview surface from the models.
func (rv *RootView) ShowPreview() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Redraw()
	}
	rv.SetPanelsEnabled(true)
}

// ShowInfo updates the dimension and size readout.
func (rv *RootView) ShowInfo(info editor.Info) {
	if rv == nil || rv.InfoLabel == nil {
		return
	}
	rv.InfoLabel.Configure(Txt(fmt.Sprintf("%dx%d %s  %.1f KB", info.Width, info.Height, info.Format, info.SizeKB)))
}

// ShowCleared returns the window to its empty-session state.
func (rv *RootView) ShowCleared() {
	if rv == nil {
		return
	}
	if rv.Preview != nil {
		rv.Preview.Reset()
	}
	if rv.InfoLabel != nil {
		rv.InfoLabel.Configure(Txt(""))
	}
	rv.SetPanelsEnabled(false)
	rv.SetCropVisible(false)
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// ShowError surfaces a failure in the status line.
func (rv *RootView) ShowError(msg string) {
	rv.SetStatus("Error: " + msg)
	if rv != nil && rv.logger != nil {
		rv.logger.Error("ui error", "message", msg)
	}
}

// --- CropView contract methods ---

// SetCropVisible toggles the crop form and the toggle button label.
func (rv *RootView) SetCropVisible(visible bool) {
	if rv == nil {
		return
	}
	if rv.CropPanel != nil {
		rv.CropPanel.SetEnabled(visible)
	}
	if rv.cropBtn != nil {
		if visible {
			rv.cropBtn.Configure(Txt("Exit Crop Mode"))
		} else {
			rv.cropBtn.Configure(Txt("Crop Mode"))
		}
	}
}

// SetCropFields proxies to the crop form.
func (rv *RootView) SetCropFields(r geometry.CropRect) {
	if rv != nil && rv.CropPanel != nil {
		rv.CropPanel.SetFields(r)
	}
}

// RedrawOverlay proxies to the preview surface.
func (rv *RootView) RedrawOverlay() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Redraw()
	}
}

// Metrics satisfies the presenter's layout provider.
func (rv *RootView) Metrics() geometry.DisplayMetrics {
	if rv == nil || rv.Preview == nil {
		return geometry.DisplayMetrics{}
	}
	return rv.Preview.Metrics()
}

// SetPanelsEnabled toggles the adjust and export forms. The crop form
// follows crop mode instead.
func (rv *RootView) SetPanelsEnabled(enabled bool) {
	if rv == nil {
		return
	}
	if rv.AdjustPanel != nil {
		rv.AdjustPanel.SetEnabled(enabled)
	}
	if rv.CompressPanel != nil {
		rv.CompressPanel.SetEnabled(enabled)
	}
}

// SetAdjustValues proxies to the adjust form.
func (rv *RootView) SetAdjustValues(a editor.Adjustments) {
	if rv != nil && rv.AdjustPanel != nil {
		rv.AdjustPanel.SetValues(a)
	}
}
