package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mvail/pixpress/domain/geometry"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CropPanel encapsulates the crop form: the X/Y/W/H fields, the aspect
// preset selector, and the apply button.
type CropPanel interface {
	Build(startRow int) (endRow int)
	SetEnabled(enabled bool)
	SetFields(r geometry.CropRect)
}

// CropHandlers are invoked on user actions in the panel.
type CropHandlers struct {
	OnFieldEdit func(x, y, w, h int)
	OnPreset    func(name string)
	OnApply     func()
}

type cropPanel struct {
	logger   *slog.Logger
	handlers CropHandlers
	widgets  map[string]*TextWidget // keyed by field id
	preset   *TComboboxWidget
	applyBtn *ButtonWidget
	syncing  bool
}

var presetNames = []string{"custom", "landscape", "portrait", "square"}

// NewCropPanel creates the view; Build must be called before use.
func NewCropPanel(handlers CropHandlers, logger *slog.Logger) CropPanel {
	return &cropPanel{logger: logger, handlers: handlers, widgets: make(map[string]*TextWidget)}
}

func (v *cropPanel) Build(startRow int) (row int) {
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		Bind(w, "<KeyRelease>", Command(func() { v.fieldsEdited() }))
		v.widgets[id] = w
		row++
	}
	makeRow("x", "Crop X", "0")
	makeRow("y", "Crop Y", "0")
	makeRow("w", "Crop Width", "100")
	makeRow("h", "Crop Height", "100")

	lbl := Label(Txt("Aspect Preset"), Anchor("w"))
	Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.preset = TCombobox(Values(presetNames), Width(12))
	Grid(v.preset, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	v.preset.Current(0)
	Bind(v.preset, "<<ComboboxSelected>>", Command(func() {
		if v.handlers.OnPreset == nil || v.preset == nil {
			return
		}
		idxStr := v.preset.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(presetNames) {
			if v.logger != nil {
				v.logger.Error("preset selection parse error", "error", err)
			}
			return
		}
		v.handlers.OnPreset(presetNames[idx])
	}))
	row++

	v.applyBtn = Button(Txt("Apply Crop"), Command(func() {
		if v.handlers.OnApply != nil {
			v.handlers.OnApply()
		}
	}))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

// fieldsEdited parses all four fields and forwards them. Partial input that
// does not parse yet is ignored until it does.
func (v *cropPanel) fieldsEdited() {
	if v.syncing || v.handlers.OnFieldEdit == nil {
		return
	}
	x, okX := v.intField("x")
	y, okY := v.intField("y")
	w, okW := v.intField("w")
	h, okH := v.intField("h")
	if !okX || !okY || !okW || !okH {
		return
	}
	v.handlers.OnFieldEdit(x, y, w, h)
}

func (v *cropPanel) intField(id string) (int, bool) {
	w := v.widgets[id]
	if w == nil {
		return 0, false
	}
	s := strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// SetFields writes the rectangle into the form without echoing it back
// through the edit handler.
func (v *cropPanel) SetFields(r geometry.CropRect) {
	if v == nil {
		return
	}
	v.syncing = true
	defer func() { v.syncing = false }()
	set := func(id string, val int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		w.Delete("1.0", END)
		w.Insert("1.0", fmt.Sprintf("%d", val))
	}
	set("x", r.X)
	set("y", r.Y)
	set("w", r.Width)
	set("h", r.Height)
}

func (v *cropPanel) SetEnabled(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.preset != nil {
		v.preset.Configure(State(state))
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}
