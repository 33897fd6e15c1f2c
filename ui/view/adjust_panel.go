package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mvail/pixpress/domain/editor"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AdjustPanel encapsulates the enhancement factor form. Factors are
// multiplicative: 1.0 leaves the image unchanged.
type AdjustPanel interface {
	Build(startRow int) (endRow int)
	SetEnabled(enabled bool)
	SetValues(a editor.Adjustments)
}

// AdjustHandlers are invoked on user actions in the panel.
type AdjustHandlers struct {
	OnEdit  func(a editor.Adjustments)
	OnReset func()
}

type adjustPanel struct {
	handlers AdjustHandlers
	widgets  map[string]*TextWidget
	resetBtn *ButtonWidget
	syncing  bool
}

// NewAdjustPanel creates the view; Build must be called before use.
func NewAdjustPanel(handlers AdjustHandlers) AdjustPanel {
	return &adjustPanel{handlers: handlers, widgets: make(map[string]*TextWidget)}
}

func (v *adjustPanel) Build(startRow int) (row int) {
	row = startRow
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(8))
		Grid(w, Row(row), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", "1.0")
		Bind(w, "<KeyRelease>", Command(func() { v.valuesEdited() }))
		v.widgets[id] = w
		row++
	}
	makeRow("brightness", "Brightness")
	makeRow("contrast", "Contrast")
	makeRow("saturation", "Saturation")
	makeRow("sharpness", "Sharpness")

	v.resetBtn = Button(Txt("Reset Factors"), Command(func() {
		v.SetValues(editor.DefaultAdjustments())
		if v.handlers.OnReset != nil {
			v.handlers.OnReset()
		}
	}))
	Grid(v.resetBtn, Row(row), Column(2), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *adjustPanel) valuesEdited() {
	if v.syncing || v.handlers.OnEdit == nil {
		return
	}
	a := editor.Adjustments{}
	fields := []struct {
		id  string
		dst *float64
	}{
		{"brightness", &a.Brightness},
		{"contrast", &a.Contrast},
		{"saturation", &a.Saturation},
		{"sharpness", &a.Sharpness},
	}
	for _, f := range fields {
		w := v.widgets[f.id]
		if w == nil {
			return
		}
		s := strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return
		}
		*f.dst = val
	}
	v.handlers.OnEdit(a)
}

// SetValues writes factors into the form without echoing them back through
// the edit handler.
func (v *adjustPanel) SetValues(a editor.Adjustments) {
	if v == nil {
		return
	}
	v.syncing = true
	defer func() { v.syncing = false }()
	set := func(id string, val float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		w.Delete("1.0", END)
		w.Insert("1.0", fmt.Sprintf("%.2f", val))
	}
	set("brightness", a.Brightness)
	set("contrast", a.Contrast)
	set("saturation", a.Saturation)
	set("sharpness", a.Sharpness)
}

func (v *adjustPanel) SetEnabled(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.resetBtn != nil {
		v.resetBtn.Configure(State(state))
	}
}
