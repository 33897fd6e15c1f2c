package view

import (
	"log/slog"
	"strconv"
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CompressPanel encapsulates the export form: quality, output format, size
// target, and the compress/download actions.
type CompressPanel interface {
	Build(startRow int) (endRow int)
	SetEnabled(enabled bool)
}

// CompressHandlers are invoked on user actions in the panel.
type CompressHandlers struct {
	OnCompress func(quality int, format string, maxSizeKB int)
	OnDownload func(destPath string)
}

type compressPanel struct {
	logger      *slog.Logger
	handlers    CompressHandlers
	quality     *TextWidget
	maxSize     *TextWidget
	dest        *TextWidget
	format      *TComboboxWidget
	compressBtn *ButtonWidget
	downloadBtn *ButtonWidget
}

var formatNames = []string{"jpeg", "png"}

// NewCompressPanel creates the view; Build must be called before use.
func NewCompressPanel(handlers CompressHandlers, logger *slog.Logger) CompressPanel {
	return &compressPanel{logger: logger, handlers: handlers}
}

func (v *compressPanel) Build(startRow int) (row int) {
	row = startRow
	makeRow := func(label, value string, width int) *TextWidget {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(width))
		Grid(w, Row(row), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		row++
		return w
	}
	v.quality = makeRow("Quality (1-100)", "85", 8)
	v.maxSize = makeRow("Max Size KB (0 = off)", "0", 8)

	lbl := Label(Txt("Output Format"), Anchor("w"))
	Grid(lbl, Row(row), Column(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.format = TCombobox(Values(formatNames), Width(8))
	Grid(v.format, Row(row), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	v.format.Current(0)
	row++

	v.compressBtn = Button(Txt("Compress"), Command(v.compress))
	Grid(v.compressBtn, Row(row), Column(2), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	v.dest = makeRow("Save As", "output.jpg", 20)
	v.downloadBtn = Button(Txt("Download"), Command(v.download))
	Grid(v.downloadBtn, Row(row), Column(2), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *compressPanel) compress() {
	if v.handlers.OnCompress == nil {
		return
	}
	quality, ok := v.intValue(v.quality)
	if !ok || quality < 1 || quality > 100 {
		if v.logger != nil {
			v.logger.Error("invalid quality field")
		}
		return
	}
	maxKB, ok := v.intValue(v.maxSize)
	if !ok || maxKB < 0 {
		maxKB = 0
	}
	format := formatNames[0]
	if v.format != nil {
		if idx, err := strconv.Atoi(v.format.Current(nil)); err == nil && idx >= 0 && idx < len(formatNames) {
			format = formatNames[idx]
		}
	}
	v.handlers.OnCompress(quality, format, maxKB)
}

func (v *compressPanel) download() {
	if v.handlers.OnDownload == nil || v.dest == nil {
		return
	}
	dest := strings.TrimSpace(strings.Join(v.dest.Get("1.0", END), ""))
	if dest == "" {
		return
	}
	v.handlers.OnDownload(dest)
}

func (v *compressPanel) intValue(w *TextWidget) (int, bool) {
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

func (v *compressPanel) SetEnabled(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range []*TextWidget{v.quality, v.maxSize, v.dest} {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.format != nil {
		v.format.Configure(State(state))
	}
	if v.compressBtn != nil {
		v.compressBtn.Configure(State(state))
	}
	if v.downloadBtn != nil {
		v.downloadBtn.Configure(State(state))
	}
}
