package crop

import (
	"testing"

	"github.com/mvail/pixpress/domain/geometry"
)

// Wide-open metrics so transform tests are not clipped.
var openMetrics = geometry.DisplayMetrics{DisplayedWidth: 10000, DisplayedHeight: 10000}

func drag(t *testing.T, h Handle, box geometry.DisplayRect, m geometry.DisplayMetrics, dx, dy float64) geometry.DisplayRect {
	t.Helper()
	c := NewDragController(nil)
	if !c.Begin(h, 500, 500, box, m) {
		t.Fatalf("Begin refused handle %v", h)
	}
	r, ok := c.Move(500+dx, 500+dy)
	if !ok {
		t.Fatalf("Move reported idle during drag")
	}
	end, ok := c.End(500+dx, 500+dy)
	if !ok || end != r {
		t.Fatalf("End mismatch: move=%+v end=%+v ok=%v", r, end, ok)
	}
	if c.Dragging() {
		t.Fatalf("controller still dragging after End")
	}
	return r
}

func TestDrag_PerHandleTransforms(t *testing.T) {
	base := geometry.DisplayRect{Left: 200, Top: 200, Width: 100, Height: 100}
	const dx, dy = 8, 6
	cases := []struct {
		h    Handle
		want geometry.DisplayRect
	}{
		{HandleMove, geometry.DisplayRect{Left: 208, Top: 206, Width: 100, Height: 100}},
		{HandleTopLeft, geometry.DisplayRect{Left: 208, Top: 206, Width: 92, Height: 94}},
		{HandleTopRight, geometry.DisplayRect{Left: 200, Top: 206, Width: 108, Height: 94}},
		{HandleBottomLeft, geometry.DisplayRect{Left: 208, Top: 200, Width: 92, Height: 106}},
		{HandleBottomRight, geometry.DisplayRect{Left: 200, Top: 200, Width: 108, Height: 106}},
		{HandleTop, geometry.DisplayRect{Left: 200, Top: 206, Width: 100, Height: 94}},
		{HandleBottom, geometry.DisplayRect{Left: 200, Top: 200, Width: 100, Height: 106}},
		{HandleLeft, geometry.DisplayRect{Left: 208, Top: 200, Width: 92, Height: 100}},
		{HandleRight, geometry.DisplayRect{Left: 200, Top: 200, Width: 108, Height: 100}},
	}
	for _, tc := range cases {
		if got := drag(t, tc.h, base, openMetrics, dx, dy); got != tc.want {
			t.Fatalf("%v: got %+v want %+v", tc.h, got, tc.want)
		}
	}
}

func TestDrag_TopLeftGrow(t *testing.T) {
	// Dragging tl by (-15,-15) grows the box toward the origin.
	base := geometry.DisplayRect{Left: 100, Top: 100, Width: 60, Height: 60}
	got := drag(t, HandleTopLeft, base, openMetrics, -15, -15)
	want := geometry.DisplayRect{Left: 85, Top: 85, Width: 75, Height: 75}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestDrag_MinimumSizeClampsToExactly30(t *testing.T) {
	base := geometry.DisplayRect{Left: 200, Top: 200, Width: 100, Height: 100}
	got := drag(t, HandleBottomRight, base, openMetrics, -95, -99)
	if got.Width != MinDisplaySize || got.Height != MinDisplaySize {
		t.Fatalf("expected %vx%v box, got %+v", MinDisplaySize, MinDisplaySize, got)
	}
}

func TestDrag_ResizeOverflowShrinksToFit(t *testing.T) {
	m := geometry.DisplayMetrics{DisplayedWidth: 400, DisplayedHeight: 300, OffsetLeft: 10, OffsetTop: 10}
	base := geometry.DisplayRect{Left: 300, Top: 200, Width: 60, Height: 60}
	got := drag(t, HandleBottomRight, base, m, 500, 500)
	if got.Right() != m.OffsetLeft+m.DisplayedWidth {
		t.Fatalf("right edge should clamp to image edge: %+v", got)
	}
	if got.Bottom() != m.OffsetTop+m.DisplayedHeight {
		t.Fatalf("bottom edge should clamp to image edge: %+v", got)
	}
	if got.Left != 300 || got.Top != 200 {
		t.Fatalf("resize clamp must not move the origin: %+v", got)
	}
}

func TestDrag_MoveOverflowSlidesPreservingSize(t *testing.T) {
	m := geometry.DisplayMetrics{DisplayedWidth: 400, DisplayedHeight: 300, OffsetLeft: 10, OffsetTop: 10}
	base := geometry.DisplayRect{Left: 300, Top: 200, Width: 60, Height: 60}
	got := drag(t, HandleMove, base, m, 500, 500)
	if got.Width != 60 || got.Height != 60 {
		t.Fatalf("move must preserve size: %+v", got)
	}
	if got.Right() != 410 || got.Bottom() != 310 {
		t.Fatalf("move should slide flush to the far edges: %+v", got)
	}
}

func TestDrag_MovePastLeftClampsToOffset(t *testing.T) {
	m := geometry.DisplayMetrics{DisplayedWidth: 400, DisplayedHeight: 300, OffsetLeft: 10, OffsetTop: 10}
	base := geometry.DisplayRect{Left: 50, Top: 50, Width: 60, Height: 60}
	got := drag(t, HandleMove, base, m, -500, -500)
	if got.Left != 10 || got.Top != 10 {
		t.Fatalf("origin should clamp to image offset: %+v", got)
	}
	if got.Width != 60 || got.Height != 60 {
		t.Fatalf("clamp must not alter size: %+v", got)
	}
}

func TestDrag_StalePointerUpIsNoOp(t *testing.T) {
	c := NewDragController(nil)
	if _, ok := c.End(10, 10); ok {
		t.Fatal("End without a session should report false")
	}
	if _, ok := c.Move(10, 10); ok {
		t.Fatal("Move without a session should report false")
	}
}

func TestDrag_CancelDropsSession(t *testing.T) {
	c := NewDragController(nil)
	c.Begin(HandleMove, 0, 0, geometry.DisplayRect{Width: 50, Height: 50}, openMetrics)
	c.Cancel()
	if c.Dragging() {
		t.Fatal("Cancel should return to idle")
	}
	if _, ok := c.End(5, 5); ok {
		t.Fatal("session should be gone after Cancel")
	}
}

func TestDrag_BeginRefusesNone(t *testing.T) {
	c := NewDragController(nil)
	if c.Begin(HandleNone, 0, 0, geometry.DisplayRect{}, openMetrics) {
		t.Fatal("Begin should refuse HandleNone")
	}
	if c.State() != StateIdle {
		t.Fatalf("state should stay idle, got %v", c.State())
	}
}

func TestDrag_MovesApplyFromFrozenStart(t *testing.T) {
	// Each move is computed against the pointer-down snapshot, so deltas do
	// not accumulate across events.
	c := NewDragController(nil)
	base := geometry.DisplayRect{Left: 100, Top: 100, Width: 80, Height: 80}
	c.Begin(HandleMove, 0, 0, base, openMetrics)
	c.Move(10, 0)
	r, _ := c.Move(12, 0)
	if r.Left != 112 {
		t.Fatalf("expected left 112 from cumulative pointer position, got %+v", r)
	}
}

func TestHitTest(t *testing.T) {
	box := geometry.DisplayRect{Left: 100, Top: 100, Width: 200, Height: 100}
	cases := []struct {
		name string
		x, y float64
		want Handle
	}{
		{"corner tl", 102, 98, HandleTopLeft},
		{"corner br", 298, 203, HandleBottomRight},
		{"edge top", 200, 101, HandleTop},
		{"edge bottom", 200, 199, HandleBottom},
		{"edge left", 101, 150, HandleLeft},
		{"edge right", 299, 150, HandleRight},
		{"body", 200, 150, HandleMove},
		{"outside", 400, 400, HandleNone},
		{"corner beats edge", 105, 105, HandleTopLeft},
	}
	for _, tc := range cases {
		if got := HitTest(box, tc.x, tc.y); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestHandleStrings(t *testing.T) {
	if HandleTopLeft.String() != "tl" || HandleMove.String() != "move" || HandleNone.String() != "none" {
		t.Fatal("handle names changed")
	}
	if HandleMove.Resizes() || !HandleBottomRight.Resizes() {
		t.Fatal("Resizes misclassifies handles")
	}
}
