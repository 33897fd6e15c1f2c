package crop

import (
	"log/slog"

	"github.com/mvail/pixpress/domain/geometry"
)

// MinDisplaySize is the smallest box width or height, in display units, a
// resize may produce.
const MinDisplaySize = 30

// DragState enumerates the controller states.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

func (s DragState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DragSession freezes everything a drag needs at pointer-down time: the
// grabbed handle, the press position, the box projection at drag start and
// the display metrics in effect. The metrics snapshot keeps a reflow during
// the drag from feeding back into the geometry.
type DragSession struct {
	Handle   Handle
	StartX   float64
	StartY   float64
	StartBox geometry.DisplayRect
	Metrics  geometry.DisplayMetrics
}

// DragController turns pointer events into crop box mutations. It is the only
// writer of the rectangle while a drag is active; every Move is applied
// synchronously on the calling event, in delivery order, against the frozen
// session snapshot.
type DragController struct {
	state   DragState
	session DragSession
	logger  *slog.Logger
}

// NewDragController returns an idle controller.
func NewDragController(logger *slog.Logger) *DragController {
	return &DragController{logger: logger}
}

// State returns the current machine state.
func (c *DragController) State() DragState {
	if c == nil {
		return StateIdle
	}
	return c.state
}

// Dragging reports whether a session is active.
func (c *DragController) Dragging() bool { return c.State() == StateDragging }

// Session returns the frozen drag snapshot and whether one is active.
func (c *DragController) Session() (DragSession, bool) {
	if c == nil || c.state != StateDragging {
		return DragSession{}, false
	}
	return c.session, true
}

// Begin starts a drag session for the given handle. HandleNone is refused.
// A press while already dragging restarts the session from the new snapshot.
func (c *DragController) Begin(h Handle, x, y float64, box geometry.DisplayRect, m geometry.DisplayMetrics) bool {
	if c == nil || h == HandleNone {
		return false
	}
	c.session = DragSession{Handle: h, StartX: x, StartY: y, StartBox: box, Metrics: m}
	c.state = StateDragging
	if c.logger != nil {
		c.logger.Debug("drag begin", "handle", h.String(), "x", x, "y", y)
	}
	return true
}

// Move applies the pointer delta to the frozen start box and returns the
// constrained display rectangle. It reports false while idle.
func (c *DragController) Move(x, y float64) (geometry.DisplayRect, bool) {
	if c == nil || c.state != StateDragging {
		return geometry.DisplayRect{}, false
	}
	s := c.session
	r := transform(s.Handle, s.StartBox, x-s.StartX, y-s.StartY)
	return constrain(s.Handle, r, s.Metrics), true
}

// End finishes the session, returning the final constrained rectangle.
// A pointer-up with no active session is a no-op, not an error.
func (c *DragController) End(x, y float64) (geometry.DisplayRect, bool) {
	r, ok := c.Move(x, y)
	if !ok {
		return geometry.DisplayRect{}, false
	}
	if c.logger != nil {
		c.logger.Debug("drag end", "handle", c.session.Handle.String())
	}
	c.state = StateIdle
	c.session = DragSession{}
	return r, true
}

// Cancel drops any active session without producing a rectangle. Used on
// crop-mode exit and image reset.
func (c *DragController) Cancel() {
	if c == nil {
		return
	}
	c.state = StateIdle
	c.session = DragSession{}
}

// transform applies the per-handle delta mapping to the start box. Corner and
// edge handles move their edge(s) and compensate the size so the opposite
// edge stays put; move translates the whole box.
func transform(h Handle, box geometry.DisplayRect, dx, dy float64) geometry.DisplayRect {
	r := box
	switch h {
	case HandleMove:
		r.Left += dx
		r.Top += dy
	case HandleTopLeft:
		r.Left += dx
		r.Top += dy
		r.Width -= dx
		r.Height -= dy
	case HandleTopRight:
		r.Top += dy
		r.Width += dx
		r.Height -= dy
	case HandleBottomLeft:
		r.Left += dx
		r.Width -= dx
		r.Height += dy
	case HandleBottomRight:
		r.Width += dx
		r.Height += dy
	case HandleTop:
		r.Top += dy
		r.Height -= dy
	case HandleBottom:
		r.Height += dy
	case HandleLeft:
		r.Left += dx
		r.Width -= dx
	case HandleRight:
		r.Width += dx
	}
	return r
}

// constrain enforces the drag invariants, in order: minimum display size,
// left/top clamped to the image's display offset, then right/bottom overflow.
// Overflow slides the box back when moving (size preserved) and shrinks the
// box when resizing.
func constrain(h Handle, r geometry.DisplayRect, m geometry.DisplayMetrics) geometry.DisplayRect {
	if r.Width < MinDisplaySize {
		r.Width = MinDisplaySize
	}
	if r.Height < MinDisplaySize {
		r.Height = MinDisplaySize
	}
	if r.Left < m.OffsetLeft {
		r.Left = m.OffsetLeft
	}
	if r.Top < m.OffsetTop {
		r.Top = m.OffsetTop
	}
	imgRight := m.OffsetLeft + m.DisplayedWidth
	if r.Right() > imgRight {
		if h == HandleMove {
			r.Left = imgRight - r.Width
		} else {
			r.Width = imgRight - r.Left
		}
	}
	imgBottom := m.OffsetTop + m.DisplayedHeight
	if r.Bottom() > imgBottom {
		if h == HandleMove {
			r.Top = imgBottom - r.Height
		} else {
			r.Height = imgBottom - r.Top
		}
	}
	return r
}
