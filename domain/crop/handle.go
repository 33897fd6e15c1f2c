// Package crop drives the interactive crop box: handle identification, the
// pointer drag state machine and aspect-ratio presets. All geometry here is
// display-space; projection to pixel space lives in domain/geometry.
package crop

// Handle identifies one of the nine drag affordances on the crop box: the
// four corners, the four edge midpoints and the whole-box move.
type Handle int

const (
	HandleNone Handle = iota
	HandleMove
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
)

func (h Handle) String() string {
	switch h {
	case HandleMove:
		return "move"
	case HandleTopLeft:
		return "tl"
	case HandleTopRight:
		return "tr"
	case HandleBottomLeft:
		return "bl"
	case HandleBottomRight:
		return "br"
	case HandleTop:
		return "t"
	case HandleBottom:
		return "b"
	case HandleLeft:
		return "l"
	case HandleRight:
		return "r"
	default:
		return "none"
	}
}

// Resizes reports whether the handle changes the box size rather than
// translating it whole.
func (h Handle) Resizes() bool {
	return h != HandleNone && h != HandleMove
}
