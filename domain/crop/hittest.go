package crop

import (
	"math"

	"github.com/mvail/pixpress/domain/geometry"
)

// HitRadius is the pick distance, in display units, within which a pointer
// press grabs a corner or edge handle.
const HitRadius = 10

// HitTest resolves a pointer-down position against the current box. Corners
// win over edges and edges over the body, so a press near a corner always
// grabs the two-axis handle. A press outside the box and beyond the pick
// radius grabs nothing.
func HitTest(box geometry.DisplayRect, x, y float64) Handle {
	nearL := math.Abs(x-box.Left) <= HitRadius
	nearR := math.Abs(x-box.Right()) <= HitRadius
	nearT := math.Abs(y-box.Top) <= HitRadius
	nearB := math.Abs(y-box.Bottom()) <= HitRadius
	withinX := x >= box.Left-HitRadius && x <= box.Right()+HitRadius
	withinY := y >= box.Top-HitRadius && y <= box.Bottom()+HitRadius

	switch {
	case nearL && nearT:
		return HandleTopLeft
	case nearR && nearT:
		return HandleTopRight
	case nearL && nearB:
		return HandleBottomLeft
	case nearR && nearB:
		return HandleBottomRight
	case nearT && withinX:
		return HandleTop
	case nearB && withinX:
		return HandleBottom
	case nearL && withinY:
		return HandleLeft
	case nearR && withinY:
		return HandleRight
	case box.Contains(x, y):
		return HandleMove
	default:
		return HandleNone
	}
}
