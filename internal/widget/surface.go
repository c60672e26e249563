// Package widget draws shapes, buttons and panels with point, text and clear
// primitives. Widgets hold no reference to the surface; every call that touches
// it takes the Surface explicitly.
package widget

// Position is a surface-space coordinate.
type Position struct {
	X int
	Y int
}

// Add returns p offset by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Surface is the drawing target. Each method reports the failure of the
// underlying request; callers propagate it without retrying.
type Surface interface {
	DrawPoints(points []Position) error
	DrawText(pos Position, text string) error
	ClearRect(pos Position, width, height int) error
	PointerPosition() (Position, error)
}
