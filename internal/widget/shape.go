package widget

import "math"

type shapeKind int

const (
	kindCircle shapeKind = iota + 1
	kindRect
)

// Circle is a ring outline: Radius is the inner radius, Thickness the ring width.
type Circle struct {
	Radius    int
	Thickness float64
}

// Rect is a hollow rectangle outline.
type Rect struct {
	Width     int
	Height    int
	Thickness float64
}

// Shape is either a Circle or a Rect. Build one with NewCircle or NewRect; the
// zero Shape draws nothing and contains no point.
type Shape struct {
	kind   shapeKind
	circle Circle
	rect   Rect
}

// NewCircle returns a circle shape. Negative values are clamped to zero.
func NewCircle(radius int, thickness float64) Shape {
	return Shape{kind: kindCircle, circle: Circle{
		Radius:    max(radius, 0),
		Thickness: math.Max(thickness, 0),
	}}
}

// NewRect returns a rectangle shape. Negative values are clamped to zero.
func NewRect(width, height int, thickness float64) Shape {
	return Shape{kind: kindRect, rect: Rect{
		Width:     max(width, 0),
		Height:    max(height, 0),
		Thickness: math.Max(thickness, 0),
	}}
}

// Circle returns the circle variant and whether the shape is a circle.
func (s Shape) Circle() (Circle, bool) { return s.circle, s.kind == kindCircle }

// Rect returns the rectangle variant and whether the shape is a rectangle.
func (s Shape) Rect() (Rect, bool) { return s.rect, s.kind == kindRect }

// Points returns the outline pixels offset by pos.
func (s Shape) Points(pos Position) []Position {
	switch s.kind {
	case kindCircle:
		return s.circle.points(pos)
	case kindRect:
		return s.rect.points(pos)
	}
	return nil
}

// Draw emits the outline in a single DrawPoints call.
func (s Shape) Draw(surface Surface, pos Position) error {
	return surface.DrawPoints(s.Points(pos))
}

// Center returns the label anchor relative to the shape origin.
func (s Shape) Center() Position {
	switch s.kind {
	case kindCircle:
		return Position{X: s.circle.Radius, Y: s.circle.Radius}
	case kindRect:
		return Position{X: s.rect.Width / 2, Y: s.rect.Height / 2}
	}
	return Position{}
}

// Contains reports whether click hits the shape placed at pos.
func (s Shape) Contains(pos, click Position) bool {
	switch s.kind {
	case kindCircle:
		r := s.circle.Radius
		dx := click.X - (pos.X + r)
		dy := click.Y - (pos.Y + r)
		return dx*dx+dy*dy <= r*r
	case kindRect:
		return click.X >= pos.X && click.X <= pos.X+s.rect.Width &&
			click.Y >= pos.Y && click.Y <= pos.Y+s.rect.Height
	}
	return false
}

// Wipe clears the shape's footprint. For a circle this is the square of side
// Radius at pos, which does not cover the whole ring.
func (s Shape) Wipe(surface Surface, pos Position) error {
	switch s.kind {
	case kindCircle:
		return surface.ClearRect(pos, s.circle.Radius, s.circle.Radius)
	case kindRect:
		return surface.ClearRect(pos, s.rect.Width, s.rect.Height)
	}
	return nil
}

// points fills the annulus r^2 < d < (r+t)^2 inside the bounding box of
// side 2(r+t), measuring d from the box center.
func (c Circle) points(pos Position) []Position {
	outer := float64(c.Radius) + c.Thickness
	inSq := float64(c.Radius * c.Radius)
	outSq := outer * outer
	side := int(2 * outer)

	var pts []Position
	for x := 0; x < side; x++ {
		dx := float64(x) - outer
		for y := 0; y < side; y++ {
			dy := float64(y) - outer
			d := dx*dx + dy*dy
			if d > inSq && d < outSq {
				pts = append(pts, Position{X: x + pos.X, Y: y + pos.Y})
			}
		}
	}
	return pts
}

// points covers the four border strips of [0,w) x [0,h).
func (r Rect) points(pos Position) []Position {
	strip := int(math.Ceil(r.Thickness))
	if strip <= 0 || r.Width == 0 || r.Height == 0 {
		return nil
	}

	var pts []Position
	for y := 0; y < r.Height; y++ {
		edgeRow := y < strip || y >= r.Height-strip
		for x := 0; x < r.Width; x++ {
			if edgeRow || x < strip || x >= r.Width-strip {
				pts = append(pts, Position{X: x + pos.X, Y: y + pos.Y})
			}
		}
	}
	return pts
}
