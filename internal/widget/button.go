package widget

// Button is a shape with a centered label and an action tag. The tag type is
// a parameter so geometry code never looks inside it.
type Button[T any] struct {
	Shape Shape
	Pos   Position
	Label string
	Tag   T
}

// NewButton returns a button placed at pos.
func NewButton[T any](shape Shape, pos Position, label string, tag T) Button[T] {
	return Button[T]{Shape: shape, Pos: pos, Label: label, Tag: tag}
}

// Draw draws the outline, then the label centered on the shape.
func (b Button[T]) Draw(s Surface) error {
	if err := b.Shape.Draw(s, b.Pos); err != nil {
		return err
	}
	return drawLabel(s, b.Pos.Add(b.Shape.Center()), b.Label)
}

// Check reports whether the current pointer position is inside the button.
func (b Button[T]) Check(s Surface) (bool, error) {
	pointer, err := s.PointerPosition()
	if err != nil {
		return false, err
	}
	return b.Shape.Contains(b.Pos, pointer), nil
}

// Wipe erases the button's footprint.
func (b Button[T]) Wipe(s Surface) error {
	return b.Shape.Wipe(s, b.Pos)
}
