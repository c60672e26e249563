package widget

import "fmt"

// Panel is an output area whose label is rewritten from external state before
// each frame.
type Panel struct {
	Shape Shape
	Pos   Position
	Label string
}

// Update replaces the label with the textual form of state.
func (p *Panel) Update(state fmt.Stringer) {
	p.Label = state.String()
}

// Draw wipes the previous frame, then draws the outline and the label, so no
// stale text survives a value change.
func (p *Panel) Draw(s Surface) error {
	if err := p.Wipe(s); err != nil {
		return err
	}
	if err := p.Shape.Draw(s, p.Pos); err != nil {
		return err
	}
	return drawLabel(s, p.Pos.Add(p.Shape.Center()), p.Label)
}

// Wipe erases the panel's footprint.
func (p *Panel) Wipe(s Surface) error {
	return p.Shape.Wipe(s, p.Pos)
}
