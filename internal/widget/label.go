package widget

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// labelFace mirrors the metrics of the X11 misc-fixed 7x13 font the surface
// opens by default.
var labelFace = basicfont.Face7x13

// LabelOrigin returns the text baseline origin that centers label on center.
func LabelOrigin(center Position, label string) Position {
	advance := font.MeasureString(labelFace, label).Ceil()
	return Position{
		X: center.X - advance/2,
		Y: center.Y + (labelFace.Ascent-labelFace.Descent)/2,
	}
}

func drawLabel(s Surface, center Position, label string) error {
	if label == "" {
		return nil
	}
	return s.DrawText(LabelOrigin(center, label), label)
}
