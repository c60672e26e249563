// Package layout places the calculator's panel and 4x4 button grid inside a
// 16x10 window measured in scale units.
package layout

import (
	"math"

	"github.com/1broseidon/gridcalc/internal/calc"
	"github.com/1broseidon/gridcalc/internal/widget"
)

// Window size in scale units.
const (
	WidthUnits  = 16
	HeightUnits = 10
)

const (
	gridRows = 4
	gridCols = 4
)

// Rect is an axis-aligned cell in window coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Cell describes one grid slot. Digits render as circles, everything else as
// rectangles.
type Cell struct {
	Label string
	Tag   calc.Tag
}

// Keypad is the button table in row-major order.
var Keypad = [gridRows][gridCols]Cell{
	{{"7", calc.Num(7)}, {"8", calc.Num(8)}, {"9", calc.Num(9)}, {"/", calc.Operation(calc.OpDiv)}},
	{{"4", calc.Num(4)}, {"5", calc.Num(5)}, {"6", calc.Num(6)}, {"*", calc.Operation(calc.OpMul)}},
	{{"1", calc.Num(1)}, {"2", calc.Num(2)}, {"3", calc.Num(3)}, {"-", calc.Operation(calc.OpSub)}},
	{{"C", calc.Clear}, {"0", calc.Num(0)}, {"=", calc.Eq}, {"+", calc.Operation(calc.OpAdd)}},
}

// WindowSize returns the window dimensions in pixels.
func WindowSize(scale int) (width, height int) {
	return WidthUnits * scale, HeightUnits * scale
}

// Gap returns the spacing between cells, never less than one pixel so inclusive
// hit boxes of neighbors stay disjoint.
func Gap(scale int) int {
	if g := scale / 4; g > 1 {
		return g
	}
	return 1
}

// PanelRect returns the display area across the top of the window.
func PanelRect(scale int) Rect {
	width, _ := WindowSize(scale)
	gap := Gap(scale)
	return Rect{
		X:      gap,
		Y:      gap,
		Width:  width - 2*gap,
		Height: 2 * scale,
	}
}

// GridRect returns the area below the panel that holds the keypad.
func GridRect(scale int) Rect {
	width, height := WindowSize(scale)
	panel := PanelRect(scale)
	top := panel.Y + panel.Height + 1
	return Rect{X: 0, Y: top, Width: width, Height: height - top}
}

// CellRects splits area into rows x cols cells with gap pixels before, between
// and after them.
func CellRects(area Rect, rows, cols, gap int) []Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	// Gaps: one before each column/row and one after the last.
	cellWidth := (area.Width - (cols+1)*gap) / cols
	cellHeight := (area.Height - (rows+1)*gap) / rows

	cells := make([]Rect, 0, rows*cols)
	for i := 0; i < rows*cols; i++ {
		row := i / cols
		col := i % cols
		cells = append(cells, Rect{
			X:      area.X + gap + col*(cellWidth+gap),
			Y:      area.Y + gap + row*(cellHeight+gap),
			Width:  cellWidth,
			Height: cellHeight,
		})
	}
	return cells
}

// Build returns the keypad buttons and the output panel for scale. thickness
// is the outline width of every shape.
func Build(scale int, thickness float64) ([]widget.Button[calc.Tag], *widget.Panel) {
	cells := CellRects(GridRect(scale), gridRows, gridCols, Gap(scale))

	buttons := make([]widget.Button[calc.Tag], 0, len(cells))
	for i, cell := range cells {
		key := Keypad[i/gridCols][i%gridCols]
		var shape widget.Shape
		var pos widget.Position
		if key.Tag.Kind == calc.KindNum {
			shape, pos = circleIn(cell, thickness)
		} else {
			shape = widget.NewRect(cell.Width, cell.Height, thickness)
			pos = widget.Position{X: cell.X, Y: cell.Y}
		}
		buttons = append(buttons, widget.NewButton(shape, pos, key.Label, key.Tag))
	}

	pr := PanelRect(scale)
	panel := &widget.Panel{
		Shape: widget.NewRect(pr.Width, pr.Height, thickness),
		Pos:   widget.Position{X: pr.X, Y: pr.Y},
	}
	return buttons, panel
}

// circleIn fits a ring of the given thickness inside cell, centered.
func circleIn(cell Rect, thickness float64) (widget.Shape, widget.Position) {
	side := min(cell.Width, cell.Height)
	stroke := int(math.Ceil(max(thickness, 0)))
	radius := max(side/2-stroke, 1)
	extent := 2 * (radius + stroke)
	pos := widget.Position{
		X: cell.X + (cell.Width-extent)/2,
		Y: cell.Y + (cell.Height-extent)/2,
	}
	return widget.NewCircle(radius, thickness), pos
}

// Bounds returns the inclusive box covering everything a button draws and
// everything its hit test accepts.
func Bounds(b widget.Button[calc.Tag]) Rect {
	if c, ok := b.Shape.Circle(); ok {
		extent := int(math.Ceil(2 * (float64(c.Radius) + c.Thickness)))
		extent = max(extent, 2*c.Radius)
		return Rect{X: b.Pos.X, Y: b.Pos.Y, Width: extent, Height: extent}
	}
	r, _ := b.Shape.Rect()
	return Rect{X: b.Pos.X, Y: b.Pos.Y, Width: r.Width, Height: r.Height}
}

// Overlaps reports whether two inclusive boxes share a pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}
