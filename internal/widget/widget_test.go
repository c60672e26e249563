package widget

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// recorder is an in-memory Surface that logs every call.
type recorder struct {
	pointer    Position
	pointerErr error
	pointsErr  error
	textErr    error
	clearErr   error

	calls  []string
	points [][]Position
	texts  []string
	clears []clearCall
}

type clearCall struct {
	pos    Position
	width  int
	height int
}

func (r *recorder) DrawPoints(points []Position) error {
	r.calls = append(r.calls, "points")
	if r.pointsErr != nil {
		return r.pointsErr
	}
	r.points = append(r.points, points)
	return nil
}

func (r *recorder) DrawText(pos Position, text string) error {
	r.calls = append(r.calls, "text")
	if r.textErr != nil {
		return r.textErr
	}
	r.texts = append(r.texts, fmt.Sprintf("%d,%d:%s", pos.X, pos.Y, text))
	return nil
}

func (r *recorder) ClearRect(pos Position, width, height int) error {
	r.calls = append(r.calls, "clear")
	if r.clearErr != nil {
		return r.clearErr
	}
	r.clears = append(r.clears, clearCall{pos: pos, width: width, height: height})
	return nil
}

func (r *recorder) PointerPosition() (Position, error) {
	r.calls = append(r.calls, "pointer")
	if r.pointerErr != nil {
		return Position{}, r.pointerErr
	}
	return r.pointer, nil
}

func TestRectContainsIsClosedBox(t *testing.T) {
	pos := Position{X: 10, Y: 20}
	shape := NewRect(5, 3, 1)
	for x := 5; x <= 20; x++ {
		for y := 15; y <= 28; y++ {
			click := Position{X: x, Y: y}
			want := x >= 10 && x <= 15 && y >= 20 && y <= 23
			if got := shape.Contains(pos, click); got != want {
				t.Fatalf("Contains(%v) = %v, want %v", click, got, want)
			}
		}
	}
}

func TestCircleContainsUsesEuclideanDistance(t *testing.T) {
	pos := Position{X: -4, Y: 7}
	const r = 6
	shape := NewCircle(r, 2)
	cx, cy := float64(pos.X+r), float64(pos.Y+r)
	for x := pos.X - 3; x <= pos.X+2*r+3; x++ {
		for y := pos.Y - 3; y <= pos.Y+2*r+3; y++ {
			click := Position{X: x, Y: y}
			want := math.Hypot(float64(x)-cx, float64(y)-cy) <= r
			if got := shape.Contains(pos, click); got != want {
				t.Fatalf("Contains(%v) = %v, want %v", click, got, want)
			}
		}
	}
}

func TestCirclePointsFormAnnulus(t *testing.T) {
	const r, thick = 10, 3.0
	pos := Position{X: 100, Y: 50}
	pts := NewCircle(r, thick).Points(pos)
	if len(pts) == 0 {
		t.Fatalf("expected ring pixels")
	}

	outer := float64(r) + thick
	seen := make(map[Position]bool)
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("duplicate point %v", p)
		}
		seen[p] = true

		dx := float64(p.X-pos.X) - outer
		dy := float64(p.Y-pos.Y) - outer
		d := dx*dx + dy*dy
		if d <= r*r || d >= outer*outer {
			t.Fatalf("point %v outside annulus (d=%v)", p, d)
		}
		if p.X < pos.X || p.Y < pos.Y || p.X >= pos.X+int(2*outer) || p.Y >= pos.Y+int(2*outer) {
			t.Fatalf("point %v outside bounding box", p)
		}
	}

	// Spot checks on the horizontal axis through the center.
	mid := pos.Y + int(outer)
	if !seen[Position{X: pos.X + 1, Y: mid}] {
		t.Errorf("expected left edge pixel at distance outer-1")
	}
	if seen[Position{X: pos.X + int(outer), Y: mid}] {
		t.Errorf("center pixel must not be drawn")
	}
}

func TestZeroThicknessDrawsNothing(t *testing.T) {
	if pts := NewCircle(5, 0).Points(Position{}); len(pts) != 0 {
		t.Errorf("circle with zero thickness drew %d points", len(pts))
	}
	if pts := NewRect(5, 5, 0).Points(Position{}); len(pts) != 0 {
		t.Errorf("rect with zero thickness drew %d points", len(pts))
	}
}

func TestRectPointsOutline(t *testing.T) {
	pos := Position{X: 3, Y: 4}
	pts := NewRect(4, 3, 1).Points(pos)
	// 4x3 box minus its 2x1 interior.
	if len(pts) != 10 {
		t.Fatalf("got %d points, want 10: %v", len(pts), pts)
	}
	for _, p := range pts {
		x, y := p.X-pos.X, p.Y-pos.Y
		if x < 0 || x >= 4 || y < 0 || y >= 3 {
			t.Fatalf("point %v outside rect", p)
		}
		if x > 0 && x < 3 && y == 1 {
			t.Fatalf("interior point %v drawn", p)
		}
	}
}

func TestRectFractionalThicknessRoundsUp(t *testing.T) {
	pts := NewRect(6, 6, 1.5).Points(Position{})
	// Strips are 2px wide: 36 - 2*2 interior.
	if len(pts) != 32 {
		t.Fatalf("got %d points, want 32", len(pts))
	}
}

func TestCenter(t *testing.T) {
	if got := NewCircle(12, 2).Center(); got != (Position{X: 12, Y: 12}) {
		t.Errorf("circle center = %v", got)
	}
	if got := NewRect(31, 10, 2).Center(); got != (Position{X: 15, Y: 5}) {
		t.Errorf("rect center = %v", got)
	}
	if got := (Shape{}).Center(); got != (Position{}) {
		t.Errorf("zero shape center = %v", got)
	}
}

func TestNegativeDimensionsClamp(t *testing.T) {
	c, ok := NewCircle(-3, -1).Circle()
	if !ok || c.Radius != 0 || c.Thickness != 0 {
		t.Fatalf("circle not clamped: %+v ok=%v", c, ok)
	}
	r, ok := NewRect(-1, 4, 2).Rect()
	if !ok || r.Width != 0 || r.Height != 4 {
		t.Fatalf("rect not clamped: %+v ok=%v", r, ok)
	}
	if _, ok := NewRect(1, 1, 1).Circle(); ok {
		t.Fatalf("rect reported as circle")
	}
}

func TestWipe(t *testing.T) {
	s := &recorder{}
	pos := Position{X: 7, Y: 9}
	if err := NewCircle(20, 3).Wipe(s, pos); err != nil {
		t.Fatalf("circle wipe: %v", err)
	}
	if err := NewRect(30, 12, 3).Wipe(s, pos); err != nil {
		t.Fatalf("rect wipe: %v", err)
	}
	want := []clearCall{
		{pos: pos, width: 20, height: 20},
		{pos: pos, width: 30, height: 12},
	}
	if len(s.clears) != len(want) {
		t.Fatalf("clears = %+v", s.clears)
	}
	for i := range want {
		if s.clears[i] != want[i] {
			t.Errorf("clear %d = %+v, want %+v", i, s.clears[i], want[i])
		}
	}
}

func TestLabelOriginCentersText(t *testing.T) {
	got := LabelOrigin(Position{X: 50, Y: 50}, "8")
	if got != (Position{X: 47, Y: 54}) {
		t.Fatalf("LabelOrigin = %v", got)
	}
	got = LabelOrigin(Position{X: 50, Y: 50}, "1234")
	if got.X != 36 {
		t.Fatalf("LabelOrigin.X for 4 glyphs = %d, want 36", got.X)
	}
}

func TestButtonDrawOutlineThenLabel(t *testing.T) {
	s := &recorder{}
	b := NewButton(NewRect(40, 20, 1), Position{X: 10, Y: 10}, "+", "add")
	if err := b.Draw(s); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(s.calls) != 2 || s.calls[0] != "points" || s.calls[1] != "text" {
		t.Fatalf("calls = %v", s.calls)
	}
	origin := LabelOrigin(Position{X: 30, Y: 20}, "+")
	if want := fmt.Sprintf("%d,%d:+", origin.X, origin.Y); s.texts[0] != want {
		t.Fatalf("text = %q, want %q", s.texts[0], want)
	}
}

func TestButtonDrawPropagatesFailure(t *testing.T) {
	boom := errors.New("boom")
	s := &recorder{pointsErr: boom}
	b := NewButton(NewCircle(5, 1), Position{}, "1", 1)
	if err := b.Draw(s); !errors.Is(err, boom) {
		t.Fatalf("Draw error = %v, want boom", err)
	}
	if len(s.texts) != 0 {
		t.Fatalf("label drawn after outline failure")
	}
}

func TestButtonCheck(t *testing.T) {
	b := NewButton(NewRect(10, 10, 1), Position{X: 5, Y: 5}, "x", 0)

	hit, err := b.Check(&recorder{pointer: Position{X: 15, Y: 15}})
	if err != nil || !hit {
		t.Fatalf("Check on corner = %v, %v", hit, err)
	}
	hit, err = b.Check(&recorder{pointer: Position{X: 16, Y: 15}})
	if err != nil || hit {
		t.Fatalf("Check outside = %v, %v", hit, err)
	}

	boom := errors.New("query failed")
	if _, err := b.Check(&recorder{pointerErr: boom}); !errors.Is(err, boom) {
		t.Fatalf("Check error = %v, want query failed", err)
	}
}

type display string

func (d display) String() string { return string(d) }

func TestPanelDrawWipesFirst(t *testing.T) {
	s := &recorder{}
	p := &Panel{Shape: NewRect(100, 30, 2), Pos: Position{X: 5, Y: 5}}
	p.Update(display("42"))
	if p.Label != "42" {
		t.Fatalf("label = %q", p.Label)
	}
	if err := p.Draw(s); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := []string{"clear", "points", "text"}
	if fmt.Sprint(s.calls) != fmt.Sprint(want) {
		t.Fatalf("calls = %v, want %v", s.calls, want)
	}
	if s.clears[0] != (clearCall{pos: Position{X: 5, Y: 5}, width: 100, height: 30}) {
		t.Fatalf("clear = %+v", s.clears[0])
	}
}

func TestPanelDrawStopsOnWipeFailure(t *testing.T) {
	boom := errors.New("clear failed")
	s := &recorder{clearErr: boom}
	p := &Panel{Shape: NewRect(10, 10, 1), Label: "0"}
	if err := p.Draw(s); !errors.Is(err, boom) {
		t.Fatalf("Draw error = %v", err)
	}
	if len(s.calls) != 1 {
		t.Fatalf("calls after failed wipe = %v", s.calls)
	}
}

func TestUpdateReturnsOverlappingTagsInOrder(t *testing.T) {
	s := &recorder{pointer: Position{X: 25, Y: 25}}
	buttons := []Button[string]{
		NewButton(NewRect(10, 10, 1), Position{X: 0, Y: 0}, "a", "a"),
		NewButton(NewRect(50, 50, 1), Position{X: 0, Y: 0}, "b", "b"),
		NewButton(NewRect(10, 10, 1), Position{X: 100, Y: 0}, "c", "c"),
		NewButton(NewCircle(10, 1), Position{X: 15, Y: 15}, "d", "d"),
		NewButton(NewRect(5, 5, 1), Position{X: 20, Y: 20}, "e", "e"),
	}

	tags, err := Update(s, buttons)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if fmt.Sprint(tags) != "[b d e]" {
		t.Fatalf("tags = %v, want [b d e]", tags)
	}
	if len(s.clears) != len(buttons) {
		t.Fatalf("wiped %d buttons, want %d", len(s.clears), len(buttons))
	}
	for i, b := range buttons {
		if s.clears[i].pos != b.Pos {
			t.Errorf("wipe %d at %v, want %v", i, s.clears[i].pos, b.Pos)
		}
	}
}

func TestUpdateNoHits(t *testing.T) {
	s := &recorder{pointer: Position{X: -50, Y: -50}}
	buttons := []Button[int]{
		NewButton(NewRect(10, 10, 1), Position{}, "1", 1),
		NewButton(NewCircle(4, 1), Position{X: 20}, "2", 2),
	}
	tags, err := Update(s, buttons)
	if err != nil || len(tags) != 0 {
		t.Fatalf("Update = %v, %v", tags, err)
	}
	if len(s.clears) != 2 {
		t.Fatalf("every button must be wiped, got %d", len(s.clears))
	}
}

func TestUpdateFailsFast(t *testing.T) {
	boom := errors.New("pointer gone")
	s := &recorder{pointerErr: boom}
	buttons := []Button[int]{
		NewButton(NewRect(10, 10, 1), Position{}, "1", 1),
		NewButton(NewRect(10, 10, 1), Position{}, "2", 2),
	}
	tags, err := Update(s, buttons)
	if !errors.Is(err, boom) || tags != nil {
		t.Fatalf("Update = %v, %v", tags, err)
	}
	if len(s.calls) != 1 {
		t.Fatalf("expected a single pointer query before abort, got %v", s.calls)
	}

	wipeErr := errors.New("clear failed")
	s = &recorder{clearErr: wipeErr}
	if _, err := Update(s, buttons); !errors.Is(err, wipeErr) {
		t.Fatalf("Update wipe error = %v", err)
	}
	if fmt.Sprint(s.calls) != "[pointer clear]" {
		t.Fatalf("calls = %v", s.calls)
	}
}
