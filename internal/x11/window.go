package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/gridcalc/internal/widget"
)

// fallbackFonts are tried, in order, after the configured font.
var fallbackFonts = []string{"7x13", "fixed", "9x15", "8x13", "6x13"}

// ErrNoFont is returned when none of the candidate fonts can be opened.
var ErrNoFont = errors.New("x11: no usable font")

// WindowOptions describes the top-level window to create.
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Font       string
	Foreground uint32 // 24-bit RGB, used as the pixel value on TrueColor visuals
	Background uint32
}

// Window is a mapped top-level window with its graphics context and font.
// It implements widget.Surface.
type Window struct {
	conn   *Connection
	win    *xwindow.Window
	gc     xproto.Gcontext
	font   xproto.Font
	Width  int
	Height int
}

var _ widget.Surface = (*Window)(nil)

// CreateWindow creates, configures and maps a fixed-size window centered on the
// monitor under the pointer.
func (c *Connection) CreateWindow(opts WindowOptions) (*Window, error) {
	xu := c.XUtil
	conn := xu.Conn()

	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, fmt.Errorf("allocate window id: %w", err)
	}

	x, y := centeredOrigin(c.PointerMonitor(), opts.Width, opts.Height)
	// Value list order follows the bit positions of the mask (low to high).
	err = win.CreateChecked(
		c.Root,
		x, y,
		opts.Width, opts.Height,
		xproto.CwBackPixel|xproto.CwEventMask,
		opts.Background,
		xproto.EventMaskExposure|xproto.EventMaskKeyPress|xproto.EventMaskButtonPress,
	)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{conn: c, win: win, Width: opts.Width, Height: opts.Height}
	if err := w.setProperties(opts); err != nil {
		win.Destroy()
		return nil, err
	}

	font, err := openFont(conn, opts.Font)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	w.font = font

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		xproto.CloseFont(conn, font)
		win.Destroy()
		return nil, fmt.Errorf("allocate gc id: %w", err)
	}
	err = xproto.CreateGCChecked(
		conn,
		gc,
		xproto.Drawable(win.Id),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{
			opts.Foreground, // foreground
			opts.Background, // background
			uint32(font),    // font
			0,               // graphics_exposures=false
		},
	).Check()
	if err != nil {
		xproto.CloseFont(conn, font)
		win.Destroy()
		return nil, fmt.Errorf("create gc: %w", err)
	}
	w.gc = gc

	if err := xproto.MapWindowChecked(conn, win.Id).Check(); err != nil {
		w.Close()
		return nil, fmt.Errorf("map window: %w", err)
	}
	return w, nil
}

func (w *Window) setProperties(opts WindowOptions) error {
	xu := w.conn.XUtil
	id := w.win.Id

	if err := icccm.WmNameSet(xu, id, opts.Title); err != nil {
		return fmt.Errorf("set WM_NAME: %w", err)
	}
	if err := ewmh.WmNameSet(xu, id, opts.Title); err != nil {
		return fmt.Errorf("set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmClassSet(xu, id, &icccm.WmClass{Instance: "gridcalc", Class: "Gridcalc"}); err != nil {
		return fmt.Errorf("set WM_CLASS: %w", err)
	}

	// The layout is computed once, so ask the window manager for a fixed size.
	hints := &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  uint(opts.Width),
		MinHeight: uint(opts.Height),
		MaxWidth:  uint(opts.Width),
		MaxHeight: uint(opts.Height),
	}
	if err := icccm.WmNormalHintsSet(xu, id, hints); err != nil {
		return fmt.Errorf("set WM_NORMAL_HINTS: %w", err)
	}

	// Without WM_DELETE_WINDOW the close button kills the connection instead
	// of sending a ClientMessage.
	if err := icccm.WmProtocolsSet(xu, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("set WM_PROTOCOLS: %w", err)
	}
	return nil
}

func openFont(conn *xgb.Conn, preferred string) (xproto.Font, error) {
	font, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, fmt.Errorf("allocate font id: %w", err)
	}

	names := fallbackFonts
	if preferred != "" {
		names = append([]string{preferred}, fallbackFonts...)
	}
	for _, name := range names {
		if err := xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check(); err == nil {
			return font, nil
		}
	}
	return 0, ErrNoFont
}

// DrawPoints plots points in the foreground color.
func (w *Window) DrawPoints(points []widget.Position) error {
	if len(points) == 0 {
		return nil
	}
	conn := w.conn.XUtil.Conn()
	for _, chunk := range chunkPoints(toWirePoints(points), maxPointsPerRequest) {
		err := xproto.PolyPointChecked(conn, xproto.CoordModeOrigin, xproto.Drawable(w.win.Id), w.gc, chunk).Check()
		if err != nil {
			return fmt.Errorf("draw points: %w", err)
		}
	}
	return nil
}

// DrawText draws text with its baseline origin at pos. Text longer than 255
// bytes is truncated.
func (w *Window) DrawText(pos widget.Position, text string) error {
	text = truncateText(text)
	if text == "" {
		return nil
	}
	err := xproto.ImageText8Checked(
		w.conn.XUtil.Conn(),
		byte(len(text)),
		xproto.Drawable(w.win.Id),
		w.gc,
		clampInt16(pos.X),
		clampInt16(pos.Y),
		text,
	).Check()
	if err != nil {
		return fmt.Errorf("draw text: %w", err)
	}
	return nil
}

// ClearRect fills a rectangle with the background. A zero width or height
// is a no-op rather than the protocol's "to the window edge".
func (w *Window) ClearRect(pos widget.Position, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	err := xproto.ClearAreaChecked(
		w.conn.XUtil.Conn(),
		false,
		w.win.Id,
		clampInt16(pos.X),
		clampInt16(pos.Y),
		clampUint16(width),
		clampUint16(height),
	).Check()
	if err != nil {
		return fmt.Errorf("clear area: %w", err)
	}
	return nil
}

// PointerPosition returns the pointer position relative to the window.
func (w *Window) PointerPosition() (widget.Position, error) {
	reply, err := xproto.QueryPointer(w.conn.XUtil.Conn(), w.win.Id).Reply()
	if err != nil {
		return widget.Position{}, fmt.Errorf("query pointer: %w", err)
	}
	return widget.Position{X: int(reply.WinX), Y: int(reply.WinY)}, nil
}

// Close releases the GC, font and window.
func (w *Window) Close() {
	conn := w.conn.XUtil.Conn()
	if w.gc != 0 {
		xproto.FreeGC(conn, w.gc)
	}
	if w.font != 0 {
		xproto.CloseFont(conn, w.font)
	}
	w.win.Destroy()
}
