package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/gridcalc/internal/widget"
)

// ErrConnectionClosed is returned by NextEvent once the server hangs up.
var ErrConnectionClosed = errors.New("x11: connection closed")

// EventKind classifies the events the calculator reacts to.
type EventKind int

const (
	EventOther EventKind = iota
	EventKeyPress
	EventButtonPress
	EventExpose
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventKeyPress:
		return "key-press"
	case EventButtonPress:
		return "button-press"
	case EventExpose:
		return "expose"
	case EventClose:
		return "close"
	default:
		return "other"
	}
}

// Event is a decoded X event. Key is the keysym name for key presses; Pos is
// the window-relative position for key and button presses.
type Event struct {
	Kind EventKind
	Key  string
	Pos  widget.Position
}

// NextEvent blocks until the next event for this window arrives.
func (w *Window) NextEvent() (Event, error) {
	ev, xerr := w.conn.XUtil.Conn().WaitForEvent()
	if ev == nil && xerr == nil {
		return Event{}, ErrConnectionClosed
	}
	if xerr != nil {
		return Event{}, fmt.Errorf("x11: %v", xerr)
	}

	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return Event{
			Kind: EventKeyPress,
			Key:  keybind.LookupString(w.conn.XUtil, e.State, e.Detail),
			Pos:  widget.Position{X: int(e.EventX), Y: int(e.EventY)},
		}, nil
	case xproto.ButtonPressEvent:
		return Event{
			Kind: EventButtonPress,
			Pos:  widget.Position{X: int(e.EventX), Y: int(e.EventY)},
		}, nil
	case xproto.ExposeEvent:
		// Only the last expose of a batch triggers a redraw.
		if e.Count != 0 {
			return Event{Kind: EventOther}, nil
		}
		return Event{Kind: EventExpose}, nil
	case xproto.ClientMessageEvent:
		if icccm.IsDeleteProtocol(w.conn.XUtil, xevent.ClientMessageEvent{ClientMessageEvent: &e}) {
			return Event{Kind: EventClose}, nil
		}
	}
	return Event{Kind: EventOther}, nil
}
