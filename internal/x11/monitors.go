package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTC
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return monitors, nil
}

// screenMonitor is the whole root window, used when RandR reports nothing.
func (c *Connection) screenMonitor() Monitor {
	screen := c.XUtil.Screen()
	return Monitor{
		Name:   "screen",
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}
}

// PointerMonitor returns the monitor under the pointer, falling back to the
// first monitor and then to the whole screen.
func (c *Connection) PointerMonitor() Monitor {
	monitors, err := c.GetMonitors()
	if err != nil || len(monitors) == 0 {
		return c.screenMonitor()
	}

	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return monitors[0]
	}
	if mon := monitorAt(monitors, int(pointer.RootX), int(pointer.RootY)); mon != nil {
		return *mon
	}
	return monitors[0]
}

func monitorAt(monitors []Monitor, x, y int) *Monitor {
	for i := range monitors {
		mon := &monitors[i]
		if x >= mon.X && x < mon.X+mon.Width && y >= mon.Y && y < mon.Y+mon.Height {
			return mon
		}
	}
	return nil
}

// centeredOrigin places a width x height window in the middle of mon, pinned
// to the monitor's top-left corner when the window is larger.
func centeredOrigin(mon Monitor, width, height int) (x, y int) {
	x = mon.X + max((mon.Width-width)/2, 0)
	y = mon.Y + max((mon.Height-height)/2, 0)
	return x, y
}
