package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"
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

// Contains reports whether the root-relative point lies on m.
func (m Monitor) Contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// Center returns the top-left corner that centres a w x h window on m.
func (m Monitor) Center(w, h int) (x, y int) {
	return m.X + (m.Width-w)/2, m.Y + (m.Height-h)/2
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
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// MonitorAtPointer returns the monitor under the mouse cursor, clipped to
// the EWMH work area when the window manager publishes one. It falls back
// to the first monitor, then to the root window geometry.
func (c *Connection) MonitorAtPointer() (Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil || len(monitors) == 0 {
		screen := c.XUtil.Screen()
		return Monitor{
			Name:   "root",
			Width:  int(screen.WidthInPixels),
			Height: int(screen.HeightInPixels),
		}, nil
	}

	mon := monitors[0]
	if x, y, err := c.Pointer(); err == nil {
		mon = pickMonitor(monitors, x, y)
	}
	return c.clipToWorkArea(mon), nil
}

func pickMonitor(monitors []Monitor, x, y int) Monitor {
	for _, m := range monitors {
		if m.Contains(x, y) {
			return m
		}
	}
	return monitors[0]
}

func (c *Connection) clipToWorkArea(mon Monitor) Monitor {
	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return mon
	}
	desktopIndex := 0
	if current, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(current) < len(workArea) {
		desktopIndex = int(current)
	}
	wa := workArea[desktopIndex]
	return intersectMonitor(mon, int(wa.X), int(wa.Y), int(wa.Width), int(wa.Height))
}

// intersectMonitor clips mon to the given rectangle; mon is returned
// unchanged when they do not overlap.
func intersectMonitor(mon Monitor, x, y, w, h int) Monitor {
	x1 := max(mon.X, x)
	y1 := max(mon.Y, y)
	x2 := min(mon.X+mon.Width, x+w)
	y2 := min(mon.Y+mon.Height, y+h)
	if x2 <= x1 || y2 <= y1 {
		return mon
	}
	mon.X, mon.Y = x1, y1
	mon.Width, mon.Height = x2-x1, y2-y1
	return mon
}
