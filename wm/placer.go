package wm

import (
	"fmt"
	"sync"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/config"
)

// Placement is the panel rectangle in monitor pixels.
type Placement struct {
	X, Y, Width, Height int
}

// Compute returns the panel rectangle for a monitor: pinned to the right
// edge with a margin, starting at the configured top offset.
func Compute(monitorWidth, monitorHeight int, layout config.Placement) Placement {
	return Placement{
		X:      monitorWidth - layout.Width - layout.Margin,
		Y:      layout.Top,
		Width:  layout.Width,
		Height: monitorHeight - layout.BottomGap,
	}
}

// Placer moves, resizes and pins the panel window once.
type Placer struct {
	client Client
	layout config.Placement
	title  string

	mu         sync.Mutex
	positioned bool
}

// NewPlacer creates a placer for the window titled common.WindowTitle.
func NewPlacer(client Client, layout config.Placement) *Placer {
	return &Placer{
		client: client,
		layout: layout,
		title:  common.WindowTitle,
	}
}

// Positioned reports whether placement has succeeded.
func (p *Placer) Positioned() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positioned
}

// Place positions the panel. Once it has succeeded further calls do nothing.
// On failure the caller may simply call Place again later.
func (p *Placer) Place() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.positioned {
		return nil
	}

	windows, err := p.client.Windows()
	if err != nil {
		return common.WrapError(err, "failed to list windows")
	}
	win, ok := findWindow(windows, p.title)
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrWindowNotFound, p.title)
	}

	width, height := p.monitorSize()
	pl := Compute(width, height, p.layout)
	target := "address:" + win.Address

	if err := p.client.Dispatch("movewindowpixel", fmt.Sprintf("exact %d %d,%s", pl.X, pl.Y, target)); err != nil {
		return err
	}
	if err := p.client.Dispatch("resizewindowpixel", fmt.Sprintf("exact %d %d,%s", pl.Width, pl.Height, target)); err != nil {
		return err
	}
	// pin toggles, so an already pinned window is left alone.
	if !win.Pinned {
		if err := p.client.Dispatch("pin", target); err != nil {
			return err
		}
	}

	p.positioned = true
	common.LogInfo("Placed panel at %dx%d+%d+%d on %dx%d monitor",
		pl.Width, pl.Height, pl.X, pl.Y, width, height)
	return nil
}

// monitorSize uses the configured size, then the focused monitor, then the
// fallback size.
func (p *Placer) monitorSize() (int, int) {
	if p.layout.MonitorWidth > 0 && p.layout.MonitorHeight > 0 {
		return p.layout.MonitorWidth, p.layout.MonitorHeight
	}

	monitors, err := p.client.Monitors()
	if err != nil {
		common.LogWarn("Failed to query monitors, assuming %dx%d: %v",
			common.FallbackMonitorWidth, common.FallbackMonitorHeight, err)
		return common.FallbackMonitorWidth, common.FallbackMonitorHeight
	}
	if m, ok := focusedMonitor(monitors); ok {
		return m.Width, m.Height
	}
	return common.FallbackMonitorWidth, common.FallbackMonitorHeight
}

func findWindow(windows []Window, title string) (Window, bool) {
	for _, w := range windows {
		if w.Title == title {
			return w, true
		}
	}
	return Window{}, false
}

// focusedMonitor returns the focused monitor, or the first one with a usable
// size when none reports focus.
func focusedMonitor(monitors []Monitor) (Monitor, bool) {
	var first *Monitor
	for i := range monitors {
		m := &monitors[i]
		if m.Width <= 0 || m.Height <= 0 {
			continue
		}
		if m.Focused {
			return *m, true
		}
		if first == nil {
			first = m
		}
	}
	if first != nil {
		return *first, true
	}
	return Monitor{}, false
}
