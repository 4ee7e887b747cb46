// Package ui provides the graphical user interface for Action Center.
// This file contains the system tray indicator functionality.
package ui

import (
	"fmt"
	"sync"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/status"
	"github.com/yllada/action-center/theme"
)

// TrayIndicator manages the system tray icon and menu.
// It mirrors the panel's Wi-Fi and Bluetooth toggles so they can be switched
// without opening the panel.
type TrayIndicator struct {
	app *Application

	mu          sync.Mutex
	ready       bool
	colors      theme.Colors
	snapshot    status.Snapshot
	statusItem  *systray.MenuItem
	toggleItems map[status.Capability]*systray.MenuItem
	showItem    *systray.MenuItem
}

// trayCapabilities are the capabilities offered in the tray menu.
var trayCapabilities = []status.Capability{status.Wifi, status.Bluetooth}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:         app,
		colors:      app.colors,
		toggleItems: make(map[status.Capability]*systray.MenuItem),
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	t.mu.Lock()
	defer t.mu.Unlock()

	systray.SetTitle(common.AppName)

	t.statusItem = systray.AddMenuItem("Wi-Fi: Off  ·  Bluetooth: Off", "Current status")
	t.statusItem.Disable()

	systray.AddSeparator()

	t.showItem = systray.AddMenuItem("Show Panel", "Show or hide the Action Center")
	go func() {
		for range t.showItem.ClickedCh {
			glib.IdleAdd(t.app.toggleWindow)
		}
	}()

	systray.AddSeparator()

	for _, c := range trayCapabilities {
		item := systray.AddMenuItemCheckbox(c.String(), "Switch "+c.String(), false)
		t.toggleItems[c] = item
		go func() {
			for range item.ClickedCh {
				t.toggle(c)
			}
		}()
	}

	systray.AddSeparator()

	prefsItem := systray.AddMenuItem("Preferences", "Open settings")
	go func() {
		for range prefsItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.showWindow()
				t.app.app.ActivateAction("preferences", nil)
			})
		}
	}()

	quitItem := systray.AddMenuItem("Quit", "Close Action Center")
	go func() {
		for range quitItem.ClickedCh {
			glib.IdleAdd(t.app.Quit)
		}
	}()

	t.ready = true
	t.render()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

// toggle asks the scheduler to flip c based on the last known state.
func (t *TrayIndicator) toggle(c status.Capability) {
	t.mu.Lock()
	on := !t.snapshot.State(c).Enabled
	t.mu.Unlock()

	t.app.requestToggle(c, on)
}

// Update refreshes the menu from snap.
func (t *TrayIndicator) Update(snap status.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snapshot = snap
	if t.ready {
		t.render()
	}
}

// SetColors regenerates the icon with new theme colors.
func (t *TrayIndicator) SetColors(colors theme.Colors) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.colors = colors
	if t.ready {
		t.render()
	}
}

// Quit removes the tray icon.
func (t *TrayIndicator) Quit() {
	t.mu.Lock()
	ready := t.ready
	t.ready = false
	t.mu.Unlock()
	if ready {
		systray.Quit()
	}
}

// render must be called with t.mu held.
func (t *TrayIndicator) render() {
	active := false
	for _, c := range trayCapabilities {
		st := t.snapshot.State(c)
		item := t.toggleItems[c]
		if st.Enabled {
			item.Check()
			active = true
		} else {
			item.Uncheck()
		}
		item.SetTitle(fmt.Sprintf("%s: %s", c, st.Caption(c)))
	}

	wifi := t.snapshot.State(status.Wifi)
	bt := t.snapshot.State(status.Bluetooth)
	summary := fmt.Sprintf("Wi-Fi: %s  ·  Bluetooth: %s", wifi.Caption(status.Wifi), bt.Caption(status.Bluetooth))
	t.statusItem.SetTitle(summary)

	systray.SetIcon(GenerateTrayIcon(t.colors, active))
	systray.SetTooltip(common.AppName + " - " + summary)
}
