// Package ui provides the graphical user interface for Action Center.
//
// This package implements the GTK4 panel:
//
//   - Panel window with quick settings and active actions columns
//   - Brightness and volume sliders drawn with cairo
//   - System tray indicator for quick access
//   - Preferences dialog
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: GTK application lifecycle, background workers
//   - Panel: the window the window manager positions and pins
//   - QuickSettings: capability rows fed by status.Scheduler snapshots
//   - SliderWidget: slider.Control on a DrawingArea
//   - TrayIndicator: System tray integration for background operation
//
// # Theme Support
//
// Colors come from the stylesheet read by the theme package. They are
// rendered into a CSS provider that is reloaded whenever the file changes.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Scheduler snapshots,
// stylesheet reloads and tray clicks all arrive on other goroutines and are
// handed over with glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle and worker wiring
//   - panel.go: Panel window layout and actions
//   - quick_settings.go: Toggle rows
//   - active_actions.go: Media card, Focus block and shortcuts
//   - slider_widget.go: Custom-drawn slider
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS providers
//   - preferences.go: Settings dialog
package ui
