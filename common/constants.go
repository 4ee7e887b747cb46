// Package common provides shared constants, types, and utilities
// used across the Action Center application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.actioncenter.app"
	// AppName is the display name of the application.
	AppName = "Action Center"
	// WindowTitle is the title the window manager sees. Placement matches on it.
	WindowTitle = "Action Center"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "action-center"
)

// File names used by the application.
const (
	ConfigFileName     = "config.yaml"
	StylesheetFileName = "colors.css"
	LogFileName        = "action-center.log"
)

// Default timeouts and intervals.
const (
	// PollInterval is how often each capability is re-queried.
	PollInterval = 5 * time.Second
	// PollResolution is how often the scheduler checks whether a poll is due.
	PollResolution = 500 * time.Millisecond
	// BluetoothSettleDelay gives bluetoothd time to apply a power change
	// before the state is read back.
	BluetoothSettleDelay = 1 * time.Second
	// PlacementRetryInterval is how often placement is retried until the
	// window manager reports the panel window.
	PlacementRetryInterval = 500 * time.Millisecond
	// ToggleInboxSize bounds the number of pending toggle requests.
	ToggleInboxSize = 8
)

// Panel geometry.
const (
	// PanelWidth is the width of the panel window in pixels.
	PanelWidth = 370
	// PanelMargin is the gap between the panel and the right screen edge.
	PanelMargin = 10
	// PanelTop is the distance from the top of the screen.
	PanelTop = 60
	// PanelBottomGap is subtracted from the monitor height to get the panel height.
	PanelBottomGap = 70
	// FallbackMonitorWidth is used when the monitor size cannot be determined.
	FallbackMonitorWidth = 1920
	// FallbackMonitorHeight is used when the monitor size cannot be determined.
	FallbackMonitorHeight = 1080
)

// Slider defaults.
const (
	// DefaultSliderValue is the value each slider starts with.
	DefaultSliderValue = 50.0
	// SliderHeight is the height of a slider track in pixels.
	SliderHeight = 40
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Window manager backends.
const (
	BackendHyprctl = "hyprctl"
	BackendIPC     = "ipc"
)
