// Package common provides shared constants, types, and utilities
// used across the Action Center application.
package common

// ActiveConnection is one line of NetworkManager's active connection list.
type ActiveConnection struct {
	Name   string
	Device string
}

// BluetoothDevice is a device reported by the Bluetooth daemon.
type BluetoothDevice struct {
	Address string
	Name    string
}

// NetworkStatusSource abstracts NetworkManager.
type NetworkStatusSource interface {
	// WifiEnabled reports whether the Wi-Fi radio is on.
	WifiEnabled() (bool, error)
	// SetWifi switches the Wi-Fi radio.
	SetWifi(enabled bool) error
	// NetworkingEnabled reports whether networking as a whole is on.
	NetworkingEnabled() (bool, error)
	// SetNetworking switches networking as a whole.
	SetNetworking(enabled bool) error
	// ActiveConnections lists the active connections in daemon order.
	ActiveConnections() ([]ActiveConnection, error)
}

// BluetoothStatusSource abstracts the Bluetooth daemon.
type BluetoothStatusSource interface {
	// Powered reports whether the default adapter is powered.
	Powered() (bool, error)
	// SetPowered powers the default adapter on or off.
	SetPowered(on bool) error
	// ConnectedDevices lists the connected devices in daemon order.
	ConnectedDevices() ([]BluetoothDevice, error)
}

// RadioSource abstracts the kernel radio kill switch.
type RadioSource interface {
	// AllBlocked reports whether every radio is soft-blocked.
	AllBlocked() (bool, error)
	// SetAllBlocked blocks or unblocks every radio.
	SetAllBlocked(blocked bool) error
}

// LevelSink receives a percentage in [0, 100].
type LevelSink interface {
	SetLevel(percent float64) error
}
