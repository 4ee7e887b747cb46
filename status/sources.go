package status

import "github.com/yllada/action-center/system"

// NewSystemSources wires every capability to the system tools reachable
// through runner. Tools missing from PATH leave their capability disabled.
func NewSystemSources(runner system.Runner) Sources {
	var s Sources
	if system.Available("nmcli") {
		s.Network = system.NewNetworkManager(runner)
	}
	if system.Available("bluetoothctl") {
		s.Bluetooth = system.NewBluetooth(runner)
	}
	if system.Available("rfkill") {
		s.Radio = system.NewRfkill(runner)
	}
	return s
}
