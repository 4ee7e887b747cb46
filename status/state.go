// Package status keeps the quick-settings toggle states in sync with the
// system. A Poller queries each capability on its own timer; a Scheduler
// drives the poller from a background goroutine and hands snapshots to the
// UI.
package status

import (
	"fmt"
	"strings"

	"github.com/yllada/action-center/common"
)

// Capability is a toggleable system feature.
type Capability int

const (
	Wifi Capability = iota
	Bluetooth
	Network
	Airplane
)

// Capabilities returns every capability in display order.
func Capabilities() []Capability {
	return []Capability{Wifi, Bluetooth, Network, Airplane}
}

// String returns the capability's display name.
func (c Capability) String() string {
	switch c {
	case Wifi:
		return "Wi-Fi"
	case Bluetooth:
		return "Bluetooth"
	case Network:
		return "Ethernet"
	case Airplane:
		return "Airplane Mode"
	default:
		return "Unknown"
	}
}

// Key returns the short lowercase name used on the command line.
func (c Capability) Key() string {
	switch c {
	case Wifi:
		return "wifi"
	case Bluetooth:
		return "bluetooth"
	case Network:
		return "network"
	case Airplane:
		return "airplane"
	default:
		return "unknown"
	}
}

// ParseCapability maps a Key back to its Capability.
func ParseCapability(s string) (Capability, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Capabilities() {
		if c.Key() == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownCapability, s)
}

// ToggleState is what the panel shows for one capability. Label is only set
// while Enabled.
type ToggleState struct {
	Enabled bool
	Label   string
}

// NewToggleState builds a state, dropping the label when disabled.
func NewToggleState(enabled bool, label string) ToggleState {
	if !enabled {
		label = ""
	}
	return ToggleState{Enabled: enabled, Label: label}
}

// Caption returns the secondary line shown under a toggle.
func (s ToggleState) Caption(c Capability) string {
	switch {
	case s.Label != "":
		return s.Label
	case !s.Enabled:
		if c == Network {
			return "Disconnected"
		}
		return "Off"
	case c == Network:
		return "Connected"
	default:
		return "On"
	}
}

// Snapshot is a copy of every ToggleState.
type Snapshot struct {
	states [4]ToggleState
}

// State returns the state of c.
func (s Snapshot) State(c Capability) ToggleState {
	if c < 0 || int(c) >= len(s.states) {
		return ToggleState{}
	}
	return s.states[c]
}

func (s *Snapshot) set(c Capability, st ToggleState) {
	if c >= 0 && int(c) < len(s.states) {
		s.states[c] = st
	}
}
