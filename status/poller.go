package status

import (
	"strings"
	"time"

	"github.com/yllada/action-center/common"
)

// Device name prefixes NetworkManager uses for each interface class.
const (
	wirelessPrefix = "wl"
	ethernetPrefix = "e"
)

// Sources are the system interfaces the poller reads from. A nil source
// disables its capabilities.
type Sources struct {
	Network   common.NetworkStatusSource
	Bluetooth common.BluetoothStatusSource
	Radio     common.RadioSource
}

// PollerConfig holds poller timing.
type PollerConfig struct {
	// Interval is the minimum time between two polls of one capability.
	Interval time.Duration
	// BluetoothSettle is waited after a Bluetooth power change before the
	// state is read back.
	BluetoothSettle time.Duration
}

// DefaultPollerConfig returns the stock timings.
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		Interval:        common.PollInterval,
		BluetoothSettle: common.BluetoothSettleDelay,
	}
}

// Poller owns the ToggleStates and their poll timers. It is not safe for
// concurrent use; the Scheduler serializes access.
type Poller struct {
	sources Sources
	config  PollerConfig

	clock func() time.Time
	sleep func(time.Duration)

	snapshot Snapshot
	lastPoll map[Capability]time.Time
}

// NewPoller creates a poller. Every capability is due on the first Poll.
func NewPoller(sources Sources, config PollerConfig) *Poller {
	if config.Interval <= 0 {
		config.Interval = common.PollInterval
	}
	return &Poller{
		sources:  sources,
		config:   config,
		clock:    time.Now,
		sleep:    time.Sleep,
		lastPoll: make(map[Capability]time.Time),
	}
}

// SetClock replaces the time source used by Toggle.
func (p *Poller) SetClock(clock func() time.Time) { p.clock = clock }

// SetSleep replaces the function used to wait out settle delays.
func (p *Poller) SetSleep(sleep func(time.Duration)) { p.sleep = sleep }

// Now returns the poller's current time.
func (p *Poller) Now() time.Time { return p.clock() }

// Supported reports whether a source backs c.
func (p *Poller) Supported(c Capability) bool {
	switch c {
	case Wifi, Network:
		return p.sources.Network != nil
	case Bluetooth:
		return p.sources.Bluetooth != nil
	case Airplane:
		return p.sources.Radio != nil
	default:
		return false
	}
}

// Snapshot returns a copy of the current states.
func (p *Poller) Snapshot() Snapshot { return p.snapshot }

// Poll queries every capability whose interval has elapsed at now. The timer
// of a queried capability is reset to now whether or not the query
// succeeded. It reports whether any state changed.
func (p *Poller) Poll(now time.Time) bool {
	changed := false
	for _, c := range Capabilities() {
		if !p.Supported(c) || !p.due(c, now) {
			continue
		}
		if p.refresh(c) {
			changed = true
		}
		p.lastPoll[c] = now
	}
	return changed
}

// Refresh queries c immediately, ignoring its timer, and resets the timer.
func (p *Poller) Refresh(c Capability) bool {
	if !p.Supported(c) {
		return false
	}
	changed := p.refresh(c)
	p.lastPoll[c] = p.clock()
	return changed
}

// Toggle switches c on or off and reads the state back without waiting for
// the next poll. A failed mutation leaves the state untouched.
func (p *Poller) Toggle(c Capability, on bool) error {
	if !p.Supported(c) {
		return common.WrapError(common.ErrUnknownCapability, "no source for "+c.Key())
	}

	common.LogInfo("Turning %s %s", c, common.OnOff(on))
	if err := p.mutate(c, on); err != nil {
		common.LogWarn("Failed to turn %s %s: %v", c, common.OnOff(on), err)
		return err
	}

	if c == Bluetooth && p.config.BluetoothSettle > 0 {
		p.sleep(p.config.BluetoothSettle)
	}
	p.Refresh(c)
	return nil
}

func (p *Poller) due(c Capability, now time.Time) bool {
	last, ok := p.lastPoll[c]
	return !ok || now.Sub(last) >= p.config.Interval
}

// refresh overwrites the state of c on success and logs on failure.
func (p *Poller) refresh(c Capability) bool {
	st, err := p.query(c)
	if err != nil {
		common.LogWarn("Failed to query %s, keeping last state: %v", c, err)
		return false
	}
	if st == p.snapshot.State(c) {
		return false
	}
	common.LogDebug("%s: enabled=%v label=%q", c, st.Enabled, st.Label)
	p.snapshot.set(c, st)
	return true
}

func (p *Poller) query(c Capability) (ToggleState, error) {
	switch c {
	case Wifi:
		return p.queryConnections(p.sources.Network.WifiEnabled, wirelessPrefix)
	case Network:
		return p.queryConnections(p.sources.Network.NetworkingEnabled, ethernetPrefix)
	case Bluetooth:
		on, err := p.sources.Bluetooth.Powered()
		if err != nil || !on {
			return NewToggleState(false, ""), err
		}
		devices, err := p.sources.Bluetooth.ConnectedDevices()
		if err != nil {
			return ToggleState{}, err
		}
		label := ""
		if len(devices) > 0 {
			label = devices[0].Name
		}
		return NewToggleState(true, label), nil
	case Airplane:
		on, err := p.sources.Radio.AllBlocked()
		return NewToggleState(on, ""), err
	default:
		return ToggleState{}, common.ErrUnknownCapability
	}
}

func (p *Poller) queryConnections(enabled func() (bool, error), prefix string) (ToggleState, error) {
	on, err := enabled()
	if err != nil || !on {
		return NewToggleState(false, ""), err
	}
	conns, err := p.sources.Network.ActiveConnections()
	if err != nil {
		return ToggleState{}, err
	}
	return NewToggleState(true, firstWithPrefix(conns, prefix)), nil
}

func (p *Poller) mutate(c Capability, on bool) error {
	switch c {
	case Wifi:
		return p.sources.Network.SetWifi(on)
	case Network:
		return p.sources.Network.SetNetworking(on)
	case Bluetooth:
		return p.sources.Bluetooth.SetPowered(on)
	case Airplane:
		return p.sources.Radio.SetAllBlocked(on)
	default:
		return common.ErrUnknownCapability
	}
}

// firstWithPrefix returns the name of the first connection whose device
// starts with prefix.
func firstWithPrefix(conns []common.ActiveConnection, prefix string) string {
	for _, c := range conns {
		if strings.HasPrefix(c.Device, prefix) {
			return c.Name
		}
	}
	return ""
}
