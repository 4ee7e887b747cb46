package status

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yllada/action-center/common"
)

var errBoom = errors.New("boom")

type fakeNetwork struct {
	mu          sync.Mutex
	wifi        bool
	networking  bool
	conns       []common.ActiveConnection
	wifiErr     error
	connsErr    error
	setErr      error
	wifiQueries int
	setGate     chan struct{}
	setEntered  chan struct{}
}

func (f *fakeNetwork) WifiEnabled() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wifiQueries++
	return f.wifi, f.wifiErr
}

func (f *fakeNetwork) SetWifi(enabled bool) error {
	if f.setEntered != nil {
		f.setEntered <- struct{}{}
	}
	if f.setGate != nil {
		<-f.setGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.wifi = enabled
	return nil
}

func (f *fakeNetwork) NetworkingEnabled() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.networking, nil
}

func (f *fakeNetwork) SetNetworking(enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.networking = enabled
	return nil
}

func (f *fakeNetwork) ActiveConnections() ([]common.ActiveConnection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conns, f.connsErr
}

type fakeBluetooth struct {
	powered bool
	devices []common.BluetoothDevice
}

func (f *fakeBluetooth) Powered() (bool, error) { return f.powered, nil }

func (f *fakeBluetooth) SetPowered(on bool) error {
	f.powered = on
	return nil
}

func (f *fakeBluetooth) ConnectedDevices() ([]common.BluetoothDevice, error) {
	return f.devices, nil
}

type fakeRadio struct{ blocked bool }

func (f *fakeRadio) AllBlocked() (bool, error) { return f.blocked, nil }

func (f *fakeRadio) SetAllBlocked(blocked bool) error {
	f.blocked = blocked
	return nil
}

func newTestPoller(net *fakeNetwork, bt *fakeBluetooth) *Poller {
	p := NewPoller(Sources{Network: net, Bluetooth: bt, Radio: &fakeRadio{}}, PollerConfig{
		Interval:        5 * time.Second,
		BluetoothSettle: time.Second,
	})
	p.SetSleep(func(time.Duration) {})
	return p
}

func TestCapability_String(t *testing.T) {
	tests := []struct {
		c    Capability
		want string
	}{
		{Wifi, "Wi-Fi"},
		{Bluetooth, "Bluetooth"},
		{Network, "Ethernet"},
		{Airplane, "Airplane Mode"},
		{Capability(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCapability(t *testing.T) {
	for _, c := range Capabilities() {
		got, err := ParseCapability(c.Key())
		if err != nil || got != c {
			t.Errorf("ParseCapability(%q) = %v, %v", c.Key(), got, err)
		}
	}
	if _, err := ParseCapability("nfc"); !errors.Is(err, common.ErrUnknownCapability) {
		t.Errorf("ParseCapability(nfc) error = %v, want ErrUnknownCapability", err)
	}
}

func TestToggleState_LabelRequiresEnabled(t *testing.T) {
	if st := NewToggleState(false, "MyWifi"); st.Label != "" {
		t.Errorf("disabled state kept label %q", st.Label)
	}
	if st := NewToggleState(true, "MyWifi"); st.Label != "MyWifi" {
		t.Errorf("enabled state lost label: %+v", st)
	}
}

func TestToggleState_Caption(t *testing.T) {
	tests := []struct {
		st   ToggleState
		c    Capability
		want string
	}{
		{NewToggleState(true, "MyWifi"), Wifi, "MyWifi"},
		{NewToggleState(true, ""), Wifi, "On"},
		{NewToggleState(false, ""), Wifi, "Off"},
		{NewToggleState(false, ""), Network, "Disconnected"},
		{NewToggleState(true, ""), Network, "Connected"},
	}
	for _, tt := range tests {
		if got := tt.st.Caption(tt.c); got != tt.want {
			t.Errorf("Caption(%v, %+v) = %q, want %q", tt.c, tt.st, got, tt.want)
		}
	}
}

func TestPoller_WifiLabel(t *testing.T) {
	net := &fakeNetwork{
		wifi:       true,
		networking: true,
		conns: []common.ActiveConnection{
			{Name: "MyWifi", Device: "wlan0"},
			{Name: "Eth0", Device: "eth0"},
		},
	}
	p := newTestPoller(net, &fakeBluetooth{})

	if !p.Poll(time.Unix(100, 0)) {
		t.Fatal("first Poll() should report a change")
	}
	snap := p.Snapshot()
	if got := snap.State(Wifi); got != (ToggleState{Enabled: true, Label: "MyWifi"}) {
		t.Errorf("Wifi = %+v", got)
	}
	if got := snap.State(Network); got != (ToggleState{Enabled: true, Label: "Eth0"}) {
		t.Errorf("Network = %+v", got)
	}
}

func TestPoller_BluetoothLabel(t *testing.T) {
	bt := &fakeBluetooth{
		powered: true,
		devices: []common.BluetoothDevice{{Address: "AA:BB:CC:DD:EE:FF", Name: "My Headphones"}},
	}
	p := newTestPoller(&fakeNetwork{}, bt)
	p.Poll(time.Unix(100, 0))

	if got := p.Snapshot().State(Bluetooth); got.Label != "My Headphones" || !got.Enabled {
		t.Errorf("Bluetooth = %+v", got)
	}
}

func TestPoller_NoMatchingDevice(t *testing.T) {
	net := &fakeNetwork{wifi: true, conns: []common.ActiveConnection{{Name: "Eth0", Device: "eth0"}}}
	p := newTestPoller(net, &fakeBluetooth{})
	p.Poll(time.Unix(100, 0))

	if got := p.Snapshot().State(Wifi); got != (ToggleState{Enabled: true}) {
		t.Errorf("Wifi = %+v, want enabled without label", got)
	}
}

func TestPoller_PollBeforeIntervalIsNoop(t *testing.T) {
	net := &fakeNetwork{wifi: true}
	p := newTestPoller(net, &fakeBluetooth{})
	start := time.Unix(100, 0)

	p.Poll(start)
	net.wifi = false
	queries := net.wifiQueries

	if p.Poll(start.Add(4999 * time.Millisecond)) {
		t.Error("early Poll() reported a change")
	}
	if net.wifiQueries != queries {
		t.Error("early Poll() queried the source")
	}
	if !p.Snapshot().State(Wifi).Enabled {
		t.Error("early Poll() changed the state")
	}

	// The timer was not moved by the early poll.
	if !p.Poll(start.Add(5 * time.Second)) {
		t.Error("Poll() after the interval should pick up the change")
	}
	if p.Snapshot().State(Wifi).Enabled {
		t.Error("Wifi should now be disabled")
	}
}

func TestPoller_FailureKeepsState(t *testing.T) {
	net := &fakeNetwork{wifi: true, conns: []common.ActiveConnection{{Name: "MyWifi", Device: "wlan0"}}}
	p := newTestPoller(net, &fakeBluetooth{})
	start := time.Unix(100, 0)
	p.Poll(start)

	net.wifiErr = errBoom
	p.Poll(start.Add(5 * time.Second))
	if got := p.Snapshot().State(Wifi); got.Label != "MyWifi" {
		t.Errorf("failed wifi query changed state to %+v", got)
	}

	net.wifiErr = nil
	net.connsErr = errBoom
	p.Poll(start.Add(10 * time.Second))
	if got := p.Snapshot().State(Wifi); got.Label != "MyWifi" {
		t.Errorf("failed connection query changed state to %+v", got)
	}

	// A failed query still resets the timer.
	net.connsErr = nil
	net.wifi = false
	p.Poll(start.Add(14 * time.Second))
	if !p.Snapshot().State(Wifi).Enabled {
		t.Error("Poll() inside the interval after a failure should be a no-op")
	}
}

func TestPoller_ToggleReadsBack(t *testing.T) {
	net := &fakeNetwork{wifi: true}
	p := newTestPoller(net, &fakeBluetooth{})
	now := time.Unix(100, 0)
	p.SetClock(func() time.Time { return now })
	p.Poll(now)

	if err := p.Toggle(Wifi, false); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if p.Snapshot().State(Wifi).Enabled {
		t.Error("Toggle(Wifi, false) should be visible without waiting for a poll")
	}
}

func TestPoller_ToggleFailureKeepsState(t *testing.T) {
	net := &fakeNetwork{wifi: true, setErr: errBoom}
	p := newTestPoller(net, &fakeBluetooth{})
	p.Poll(time.Unix(100, 0))

	if err := p.Toggle(Wifi, false); !errors.Is(err, errBoom) {
		t.Errorf("Toggle() error = %v, want errBoom", err)
	}
	if !p.Snapshot().State(Wifi).Enabled {
		t.Error("failed toggle changed state")
	}
}

func TestPoller_BluetoothSettles(t *testing.T) {
	bt := &fakeBluetooth{}
	p := newTestPoller(&fakeNetwork{}, bt)
	var slept []time.Duration
	p.SetSleep(func(d time.Duration) { slept = append(slept, d) })

	if err := p.Toggle(Bluetooth, true); err != nil {
		t.Fatal(err)
	}
	if len(slept) != 1 || slept[0] != time.Second {
		t.Errorf("slept = %v, want [1s]", slept)
	}
	if !p.Snapshot().State(Bluetooth).Enabled {
		t.Error("Bluetooth should be enabled after toggle")
	}

	slept = nil
	_ = p.Toggle(Wifi, true)
	if len(slept) != 0 {
		t.Errorf("Wi-Fi toggle should not wait, slept %v", slept)
	}
}

func TestPoller_Airplane(t *testing.T) {
	p := newTestPoller(&fakeNetwork{}, &fakeBluetooth{})
	if err := p.Toggle(Airplane, true); err != nil {
		t.Fatal(err)
	}
	if got := p.Snapshot().State(Airplane); got != (ToggleState{Enabled: true}) {
		t.Errorf("Airplane = %+v", got)
	}
}

func TestPoller_MissingSource(t *testing.T) {
	p := NewPoller(Sources{}, DefaultPollerConfig())
	if p.Supported(Wifi) || p.Supported(Bluetooth) || p.Supported(Airplane) {
		t.Error("nil sources should be unsupported")
	}
	if p.Poll(time.Now()) {
		t.Error("Poll() with no sources reported a change")
	}
	if err := p.Toggle(Wifi, true); !errors.Is(err, common.ErrUnknownCapability) {
		t.Errorf("Toggle() error = %v, want ErrUnknownCapability", err)
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(newTestPoller(&fakeNetwork{}, &fakeBluetooth{}), 10*time.Millisecond)

	if s.IsRunning() {
		t.Error("should not be running before Start()")
	}
	s.Start()
	if !s.IsRunning() {
		t.Error("should be running after Start()")
	}
	s.Start()
	s.Stop()
	if s.IsRunning() {
		t.Error("should not be running after Stop()")
	}
	s.Stop()
}

func TestScheduler_PublishesToggle(t *testing.T) {
	net := &fakeNetwork{wifi: true}
	s := NewScheduler(newTestPoller(net, &fakeBluetooth{}), time.Hour)

	snaps := make(chan Snapshot, 16)
	s.SetOnChange(func(snap Snapshot) { snaps <- snap })
	s.Start()
	defer s.Stop()

	first := <-snaps
	if !first.State(Wifi).Enabled {
		t.Fatal("initial snapshot should have Wi-Fi enabled")
	}

	if err := s.RequestToggle(Wifi, false); err != nil {
		t.Fatalf("RequestToggle() error = %v", err)
	}

	select {
	case snap := <-snaps:
		if snap.State(Wifi).Enabled {
			t.Error("snapshot after toggle should have Wi-Fi disabled")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published after toggle")
	}
	if s.Snapshot().State(Wifi).Enabled {
		t.Error("Snapshot() should match the published state")
	}
}

func TestScheduler_RequestWhenStopped(t *testing.T) {
	s := NewScheduler(newTestPoller(&fakeNetwork{}, &fakeBluetooth{}), time.Hour)
	if err := s.RequestToggle(Wifi, true); !errors.Is(err, common.ErrNotRunning) {
		t.Errorf("RequestToggle() error = %v, want ErrNotRunning", err)
	}
}

func TestScheduler_InboxFull(t *testing.T) {
	net := &fakeNetwork{
		setGate:    make(chan struct{}),
		setEntered: make(chan struct{}, 2*common.ToggleInboxSize),
	}
	s := NewScheduler(newTestPoller(net, &fakeBluetooth{}), time.Hour)
	s.Start()

	// The first request occupies the worker.
	if err := s.RequestToggle(Wifi, true); err != nil {
		t.Fatal(err)
	}
	<-net.setEntered

	for i := 0; i < common.ToggleInboxSize; i++ {
		if err := s.RequestToggle(Wifi, i%2 == 0); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
	if err := s.RequestToggle(Wifi, true); !errors.Is(err, common.ErrInboxFull) {
		t.Errorf("RequestToggle() on full inbox = %v, want ErrInboxFull", err)
	}

	// Release the worker so Stop can return.
	close(net.setGate)
	s.Stop()
}
