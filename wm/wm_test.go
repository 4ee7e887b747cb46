package wm

import (
	"errors"
	"strings"
	"testing"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/config"
)

type fakeClient struct {
	windows     []Window
	monitors    []Monitor
	windowsErr  error
	monitorsErr error
	dispatchErr error
	dispatched  []string
}

func (f *fakeClient) Windows() ([]Window, error)   { return f.windows, f.windowsErr }
func (f *fakeClient) Monitors() ([]Monitor, error) { return f.monitors, f.monitorsErr }

func (f *fakeClient) Dispatch(dispatcher, arg string) error {
	f.dispatched = append(f.dispatched, dispatcher+" "+arg)
	return f.dispatchErr
}

func defaultLayout() config.Placement {
	return config.DefaultConfig().Placement
}

func TestCompute(t *testing.T) {
	got := Compute(1920, 1080, defaultLayout())
	want := Placement{X: 1540, Y: 60, Width: 370, Height: 1010}
	if got != want {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestPlacer_Place(t *testing.T) {
	client := &fakeClient{
		windows: []Window{
			{Address: "0x1", Title: "kitty"},
			{Address: "0xabc", Title: "Action Center"},
		},
		monitors: []Monitor{
			{Name: "DP-1", Width: 2560, Height: 1440},
			{Name: "eDP-1", Width: 1920, Height: 1080, Focused: true},
		},
	}
	p := NewPlacer(client, defaultLayout())

	if err := p.Place(); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if !p.Positioned() {
		t.Error("Positioned() should be true after Place()")
	}

	want := []string{
		"movewindowpixel exact 1540 60,address:0xabc",
		"resizewindowpixel exact 370 1010,address:0xabc",
		"pin address:0xabc",
	}
	if strings.Join(client.dispatched, "\n") != strings.Join(want, "\n") {
		t.Errorf("dispatched:\n%s\nwant:\n%s", strings.Join(client.dispatched, "\n"), strings.Join(want, "\n"))
	}

	// Placement runs once.
	if err := p.Place(); err != nil {
		t.Fatal(err)
	}
	if len(client.dispatched) != len(want) {
		t.Errorf("second Place() dispatched again: %v", client.dispatched)
	}
}

func TestPlacer_AlreadyPinned(t *testing.T) {
	client := &fakeClient{windows: []Window{{Address: "0x2", Title: "Action Center", Pinned: true}}}
	p := NewPlacer(client, defaultLayout())

	if err := p.Place(); err != nil {
		t.Fatal(err)
	}
	for _, d := range client.dispatched {
		if strings.HasPrefix(d, "pin ") {
			t.Errorf("pinned window was pinned again: %v", client.dispatched)
		}
	}
}

func TestPlacer_WindowMissingRetries(t *testing.T) {
	client := &fakeClient{windows: []Window{{Address: "0x1", Title: "kitty"}}}
	p := NewPlacer(client, defaultLayout())

	if err := p.Place(); !errors.Is(err, common.ErrWindowNotFound) {
		t.Errorf("Place() error = %v, want ErrWindowNotFound", err)
	}
	if p.Positioned() {
		t.Error("Positioned() should be false")
	}

	client.windows = append(client.windows, Window{Address: "0x9", Title: "Action Center"})
	if err := p.Place(); err != nil {
		t.Fatalf("retry Place() error = %v", err)
	}
	if !p.Positioned() {
		t.Error("retry should position the window")
	}
}

func TestPlacer_DispatchFailure(t *testing.T) {
	client := &fakeClient{
		windows:     []Window{{Address: "0x1", Title: "Action Center"}},
		dispatchErr: common.ErrDispatch,
	}
	p := NewPlacer(client, defaultLayout())

	if err := p.Place(); !errors.Is(err, common.ErrDispatch) {
		t.Errorf("Place() error = %v, want ErrDispatch", err)
	}
	if p.Positioned() {
		t.Error("failed dispatch must not mark the window positioned")
	}
}

func TestPlacer_MonitorSize(t *testing.T) {
	tests := []struct {
		name        string
		layout      func(*config.Placement)
		monitors    []Monitor
		monitorsErr error
		wantW       int
		wantH       int
	}{
		{
			name:   "configured size wins",
			layout: func(l *config.Placement) { l.MonitorWidth, l.MonitorHeight = 3840, 2160 },
			monitors: []Monitor{
				{Width: 1920, Height: 1080, Focused: true},
			},
			wantW: 3840, wantH: 2160,
		},
		{
			name:     "focused monitor",
			monitors: []Monitor{{Width: 1280, Height: 720}, {Width: 2560, Height: 1440, Focused: true}},
			wantW:    2560, wantH: 1440,
		},
		{
			name:     "first monitor without focus",
			monitors: []Monitor{{Width: 1280, Height: 720}},
			wantW:    1280, wantH: 720,
		},
		{
			name:        "query failure falls back",
			monitorsErr: errors.New("socket closed"),
			wantW:       1920, wantH: 1080,
		},
		{
			name:  "no monitors falls back",
			wantW: 1920, wantH: 1080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := defaultLayout()
			if tt.layout != nil {
				tt.layout(&layout)
			}
			p := NewPlacer(&fakeClient{monitors: tt.monitors, monitorsErr: tt.monitorsErr}, layout)
			w, h := p.monitorSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("monitorSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

type cannedRunner struct {
	out   map[string]string
	calls []string
}

func (r *cannedRunner) Run(name string, args ...string) ([]byte, error) {
	key := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, key)
	return []byte(r.out[key]), nil
}

func (r *cannedRunner) RunWithInput(_ string, name string, args ...string) ([]byte, error) {
	return r.Run(name, args...)
}

func TestHyprctlClient(t *testing.T) {
	r := &cannedRunner{out: map[string]string{
		"hyprctl clients -j":                 `[{"address":"0xabc","title":"Action Center","pinned":false,"class":"action-center"}]`,
		"hyprctl monitors -j":                `[{"name":"eDP-1","width":1920,"height":1200,"focused":true}]`,
		"hyprctl dispatch pin address:0xabc": "ok\n",
		"hyprctl dispatch pin address:0xdef": "No such window found",
	}}
	c := NewHyprctlClient(r)

	windows, err := c.Windows()
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 1 || windows[0].Address != "0xabc" || windows[0].Title != "Action Center" {
		t.Errorf("Windows() = %+v", windows)
	}

	monitors, err := c.Monitors()
	if err != nil {
		t.Fatal(err)
	}
	if len(monitors) != 1 || monitors[0].Height != 1200 || !monitors[0].Focused {
		t.Errorf("Monitors() = %+v", monitors)
	}

	if err := c.Dispatch("pin", "address:0xabc"); err != nil {
		t.Errorf("Dispatch() error = %v", err)
	}
	if err := c.Dispatch("pin", "address:0xdef"); !errors.Is(err, common.ErrDispatch) {
		t.Errorf("Dispatch() error = %v, want ErrDispatch", err)
	}
}

func TestHyprctlClient_BadJSON(t *testing.T) {
	r := &cannedRunner{out: map[string]string{"hyprctl clients -j": "not json"}}
	if _, err := NewHyprctlClient(r).Windows(); !errors.Is(err, common.ErrUnexpectedOutput) {
		t.Errorf("Windows() error = %v, want ErrUnexpectedOutput", err)
	}
}
