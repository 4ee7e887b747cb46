package ui

import (
	"sync"
	"time"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/config"
	"github.com/yllada/action-center/status"
	"github.com/yllada/action-center/system"
	"github.com/yllada/action-center/theme"
	"github.com/yllada/action-center/wm"
)

// Application represents the main application
type Application struct {
	app       *gtk.Application
	panel     *Panel
	config    *config.Config
	version   string
	tray      *TrayIndicator
	scheduler *status.Scheduler
	placer    *wm.Placer
	styles    *StyleManager
	watcher   *theme.Watcher
	colors    theme.Colors

	brightness *system.Coalescer
	volume     *system.Coalescer

	placeStop chan struct{}
	placeDone chan struct{}
	stopOnce  sync.Once
}

// NewApplication creates a new application
func NewApplication(appID, version string, cfg *config.Config) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	runner := system.NewExecRunner()
	poller := status.NewPoller(status.NewSystemSources(runner), status.PollerConfig{
		Interval:        cfg.PollInterval,
		BluetoothSettle: cfg.BluetoothSettleDelay,
	})

	application := &Application{
		app:       app,
		config:    cfg,
		version:   version,
		scheduler: status.NewScheduler(poller, common.PollResolution),
		placer:    wm.NewPlacer(wm.NewClient(cfg.WindowManager, runner), cfg.Placement),
		colors:    theme.DefaultColors(),
	}

	if cfg.Sliders.ApplyToSystem {
		application.setupSliderSinks(runner)
	}

	app.ConnectActivate(application.onActivate)
	app.ConnectShutdown(application.shutdown)

	return application
}

// Run runs the application
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated. A second launch
// activates the running instance, which only brings the panel back.
func (a *Application) onActivate() {
	if a.panel != nil {
		a.showWindow()
		return
	}

	a.styles = NewStyleManager()
	a.colors = theme.Load(a.config.StylesheetPath())
	a.styles.Apply(a.colors)

	a.panel = NewPanel(a)
	a.panel.Present()

	a.scheduler.SetOnChange(func(snap status.Snapshot) {
		glib.IdleAdd(func() {
			a.panel.Update(snap)
			if a.tray != nil {
				a.tray.Update(snap)
			}
		})
	})
	a.scheduler.Start()

	a.startPlacement()
	a.startStylesheetWatcher()

	if a.config.ShowTray {
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
	}
}

// setupSliderSinks connects the sliders to the backlight and the audio sink.
func (a *Application) setupSliderSinks(runner system.Runner) {
	if backlight, err := system.NewBacklight(a.config.Sliders.BacklightDevice); err != nil {
		common.LogWarn("Brightness slider not applied: %v", err)
	} else {
		a.brightness = system.NewCoalescer("brightness", backlight)
		a.brightness.Start()
	}

	if system.Available("wpctl") {
		a.volume = system.NewCoalescer("volume", system.NewVolume(runner))
		a.volume.Start()
	} else {
		common.LogWarn("Volume slider not applied: wpctl not found")
	}
}

func (a *Application) setBrightness(percent float64) {
	if a.brightness != nil {
		a.brightness.Submit(percent)
	}
}

func (a *Application) setVolume(percent float64) {
	if a.volume != nil {
		a.volume.Submit(percent)
	}
}

// requestToggle queues a capability change for the scheduler.
func (a *Application) requestToggle(c status.Capability, on bool) {
	if err := a.scheduler.RequestToggle(c, on); err != nil {
		common.LogWarn("Cannot switch %s %s: %v", c, common.OnOff(on), err)
	}
}

// startPlacement retries placement until the window manager knows the panel.
func (a *Application) startPlacement() {
	a.placeStop = make(chan struct{})
	a.placeDone = make(chan struct{})

	go func(stop <-chan struct{}, done chan<- struct{}) {
		defer close(done)
		ticker := time.NewTicker(common.PlacementRetryInterval)
		defer ticker.Stop()

		for {
			if err := a.placer.Place(); err != nil {
				common.LogDebug("Panel placement pending: %v", err)
			}
			if a.placer.Positioned() {
				return
			}
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}(a.placeStop, a.placeDone)
}

// startStylesheetWatcher reapplies the colors when the stylesheet changes.
func (a *Application) startStylesheetWatcher() {
	if !a.config.WatchStylesheet {
		return
	}

	a.watcher = theme.NewWatcher(a.config.StylesheetPath(), func(colors theme.Colors) {
		glib.IdleAdd(func() {
			a.applyColors(colors)
		})
	})
	if err := a.watcher.Start(); err != nil {
		common.LogWarn("Stylesheet changes will not be picked up: %v", err)
		a.watcher = nil
	}
}

func (a *Application) applyColors(colors theme.Colors) {
	a.colors = colors
	a.styles.Apply(colors)
	a.panel.SetColors(colors)
	if a.tray != nil {
		a.tray.SetColors(colors)
	}
}

// shutdown stops every background worker.
func (a *Application) shutdown() {
	a.stopOnce.Do(func() {
		a.scheduler.Stop()
		if a.placeStop != nil {
			close(a.placeStop)
			<-a.placeDone
		}
		if a.watcher != nil {
			a.watcher.Stop()
		}
		if a.brightness != nil {
			a.brightness.Stop()
		}
		if a.volume != nil {
			a.volume.Stop()
		}
		common.LogInfo("Action Center stopped")
	})
}

// showWindow shows the panel
func (a *Application) showWindow() {
	if a.panel != nil {
		a.panel.Present()
	}
}

// toggleWindow shows the panel when hidden and hides it otherwise.
func (a *Application) toggleWindow() {
	if a.panel == nil {
		return
	}
	if a.panel.Visible() {
		a.panel.Hide()
	} else {
		a.panel.Present()
	}
}

// Quit closes the application
func (a *Application) Quit() {
	if a.tray != nil {
		a.tray.Quit()
	}
	a.app.Quit()
}
