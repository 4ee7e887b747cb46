package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/status"
	"github.com/yllada/action-center/theme"
)

// Panel is the Action Center window.
type Panel struct {
	app        *Application
	window     *gtk.ApplicationWindow
	quick      *QuickSettings
	actions    *ActiveActions
	brightness *SliderWidget
	volume     *SliderWidget
}

// NewPanel creates the panel window.
func NewPanel(app *Application) *Panel {
	p := &Panel{app: app}

	p.window = gtk.NewApplicationWindow(app.app)
	p.window.SetTitle(common.WindowTitle)
	layout := app.config.Placement
	p.window.SetDefaultSize(layout.Width, common.FallbackMonitorHeight-layout.BottomGap)
	p.window.SetDecorated(false)
	p.window.AddCSSClass("action-center")

	// The window manager pins the panel; closing only hides it.
	p.window.SetHideOnClose(true)

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval == gdk.KEY_Escape {
			p.window.SetVisible(false)
			return true
		}
		return false
	})
	p.window.AddController(keys)

	p.createLayout()
	p.setupActions()

	return p
}

// createLayout creates the window layout.
func (p *Panel) createLayout() {
	content := gtk.NewBox(gtk.OrientationVertical, 12)
	content.SetMarginTop(12)
	content.SetMarginBottom(12)
	content.SetMarginStart(12)
	content.SetMarginEnd(12)

	// Quick settings and active actions side by side
	columns := gtk.NewBox(gtk.OrientationHorizontal, 8)
	columns.SetHomogeneous(true)
	p.quick = NewQuickSettings(p.app.requestToggle)
	p.actions = NewActiveActions()
	columns.Append(p.quick.Widget())
	columns.Append(p.actions.Widget())
	content.Append(columns)

	content.Append(gtk.NewSeparator(gtk.OrientationHorizontal))

	sliders := p.app.config.Sliders
	p.brightness = NewSliderWidget("display-brightness-symbolic", sliders.Brightness, p.app.colors)
	p.brightness.SetOnChange(p.app.setBrightness)
	content.Append(sectionTitle("Display"))
	content.Append(sliderCard(p.brightness))

	p.volume = NewSliderWidget("audio-volume-high-symbolic", sliders.Volume, p.app.colors)
	p.volume.SetOnChange(p.app.setVolume)
	content.Append(sectionTitle("Sound"))
	content.Append(sliderCard(p.volume))

	content.Append(gtk.NewSeparator(gtk.OrientationHorizontal))
	content.Append(sectionTitle("Notifications"))

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scrolled.SetChild(content)

	p.window.SetChild(scrolled)
}

func sectionTitle(text string) *gtk.Label {
	label := gtk.NewLabel(text)
	label.SetXAlign(0)
	label.AddCSSClass("section-title")
	return label
}

func sliderCard(s *SliderWidget) *gtk.Box {
	card := gtk.NewBox(gtk.OrientationHorizontal, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("slider-card")
	card.Append(s.Widget())
	return card
}

// setupActions configures the application actions.
func (p *Panel) setupActions() {
	// Preferences action (Ctrl+,)
	preferencesAction := gio.NewSimpleAction("preferences", nil)
	preferencesAction.ConnectActivate(func(_ *glib.Variant) {
		NewPreferencesDialog(p).Show()
	})
	p.app.app.AddAction(preferencesAction)
	p.app.app.SetAccelsForAction("app.preferences", []string{"<Control>comma"})

	// About action
	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		p.onAbout()
	})
	p.app.app.AddAction(aboutAction)

	// Quit action (Ctrl+Q)
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		p.app.Quit()
	})
	p.app.app.AddAction(quitAction)
	p.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// Present shows the panel and gives it focus.
func (p *Panel) Present() {
	p.window.Present()
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.window.IsVisible()
}

// Hide hides the panel.
func (p *Panel) Hide() {
	p.window.SetVisible(false)
}

// Update redraws the quick settings from snap. Call it on the GTK thread.
func (p *Panel) Update(snap status.Snapshot) {
	p.quick.Update(snap)
}

// SetColors repaints the custom-drawn widgets. CSS colors are handled by the
// StyleManager.
func (p *Panel) SetColors(colors theme.Colors) {
	p.brightness.SetColors(colors)
	p.volume.SetColors(colors)
}

func (p *Panel) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&p.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName("preferences-system-symbolic")
	about.SetVersion(p.app.version)
	about.SetComments("Quick settings, media and sliders for Hyprland.")
	about.SetWebsite("https://github.com/yllada/action-center")
	about.SetCopyright("© 2026 Yadian Llada Lopez")
	about.SetLicense("MIT License")

	about.Present()
}
