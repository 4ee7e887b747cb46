// Package ui provides the graphical user interface for Action Center.
// This file contains the PreferencesDialog component for application settings.
package ui

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/config"
)

// PreferencesDialog represents the preferences dialog.
// Changes are written to the config file and take effect on the next start.
type PreferencesDialog struct {
	window        *gtk.Window
	panel         *Panel
	config        *config.Config
	watchSwitch   *gtk.Switch
	traySwitch    *gtk.Switch
	applySwitch   *gtk.Switch
	backendDrop   *gtk.DropDown
	intervalSpin  *gtk.SpinButton
	backends      []string
	statusMessage *gtk.Label
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(panel *Panel) *PreferencesDialog {
	pd := &PreferencesDialog{
		panel:    panel,
		config:   panel.app.config,
		backends: []string{common.BackendHyprctl, common.BackendIPC},
	}

	pd.build()
	return pd
}

// build constructs the dialog UI.
func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Settings")
	pd.window.SetTransientFor(&pd.panel.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(460, 480)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// Appearance
	appearSection := pd.createSection("Appearance", "preferences-desktop-theme-symbolic")
	appearCard := pd.createCard()

	pd.watchSwitch = pd.newSwitch(pd.config.WatchStylesheet)
	appearCard.Append(pd.createSettingRow(
		"Follow Stylesheet",
		"Reload colors when "+pd.config.Stylesheet+" changes",
		pd.watchSwitch,
	))
	appearCard.Append(pd.createSeparator())

	pd.traySwitch = pd.newSwitch(pd.config.ShowTray)
	appearCard.Append(pd.createSettingRow(
		"Tray Icon",
		"Show Wi-Fi and Bluetooth toggles in the system tray",
		pd.traySwitch,
	))

	appearSection.Append(appearCard)
	mainBox.Append(appearSection)

	// System
	systemSection := pd.createSection("System", "preferences-system-symbolic")
	systemCard := pd.createCard()

	pd.applySwitch = pd.newSwitch(pd.config.Sliders.ApplyToSystem)
	systemCard.Append(pd.createSettingRow(
		"Apply Sliders",
		"Send brightness and volume changes to the system",
		pd.applySwitch,
	))
	systemCard.Append(pd.createSeparator())

	pd.intervalSpin = gtk.NewSpinButtonWithRange(1, 60, 1)
	pd.intervalSpin.SetValue(pd.config.PollInterval.Seconds())
	pd.intervalSpin.SetVAlign(gtk.AlignCenter)
	systemCard.Append(pd.createSettingRow(
		"Refresh Interval",
		"Seconds between status checks",
		pd.intervalSpin,
	))
	systemCard.Append(pd.createSeparator())

	pd.backendDrop = gtk.NewDropDown(gtk.NewStringList([]string{"hyprctl", "Hyprland socket"}), nil)
	pd.backendDrop.SetSelected(pd.findBackendIndex(pd.config.WindowManager))
	pd.backendDrop.SetVAlign(gtk.AlignCenter)
	pd.backendDrop.AddCSSClass("flat")
	systemCard.Append(pd.createSettingRow(
		"Window Manager",
		"How the panel positions itself",
		pd.backendDrop,
	))

	systemSection.Append(systemCard)
	mainBox.Append(systemSection)

	pd.statusMessage = gtk.NewLabel("Changes apply after a restart")
	pd.statusMessage.SetXAlign(0)
	pd.statusMessage.AddCSSClass("dim-label")
	pd.statusMessage.AddCSSClass("caption")
	mainBox.Append(pd.statusMessage)

	rootBox.Append(mainBox)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		if pd.savePreferences() {
			pd.window.Close()
		}
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

func (pd *PreferencesDialog) newSwitch(active bool) *gtk.Switch {
	sw := gtk.NewSwitch()
	sw.SetActive(active)
	sw.SetVAlign(gtk.AlignCenter)
	return sw
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

// createCard creates a styled card container for settings.
func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	descLabel.SetWrapMode(pango.WrapWordChar)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// createSeparator creates a styled separator for cards.
func (pd *PreferencesDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// findBackendIndex returns the index of a backend, or 0 if not found.
func (pd *PreferencesDialog) findBackendIndex(backend string) uint {
	for i, b := range pd.backends {
		if b == backend {
			return uint(i)
		}
	}
	return 0
}

// savePreferences writes the dialog state to the config file. It reports
// whether the file was written.
func (pd *PreferencesDialog) savePreferences() bool {
	pd.config.WatchStylesheet = pd.watchSwitch.Active()
	pd.config.ShowTray = pd.traySwitch.Active()
	pd.config.Sliders.ApplyToSystem = pd.applySwitch.Active()
	pd.config.PollInterval = time.Duration(pd.intervalSpin.ValueAsInt()) * time.Second

	if idx := pd.backendDrop.Selected(); int(idx) < len(pd.backends) {
		pd.config.WindowManager = pd.backends[idx]
	}

	if err := pd.config.Save(); err != nil {
		common.LogError("Could not save preferences: %v", err)
		pd.statusMessage.SetText("Could not save preferences")
		return false
	}

	common.LogInfo("Preferences saved")
	return true
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
