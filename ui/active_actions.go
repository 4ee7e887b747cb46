package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Shortcut icons, laid out row by row in a 3x2 grid.
var shortcutIcons = []struct {
	icon, tooltip string
}{
	{"view-fullscreen-symbolic", "Fullscreen"},
	{"view-reveal-symbolic", "Show"},
	{"audio-volume-high-symbolic", "Sound"},
	{"folder-open-symbolic", "Files"},
	{"folder-download-symbolic", "Downloads"},
	{"image-x-generic-symbolic", "Pictures"},
}

const shortcutColumns = 3

// ActiveActions is the right column: a media card, the Focus block and the
// shortcut grid. None of it is connected to a player or a launcher yet.
type ActiveActions struct {
	box *gtk.Box
}

// NewActiveActions builds the column.
func NewActiveActions() *ActiveActions {
	aa := &ActiveActions{box: gtk.NewBox(gtk.OrientationVertical, 8)}
	aa.box.SetHExpand(true)

	aa.box.Append(newMediaCard())
	aa.box.Append(newFocusBlock())
	aa.box.Append(newShortcutGrid())

	return aa
}

// Widget returns the root widget.
func (aa *ActiveActions) Widget() gtk.Widgetter {
	return aa.box
}

func newMediaCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 6)
	card.AddCSSClass("card")

	art := gtk.NewImageFromIconName("audio-x-generic-symbolic")
	art.SetPixelSize(32)
	art.AddCSSClass("album-art")
	card.Append(art)

	title := gtk.NewLabel("Track title")
	title.SetXAlign(0)
	title.AddCSSClass("media-title")
	card.Append(title)

	artist := gtk.NewLabel("Artist name")
	artist.SetXAlign(0)
	artist.AddCSSClass("caption")
	card.Append(artist)

	controls := gtk.NewBox(gtk.OrientationHorizontal, 4)
	controls.SetHAlign(gtk.AlignCenter)
	for _, icon := range []string{
		"media-skip-backward-symbolic",
		"media-playback-start-symbolic",
		"media-skip-forward-symbolic",
	} {
		button := gtk.NewButtonFromIconName(icon)
		button.AddCSSClass("flat")
		button.AddCSSClass("slider-row-icon")
		controls.Append(button)
	}
	card.Append(controls)

	return card
}

func newFocusBlock() *gtk.Box {
	block := gtk.NewBox(gtk.OrientationHorizontal, 4)
	block.AddCSSClass("card")

	moon := gtk.NewImageFromIconName("weather-clear-night-symbolic")
	moon.SetPixelSize(20)
	moon.SetMarginStart(34)
	moon.AddCSSClass("slider-row-icon")
	block.Append(moon)

	label := gtk.NewLabel("Focus")
	label.AddCSSClass("toggle-title")
	block.Append(label)

	return block
}

func newShortcutGrid() *gtk.Grid {
	grid := gtk.NewGrid()
	grid.SetRowSpacing(8)
	grid.SetColumnSpacing(4)
	grid.SetColumnHomogeneous(true)

	for i, s := range shortcutIcons {
		button := gtk.NewButtonFromIconName(s.icon)
		button.SetTooltipText(s.tooltip)
		button.AddCSSClass("shortcut")
		grid.Attach(button, i%shortcutColumns, i/shortcutColumns, 1, 1)
	}
	return grid
}
