package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/yllada/action-center/status"
)

// toggleRow is one round button with a title and a caption beneath it.
type toggleRow struct {
	button  *gtk.Button
	caption *gtk.Label
	active  bool
}

// QuickSettings is the left column: one row per system capability plus the
// screen recording and do-not-disturb switches, which only hold local state.
type QuickSettings struct {
	box      *gtk.Box
	rows     map[status.Capability]*toggleRow
	snapshot status.Snapshot
	request  func(status.Capability, bool)
}

var capabilityIcons = map[status.Capability]string{
	status.Wifi:      "network-wireless-symbolic",
	status.Bluetooth: "bluetooth-active-symbolic",
	status.Network:   "network-wired-symbolic",
	status.Airplane:  "airplane-mode-symbolic",
}

// NewQuickSettings builds the column. request is called on the GTK thread
// with the state a capability row should switch to.
func NewQuickSettings(request func(status.Capability, bool)) *QuickSettings {
	qs := &QuickSettings{
		box:     gtk.NewBox(gtk.OrientationVertical, 10),
		rows:    make(map[status.Capability]*toggleRow),
		request: request,
	}
	qs.box.AddCSSClass("card")
	qs.box.SetHExpand(true)

	for _, c := range status.Capabilities() {
		row := qs.addRow(c.String(), capabilityIcons[c])
		row.button.ConnectClicked(func() {
			qs.request(c, !qs.snapshot.State(c).Enabled)
		})
		qs.rows[c] = row
		qs.render(c)
	}

	qs.addLocalRow("Screen Recording", "media-record-symbolic")
	qs.addLocalRow("Do Not Disturb", "notifications-disabled-symbolic")

	return qs
}

// Widget returns the root widget.
func (qs *QuickSettings) Widget() gtk.Widgetter {
	return qs.box
}

// Update redraws every capability row from snap.
func (qs *QuickSettings) Update(snap status.Snapshot) {
	qs.snapshot = snap
	for c := range qs.rows {
		qs.render(c)
	}
}

func (qs *QuickSettings) render(c status.Capability) {
	row := qs.rows[c]
	st := qs.snapshot.State(c)
	row.setActive(st.Enabled)
	row.caption.SetText(st.Caption(c))
}

// addLocalRow adds a row whose state never leaves the panel.
func (qs *QuickSettings) addLocalRow(title, iconName string) {
	row := qs.addRow(title, iconName)
	row.caption.SetText("Off")
	row.button.ConnectClicked(func() {
		row.setActive(!row.active)
		if row.active {
			row.caption.SetText("On")
		} else {
			row.caption.SetText("Off")
		}
	})
}

func (qs *QuickSettings) addRow(title, iconName string) *toggleRow {
	line := gtk.NewBox(gtk.OrientationHorizontal, 10)

	button := gtk.NewButtonFromIconName(iconName)
	button.AddCSSClass("toggle")
	button.SetTooltipText(title)
	button.SetVAlign(gtk.AlignCenter)
	line.Append(button)

	text := gtk.NewBox(gtk.OrientationVertical, 2)
	text.SetVAlign(gtk.AlignCenter)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("toggle-title")
	text.Append(titleLabel)

	caption := gtk.NewLabel("")
	caption.SetXAlign(0)
	caption.SetEllipsize(pango.EllipsizeEnd)
	caption.SetMaxWidthChars(14)
	caption.AddCSSClass("caption")
	text.Append(caption)

	line.Append(text)
	qs.box.Append(line)

	return &toggleRow{button: button, caption: caption}
}

func (r *toggleRow) setActive(on bool) {
	r.active = on
	if on {
		r.button.AddCSSClass("active")
	} else {
		r.button.RemoveCSSClass("active")
	}
}
