// Package ui provides the graphical user interface for Action Center.
// This file contains the CSS providers for layout and theme colors.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/action-center/theme"
)

// Layout rules that do not depend on the theme colors.
const layoutCSS = `
/* ============================================
   Action Center - Layout (GTK4)
   ============================================ */

window.action-center scrolledwindow,
window.action-center viewport {
    background-color: transparent;
}

.section-title {
    font-weight: 600;
    font-size: 13px;
}

.toggle-title {
    font-size: 12px;
    font-weight: 500;
}

button.toggle {
    padding: 0;
}

button.toggle image {
    -gtk-icon-style: symbolic;
}

.media-title {
    font-weight: 600;
}

.album-art {
    margin-bottom: 4px;
}

.slider-card {
    padding: 6px;
}

separator {
    margin: 4px 0;
    opacity: 0.3;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}

/* Preferences */
.preferences-card {
    padding: 0;
}

.settings-title {
    font-weight: 500;
}
`

// StyleManager owns the application's CSS providers. The color provider is
// reloaded in place whenever the theme changes.
type StyleManager struct {
	layout *gtk.CSSProvider
	colors *gtk.CSSProvider
}

// NewStyleManager installs the providers on the default display. Without a
// display the manager does nothing.
func NewStyleManager() *StyleManager {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return &StyleManager{}
	}

	m := &StyleManager{
		layout: gtk.NewCSSProvider(),
		colors: gtk.NewCSSProvider(),
	}
	m.layout.LoadFromString(layoutCSS)

	gtk.StyleContextAddProviderForDisplay(display, m.layout, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	gtk.StyleContextAddProviderForDisplay(display, m.colors, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	return m
}

// Apply replaces the color rules with those rendered from colors.
func (m *StyleManager) Apply(colors theme.Colors) {
	if m.colors == nil {
		return
	}
	m.colors.LoadFromString(colors.CSS())
}
