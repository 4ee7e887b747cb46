// Package ui provides the graphical user interface for Action Center.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/theme"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	SymbolColor color.RGBA
}

// ActiveIconConfig colors the icon with the theme when any radio is on.
func ActiveIconConfig(colors theme.Colors) IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   colors.Primary,
		BorderColor: colors.Secondary,
		SymbolColor: colors.OnPrimary,
	}
}

// IdleIconConfig returns the gray icon used when every radio is off.
func IdleIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{117, 117, 117, 255}, // Dark gray
		BorderColor: color.RGBA{158, 158, 158, 255}, // Gray
		SymbolColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawDisc(img)
	g.drawTiles(img)

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawDisc draws the round background with a one pixel rim.
func (g *IconGenerator) drawDisc(img *image.RGBA) {
	size := float64(g.config.Size)
	center := size / 2
	outer := center - 0.5
	inner := outer - 1.5

	for y := 0; y < g.config.Size; y++ {
		for x := 0; x < g.config.Size; x++ {
			dx, dy := float64(x)+0.5-center, float64(y)+0.5-center
			d := dx*dx + dy*dy
			switch {
			case d > outer*outer:
			case d > inner*inner:
				img.Set(x, y, g.config.BorderColor)
			default:
				img.Set(x, y, g.config.FillColor)
			}
		}
	}
}

// drawTiles draws the 2x2 grid of quick settings tiles in the middle.
func (g *IconGenerator) drawTiles(img *image.RGBA) {
	size := g.config.Size
	tile := size / 6
	gap := tile / 2
	if gap < 1 {
		gap = 1
	}
	span := 2*tile + gap
	origin := (size - span) / 2

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			x0 := origin + col*(tile+gap)
			y0 := origin + row*(tile+gap)
			for y := y0; y < y0+tile; y++ {
				for x := x0; x < x0+tile; x++ {
					img.Set(x, y, g.config.SymbolColor)
				}
			}
		}
	}
}

// GenerateTrayIcon generates the tray icon for the current state.
func GenerateTrayIcon(colors theme.Colors, active bool) []byte {
	config := IdleIconConfig()
	if active {
		config = ActiveIconConfig(colors)
	}
	return NewIconGenerator(config).Generate()
}
