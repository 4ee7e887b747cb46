// Package theme loads the panel colors from a GTK-style stylesheet of
// "@define-color <key> #<hex>;" lines, as written by matugen/pywal style
// generators, and renders them back into the CSS the panel uses.
package theme

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/yllada/action-center/common"
)

// Colors is the panel's seven named colors.
type Colors struct {
	Background  color.RGBA
	Surface     color.RGBA
	OnSurface   color.RGBA
	Primary     color.RGBA
	OnPrimary   color.RGBA
	Secondary   color.RGBA
	OnSecondary color.RGBA
}

// DefaultColors returns the compiled-in dark theme.
func DefaultColors() Colors {
	return Colors{
		Background:  color.RGBA{30, 30, 30, 255},
		Surface:     color.RGBA{30, 30, 30, 255},
		OnSurface:   color.RGBA{200, 200, 200, 255},
		Primary:     color.RGBA{0, 120, 215, 255},
		OnPrimary:   color.RGBA{255, 255, 255, 255},
		Secondary:   color.RGBA{0, 153, 204, 255},
		OnSecondary: color.RGBA{255, 255, 255, 255},
	}
}

// slot maps a stylesheet key to the color it sets.
func (c *Colors) slot(key string) *color.RGBA {
	switch key {
	case "surface_container_lowest":
		return &c.Background
	case "surface_container_low":
		return &c.Surface
	case "on_surface_variant":
		return &c.OnSurface
	case "primary_fixed_dim":
		return &c.Primary
	case "on_primary_fixed":
		return &c.OnPrimary
	case "secondary_fixed_dim":
		return &c.Secondary
	case "on_secondary_fixed":
		return &c.OnSecondary
	}
	return nil
}

// Load reads path. A missing or unreadable file yields the defaults.
func Load(path string) Colors {
	file, err := os.Open(path)
	if err != nil {
		common.LogWarn("Using default colors, cannot open stylesheet: %v", err)
		return DefaultColors()
	}
	defer file.Close()

	colors, err := Parse(file)
	if err != nil {
		common.LogWarn("Reading stylesheet %s: %v", path, err)
	}
	return colors
}

// Parse applies every recognized definition in r on top of the defaults.
// Malformed definitions are skipped with a warning.
func Parse(r io.Reader) (Colors, error) {
	colors := DefaultColors()

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		key, value, ok := splitDefinition(scanner.Text())
		if !ok {
			continue
		}
		slot := colors.slot(key)
		if slot == nil {
			continue
		}
		c, err := ParseHex(value)
		if err != nil {
			common.LogWarn("Stylesheet line %d: skipping %s: %v", lineNo, key, err)
			continue
		}
		*slot = c
	}
	return colors, scanner.Err()
}

// splitDefinition extracts key and value from "@define-color key value;".
func splitDefinition(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	rest, found := strings.CutPrefix(line, "@define-color")
	if !found {
		return "", "", false
	}
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.TrimSuffix(fields[1], ";"), true
}

// ParseHex parses "#RRGGBB" (opaque) or "#RRGGBBAA".
func ParseHex(value string) (color.RGBA, error) {
	digits, found := strings.CutPrefix(value, "#")
	if !found {
		return color.RGBA{}, fmt.Errorf("%w: %q has no '#'", common.ErrInvalidColor, value)
	}
	switch len(digits) {
	case 6:
		digits += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", common.ErrInvalidColor, value)
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", common.ErrInvalidColor, value, err)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// CSSColor renders c as a CSS rgba() value.
func CSSColor(c color.RGBA) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

// Float returns c's channels in [0, 1] for cairo.
func Float(c color.RGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Dim scales c's alpha by factor.
func Dim(c color.RGBA, factor float64) color.RGBA {
	c.A = uint8(float64(c.A) * factor)
	return c
}
