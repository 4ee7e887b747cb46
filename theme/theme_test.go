package theme

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yllada/action-center/common"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#1a2b3c", color.RGBA{26, 43, 60, 255}, false},
		{"#1A2B3C80", color.RGBA{26, 43, 60, 128}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"1a2b3c", color.RGBA{}, true},
		{"#1a2b3c4", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, common.ErrInvalidColor) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	sheet := `/* generated */
@define-color primary_fixed_dim #1a2b3c;
@define-color surface_container_low #101010;
@define-color on_surface_variant #12345;
@define-color tertiary #ffffff;
  @define-color on_primary_fixed #00000080;
window { color: red; }
`
	colors, err := Parse(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	def := DefaultColors()
	if colors.Primary != (color.RGBA{26, 43, 60, 255}) {
		t.Errorf("Primary = %v, want (26,43,60,255)", colors.Primary)
	}
	if colors.Surface != (color.RGBA{16, 16, 16, 255}) {
		t.Errorf("Surface = %v", colors.Surface)
	}
	if colors.OnSurface != def.OnSurface {
		t.Errorf("malformed entry should keep default, OnSurface = %v", colors.OnSurface)
	}
	if colors.OnPrimary != (color.RGBA{0, 0, 0, 128}) {
		t.Errorf("OnPrimary = %v, want 8-digit alpha kept", colors.OnPrimary)
	}
	if colors.Background != def.Background || colors.Secondary != def.Secondary {
		t.Error("unmentioned keys should keep defaults")
	}
}

func TestParse_AllKeys(t *testing.T) {
	keys := []string{
		"surface_container_lowest",
		"surface_container_low",
		"on_surface_variant",
		"primary_fixed_dim",
		"on_primary_fixed",
		"secondary_fixed_dim",
		"on_secondary_fixed",
	}
	var b strings.Builder
	for _, k := range keys {
		b.WriteString("@define-color " + k + " #010203;\n")
	}

	colors, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{1, 2, 3, 255}
	for _, got := range []color.RGBA{
		colors.Background, colors.Surface, colors.OnSurface, colors.Primary,
		colors.OnPrimary, colors.Secondary, colors.OnSecondary,
	} {
		if got != want {
			t.Errorf("color = %v, want %v", got, want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "absent.css"))
	if got != DefaultColors() {
		t.Errorf("Load(missing) = %v, want defaults", got)
	}
}

func TestColorsCSS(t *testing.T) {
	css := DefaultColors().CSS()

	for _, want := range []string{
		"window.action-center",
		"rgba(0, 120, 215, 1.000)",
		"button.toggle.active",
		"rgba(200, 200, 200, 0.698)",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS() missing %q", want)
		}
	}
}

func TestFloat(t *testing.T) {
	r, g, b, a := Float(color.RGBA{255, 0, 51, 255})
	if r != 1 || g != 0 || b != 0.2 || a != 1 {
		t.Errorf("Float() = %v %v %v %v", r, g, b, a)
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.css")
	if err := os.WriteFile(path, []byte("@define-color primary_fixed_dim #000000;\n"), 0600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan Colors, 4)
	w := NewWatcher(path, func(c Colors) { changed <- c })
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("@define-color primary_fixed_dim #1a2b3c;\n"), 0600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Primary == (color.RGBA{26, 43, 60, 255}) {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not report the new color")
		}
	}
}
