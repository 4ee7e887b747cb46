// Package config provides configuration management for Action Center.
// It handles loading, saving, and validating application settings.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yllada/action-center/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// PollInterval is how often each capability is re-queried.
	PollInterval time.Duration `yaml:"poll_interval"`
	// BluetoothSettleDelay is waited between a power change and the read-back.
	BluetoothSettleDelay time.Duration `yaml:"bluetooth_settle_delay"`
	// Stylesheet is the path of the @define-color file.
	Stylesheet string `yaml:"stylesheet"`
	// WatchStylesheet reloads the colors when the stylesheet changes.
	WatchStylesheet bool `yaml:"watch_stylesheet"`
	// ShowTray enables the system tray icon.
	ShowTray bool `yaml:"show_tray"`
	// WindowManager selects the placement backend: "hyprctl" or "ipc".
	WindowManager string `yaml:"window_manager"`
	// Placement controls where the panel window goes.
	Placement Placement `yaml:"placement"`
	// Sliders controls the display and sound sliders.
	Sliders Sliders `yaml:"sliders"`
}

// Placement describes the panel geometry. A zero monitor size means
// "ask the window manager for the focused monitor".
type Placement struct {
	MonitorWidth  int `yaml:"monitor_width"`
	MonitorHeight int `yaml:"monitor_height"`
	Width         int `yaml:"width"`
	Margin        int `yaml:"margin"`
	Top           int `yaml:"top"`
	BottomGap     int `yaml:"bottom_gap"`
}

// Sliders holds the slider start values and system wiring.
type Sliders struct {
	Brightness float64 `yaml:"brightness"`
	Volume     float64 `yaml:"volume"`
	// ApplyToSystem forwards slider changes to the backlight and audio sink.
	ApplyToSystem bool `yaml:"apply_to_system"`
	// BacklightDevice is the sysfs backlight name; empty picks the first one.
	BacklightDevice string `yaml:"backlight_device"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PollInterval:         common.PollInterval,
		BluetoothSettleDelay: common.BluetoothSettleDelay,
		Stylesheet:           filepath.Join("~", ".config", common.ConfigDirName, common.StylesheetFileName),
		WatchStylesheet:      true,
		ShowTray:             true,
		WindowManager:        common.BackendHyprctl,
		Placement: Placement{
			Width:     common.PanelWidth,
			Margin:    common.PanelMargin,
			Top:       common.PanelTop,
			BottomGap: common.PanelBottomGap,
		},
		Sliders: Sliders{
			Brightness:    common.DefaultSliderValue,
			Volume:        common.DefaultSliderValue,
			ApplyToSystem: true,
		},
	}
}

// Load loads the configuration from the default config file.
// If the file doesn't exist, it writes one with default values.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile loads the configuration from path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveFile(path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	// Missing keys keep their defaults.
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrConfigLoad, path, err)
	}

	cfg.validate()
	return cfg, nil
}

// validate replaces out-of-range values with defaults.
func (c *Config) validate() {
	def := DefaultConfig()

	if c.PollInterval < time.Second {
		c.PollInterval = def.PollInterval
	}
	if c.BluetoothSettleDelay < 0 {
		c.BluetoothSettleDelay = def.BluetoothSettleDelay
	}
	if c.WindowManager != common.BackendHyprctl && c.WindowManager != common.BackendIPC {
		c.WindowManager = def.WindowManager
	}
	if c.Stylesheet == "" {
		c.Stylesheet = def.Stylesheet
	}

	p := &c.Placement
	if p.MonitorWidth < 0 || p.MonitorHeight < 0 {
		p.MonitorWidth, p.MonitorHeight = 0, 0
	}
	if p.Width <= 0 {
		p.Width = def.Placement.Width
	}
	if p.Margin < 0 {
		p.Margin = def.Placement.Margin
	}
	if p.Top < 0 {
		p.Top = def.Placement.Top
	}
	if p.BottomGap < 0 {
		p.BottomGap = def.Placement.BottomGap
	}

	c.Sliders.Brightness = clampPercent(c.Sliders.Brightness, def.Sliders.Brightness)
	c.Sliders.Volume = clampPercent(c.Sliders.Volume, def.Sliders.Volume)
}

// clampPercent limits v to [0, 100]. NaN becomes def.
func clampPercent(v, def float64) float64 {
	switch {
	case math.IsNaN(v):
		return def
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// StylesheetPath returns the stylesheet path with "~" expanded.
func (c *Config) StylesheetPath() string {
	return common.ExpandHome(c.Stylesheet)
}

// Save saves the configuration to the default config file.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the configuration to path.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: serializing: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	return nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}
