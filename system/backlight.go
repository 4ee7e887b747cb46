package system

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/action-center/common"
)

const (
	backlightSubsystem = "backlight"
	sysClassRoot       = "/sys/class"

	logindDest      = "org.freedesktop.login1"
	logindSession   = "/org/freedesktop/login1/session/self"
	logindSetBright = "org.freedesktop.login1.Session.SetBrightness"
)

// brightnessSetter writes a raw brightness value for subsystem/name.
type brightnessSetter func(subsystem, name string, value uint32) error

// Backlight sets screen brightness through systemd-logind, which lets an
// unprivileged session write the sysfs backlight.
type Backlight struct {
	name string
	max  uint32
	set  brightnessSetter
}

// NewBacklight connects to the system bus and resolves device under
// /sys/class/backlight. An empty device picks the first one found.
func NewBacklight(device string) (*Backlight, error) {
	name, limit, err := resolveBacklight(filepath.Join(sysClassRoot, backlightSubsystem), device)
	if err != nil {
		return nil, err
	}

	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, common.WrapError(err, "failed to connect to system bus")
	}
	obj := conn.Object(logindDest, logindSession)

	common.LogInfo("Using backlight %s (max %d)", name, limit)
	return &Backlight{
		name: name,
		max:  limit,
		set: func(subsystem, name string, value uint32) error {
			return obj.Call(logindSetBright, 0, subsystem, name, value).Err
		},
	}, nil
}

// Name returns the sysfs device name.
func (b *Backlight) Name() string { return b.name }

// SetLevel sets brightness to percent of max_brightness.
func (b *Backlight) SetLevel(percent float64) error {
	raw := uint32(math.Round(math.Max(0, math.Min(percent, 100)) / 100 * float64(b.max)))
	if err := b.set(backlightSubsystem, b.name, raw); err != nil {
		return common.WrapError(err, "SetBrightness "+b.name)
	}
	return nil
}

// resolveBacklight picks the device directory under dir and reads its
// max_brightness.
func resolveBacklight(dir, device string) (string, uint32, error) {
	if device == "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", 0, common.WrapError(err, "failed to list backlights")
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if len(names) == 0 {
			return "", 0, fmt.Errorf("no backlight device in %s", dir)
		}
		sort.Strings(names)
		device = names[0]
	}

	limit, err := readUint(filepath.Join(dir, device, "max_brightness"))
	if err != nil {
		return "", 0, err
	}
	if limit == 0 {
		return "", 0, fmt.Errorf("%w: %s reports max_brightness 0", common.ErrUnexpectedOutput, device)
	}
	return device, limit, nil
}

func readUint(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", common.ErrUnexpectedOutput, path, err)
	}
	return uint32(v), nil
}
