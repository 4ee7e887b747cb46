// Package wm positions the panel window through the Hyprland compositor.
//
// Two clients are available: HyprctlClient runs the hyprctl binary and
// IPCClient speaks to Hyprland's request socket directly.
package wm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/system"
)

// Window is a toplevel known to the compositor.
type Window struct {
	Address string `json:"address"`
	Title   string `json:"title"`
	Pinned  bool   `json:"pinned"`
}

// Monitor is an output known to the compositor.
type Monitor struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Focused bool   `json:"focused"`
}

// Client is the subset of the compositor API placement needs.
type Client interface {
	Windows() ([]Window, error)
	Monitors() ([]Monitor, error)
	// Dispatch runs one dispatcher with its argument string.
	Dispatch(dispatcher, arg string) error
}

// HyprctlClient runs hyprctl.
type HyprctlClient struct {
	runner system.Runner
}

// NewHyprctlClient returns a client that shells out through runner.
func NewHyprctlClient(runner system.Runner) *HyprctlClient {
	return &HyprctlClient{runner: runner}
}

// Windows lists clients with "hyprctl clients -j".
func (c *HyprctlClient) Windows() ([]Window, error) {
	out, err := c.runner.Run("hyprctl", "clients", "-j")
	if err != nil {
		return nil, err
	}
	var windows []Window
	if err := json.Unmarshal(out, &windows); err != nil {
		return nil, fmt.Errorf("%w: hyprctl clients: %v", common.ErrUnexpectedOutput, err)
	}
	return windows, nil
}

// Monitors lists outputs with "hyprctl monitors -j".
func (c *HyprctlClient) Monitors() ([]Monitor, error) {
	out, err := c.runner.Run("hyprctl", "monitors", "-j")
	if err != nil {
		return nil, err
	}
	var monitors []Monitor
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, fmt.Errorf("%w: hyprctl monitors: %v", common.ErrUnexpectedOutput, err)
	}
	return monitors, nil
}

// Dispatch runs "hyprctl dispatch <dispatcher> <arg>".
func (c *HyprctlClient) Dispatch(dispatcher, arg string) error {
	out, err := c.runner.Run("hyprctl", "dispatch", dispatcher, arg)
	if err != nil {
		return err
	}
	return checkDispatch(dispatcher, out)
}

// checkDispatch treats anything but "ok" as a rejected dispatch.
func checkDispatch(dispatcher string, out []byte) error {
	if resp := strings.TrimSpace(string(out)); resp != "ok" {
		return fmt.Errorf("%w: %s: %q", common.ErrDispatch, dispatcher, resp)
	}
	return nil
}

// NewClient returns the client for backend, falling back to hyprctl when the
// IPC socket is unavailable.
func NewClient(backend string, runner system.Runner) Client {
	if backend == common.BackendIPC {
		c, err := NewIPCClient()
		if err == nil {
			return c
		}
		common.LogWarn("Hyprland IPC unavailable, using hyprctl: %v", err)
	}
	return NewHyprctlClient(runner)
}
