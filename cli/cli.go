// Package cli provides command-line interface functionality for Action Center.
// This allows users to inspect and switch quick settings from the terminal
// without launching the panel.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/config"
	"github.com/yllada/action-center/status"
	"github.com/yllada/action-center/system"
	"github.com/yllada/action-center/wm"
)

// CLI represents the command-line interface.
type CLI struct {
	poller *status.Poller
	placer *wm.Placer
	out    io.Writer
	styled bool
}

// New creates a CLI talking to the real system tools.
func New(cfg *config.Config) *CLI {
	runner := system.NewExecRunner()
	poller := status.NewPoller(status.NewSystemSources(runner), status.PollerConfig{
		Interval:        cfg.PollInterval,
		BluetoothSettle: cfg.BluetoothSettleDelay,
	})
	placer := wm.NewPlacer(wm.NewClient(cfg.WindowManager, runner), cfg.Placement)

	return &CLI{
		poller: poller,
		placer: placer,
		out:    os.Stdout,
		styled: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Status prints every capability's current state.
func (c *CLI) Status() error {
	c.poller.Poll(c.poller.Now())
	snap := c.poller.Snapshot()

	rows := make([][3]string, 0, len(status.Capabilities()))
	for _, capability := range status.Capabilities() {
		if !c.poller.Supported(capability) {
			rows = append(rows, [3]string{capability.String(), "n/a", "-"})
			continue
		}
		st := snap.State(capability)
		detail := st.Label
		if detail == "" {
			detail = "-"
		}
		rows = append(rows, [3]string{capability.String(), common.OnOff(st.Enabled), detail})
	}

	if c.styled {
		fmt.Fprint(c.out, renderStyled(rows))
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CAPABILITY\tSTATE\tDETAIL")
	fmt.Fprintln(w, "----------\t-----\t------")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r[0], r[1], r[2])
	}
	return w.Flush()
}

// Set switches one capability and prints the state read back afterwards.
func (c *CLI) Set(capability status.Capability, on bool) error {
	if !c.poller.Supported(capability) {
		return fmt.Errorf("%s is not available on this system", capability)
	}

	fmt.Fprintf(c.out, "Turning %s %s...\n", capability, common.OnOff(on))
	if err := c.poller.Toggle(capability, on); err != nil {
		return fmt.Errorf("failed to turn %s %s: %w", capability, common.OnOff(on), err)
	}

	st := c.poller.Snapshot().State(capability)
	if st.Enabled != on {
		return fmt.Errorf("%s is still %s", capability, common.OnOff(st.Enabled))
	}
	fmt.Fprintf(c.out, "✓ %s is %s\n", capability, st.Caption(capability))
	return nil
}

// Place positions a running panel window once.
func (c *CLI) Place() error {
	if err := c.placer.Place(); err != nil {
		return fmt.Errorf("placement failed: %w", err)
	}
	fmt.Fprintln(c.out, "✓ Panel placed")
	return nil
}

// ParseOnOff parses a switch argument.
func ParseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Action Center - Command Line Interface

Usage:
  action-center [OPTIONS]

Options:
  --version            Show version and exit
  --verbose            Enable verbose logging
  --config PATH        Use an alternate config file
  --status             Show Wi-Fi, Bluetooth, Ethernet and airplane mode state
  --wifi on|off        Switch the Wi-Fi radio
  --bluetooth on|off   Power the Bluetooth controller
  --network on|off     Switch NetworkManager networking
  --airplane on|off    Block or unblock every radio
  --place              Position a running panel window and exit
  --help               Show this help message

Examples:
  action-center --status
  action-center --wifi off
  action-center --airplane on

Notes:
  - Run without options to launch the panel`)
}
