// Package main provides the entry point for the Action Center application.
// Action Center is a GTK4 quick-settings panel for Hyprland that keeps its
// toggles in sync with NetworkManager, BlueZ and rfkill.
//
// Features:
//   - Wi-Fi, Bluetooth, Ethernet and airplane mode toggles
//   - Brightness and volume sliders
//   - Self-positioning through the Hyprland window manager
//   - Colors taken from a generated GTK stylesheet
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	action-center [options]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/action-center/cli"
	"github.com/yllada/action-center/common"
	"github.com/yllada/action-center/config"
	"github.com/yllada/action-center/status"
	"github.com/yllada/action-center/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn or error")
	showHelp    = flag.Bool("help", false, "Show help message")
	configPath  = flag.String("config", "", "Use an alternate config file")

	// CLI flags
	showStatus   = flag.Bool("status", false, "Show quick settings state")
	setWifi      = flag.String("wifi", "", "Switch Wi-Fi on or off")
	setBluetooth = flag.String("bluetooth", "", "Switch Bluetooth on or off")
	setNetwork   = flag.String("network", "", "Switch networking on or off")
	setAirplane  = flag.String("airplane", "", "Switch airplane mode on or off")
	placeWindow  = flag.Bool("place", false, "Position the running panel and exit")
)

func main() {
	flag.Parse()

	// Handle help flag
	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("Action Center v%s\n", appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	level, err := common.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *verbose {
		level = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       level,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	cfg := loadConfig()

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	toggles, err := requestedToggles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Check if any CLI mode flag is set
	if *showStatus || *placeWindow || len(toggles) > 0 {
		setupSignalHandler(cancel, nil)
		runCLI(ctx, cfg, toggles)
		return
	}

	// Start the GTK application (GUI mode)
	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion, cfg)
	setupSignalHandler(cancel, func() {
		glib.IdleAdd(app.Quit)
	})
	exitCode := app.Run(os.Args[:1])

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	os.Exit(exitCode)
}

// loadConfig reads the config file. Any failure falls back to the defaults.
func loadConfig() *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}

	switch {
	case err == nil:
		return cfg
	case cfg != nil && errors.Is(err, common.ErrConfigSave):
		common.LogWarn("Could not write default config: %v", err)
		return cfg
	default:
		common.LogWarn("Using default configuration: %v", err)
		return config.DefaultConfig()
	}
}

type toggleRequest struct {
	capability status.Capability
	on         bool
}

// requestedToggles collects the --wifi/--bluetooth/--network/--airplane flags
// in display order.
func requestedToggles() ([]toggleRequest, error) {
	values := map[status.Capability]string{
		status.Wifi:      *setWifi,
		status.Bluetooth: *setBluetooth,
		status.Network:   *setNetwork,
		status.Airplane:  *setAirplane,
	}

	var toggles []toggleRequest
	for _, c := range status.Capabilities() {
		value := values[c]
		if value == "" {
			continue
		}
		on, err := cli.ParseOnOff(value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", c.Key(), err)
		}
		toggles = append(toggles, toggleRequest{capability: c, on: on})
	}
	return toggles, nil
}

// runCLI handles command-line interface operations.
// It accepts a context for graceful shutdown support.
func runCLI(ctx context.Context, cfg *config.Config, toggles []toggleRequest) {
	cliApp := cli.New(cfg)

	var cliErr error
	for _, t := range toggles {
		// Stop between commands once a signal arrives
		select {
		case <-ctx.Done():
			common.LogInfo("Operation cancelled")
			os.Exit(1)
		default:
		}
		if cliErr = cliApp.Set(t.capability, t.on); cliErr != nil {
			break
		}
	}

	if cliErr == nil && *placeWindow {
		cliErr = cliApp.Place()
	}
	if cliErr == nil && *showStatus {
		cliErr = cliApp.Status()
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context and runs onSignal.
func setupSignalHandler(cancel context.CancelFunc, onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
		if onSignal != nil {
			onSignal()
		}
	}()
}
