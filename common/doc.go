// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Action Center application.
//
//   - Constants: poll cadence, panel geometry, slider defaults, file names
//   - Errors: sentinel errors checked with errors.Is
//   - Interfaces: the system status sources the poller reads from
//   - Logger: leveled logging to stdout and a rotated file
//   - Utils: config directory and path helpers
//
// # Usage
//
//	common.LogInfo("Wi-Fi radio %s", common.OnOff(enabled))
//
//	if errors.Is(err, common.ErrCommandFailed) {
//	    // keep the last known state
//	}
package common
