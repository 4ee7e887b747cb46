package system

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/yllada/action-center/common"
)

// Bluetooth talks to bluetoothd through bluetoothctl.
type Bluetooth struct {
	runner Runner
}

// NewBluetooth returns a Bluetooth adapter using runner.
func NewBluetooth(runner Runner) *Bluetooth {
	return &Bluetooth{runner: runner}
}

// Powered reports whether the default controller is powered.
func (b *Bluetooth) Powered() (bool, error) {
	out, err := b.runner.Run("bluetoothctl", "show")
	if err != nil {
		return false, err
	}
	return ParsePowered(out), nil
}

// SetPowered powers the default controller on or off. bluetoothctl reads
// the command from its interactive stream.
func (b *Bluetooth) SetPowered(on bool) error {
	_, err := b.runner.RunWithInput("power "+common.OnOff(on)+"\nquit\n", "bluetoothctl")
	return err
}

// ConnectedDevices lists connected devices.
func (b *Bluetooth) ConnectedDevices() ([]common.BluetoothDevice, error) {
	out, err := b.runner.Run("bluetoothctl", "devices", "Connected")
	if err != nil {
		return nil, err
	}
	return ParseDevices(out), nil
}

// ParsePowered looks for "powered: yes" anywhere in the output, ignoring case.
func ParsePowered(out []byte) bool {
	return strings.Contains(strings.ToLower(string(out)), "powered: yes")
}

// ParseDevices parses "Device <mac> <name...>" lines. Other lines are ignored.
// Name tokens are joined with single spaces.
func ParseDevices(out []byte) []common.BluetoothDevice {
	var devices []common.BluetoothDevice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "Device" {
			continue
		}
		devices = append(devices, common.BluetoothDevice{
			Address: fields[1],
			Name:    strings.Join(fields[2:], " "),
		})
	}
	return devices
}
