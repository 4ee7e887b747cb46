package system

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/yllada/action-center/common"
)

// enabledToken is what nmcli prints for a switched-on radio or stack.
const enabledToken = "enabled"

// NetworkManager talks to NetworkManager through nmcli.
type NetworkManager struct {
	runner Runner
}

// NewNetworkManager returns a NetworkManager using runner.
func NewNetworkManager(runner Runner) *NetworkManager {
	return &NetworkManager{runner: runner}
}

// WifiEnabled reports whether the Wi-Fi radio is on.
func (nm *NetworkManager) WifiEnabled() (bool, error) {
	out, err := nm.runner.Run("nmcli", "radio", "wifi")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == enabledToken, nil
}

// SetWifi switches the Wi-Fi radio.
func (nm *NetworkManager) SetWifi(enabled bool) error {
	_, err := nm.runner.Run("nmcli", "radio", "wifi", common.OnOff(enabled))
	return err
}

// NetworkingEnabled reports whether NetworkManager networking is on.
func (nm *NetworkManager) NetworkingEnabled() (bool, error) {
	out, err := nm.runner.Run("nmcli", "networking")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == enabledToken, nil
}

// SetNetworking switches NetworkManager networking on or off.
func (nm *NetworkManager) SetNetworking(enabled bool) error {
	_, err := nm.runner.Run("nmcli", "networking", common.OnOff(enabled))
	return err
}

// ActiveConnections lists active connections as nmcli reports them.
func (nm *NetworkManager) ActiveConnections() ([]common.ActiveConnection, error) {
	out, err := nm.runner.Run("nmcli", "-t", "-f", "NAME,DEVICE", "connection", "show", "--active")
	if err != nil {
		return nil, err
	}
	return ParseActiveConnections(out)
}

// ParseActiveConnections parses nmcli terse NAME,DEVICE output. Colons and
// backslashes inside fields arrive escaped with a backslash. Blank lines are
// skipped; a line without a separator is an error.
func ParseActiveConnections(out []byte) ([]common.ActiveConnection, error) {
	var conns []common.ActiveConnection
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitTerse(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: nmcli connection line %q", common.ErrUnexpectedOutput, line)
		}
		conns = append(conns, common.ActiveConnection{
			Name:   fields[0],
			Device: fields[len(fields)-1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return conns, nil
}

// splitTerse splits a terse nmcli line on unescaped colons and unescapes
// the fields.
func splitTerse(line string) []string {
	var (
		fields []string
		cur    strings.Builder
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line):
			i++
			cur.WriteByte(line[i])
		case c == ':':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(fields, cur.String())
}
