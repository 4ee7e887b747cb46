package system

import (
	"bufio"
	"bytes"
	"strings"
)

// Rfkill reads and sets the kernel soft block on every radio.
type Rfkill struct {
	runner Runner
}

// NewRfkill returns an Rfkill adapter using runner.
func NewRfkill(runner Runner) *Rfkill {
	return &Rfkill{runner: runner}
}

// AllBlocked reports whether at least one radio exists and every radio is
// soft-blocked.
func (r *Rfkill) AllBlocked() (bool, error) {
	out, err := r.runner.Run("rfkill", "list")
	if err != nil {
		return false, err
	}
	return ParseAllBlocked(out), nil
}

// SetAllBlocked blocks or unblocks every radio.
func (r *Rfkill) SetAllBlocked(blocked bool) error {
	verb := "unblock"
	if blocked {
		verb = "block"
	}
	_, err := r.runner.Run("rfkill", verb, "all")
	return err
}

// ParseAllBlocked parses classic "rfkill list" output:
//
//	0: phy0: Wireless LAN
//		Soft blocked: yes
//		Hard blocked: no
func ParseAllBlocked(out []byte) bool {
	radios, blocked := 0, 0
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		key, value, ok := strings.Cut(line, ":")
		if !ok || key != "soft blocked" {
			continue
		}
		radios++
		if strings.TrimSpace(value) == "yes" {
			blocked++
		}
	}
	return radios > 0 && radios == blocked
}
