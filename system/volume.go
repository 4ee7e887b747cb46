package system

import (
	"fmt"
	"math"
)

// defaultSink is WirePlumber's alias for the current output device.
const defaultSink = "@DEFAULT_AUDIO_SINK@"

// Volume sets the default sink volume through wpctl.
type Volume struct {
	runner Runner
}

// NewVolume returns a Volume adapter using runner.
func NewVolume(runner Runner) *Volume {
	return &Volume{runner: runner}
}

// SetLevel sets the sink volume to percent of full scale.
func (v *Volume) SetLevel(percent float64) error {
	f := math.Max(0, math.Min(percent, 100)) / 100
	_, err := v.runner.Run("wpctl", "set-volume", defaultSink, fmt.Sprintf("%.2f", f))
	return err
}
