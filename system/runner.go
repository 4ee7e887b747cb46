// Package system wraps the command-line tools and daemons the panel reads
// state from and writes state to: NetworkManager, BlueZ, rfkill,
// WirePlumber and systemd-logind.
package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/yllada/action-center/common"
)

// DefaultCommandTimeout bounds every external command so that a hung tool
// cannot stall the poller forever.
const DefaultCommandTimeout = 5 * time.Second

// Runner runs external commands and returns their standard output.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
	// RunWithInput writes input to the command's standard input.
	RunWithInput(input string, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner returns a runner using DefaultCommandTimeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: DefaultCommandTimeout}
}

// Run executes name with args.
func (r *ExecRunner) Run(name string, args ...string) ([]byte, error) {
	return r.run(nil, name, args...)
}

// RunWithInput executes name with args, feeding input on stdin.
func (r *ExecRunner) RunWithInput(input string, name string, args ...string) ([]byte, error) {
	return r.run(strings.NewReader(input), name, args...)
}

func (r *ExecRunner) run(stdin *strings.Reader, name string, args ...string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	common.LogDebug("exec: %s %s", name, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if ctx.Err() == context.DeadlineExceeded {
			msg = fmt.Sprintf("timed out after %v", timeout)
		}
		if msg == "" {
			msg = err.Error()
		}
		return stdout.Bytes(), fmt.Errorf("%w: %s: %s", common.ErrCommandFailed, name, msg)
	}
	return stdout.Bytes(), nil
}

// Available reports whether name can be found in PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
