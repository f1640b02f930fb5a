package machineuid

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// defaultCommandExecutor implements CommandExecutor using actual system
// command execution.
type defaultCommandExecutor struct {
	timeout time.Duration
}

// Execute runs a system command and returns its trimmed standard output.
// A positive timeout bounds the command via context.WithTimeout; zero or
// negative disables the bound and the command runs until ctx is done.
func (e *defaultCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("command %q failed: %w", name, err)
	}

	return strings.TrimSpace(string(output)), nil
}
