package watch

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
)

// ErrEmptyCommand is returned by RunCommand when there is nothing to run.
var ErrEmptyCommand = errors.New("command must not be empty")

// RunCommand runs command with its output attached to the current process
// and waits for at most timeout. Zero or negative timeout means no timeout.
func RunCommand(ctx context.Context, command []string, timeout time.Duration) error {
	if len(command) == 0 {
		return ErrEmptyCommand
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.WaitDelay = time.Second

	return cmd.Run()
}
