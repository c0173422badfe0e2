package audio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

// CommandPlayer plays files by running an external program such as
// afplay, paplay or aplay.
type CommandPlayer struct {
	logger   *slog.Logger
	commands []string
	volume   float64

	// lookPath resolves command names; replaced in tests.
	lookPath func(string) (string, error)
}

// NewCommandPlayer creates a player that tries commands in order.
// volume is 0.0 to 1.0 and only applies to commands that accept it.
func NewCommandPlayer(commands []string, volume float64, logger *slog.Logger) *CommandPlayer {
	if logger == nil {
		logger = slog.Default()
	}

	return &CommandPlayer{
		logger:   logger,
		commands: commands,
		volume:   min(max(volume, 0), 1),
		lookPath: exec.LookPath,
	}
}

// Play runs the first command that is installed and succeeds.
// Failures of every candidate are reported together.
func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	var mErr *multierror.Error

	for _, name := range p.commands {
		bin, err := p.lookPath(name)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("%s: %w", name, err))
			continue
		}

		args := p.args(name, path)
		p.logger.Debug("running player", "command", bin, "args", args)

		cmd := exec.CommandContext(ctx, bin, args...)
		cmd.WaitDelay = time.Second
		out, err := cmd.CombinedOutput()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		p.logger.Debug("player failed", "command", bin, "error", err)
		if msg := bytes.TrimSpace(out); len(msg) > 0 {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		mErr = multierror.Append(mErr, fmt.Errorf("%s: %w", name, err))
	}

	if mErr == nil {
		return ErrNoPlayer
	}
	return fmt.Errorf("%w: %w", ErrNoPlayer, mErr)
}

// args builds the argument list, adding a volume flag for players that
// understand one.
func (p *CommandPlayer) args(name, path string) []string {
	if p.volume < 1 {
		switch filepath.Base(name) {
		case "afplay":
			return []string{"-v", strconv.FormatFloat(p.volume, 'g', 3, 64), path}
		case "paplay":
			return []string{"--volume=" + strconv.Itoa(int(p.volume*65536)), path}
		}
	}
	return []string{path}
}
