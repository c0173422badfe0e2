package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gopxl/beep/v2"

	"github.com/jmylchreest/mactone/internal/config"
)

// ErrNoPlayer is returned when no playback backend could play a file.
var ErrNoPlayer = errors.New("no usable audio player")

// Player plays sound files.
type Player interface {
	// Play blocks until the file has finished playing or ctx is done.
	Play(ctx context.Context, path string) error
}

// BufferPlayer is implemented by players that can play decoded audio
// without a round trip through the filesystem.
type BufferPlayer interface {
	PlayBuffer(ctx context.Context, buf *beep.Buffer) error
}

// NewPlayer creates the player selected by cfg.
func NewPlayer(cfg config.PlayerConfig, logger *slog.Logger) (Player, error) {
	volume := float64(cfg.Volume) / 100.0

	switch cfg.Backend {
	case config.BackendCommand, "":
		return NewCommandPlayer(cfg.Commands, volume, logger), nil
	case config.BackendSpeaker:
		p := NewSpeakerPlayer(logger)
		p.SetVolume(volume)
		return p, nil
	default:
		return nil, fmt.Errorf("unknown player backend %q", cfg.Backend)
	}
}
