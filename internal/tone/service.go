// Package tone plays catalog sounds by name, optionally trimming their
// trailing silence first.
package tone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/jmylchreest/mactone/internal/audio"
	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/silence"
)

// Options configures a Service.
type Options struct {
	Catalog *catalog.Catalog
	Player  audio.Player

	// Trim holds the detector settings used by Tone and Random.
	Trim silence.Options
	// TrimByDefault makes Tone and Random trim before playing.
	TrimByDefault bool

	// TempDir holds trimmed files while they play; empty means os.TempDir.
	TempDir string

	Logger *slog.Logger
}

// Service resolves, trims and plays sounds.
type Service struct {
	logger        *slog.Logger
	catalog       *catalog.Catalog
	player        audio.Player
	trim          silence.Options
	trimByDefault bool
	tempDir       string
}

// New creates a tone service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		logger:        logger,
		catalog:       opts.Catalog,
		player:        opts.Player,
		trim:          opts.Trim,
		trimByDefault: opts.TrimByDefault,
		tempDir:       opts.TempDir,
	}
}

// Close releases resources held by the player, such as the speaker.
func (s *Service) Close() {
	if c, ok := s.player.(interface{ Close() }); ok {
		c.Close()
	}
}

// Warm resolves names and, when the player keeps decoded sounds in
// memory, decodes them ahead of the first play.
func (s *Service) Warm(names ...string) error {
	w, canWarm := s.player.(interface{ Warm(path string) error })
	for _, name := range names {
		sound, err := s.catalog.Lookup(name)
		if err != nil {
			return err
		}
		if !canWarm {
			continue
		}
		if err := w.Warm(sound.Path); err != nil {
			return fmt.Errorf("failed to load %s: %w", sound.Name, err)
		}
		s.logger.Debug("sound warmed", "name", sound.Name)
	}
	return nil
}

// Names returns the available sound names.
func (s *Service) Names() ([]string, error) {
	return s.catalog.Names()
}

// Sounds returns the available sounds.
func (s *Service) Sounds() ([]catalog.Sound, error) {
	return s.catalog.List()
}

// Play plays a sound as-is.
func (s *Service) Play(ctx context.Context, name string) error {
	sound, err := s.catalog.Lookup(name)
	if err != nil {
		return err
	}
	return s.playFile(ctx, sound)
}

// PlayTrimmed plays a sound with its trailing silence removed.
func (s *Service) PlayTrimmed(ctx context.Context, name string, opts silence.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	sound, err := s.catalog.Lookup(name)
	if err != nil {
		return err
	}
	return s.playTrimmed(ctx, sound, opts)
}

// Tone plays a sound using the configured trimming preference.
func (s *Service) Tone(ctx context.Context, name string) error {
	if s.trimByDefault {
		return s.PlayTrimmed(ctx, name, s.trim)
	}
	return s.Play(ctx, name)
}

// ToneTrimmed plays a sound without its trailing silence using the
// configured detector settings, whatever the trimming preference.
func (s *Service) ToneTrimmed(ctx context.Context, name string) error {
	return s.PlayTrimmed(ctx, name, s.trim)
}

// Random plays a randomly chosen sound and returns its name.
func (s *Service) Random(ctx context.Context) (string, error) {
	sound, err := s.catalog.Random(nil)
	if err != nil {
		return "", err
	}

	if s.trimByDefault {
		if err := s.trim.Validate(); err != nil {
			return sound.Name, err
		}
		return sound.Name, s.playTrimmed(ctx, sound, s.trim)
	}
	return sound.Name, s.playFile(ctx, sound)
}

// Trim decodes a sound and returns it without trailing silence.
func (s *Service) Trim(name string, opts silence.Options) (*beep.Buffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sound, err := s.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.trimSound(sound, opts)
}

// Export writes the trimmed sound to dst as WAV.
func (s *Service) Export(name, dst string, opts silence.Options) error {
	buf, err := s.Trim(name, opts)
	if err != nil {
		return err
	}
	return audio.EncodeWAV(buf, dst)
}

func (s *Service) playFile(ctx context.Context, sound catalog.Sound) error {
	s.logger.Debug("playing sound", "name", sound.Name, "path", sound.Path)
	if err := s.player.Play(ctx, sound.Path); err != nil {
		return fmt.Errorf("failed to play %s: %w", sound.Name, err)
	}
	return nil
}

func (s *Service) trimSound(sound catalog.Sound, opts silence.Options) (*beep.Buffer, error) {
	start := time.Now()
	buf, err := audio.Decode(sound.Path)
	if err != nil {
		return nil, err
	}
	decoded := time.Now()

	trimmed := silence.Trim(buf, opts)

	format := buf.Format()
	s.logger.Debug("trimmed sound",
		"name", sound.Name,
		"decode", decoded.Sub(start),
		"trim", time.Since(decoded),
		"original", format.SampleRate.D(buf.Len()),
		"trimmed", format.SampleRate.D(trimmed.Len()))

	return trimmed, nil
}

func (s *Service) playTrimmed(ctx context.Context, sound catalog.Sound, opts silence.Options) error {
	buf, err := s.trimSound(sound, opts)
	if err != nil {
		return err
	}

	if bp, ok := s.player.(audio.BufferPlayer); ok {
		s.logger.Debug("playing trimmed buffer", "name", sound.Name)
		if err := bp.PlayBuffer(ctx, buf); err != nil {
			return fmt.Errorf("failed to play %s: %w", sound.Name, err)
		}
		return nil
	}

	path, err := audio.TempPath(s.tempDir)
	if err != nil {
		return err
	}
	if err := audio.EncodeWAV(buf, path); err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to remove temp file", "path", path, "error", err)
		}
	}()

	s.logger.Debug("playing trimmed file", "name", sound.Name, "path", path)
	if err := s.player.Play(ctx, path); err != nil {
		return fmt.Errorf("failed to play %s: %w", sound.Name, err)
	}
	return nil
}
