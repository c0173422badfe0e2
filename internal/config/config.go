// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/mactone/internal/silence"
)

// Default configuration values.
const (
	DefaultSoundDir        = "/System/Library/Sounds"
	DefaultSoundExtension  = ".aiff"
	DefaultLinuxSoundDir   = "/usr/share/sounds/freedesktop/stereo"
	DefaultLinuxExtension  = ".oga"
	DefaultVolume          = 100
	DefaultSilenceThresh   = -50.0
	DefaultMinSilenceLen   = 100 * time.Millisecond
	DefaultSeekStep        = time.Millisecond
	DefaultWatchDebounce   = 200 * time.Millisecond
	DefaultWatchSound      = "Glass"
	DefaultWatchSuccess    = "Glass"
	DefaultWatchFailure    = "Basso"
	DefaultLinuxWatchSound = "complete"
	DefaultLinuxWatchFail  = "dialog-error"
)

// Player backends.
const (
	BackendCommand = "command"
	BackendSpeaker = "speaker"
)

// Config represents the mactone configuration.
type Config struct {
	Sounds SoundsConfig `toml:"sounds"`
	Player PlayerConfig `toml:"player"`
	Trim   TrimConfig   `toml:"trim"`
	Watch  WatchConfig  `toml:"watch"`
}

// SoundsConfig locates the sound catalog.
type SoundsConfig struct {
	Dir       string `toml:"dir"`       // Directory scanned for sounds
	Extension string `toml:"extension"` // e.g. ".aiff"
}

// PlayerConfig selects how sounds are played.
type PlayerConfig struct {
	Backend  string   `toml:"backend"`  // "command" or "speaker"
	Commands []string `toml:"commands"` // Tried in order, first one on PATH wins
	Volume   int      `toml:"volume"`   // 0-100
}

// TrimConfig holds the silence trimming parameters.
type TrimConfig struct {
	Enabled       bool     `toml:"enabled"`
	SilenceThresh float64  `toml:"silence_thresh"`  // dBFS
	MinSilenceLen Duration `toml:"min_silence_len"` // e.g. "100ms" or 100
	SeekStep      Duration `toml:"seek_step"`
}

// WatchConfig holds defaults for the watch command.
type WatchConfig struct {
	Sound    string   `toml:"sound"`   // Played on change when no command is given
	Success  string   `toml:"success"` // Played when the command succeeds
	Failure  string   `toml:"failure"` // Played when the command fails
	Debounce Duration `toml:"debounce"`
}

// DefaultConfig returns a Config with default values for the current OS.
func DefaultConfig() *Config {
	cfg := &Config{
		Sounds: SoundsConfig{
			Dir:       DefaultSoundDir,
			Extension: DefaultSoundExtension,
		},
		Player: PlayerConfig{
			Backend:  BackendCommand,
			Commands: []string{"afplay"},
			Volume:   DefaultVolume,
		},
		Trim: TrimConfig{
			Enabled:       false,
			SilenceThresh: DefaultSilenceThresh,
			MinSilenceLen: Duration(DefaultMinSilenceLen),
			SeekStep:      Duration(DefaultSeekStep),
		},
		Watch: WatchConfig{
			Sound:    DefaultWatchSound,
			Success:  DefaultWatchSuccess,
			Failure:  DefaultWatchFailure,
			Debounce: Duration(DefaultWatchDebounce),
		},
	}

	if runtime.GOOS == "linux" {
		cfg.Sounds.Dir = DefaultLinuxSoundDir
		cfg.Sounds.Extension = DefaultLinuxExtension
		cfg.Player.Commands = []string{"paplay", "aplay"}
		cfg.Watch.Sound = DefaultLinuxWatchSound
		cfg.Watch.Success = DefaultLinuxWatchSound
		cfg.Watch.Failure = DefaultLinuxWatchFail
	}

	return cfg
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mactone", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Sounds.Dir == "" {
		return errors.New("sounds.dir must not be empty")
	}
	if c.Sounds.Extension == "" {
		return errors.New("sounds.extension must not be empty")
	}

	switch c.Player.Backend {
	case BackendCommand:
		if len(c.Player.Commands) == 0 {
			return errors.New("player.commands must list at least one command")
		}
	case BackendSpeaker:
	default:
		return fmt.Errorf("invalid player backend %q, must be %q or %q",
			c.Player.Backend, BackendCommand, BackendSpeaker)
	}

	if c.Player.Volume < 0 || c.Player.Volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100, got %d", c.Player.Volume)
	}

	if err := c.Trim.Options().Validate(); err != nil {
		return err
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce.Duration())
	}

	return nil
}

// Options converts the trim section into detector options.
func (t TrimConfig) Options() silence.Options {
	return silence.Options{
		Threshold:     t.SilenceThresh,
		MinSilenceLen: t.MinSilenceLen.Duration(),
		SeekStep:      t.SeekStep.Duration(),
	}
}
