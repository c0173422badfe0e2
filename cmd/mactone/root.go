package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/audio"
	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/config"
	"github.com/jmylchreest/mactone/internal/silence"
	"github.com/jmylchreest/mactone/internal/tone"
	"github.com/jmylchreest/mactone/internal/tones"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		soundsDir  string
		soundsExt  string
		player     string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mactone",
	Short: "Play system alert sounds",
	Long: `mactone plays the system alert sounds (Basso, Glass, Ping, ...) from the
command line, optionally trimming the trailing silence so the alert ends
as soon as it is audible.

Running mactone with a sound name is shorthand for "mactone play".`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:      true,
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completeSoundNames,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalOpts.soundsDir != "" {
			cfg.Sounds.Dir = globalOpts.soundsDir
		}
		if globalOpts.soundsExt != "" {
			cfg.Sounds.Extension = globalOpts.soundsExt
		}
		if globalOpts.player != "" {
			applyPlayerFlag(cfg, globalOpts.player)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger.Debug("configuration loaded",
			"sounds", cfg.Sounds.Dir,
			"backend", cfg.Player.Backend,
			"trim", cfg.Trim.Enabled)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runPlay(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/mactone/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.soundsDir, "sounds-dir", "",
		"Directory containing the sounds (default from config)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.soundsExt, "ext", "",
		"Sound file extension (default from config)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.player, "player", "",
		`Player backend ("speaker", "command") or a command such as "afplay"`)

	addTrimFlags(rootCmd, &playOpts.trim)
}

// applyPlayerFlag interprets --player as a backend name or a command.
func applyPlayerFlag(c *config.Config, player string) {
	switch strings.ToLower(player) {
	case config.BackendSpeaker, config.BackendCommand:
		c.Player.Backend = strings.ToLower(player)
	default:
		c.Player.Backend = config.BackendCommand
		c.Player.Commands = []string{player}
	}
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newCatalog returns the catalog described by the loaded config.
func newCatalog() *catalog.Catalog {
	return catalog.New(cfg.Sounds.Dir, cfg.Sounds.Extension)
}

// newService wires the catalog, player and trimmer together. trim and opts
// decide how Tone and Random play.
func newService(trim bool, opts silence.Options) (*tone.Service, error) {
	player, err := audio.NewPlayer(cfg.Player, logger)
	if err != nil {
		return nil, err
	}

	return tone.New(tone.Options{
		Catalog:       newCatalog(),
		Player:        player,
		Trim:          opts,
		TrimByDefault: trim,
		Logger:        logger,
	}), nil
}

// completeSoundNames completes sound names from the sound directory,
// falling back to the stock names when it cannot be read.
func completeSoundNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c := config.DefaultConfig()
	if loaded, err := config.LoadConfig(globalOpts.configPath); err == nil {
		c = loaded
	}
	dir := c.Sounds.Dir
	if globalOpts.soundsDir != "" {
		dir = globalOpts.soundsDir
	}

	names, err := catalog.New(dir, c.Sounds.Extension).Names()
	if err != nil || len(names) == 0 {
		names = tones.Names()
	}

	var matches []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
