// Package main generates per-sound Go bindings for the tones package.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/bindings"
	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/config"
)

var opts struct {
	dir     string
	ext     string
	names   []string
	pkg     string
	output  string
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "mactone-gen",
	Short: "Generate Go bindings for system sounds",
	Long: `mactone-gen writes a Go file with one function per sound.

Names come from --names when given, otherwise from the sound directory.

Examples:
  # Bind every sound installed on this machine
  mactone-gen -o tones_gen.go

  # Bind a fixed list
  mactone-gen --names Basso,Ping,Tink -o tones_gen.go`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&opts.dir, "dir", config.DefaultSoundDir,
		"Directory scanned for sounds")
	rootCmd.Flags().StringVar(&opts.ext, "ext", config.DefaultSoundExtension,
		"Sound file extension")
	rootCmd.Flags().StringSliceVar(&opts.names, "names", nil,
		"Comma separated sound names (skips the directory scan)")
	rootCmd.Flags().StringVar(&opts.pkg, "package", "tones",
		"Package name of the generated file")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"Output file (default: stdout)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	names := opts.names
	if len(names) == 0 {
		var err error
		names, err = catalog.New(opts.dir, opts.ext).Names()
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", opts.dir, err)
		}
		logger.Debug("scanned sound directory", "dir", opts.dir, "count", len(names))
	}

	src, err := bindings.Generate(opts.pkg, names)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}

	if err := os.WriteFile(opts.output, src, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	logger.Debug("wrote bindings", "path", opts.output, "count", len(names))
	return nil
}
