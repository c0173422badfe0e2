package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/tone"
)

var playOpts struct {
	trim trimFlags
}

var playCmd = &cobra.Command{
	Use:   "play <name>...",
	Short: "Play one or more sounds",
	Long: `Play sounds by name, one after another. Names are case-insensitive.

Examples:
  # Play a sound
  mactone play Glass

  # Play it without the trailing silence
  mactone play Glass --trim

  # Trim more aggressively
  mactone play Submarine --trim --silence-thresh -40 --min-silence-len 50ms`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeSoundNames,
	RunE:              runPlay,
}

var randomOpts struct {
	trim trimFlags
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Play a random sound",
	Long: `Play a sound chosen at random and print its name.

Examples:
  mactone random
  mactone random --trim`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(randomCmd)

	addTrimFlags(playCmd, &playOpts.trim)
	addTrimFlags(randomCmd, &randomOpts.trim)
}

// serviceFor builds a service honouring the trim flags of cmd.
func serviceFor(cmd *cobra.Command, f *trimFlags) (*tone.Service, error) {
	opts, err := f.options(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return newService(f.enabled(cfg), opts)
}

func runPlay(cmd *cobra.Command, args []string) error {
	svc, err := serviceFor(cmd, &playOpts.trim)
	if err != nil {
		return err
	}
	defer svc.Close()

	for _, name := range args {
		if err := svc.Tone(cmd.Context(), name); err != nil {
			return err
		}
	}
	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	svc, err := serviceFor(cmd, &randomOpts.trim)
	if err != nil {
		return err
	}
	defer svc.Close()

	name, err := svc.Random(cmd.Context())
	if name != "" {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return err
}
