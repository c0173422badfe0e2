package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/tui"
)

var tuiOpts struct {
	trim trimFlags
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and play sounds interactively",
	Long: `Launch an interactive picker for the available sounds.

Keys: enter plays, t toggles trimming, r plays a random sound, i shows trim
timing, / filters, ? shows help, q quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addTrimFlags(tuiCmd, &tuiOpts.trim)
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts, err := tuiOpts.trim.options(cmd, cfg)
	if err != nil {
		return err
	}

	svc, err := newService(false, opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	return tui.Run(cmd.Context(), tui.Options{
		Service:     svc,
		Trim:        opts,
		TrimEnabled: tuiOpts.trim.enabled(cfg),
		Title:       cfg.Sounds.Dir,
	})
}
