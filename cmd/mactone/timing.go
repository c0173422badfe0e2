package main

import (
	"github.com/spf13/cobra"
)

var timingOpts struct {
	format string
	trim   trimFlags
}

var timingCmd = &cobra.Command{
	Use:   "timing <name>...",
	Short: "Show how much trimming shortens a sound",
	Long: `Decode and trim sounds without playing them, reporting decode time, trim
time, durations before and after, and the detected non-silent ranges.

Without a name every sound is reported.

Examples:
  mactone timing Glass
  mactone timing --format long Submarine
  mactone timing --format json`,
	ValidArgsFunction: completeSoundNames,
	RunE:              runTiming,
}

func init() {
	rootCmd.AddCommand(timingCmd)

	timingCmd.Flags().StringVarP(&timingOpts.format, "format", "f", "plain",
		"Output format (plain, long, json, yaml)")
	_ = timingCmd.RegisterFlagCompletionFunc("format", completeFormats)
	onlyTrimOptions(timingCmd, &timingOpts.trim)
}

func runTiming(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter(timingOpts.format, "")
	if err != nil {
		return err
	}

	opts, err := timingOpts.trim.options(cmd, cfg)
	if err != nil {
		return err
	}

	svc, err := newService(true, opts)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		if names, err = svc.Names(); err != nil {
			return err
		}
	}

	for _, name := range names {
		report, err := svc.Timing(name, opts)
		if err != nil {
			return err
		}
		if err := formatter.FormatTiming(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	}
	return nil
}
