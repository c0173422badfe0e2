package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/config"
	"github.com/jmylchreest/mactone/internal/silence"
)

// trimFlags overrides the [trim] config section for one invocation.
type trimFlags struct {
	trim          bool
	noTrim        bool
	silenceThresh float64
	minSilenceLen config.Duration
	seekStep      config.Duration
}

func addTrimFlags(cmd *cobra.Command, f *trimFlags) {
	f.silenceThresh = config.DefaultSilenceThresh
	f.minSilenceLen = config.Duration(config.DefaultMinSilenceLen)
	f.seekStep = config.Duration(config.DefaultSeekStep)

	cmd.Flags().BoolVarP(&f.trim, "trim", "t", false,
		"Trim trailing silence before playing")
	cmd.Flags().BoolVar(&f.noTrim, "no-trim", false,
		"Play untrimmed even if trimming is enabled in the config")
	cmd.Flags().Float64Var(&f.silenceThresh, "silence-thresh", f.silenceThresh,
		"Level in dBFS at or below which audio counts as silence")
	cmd.Flags().Var(&f.minSilenceLen, "min-silence-len",
		"Shortest run of silence that is trimmed (e.g. 100ms, or 100)")
	cmd.Flags().Var(&f.seekStep, "seek-step",
		"Step between silence checks (e.g. 1ms)")
	cmd.MarkFlagsMutuallyExclusive("trim", "no-trim")
}

// enabled reports whether this invocation trims, falling back to the config.
func (f *trimFlags) enabled(c *config.Config) bool {
	switch {
	case f.trim:
		return true
	case f.noTrim:
		return false
	default:
		return c.Trim.Enabled
	}
}

// options merges flags the user set over the configured trim options.
func (f *trimFlags) options(cmd *cobra.Command, c *config.Config) (silence.Options, error) {
	opts := c.Trim.Options()

	flags := cmd.Flags()
	if flags.Changed("silence-thresh") {
		opts.Threshold = f.silenceThresh
	}
	if flags.Changed("min-silence-len") {
		opts.MinSilenceLen = f.minSilenceLen.Duration()
	}
	if flags.Changed("seek-step") {
		opts.SeekStep = f.seekStep.Duration()
	}

	return opts, opts.Validate()
}

// onlyTrimOptions registers the tuning flags without the on/off switches,
// for commands that always trim.
func onlyTrimOptions(cmd *cobra.Command, f *trimFlags) {
	addTrimFlags(cmd, f)
	_ = cmd.Flags().MarkHidden("trim")
	_ = cmd.Flags().MarkHidden("no-trim")
}
