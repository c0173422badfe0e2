package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trimOpts struct {
	output string
	trim   trimFlags
}

var trimCmd = &cobra.Command{
	Use:   "trim <name>",
	Short: "Write a sound without its trailing silence",
	Long: `Decode a sound, remove its trailing silence and write the result as WAV.

Examples:
  mactone trim Submarine -o submarine.wav
  mactone trim Glass -o glass.wav --silence-thresh -40`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSoundNames,
	RunE:              runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)

	trimCmd.Flags().StringVarP(&trimOpts.output, "output", "o", "",
		"Output WAV file")
	_ = trimCmd.MarkFlagRequired("output")
	onlyTrimOptions(trimCmd, &trimOpts.trim)
}

func runTrim(cmd *cobra.Command, args []string) error {
	opts, err := trimOpts.trim.options(cmd, cfg)
	if err != nil {
		return err
	}

	svc, err := newService(true, opts)
	if err != nil {
		return err
	}

	if err := svc.Export(args[0], trimOpts.output, opts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", trimOpts.output)
	return nil
}
