package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/output"
)

var listOpts struct {
	format   string
	template string
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available sounds",
	Long: `List the sounds found in the sound directory.

Examples:
  # One name per line
  mactone list

  # Sizes, ages and paths
  mactone list --format long

  # Machine readable
  mactone list --format json

  # Custom template (fields: Name, Path, Size, ModTime; funcs: bytes, ago, lower)
  mactone list --template '{{.Name}} {{bytes .Size}}'`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "plain",
		"Output format (plain, long, json, yaml)")
	listCmd.Flags().StringVar(&listOpts.template, "template", "",
		"Go template applied to each sound (plain format only)")
	_ = listCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func runList(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter(listOpts.format, listOpts.template)
	if err != nil {
		return err
	}

	sounds, err := newCatalog().List()
	if err != nil {
		return err
	}
	logger.Debug("listed sounds", "dir", cfg.Sounds.Dir, "count", len(sounds))

	return formatter.Format(cmd.OutOrStdout(), sounds)
}

func newFormatter(format, template string) (output.Formatter, error) {
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(f, output.FormatterOptions{Template: template})
}

func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := make([]string, len(output.Formats))
	for i, f := range output.Formats {
		formats[i] = string(f)
	}
	return formats, cobra.ShellCompDirectiveNoFileComp
}
