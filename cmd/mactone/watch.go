package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mactone/internal/config"
	"github.com/jmylchreest/mactone/internal/tone"
	"github.com/jmylchreest/mactone/internal/watch"
)

var watchOpts struct {
	sound     string
	success   string
	failure   string
	debounce  config.Duration
	timeout   time.Duration
	recursive bool
	trim      trimFlags
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir...] [-- command [args...]]",
	Short: "Play a sound when files change",
	Long: `Watch directories and play a sound whenever files in them change.

Given a command after "--", the command is run on every change instead and
the success or failure sound is played depending on its exit status.

Examples:
  # Chime whenever something in the current directory changes
  mactone watch

  # Run the tests on change and hear the result
  mactone watch -r . -- go test ./...

  # Pick the sounds
  mactone watch --success Hero --failure Sosumi -- make`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	},
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchOpts.sound, "sound", "",
		"Sound played on change when no command is given (default from config)")
	watchCmd.Flags().StringVar(&watchOpts.success, "success", "",
		"Sound played when the command succeeds (default from config)")
	watchCmd.Flags().StringVar(&watchOpts.failure, "failure", "",
		"Sound played when the command fails (default from config)")
	watchCmd.Flags().Var(&watchOpts.debounce, "debounce",
		"Quiet period before reacting to changes (default from config)")
	watchCmd.Flags().DurationVar(&watchOpts.timeout, "timeout", 0,
		"Kill the command after this long (0 = no limit)")
	watchCmd.Flags().BoolVarP(&watchOpts.recursive, "recursive", "r", false,
		"Also watch subdirectories")
	addTrimFlags(watchCmd, &watchOpts.trim)

	for _, name := range []string{"sound", "success", "failure"} {
		_ = watchCmd.RegisterFlagCompletionFunc(name, completeSoundNames)
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	dirs, command := splitAtDash(args, cmd.ArgsLenAtDash())

	svc, err := serviceFor(cmd, &watchOpts.trim)
	if err != nil {
		return err
	}
	defer svc.Close()

	w := cfg.Watch
	sound := firstNonEmpty(watchOpts.sound, w.Sound)
	success := firstNonEmpty(watchOpts.success, w.Success)
	failure := firstNonEmpty(watchOpts.failure, w.Failure)
	debounce := w.Debounce.Duration()
	if cmd.Flags().Changed("debounce") {
		debounce = watchOpts.debounce.Duration()
	}

	needed := []string{sound}
	if len(command) > 0 {
		needed = []string{success, failure}
	}
	if err := svc.Warm(needed...); err != nil {
		return err
	}

	watcher, err := watch.New(dirs, watch.Options{
		Debounce:  debounce,
		Recursive: watchOpts.recursive,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Info("watching", "paths", watcher.Paths(), "command", strings.Join(command, " "))
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s\n", strings.Join(watcher.Paths(), ", "))

	err = watcher.Run(cmd.Context(), func(ctx context.Context, paths []string) {
		logger.Debug("change detected", "paths", paths)
		if err := onChange(ctx, cmd, svc, command, sound, success, failure); err != nil {
			logger.Warn("failed to play sound", "error", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func onChange(ctx context.Context, cmd *cobra.Command, svc *tone.Service, command []string, sound, success, failure string) error {
	if len(command) == 0 {
		return svc.Tone(ctx, sound)
	}

	err := watch.RunCommand(ctx, command, watchOpts.timeout)
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", command[0], err)
		return svc.Tone(ctx, failure)
	}
	return svc.Tone(ctx, success)
}

// splitAtDash separates positional args from the command after "--".
func splitAtDash(args []string, dash int) (before, after []string) {
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
