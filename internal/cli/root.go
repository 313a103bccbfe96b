// Package cli wires every daily puzzle into one advent command tree.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "advent",
		Short:        "Advent of Code 2022 solutions",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	for _, day := range days {
		cmd.AddCommand(newDayCmd(day))
	}

	return cmd
}

// setupLogger routes slog to stderr; without --debug everything below
// the default level is discarded.
func setupLogger(debug bool) {
	var w io.Writer = io.Discard
	level := slog.LevelInfo
	if debug {
		w = os.Stderr
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
