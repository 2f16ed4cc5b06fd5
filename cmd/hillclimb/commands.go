package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Query modes accepted by --mode.
const (
	modeFixed  = "fixed"
	modeLowest = "lowest"
	modeBoth   = "both"
)

// cliOptions collects flag values for one invocation.
type cliOptions struct {
	mode     string
	frontier string
	logLevel string
	workers  int
	maxClimb int
	showPath bool
	jsonLogs bool

	log *logrus.Logger
}

// newRootCmd builds the command tree. A fresh tree per call keeps tests independent.
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	cmd := &cobra.Command{
		Use:   "hillclimb [file]",
		Short: "Fewest steps up a height map to its summit",
		Long: `hillclimb reads a height map ('a'..'z', start 'S', summit 'E') and prints
the fewest steps from the start, and from the best lowest cell, to the summit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configureLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mode, "mode", modeBoth, "which answer to print: fixed, lowest or both")
	f.StringVar(&opts.frontier, "frontier", "fifo", "search frontier: fifo or priority")
	f.IntVarP(&opts.workers, "workers", "w", 1, "concurrent searches for the lowest-cell query")
	f.IntVar(&opts.maxClimb, "max-climb", gridgraph.DefaultMaxClimb, "most units a single step may climb")
	f.BoolVar(&opts.showPath, "path", false, "print the route taken from the start cell")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json", false, "emit logs as JSON")

	return cmd
}

// configureLogger creates the process logger writing to the command's stderr.
func (o *cliOptions) configureLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	l.SetLevel(level)
	if o.jsonLogs {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	o.log = l

	return nil
}
