// Package cmd provides the command-line interface of the scheduler.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Version is the version reported by the version command.
var Version = "dev"

type options struct {
	configFile  string
	stdout      bool
	summary     bool
	fillHorizon bool
	verbose     bool
	recordPath  string
	port        int
}

// NewRootCmd builds the command tree. The root command simulates the input
// file given as its only argument.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cpusched <input-file>",
		Short: "cpusched simulates single-processor CPU scheduling.",
		Long: `cpusched simulates single-processor CPU scheduling. ` +
			`It reads a process description, runs the first-come-first-served, ` +
			`preemptive shortest-job-first or round-robin policy over it, and ` +
			`writes the event trace and per-process metrics next to the input.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, opts, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"configuration file (default ./config.yaml)")

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.stdout, "stdout", false, "also print the report")
	flags.BoolVar(&opts.summary, "summary", false, "print a summary table")
	flags.BoolVar(&opts.fillHorizon, "fill-horizon", false,
		"keep idling until the run duration when all processes finished")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every event")
	flags.StringVar(&opts.recordPath, "record", "",
		"record the run into an SQLite database at this path")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line and exits. Registered exit handlers, such
// as the recorder flush, run before the process ends.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
