// Package cli implements the chrono command tree.
package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"chrono/internal/logger"
)

var (
	verbose    bool
	resolution time.Duration
)

// RootCmd is the entry point for the chrono command tree.
var RootCmd = &cobra.Command{
	Use:   "chrono",
	Short: "Run interval, countdown, delay, stopwatch and schedule timers",
	Long: `Chrono runs a timer in the terminal. Each subcommand configures one
timer variant; the timer is driven by a wall-clock ticker at the given
resolution and every tick and finish event is logged as it fires.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(zerolog.DebugLevel)
		} else {
			logger.SetLevel(zerolog.InfoLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"enable debug logging")
	RootCmd.PersistentFlags().DurationVar(&resolution, "resolution", 100*time.Millisecond,
		"advance delivery resolution")
	hideHelp(RootCmd)
}

// Disable the "help" subcommand (and just use the -h/--help flags).
func hideHelp(cmd *cobra.Command) {
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
