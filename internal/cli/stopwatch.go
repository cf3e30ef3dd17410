package cli

import (
	"time"

	"github.com/spf13/cobra"

	"chrono/internal/core/timer"
	"chrono/internal/logger"
)

var stopwatchTimeout time.Duration

var stopwatchCmd = &cobra.Command{
	Use:   "stopwatch",
	Short: "Accumulate time until interrupted or timed out",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		variant := timer.Stopwatch{
			Timeout: stopwatchTimeout,
			OnTimeout: func(event timer.Event) {
				logger.Get().Info().
					Dur("after", event.Lifetime).
					Msg("stopwatch timed out")
			},
		}
		return runTimer(variant, 0)
	},
}

func init() {
	stopwatchCmd.Flags().DurationVar(&stopwatchTimeout, "timeout", 0,
		"optional timeout, 0 runs until interrupted")
	RootCmd.AddCommand(stopwatchCmd)
}
