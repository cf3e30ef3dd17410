package cli

import (
	"time"

	"github.com/spf13/cobra"

	"chrono/internal/core/timer"
	"chrono/internal/logger"
)

var (
	tickInterval time.Duration
	tickFor      time.Duration
)

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Fire a tick at a fixed interval",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		variant := timer.Basic{
			Interval: tickInterval,
			OnTick: func(event timer.Event) {
				logger.Get().Info().
					Int("count", event.Fired).
					Dur("delta", event.Delta).
					Msg("tick")
			},
		}
		return runTimer(variant, tickFor)
	},
}

func init() {
	tickCmd.Flags().DurationVar(&tickInterval, "interval", time.Second,
		"time between ticks")
	tickCmd.Flags().DurationVar(&tickFor, "for", 0,
		"stop after this long, 0 runs until interrupted")
	RootCmd.AddCommand(tickCmd)
}
