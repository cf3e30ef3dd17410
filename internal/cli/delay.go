package cli

import (
	"time"

	"github.com/spf13/cobra"

	"chrono/internal/core/timer"
	"chrono/internal/logger"
)

var delayFor time.Duration

var delayCmd = &cobra.Command{
	Use:   "delay",
	Short: "Fire once after a delay",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		variant := timer.Delay{
			Delay: delayFor,
			OnFinish: func(event timer.Event) {
				logger.Get().Info().
					Dur("after", event.Lifetime).
					Msg("delay elapsed")
			},
		}
		return runTimer(variant, 0)
	},
}

func init() {
	delayCmd.Flags().DurationVar(&delayFor, "delay", 5*time.Second,
		"time to wait before firing")
	RootCmd.AddCommand(delayCmd)
}
