package cli

import (
	"time"

	"github.com/spf13/cobra"

	"chrono/internal/core/timer"
	"chrono/internal/logger"
)

var (
	countTotal    time.Duration
	countInterval time.Duration
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Count down to zero, then finish",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runTimer(countdownVariant(countTotal, countInterval), 0)
	},
}

var countupCmd = &cobra.Command{
	Use:   "countup",
	Short: "Count up from zero, then finish",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runTimer(countupVariant(countTotal, countInterval), 0)
	},
}

func countdownVariant(count, interval time.Duration) timer.Countdown {
	return timer.Countdown{
		Count:    count,
		Interval: interval,
		OnCount: func(event timer.Event) {
			logger.Get().Info().
				Str("remaining", formatClock(count-event.Lifetime)).
				Msg("countdown")
		},
	}
}

func countupVariant(count, interval time.Duration) timer.CountUp {
	return timer.CountUp{
		Count:    count,
		Interval: interval,
		OnCount: func(event timer.Event) {
			logger.Get().Info().
				Str("elapsed", formatClock(event.Lifetime)).
				Msg("countup")
		},
	}
}

func init() {
	for _, cmd := range []*cobra.Command{countdownCmd, countupCmd} {
		cmd.Flags().DurationVar(&countTotal, "count", time.Minute,
			"total time to count")
		cmd.Flags().DurationVar(&countInterval, "interval", time.Second,
			"time between counts")
		RootCmd.AddCommand(cmd)
	}
}
