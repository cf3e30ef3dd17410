package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chrono/internal/core/timer"
	"chrono/internal/logger"
)

var (
	scheduleStart string
	scheduleEnd   string
	scheduleEvery time.Duration
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Fire within a wall-clock window",
	Long: `Fire events inside a wall-clock window. The timer starts firing at
--start (default now), fires roughly every --every, and finishes once
--end is reached. Firing moments are matched at the delivery
resolution, so --every should be comfortably larger than --resolution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		start := time.Now()
		if scheduleStart != "" {
			parsed, err := time.Parse(time.RFC3339, scheduleStart)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			start = parsed
		}
		end, err := time.Parse(time.RFC3339, scheduleEnd)
		if err != nil {
			return fmt.Errorf("parse --end: %w", err)
		}

		variant := timer.Schedule{
			Start:     start,
			End:       end,
			Frequency: everyPattern(scheduleEvery, resolution),
			OnSchedule: func(event timer.Event) {
				logger.Get().Info().
					Time("at", event.At).
					Msg("scheduled event")
			},
		}
		return runTimer(variant, 0)
	},
}

// everyPattern matches moments spaced every apart from the window
// start, with a tolerance of one delivery resolution.
func everyPattern(every, tolerance time.Duration) timer.FrequencyFunc {
	return func(current, start, _ time.Time) bool {
		offset := current.Sub(start) % every
		return offset < tolerance
	}
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleStart, "start", "",
		"window start as RFC3339, defaults to now")
	scheduleCmd.Flags().StringVar(&scheduleEnd, "end", "",
		"window end as RFC3339")
	scheduleCmd.Flags().DurationVar(&scheduleEvery, "every", 10*time.Second,
		"spacing between scheduled firings")
	if err := scheduleCmd.MarkFlagRequired("end"); err != nil {
		panic(err)
	}
	RootCmd.AddCommand(scheduleCmd)
}
