package cli

import (
	"fmt"
	"time"
)

// formatClock renders a duration as mm:ss for countdown/countup output.
func formatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
