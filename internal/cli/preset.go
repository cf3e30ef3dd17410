package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chrono/internal/core/model"
	"chrono/internal/core/timer"
	"chrono/internal/logger"
	"chrono/internal/storage"
)

var presetFile string

var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Run a named preset from a YAML file, or list presets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if len(args) == 0 {
			return listPresets(presetFile)
		}

		preset, err := storage.FindPreset(presetFile, args[0])
		if err != nil {
			return err
		}
		variant, err := presetVariant(preset)
		if err != nil {
			return err
		}
		return runTimer(variant, 0)
	},
}

func listPresets(path string) error {
	presets, err := storage.LoadPresets(path)
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		logger.Get().Info().Str("file", path).Msg("no presets")
		return nil
	}
	for _, preset := range presets {
		logger.Get().Info().
			Str("name", preset.Name).
			Str("kind", string(preset.Kind)).
			Msg("preset")
	}
	return nil
}

func presetVariant(preset model.Preset) (timer.Variant, error) {
	switch preset.Kind {
	case model.KindBasic:
		return timer.Basic{
			Interval: preset.Interval,
			OnTick: func(event timer.Event) {
				logger.Get().Info().
					Int("count", event.Fired).
					Dur("delta", event.Delta).
					Msg("tick")
			},
		}, nil
	case model.KindStopwatch:
		return timer.Stopwatch{
			Timeout: preset.Timeout,
			OnTimeout: func(event timer.Event) {
				logger.Get().Info().
					Dur("after", event.Lifetime).
					Msg("stopwatch timed out")
			},
		}, nil
	case model.KindCountdown:
		return countdownVariant(preset.Count, preset.Interval), nil
	case model.KindCountUp:
		return countupVariant(preset.Count, preset.Interval), nil
	case model.KindDelay:
		return timer.Delay{
			Delay: preset.Delay,
			OnFinish: func(event timer.Event) {
				logger.Get().Info().
					Dur("after", event.Lifetime).
					Msg("delay elapsed")
			},
		}, nil
	}
	return nil, fmt.Errorf("preset %q: unknown kind %q", preset.Name, preset.Kind)
}

func init() {
	presetCmd.Flags().StringVar(&presetFile, "file", defaultPresetFile(),
		"presets YAML file")
	RootCmd.AddCommand(presetCmd)
}

func defaultPresetFile() string {
	return "presets.yaml"
}
