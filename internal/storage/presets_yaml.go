package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"chrono/internal/core/model"
)

type yamlPreset struct {
	Name            string  `yaml:"name"`
	Kind            string  `yaml:"kind"`
	IntervalSeconds float64 `yaml:"interval_seconds,omitempty"`
	CountSeconds    float64 `yaml:"count_seconds,omitempty"`
	DelaySeconds    float64 `yaml:"delay_seconds,omitempty"`
	TimeoutSeconds  float64 `yaml:"timeout_seconds,omitempty"`
}

type yamlPresetFile struct {
	Presets []yamlPreset `yaml:"presets"`
}

// LoadPresets reads named timer presets from a YAML file.
// If the file does not exist, an empty list is returned.
func LoadPresets(path string) ([]model.Preset, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var fileData yamlPresetFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse presets yaml: %w", err)
	}

	presets := make([]model.Preset, 0, len(fileData.Presets))
	for _, entry := range fileData.Presets {
		preset, err := presetFromYaml(entry)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, nil
}

// SavePresets writes timer presets to a YAML file, creating parent
// directories as needed.
func SavePresets(path string, presets []model.Preset) error {
	fileData := yamlPresetFile{Presets: make([]yamlPreset, 0, len(presets))}
	for _, preset := range presets {
		fileData.Presets = append(fileData.Presets, yamlPreset{
			Name:            preset.Name,
			Kind:            string(preset.Kind),
			IntervalSeconds: preset.Interval.Seconds(),
			CountSeconds:    preset.Count.Seconds(),
			DelaySeconds:    preset.Delay.Seconds(),
			TimeoutSeconds:  preset.Timeout.Seconds(),
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal presets yaml: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create presets directory: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write presets file: %w", err)
	}
	return nil
}

// FindPreset returns the preset with the given name from path.
func FindPreset(path, name string) (model.Preset, error) {
	presets, err := LoadPresets(path)
	if err != nil {
		return model.Preset{}, err
	}
	for _, preset := range presets {
		if preset.Name == name {
			return preset, nil
		}
	}
	return model.Preset{}, fmt.Errorf("preset %q not found in %s", name, path)
}

func presetFromYaml(entry yamlPreset) (model.Preset, error) {
	kind := model.PresetKind(entry.Kind)
	if !model.KnownKind(kind) {
		return model.Preset{}, fmt.Errorf("preset %q: unknown kind %q", entry.Name, entry.Kind)
	}
	if entry.Name == "" {
		return model.Preset{}, fmt.Errorf("preset with kind %q: missing name", entry.Kind)
	}
	return model.Preset{
		Name:     entry.Name,
		Kind:     kind,
		Interval: secondsToDuration(entry.IntervalSeconds),
		Count:    secondsToDuration(entry.CountSeconds),
		Delay:    secondsToDuration(entry.DelaySeconds),
		Timeout:  secondsToDuration(entry.TimeoutSeconds),
	}, nil
}

func secondsToDuration(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
