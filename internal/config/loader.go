package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped silently when unusable.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RunnerConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file, reporting whether it was usable.
func tryLoad(path string) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, false
	}
	cfg, err := parseRunner(data)
	if err != nil || cfg.Validate() != nil {
		return RunnerConfig{}, false
	}
	return cfg, true
}

func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Marshal encodes a config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	preset := DifficultyPreset(name)
	if _, ok := presetScales[preset]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
	return preset, nil
}

// ApplyRunnerPreset scales scroll speed and spawn intervals for a preset.
// Unknown or empty presets leave the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Physics.FloorSpeed *= scale.speed
	cfg.Obstacles.MinInterval *= scale.interval
	cfg.Obstacles.MaxInterval *= scale.interval
}
