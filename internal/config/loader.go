package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCliff loads the cliff configuration.
// Search order: customPath -> ~/.cliffhop/configs/cliff.yaml -> ./configs/cliff.yaml -> embedded default
func LoadCliff(customPath string) (CliffConfig, error) {
	var cfg CliffConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cliff.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cliff.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCliffYAML, &cfg); err != nil {
		return DefaultCliffConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cliffhop", "configs", filename)
}

// ApplyCliffPreset modifies the config based on a named preset. The zen
// preset stretches the difficulty ramp and lowers its ceiling; unknown
// presets leave the config untouched.
func ApplyCliffPreset(cfg *CliffConfig, preset Preset) {
	switch preset {
	case PresetZen:
		cfg.Generator.Difficulty.RampDistance = 2000
		cfg.Generator.Difficulty.Max = 2
	case PresetStandard:
		// Defaults already are the standard tuning.
	}
}

// KnownPreset reports whether the preset name is recognized.
func KnownPreset(preset Preset) bool {
	switch preset {
	case PresetStandard, PresetZen:
		return true
	}
	return false
}
