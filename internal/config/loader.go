package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOrbit loads the gravity hopper configuration.
// Search order: customPath -> ~/.orbit/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default
func LoadOrbit(customPath string) (OrbitConfig, error) {
	var cfg OrbitConfig

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
	if userCfgPath := userConfigPath("orbit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/orbit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOrbitYAML, &cfg); err != nil {
		return DefaultOrbitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbit", "configs", filename)
}

// ApplyOrbitPreset modifies the config based on a difficulty preset.
func ApplyOrbitPreset(cfg *OrbitConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust world generation based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.World.VoidChance = 0
		cfg.World.BoundaryMargin = cfg.World.BoundaryMargin * 1.5
	case DifficultyHard:
		cfg.World.VoidChance = 0.2
		cfg.World.RotationSpeedMax = cfg.World.RotationSpeedMax * 1.4
		cfg.Combo.TimeoutTicks = cfg.Combo.TimeoutTicks * 3 / 4
	}
}
