package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "froggit.yaml"

// Load loads the froggit configuration.
// Search order: customPath -> ~/.froggit/configs/froggit.yaml -> ./configs/froggit.yaml -> embedded default.
// Keys missing from a file keep their default value.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and normalizes
// out-of-range values.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGameConfig(), err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces values the simulation cannot run with by defaults.
func (c *GameConfig) normalize() {
	def := DefaultGameConfig()
	if c.Grid.CellSize <= 0 {
		c.Grid.CellSize = def.Grid.CellSize
	}
	if c.Frog.HopDuration <= 0 {
		c.Frog.HopDuration = def.Frog.HopDuration
	}
	if c.Frog.Lives <= 0 {
		c.Frog.Lives = def.Frog.Lives
	}
	if c.Death.Duration <= 0 {
		c.Death.Duration = def.Death.Duration
	}
	if c.Death.Frames <= 0 {
		c.Death.Frames = def.Death.Frames
	}
	if c.Runtime.TickRate <= 0 {
		c.Runtime.TickRate = def.Runtime.TickRate
	}
	if c.Runtime.Level == "" {
		c.Runtime.Level = def.Runtime.Level
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".froggit", "configs", filename)
}
