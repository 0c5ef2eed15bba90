package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "dasher.yaml"

// LoadDasher loads the runner configuration.
// Search order: customPath -> ~/.dasher/configs/dasher.yaml -> ./configs/dasher.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadDasher(customPath string) (DasherConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DasherConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DasherConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDasherYAML)
	if err != nil {
		return DefaultDasherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the built-in defaults and validates
// the result.
func Parse(data []byte) (DasherConfig, error) {
	cfg := DefaultDasherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DasherConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DasherConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}
