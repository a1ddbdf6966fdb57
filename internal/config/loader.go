package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTaxi loads the taxi configuration.
// Search order: customPath -> ~/.taxirush/configs/taxi.yaml -> ./configs/taxi.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadTaxi(customPath string) (TaxiConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TaxiConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TaxiConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("taxi.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "taxi.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTaxiYAML)
	if err != nil {
		return DefaultTaxiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates it.
func Parse(data []byte) (TaxiConfig, error) {
	cfg := DefaultTaxiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TaxiConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TaxiConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taxirush", "configs", filename)
}
