package game

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/dodge.yaml
var defaultConfigYAML []byte

// LoadConfig loads the simulation tuning.
// Search order: customPath -> ~/.dodge/config.yaml -> ./configs/dodge.yaml -> embedded default
func LoadConfig(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if p := userConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := ParseConfig(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := ParseConfig(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults, so omitted fields keep their
// reference values, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MarshalConfig renders cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "config.yaml")
}
