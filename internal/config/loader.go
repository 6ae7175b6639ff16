package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadShooter.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadShooter loads the shooter configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml ->
// ./configs/shooter.yaml -> embedded default -> hard-coded default.
//
// Files are layered over the defaults, so a file only needs the keys it
// changes. The result is validated; an invalid file is an error, never a
// silent fallback.
func LoadShooter(customPath string) (ShooterConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return ShooterConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("shooter.yaml"), filepath.Join("configs", "shooter.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return ShooterConfig{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return validated(cfg, path)
	}

	// Use embedded default YAML
	var cfg ShooterConfig
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), SourceBuiltin, nil
	}
	return validated(cfg, SourceEmbedded)
}

// Parse decodes YAML layered over the built-in defaults and validates it.
func Parse(data []byte) (ShooterConfig, error) {
	cfg, err := parseOverDefaults(data)
	if err != nil {
		return ShooterConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func parseOverDefaults(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

func validated(cfg ShooterConfig, source string) (ShooterConfig, string, error) {
	if err := Validate(cfg); err != nil {
		return ShooterConfig{}, "", fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
