package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/flywave/go-granularity-convert/granularity"
)

// Load loads configuration with priority: defaults < file. explicitPath,
// when non-empty, is used as-is instead of searching standard
// locations; pass "" to let Load search them.
func Load(explicitPath string) (*Config, error) {
	cfg := Default()

	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

// findConfigFile looks for config.yaml in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "granularityconvert")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "granularityconvert")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "granularityconvert")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "granularityconvert")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// ParseGranularity maps the config's string granularity name to the
// enum granularity.Convert expects.
func ParseGranularity(name string) (granularity.MeshGranularity, error) {
	switch name {
	case "atomic", "":
		return granularity.PerAtomicFeatureObject, nil
	case "primary":
		return granularity.PerPrimaryFeatureObject, nil
	case "area":
		return granularity.PerCityModelArea, nil
	default:
		return 0, fmt.Errorf("config: unknown granularity %q", name)
	}
}
