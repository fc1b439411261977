// Package config handles loading settings for the granularity-convert
// CLI: default output granularity, logging setup, and importer options.
package config

// Config holds all CLI settings.
type Config struct {
	Granularity string        `yaml:"granularity"`
	Logging     LoggingConfig `yaml:"logging"`
	Import      ImportConfig  `yaml:"import"`
}

// LoggingConfig holds logging settings, fed straight into
// internal/logger.InitWithFileConfig.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ImportConfig holds defaults applied by the objimport/stlimport
// collaborators when a command doesn't override them explicitly.
type ImportConfig struct {
	STLScale float64 `yaml:"stl_scale"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Granularity: "atomic",
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Import: ImportConfig{
			STLScale: 1.0,
		},
	}
}
