// Package config loads lampshade tool settings from YAML.
package config

import (
	"github.com/soypat/lampshade"
	"github.com/soypat/lampshade/internal/logger"
)

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Server  ServerConfig  `yaml:"server"`
	Build   BuildConfig   `yaml:"build"`
	// Params overrides the stock design. Fields missing from the file keep their defaults.
	// Call Derive before evaluating geometry.
	Params lampshade.Params `yaml:"params"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string            `yaml:"level"`
	File  logger.FileConfig `yaml:"file"`
}

// OutputConfig holds where generated files go.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// PreviewConfig holds preview image settings.
type PreviewConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Supersample int `yaml:"supersample"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// BuildConfig holds mesh generation settings.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 uses every CPU
}

// Default returns a Config with the stock design and default settings.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			File:  logger.DefaultFileConfig(""),
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Preview: PreviewConfig{
			Width:       768,
			Height:      432,
			Supersample: 2,
		},
		Server: ServerConfig{
			Listen: "127.0.0.1:8080",
		},
		Params: lampshade.DefaultParams(),
	}
}
