package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Overrides are command line settings. Zero values leave the config untouched.
type Overrides struct {
	Debug     bool
	OutputDir string
	Listen    string
	Workers   int
	Detail    int
}

// Load loads configuration with priority: defaults < file < overrides.
// An empty path searches the standard locations; finding no file is not an error.
func Load(path string, o Overrides) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	o.apply(cfg)
	// Only the transition is refreshed: FeatureDepthMax stays the configured cap so
	// designs merged on top of these params are limited by their own shape.
	cfg.Params = cfg.Params.WithTransition()
	return cfg, nil
}

func (o Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.OutputDir != "" {
		cfg.Output.Dir = o.OutputDir
	}
	if o.Listen != "" {
		cfg.Server.Listen = o.Listen
	}
	if o.Workers > 0 {
		cfg.Build.Workers = o.Workers
	}
	if o.Detail > 0 {
		cfg.Params.Detail = o.Detail
	}
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./lampshade.yaml",
		filepath.Join(Dir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Dir returns the OS-appropriate config directory.
func Dir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Lampshade")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Lampshade")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lampshade")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lampshade")
	}
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
