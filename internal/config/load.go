package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		fileName,
		filepath.Join(ConfigDir(), fileName),
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
		return filepath.Join(home, "Library", "Application Support", "mobscript")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mobscript")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "mobscript")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mobscript")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.validate()
}

// validate rejects values the registry cannot use.
func (c *Config) validate() error {
	if c.Scene.MaxDepth < 0 {
		return fmt.Errorf("scene.max_depth must not be negative, got %d", c.Scene.MaxDepth)
	}
	if c.Scene.PointLimit < 0 {
		return fmt.Errorf("scene.point_limit must not be negative, got %d", c.Scene.PointLimit)
	}
	if c.Scene.EdgeLimit < 0 {
		return fmt.Errorf("scene.edge_limit must not be negative, got %d", c.Scene.EdgeLimit)
	}
	return nil
}
