// Package config handles mobscript configuration loading and management.
package config

import "github.com/Faultbox/mobject/pkg/mobject"

// Config holds all mobscript settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig holds registry settings.
type SceneConfig struct {
	MaxDepth   int  `yaml:"max_depth"`   // Propagation depth cap
	PointLimit int  `yaml:"point_limit"` // Max points per mobject, 0 = unlimited
	EdgeLimit  int  `yaml:"edge_limit"`  // Max children/parents per mobject, 0 = unlimited
	VisitGuard bool `yaml:"visit_guard"`
}

// OutputConfig holds diagnostics output settings.
type OutputConfig struct {
	DumpAfterEach bool `yaml:"dump_after_each"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			MaxDepth:   mobject.DefaultMaxDepth,
			PointLimit: 0,
			EdgeLimit:  0,
			VisitGuard: false,
		},
		Output: OutputConfig{
			DumpAfterEach: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SceneOptions converts the scene section to registry options.
// The logger is left for the caller to set.
func (c *Config) SceneOptions() mobject.Options {
	return mobject.Options{
		MaxDepth:   c.Scene.MaxDepth,
		PointLimit: c.Scene.PointLimit,
		EdgeLimit:  c.Scene.EdgeLimit,
		VisitGuard: c.Scene.VisitGuard,
	}
}
