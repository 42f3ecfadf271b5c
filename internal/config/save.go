package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileName is the config file looked up by Load and written by Save.
const fileName = "mobscript.yaml"

const header = `# mobscript configuration.
# scene: registry options (max_depth caps transform propagation below the
#   target; point_limit and edge_limit cap buffer capacity, 0 = unlimited).
# Flags override these values at startup.
`

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), fileName))
}

// SaveTo writes the config to path, creating parent directories.
// A config Load would reject is not written.
func (c *Config) SaveTo(path string) error {
	data, err := c.encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) encode() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("refusing to save: %w", err)
	}
	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return append([]byte(header), body...), nil
}
