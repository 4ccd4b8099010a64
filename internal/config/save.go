package config

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to UserConfigPath, where Load finds it when the
// working directory has no config file.
func (c *Config) Save() error {
	return c.SaveTo(UserConfigPath())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// WriteTo writes the config as YAML to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
