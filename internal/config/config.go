package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the user defaults file inside the terrastrap root.
const configFile = "config.yaml"

// Defaults holds user-level defaults read from ~/.terrastrap/config.yaml.
// All fields are optional; a missing file means zero defaults.
type Defaults struct {
	// Provider preselects the cloud provider in the wizard (aws, gcp, azure).
	Provider string `yaml:"provider"`

	// Regions maps a provider to its preferred region.
	Regions map[string]string `yaml:"regions"`

	// OutputDir overrides where generated configurations are written.
	// Relative paths resolve against the working directory.
	OutputDir string `yaml:"output_dir"`
}

// Config holds the CLI configuration.
type Config struct {
	// Root is the terrastrap state directory (~/.terrastrap).
	Root string

	// Defaults are the user's saved wizard defaults.
	Defaults Defaults
}

// Load resolves the terrastrap root under the user's home directory and
// reads the defaults file if present.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".terrastrap"))
}

// LoadFrom reads the configuration rooted at the given directory.
// A missing defaults file is not an error.
func LoadFrom(root string) (*Config, error) {
	cfg := &Config{Root: root}

	data, err := os.ReadFile(filepath.Join(root, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg.Defaults); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}
	return cfg, nil
}

// Save writes the defaults back to the root, creating it if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Root, err)
	}
	data, err := yaml.Marshal(c.Defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}
	return os.WriteFile(filepath.Join(c.Root, configFile), data, 0o644)
}

// DefaultRegion returns the user's preferred region for a provider, or ""
// when none is saved.
func (c *Config) DefaultRegion(provider string) string {
	return c.Defaults.Regions[provider]
}
