package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool's settings.
type Config struct {
	// OutputPrefix is prepended to the input file name when naming the
	// output file.
	OutputPrefix string `yaml:"output_prefix"`

	// OutputDir, when set, receives the output file instead of the
	// input file's directory.
	OutputDir string `yaml:"output_dir"`

	// Overwrite allows replacing an existing output file.
	Overwrite bool `yaml:"overwrite"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputPrefix: "delayed_",
	}
}

// Load reads baseDir/config.yaml, falling back to defaults when the
// file does not exist. The baseDir parameter lets tests point at a
// temporary directory instead of the user config dir.
func Load(baseDir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(baseDir, "config.yaml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = Default().OutputPrefix
	}
	return cfg, nil
}

// DefaultDir returns the per-user config directory for the tool.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "srtt"), nil
}
