// Package config provides configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPrefix is the runner used when neither flag nor config name one
const DefaultPrefix = "npm"

// Config holds the application configuration
type Config struct {
	// Runner settings
	Prefix string `mapstructure:"prefix"`

	// Paths
	ProjectRoot string `mapstructure:"project_root"`
	Manifest    string `mapstructure:"manifest"`

	// Execution settings
	DryRun  bool `mapstructure:"dry_run"`
	Verbose bool `mapstructure:"verbose"`
	Debug   bool `mapstructure:"debug"`
	Quiet   bool `mapstructure:"quiet"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cwd, _ := os.Getwd()
	return &Config{
		Prefix:      DefaultPrefix,
		ProjectRoot: cwd,
		Manifest:    "package.json",
	}
}

// Load loads configuration from files and environment.
// An explicit cfgFile must exist; the search paths may be empty.
func Load(cfgFile string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".script-sleuth")
		v.SetConfigType("yaml")

		// Search paths
		v.AddConfigPath(".")                           // Current directory
		v.AddConfigPath("$HOME")                       // Home directory
		v.AddConfigPath("$HOME/.config/script-sleuth") // XDG config
	}

	// Environment variables
	v.SetEnvPrefix("SCRIPT_SLEUTH")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("prefix", cfg.Prefix)
	v.SetDefault("project_root", cfg.ProjectRoot)
	v.SetDefault("manifest", cfg.Manifest)
	v.SetDefault("dry_run", cfg.DryRun)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("quiet", cfg.Quiet)

	// Try to read config file (don't fail if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal to struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.resolvePaths()

	return cfg, nil
}

// resolvePaths makes ProjectRoot absolute
func (c *Config) resolvePaths() {
	if c.ProjectRoot == "" {
		c.ProjectRoot, _ = os.Getwd()
	}
	if abs, err := filepath.Abs(c.ProjectRoot); err == nil {
		c.ProjectRoot = abs
	}
}

// ApplyPrefix overrides the runner prefix when the flag value is non-empty
func (c *Config) ApplyPrefix(prefix string) {
	if strings.TrimSpace(prefix) != "" {
		c.Prefix = strings.TrimSpace(prefix)
	}
}

// ManifestPath returns the path of the manifest file
func (c *Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	return filepath.Join(c.ProjectRoot, c.Manifest)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Prefix) == "" {
		return fmt.Errorf("prefix is required")
	}

	if strings.TrimSpace(c.Manifest) == "" {
		return fmt.Errorf("manifest is required")
	}

	return nil
}
