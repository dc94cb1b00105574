package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the manifold configuration from manifold.yaml.
type Config struct {
	// Schema is the path to the schema document (YAML or JSON).
	Schema string `mapstructure:"schema"`

	// Overrides is an optional path to a display-name override file.
	// When empty, the built-in legacy override table is used.
	Overrides string `mapstructure:"overrides"`

	// Per-command configuration
	Resolve ResolveConfig `mapstructure:"resolve"`
	Doctor  DoctorConfig  `mapstructure:"doctor"`
}

// ResolveConfig holds resolve command settings.
type ResolveConfig struct {
	Format      string `mapstructure:"format"`
	NoOverrides bool   `mapstructure:"no_overrides"`
}

// DoctorConfig holds doctor command settings.
type DoctorConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none
// found), and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("MANIFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schema", "schemas/schema.yaml")
	v.SetDefault("overrides", "")

	v.SetDefault("resolve.format", "table")
	v.SetDefault("resolve.no_overrides", false)

	v.SetDefault("doctor.verbose", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for manifold.yaml or
// manifold.yml, stopping at a .git directory or after maxWalkDepth
// levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		// Try manifold.yaml then manifold.yml
		for _, name := range []string{"manifold.yaml", "manifold.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break // Stop at repo root
		}

		// Move up
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

// ResolvedFormat returns the effective output format for resolve,
// with the flag value taking precedence over config.
func (c *Config) ResolvedFormat(flagFormat string) string {
	if flagFormat != "" {
		return flagFormat
	}
	return c.Resolve.Format
}
