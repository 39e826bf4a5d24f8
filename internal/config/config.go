// Package config holds all ShopHub configuration. Config lives at
// <state dir>/config.yaml and can be overridden by SHOPHUB_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the public FakeStore demo API.
const DefaultBaseURL = "https://fakestoreapi.com"

// Config holds all ShopHub configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Remote API settings
	API APIConfig `yaml:"api"`

	// Local state settings
	State StateConfig `yaml:"state"`

	// Terminal UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the remote catalog client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // per-call ceiling, no retries
}

// StateConfig configures local persistence.
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
	JSONFormat bool            `yaml:"json_format"`
}

// DefaultStateDir returns ~/.shophub, falling back to .shophub in the
// working directory when the home directory cannot be resolved.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shophub"
	}
	return filepath.Join(home, ".shophub")
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:    "ShopHub",
		Version: "1.0.0",
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: "10s",
		},
		State: StateConfig{
			Dir: DefaultStateDir(),
		},
		UI: UIConfig{},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads config from path, applies environment overrides, and validates.
// A missing file yields the defaults (still env-overridden and validated).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SHOPHUB_* environment variables on top of the
// loaded values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHOPHUB_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("SHOPHUB_API_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv("SHOPHUB_STATE_DIR"); v != "" {
		c.State.Dir = v
	}
	if os.Getenv("SHOPHUB_DARK_MODE") == "1" {
		c.UI.DarkMode = true
	}
	if os.Getenv("SHOPHUB_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// Validate checks the config for values that would break at runtime.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.State.Dir == "" {
		return fmt.Errorf("state.dir must not be empty")
	}
	if c.API.Timeout != "" {
		if _, err := time.ParseDuration(c.API.Timeout); err != nil {
			return fmt.Errorf("api.timeout is not a valid duration: %w", err)
		}
	}
	return nil
}

// GetAPITimeout returns the parsed per-call timeout, defaulting to 10s.
func (c *Config) GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Path returns the config file location inside the state directory.
func (c *Config) Path() string {
	return filepath.Join(c.State.Dir, "config.yaml")
}
