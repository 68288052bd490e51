package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// ProductionURL is the note service used unless sandbox or endpoint is set
	ProductionURL = "https://www.evernote.com"
	// SandboxURL is the developer sandbox of the note service
	SandboxURL = "https://sandbox.evernote.com"
)

// Config represents the evned configuration
type Config struct {
	Token    string `yaml:"token,omitempty"`
	Editor   string `yaml:"editor,omitempty"`
	Sandbox  bool   `yaml:"sandbox,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// ConfigPath returns the path to the config file
// Lives directly in the home directory as ~/.evned
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "evned", "config.yaml")
	}
	return filepath.Join(home, ".evned")
}

// Load reads the configuration file, creating an empty one if it is missing.
// An empty file yields a zero Config; callers run Ensure to fill it in.
func Load() (*Config, error) {
	configPath := ConfigPath()

	if err := touch(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration back to ConfigPath
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds a credential
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the keys every note operation needs are present
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if c.Editor == "" {
		return fmt.Errorf("editor cannot be empty")
	}
	return nil
}

// BaseURL returns the note service root for this configuration
func (c *Config) BaseURL() string {
	switch {
	case c.Endpoint != "":
		return c.Endpoint
	case c.Sandbox:
		return SandboxURL
	default:
		return ProductionURL
	}
}

// LogPath returns log_file with ~ expanded. The stored value is left as the
// user wrote it so that Save does not rewrite it.
func (c *Config) LogPath() (string, error) {
	if c.LogFile == "" {
		return "", nil
	}
	path, err := expandPath(c.LogFile)
	if err != nil {
		return "", fmt.Errorf("failed to expand log_file: %w", err)
	}
	return path, nil
}

// MaskedToken returns the token with everything but its last four characters hidden
func (c *Config) MaskedToken() string {
	if len(c.Token) <= 4 {
		return "****"
	}
	return "****" + c.Token[len(c.Token)-4:]
}

// touch creates path as an empty file when it does not exist yet
func touch(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	return f.Close()
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
