package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for in standard locations.
const FileName = "shaderlink.yaml"

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over discovery
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)
	cfg.matchBuiltinProgram()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config describes a buildable program.
func (c *Config) Validate() error {
	switch c.Context.Profile {
	case "core", "es":
	default:
		return fmt.Errorf("context.profile must be \"core\" or \"es\", got %q", c.Context.Profile)
	}
	if c.Program.Vertex == "" || c.Program.Fragment == "" {
		return fmt.Errorf("program.vertex and program.fragment must both be set")
	}
	if c.Context.Width <= 0 || c.Context.Height <= 0 {
		return fmt.Errorf("context size must be positive, got %dx%d", c.Context.Width, c.Context.Height)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
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
		return filepath.Join(home, "Library", "Application Support", "shaderlink")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shaderlink")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shaderlink")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shaderlink")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
