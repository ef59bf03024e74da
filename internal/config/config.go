// Package config loads and defaults the editor configuration.
//
// Configuration comes from three layers, lowest priority first:
// built-in defaults, the TOML config file, and SCRIBE_* environment
// variables. A missing config file is not an error; the editor runs
// on defaults.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings.
type Config struct {
	// Theme names the color theme.
	Theme string `toml:"theme"`

	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`

	// Mouse enables SGR mouse reporting.
	Mouse bool `toml:"mouse"`

	// AgentDir is the directory of agent definition files.
	AgentDir string `toml:"agent_dir"`

	// Provider selects the default model provider.
	Provider string `toml:"provider"`

	// Model is the default model identifier.
	Model string `toml:"model"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile receives log output; empty disables logging. The
	// terminal itself is never used for logs while the UI owns it.
	LogFile string `toml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:    "default-dark",
		TabWidth: 4,
		Mouse:    true,
		AgentDir: "agents",
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		LogLevel: "info",
	}
}

// Load reads the config file at path over the defaults and then
// applies environment overrides. A nonexistent file yields the
// defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays SCRIBE_* environment variables. Environment
// values win over the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("SCRIBE_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("SCRIBE_AGENT_DIR"); v != "" {
		c.AgentDir = v
	}
	if v := os.Getenv("SCRIBE_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("SCRIBE_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("SCRIBE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SCRIBE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
