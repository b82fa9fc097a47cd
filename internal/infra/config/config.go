// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Clock    ClockConfig    `yaml:"clock"`
	Import   ImportConfig   `yaml:"import"`
	Library  LibraryConfig  `yaml:"library"`
	Messages MessagesConfig `yaml:"messages"`
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr        string      `yaml:"addr" default:":8080"`
	Token       string      `yaml:"token"` // Empty disables the library API token check
	MetricsPath string      `yaml:"metrics_path" default:"/metrics" validate:"startswith=/"`
	Hooks       HooksConfig `yaml:"hooks"`
}

// HooksConfig represents shell commands run around the server lifecycle.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Output string `yaml:"output" default:"stdout"`
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File   string `yaml:"file"`
}

// ClockConfig represents wall clock configuration.
type ClockConfig struct {
	Timezone string `yaml:"timezone" default:"Local"`
	Layout   string `yaml:"layout" default:"3:04 PM"`
}

// ImportConfig represents text import configuration.
type ImportConfig struct {
	SongPrefix    string `yaml:"song_prefix" default:"Song"`
	UnknownArtist string `yaml:"unknown_artist" default:"Unknown Artist"`
}

// LibraryConfig represents the external song library configuration.
type LibraryConfig struct {
	Type     string         `yaml:"type" validate:"omitempty,oneof=catalog"`
	Settings map[string]any `yaml:"settings"`
}

// MessagesConfig represents user-facing messages.
type MessagesConfig struct {
	Success              string `yaml:"success" default:"OK"`
	DefaultError         string `yaml:"default_error" default:"Something went wrong"`
	MissingCredential    string `yaml:"missing_credential" default:"Client ID is required"`
	AuthenticationFailed string `yaml:"authentication_failed" default:"Failed to connect to music library"`
	NotAuthenticated     string `yaml:"not_authenticated" default:"Not authenticated with music library"`
	PlaylistNotFound     string `yaml:"playlist_not_found" default:"Playlist not found"`
	EmptyPlaylist        string `yaml:"empty_playlist" default:"Playlist has no tracks"`
	NothingToImport      string `yaml:"nothing_to_import" default:"Nothing to import"`
}

// Default returns a configuration populated only with defaults.
func Default() *Config {
	var cfg Config
	cfg.overrideFromEnv()
	// defaults.Set only fails on malformed tags
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values for sensitive fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("PLAYTIME_TOKEN"); v != "" {
		c.Server.Token = v
	}
	if v := os.Getenv("PLAYTIME_TIMEZONE"); v != "" {
		c.Clock.Timezone = v
	}
	if v := os.Getenv("PLAYTIME_LIBRARY_CREDENTIAL"); v != "" && c.Library.Type == "catalog" {
		if c.Library.Settings == nil {
			c.Library.Settings = map[string]any{}
		}
		c.Library.Settings["credential"] = v
	}
}

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code string) string {
	switch code {
	case "success":
		return c.Messages.Success
	case "missing_credential":
		return c.Messages.MissingCredential
	case "authentication_failed":
		return c.Messages.AuthenticationFailed
	case "not_authenticated":
		return c.Messages.NotAuthenticated
	case "playlist_not_found":
		return c.Messages.PlaylistNotFound
	case "empty_playlist":
		return c.Messages.EmptyPlaylist
	case "nothing_to_import":
		return c.Messages.NothingToImport
	default:
		return c.Messages.DefaultError
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Clock.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load timezone %q", c.Clock.Timezone)
	}
	return loc, nil
}
