// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-scanner/internal/ingestion"
	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/schemas"
)

// DefaultPort is the HTTP port used by serve when none is configured.
const DefaultPort = 8080

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables that override file values
const (
	EnvPort           = "ATS_PORT"
	EnvLexicon        = "ATS_LEXICON"
	EnvMaxUploadBytes = "ATS_MAX_UPLOAD_BYTES"
	EnvTokenizer      = "ATS_TOKENIZER"
	EnvFormat         = "ATS_FORMAT"
)

// Config represents settings that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Lexicon        string `json:"lexicon,omitempty" validate:"omitempty,file"`                // Path to a lexicon override file
	Tokenizer      string `json:"tokenizer,omitempty" validate:"omitempty,oneof=alnum letters"` // Tokenizer mode
	Format         string `json:"format,omitempty" validate:"omitempty,oneof=text json"`        // CLI output format
	Port           int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`          // HTTP port for serve
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty" validate:"gte=0"`                  // Per-document size limit
	UseBrowser     bool   `json:"use_browser,omitempty"`                                        // Render SPA job boards with a headless browser
	Verbose        bool   `json:"verbose,omitempty"`                                            // Print detailed debug information
}

var validate = validator.New()

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Tokenizer:      string(parsing.ModeAlphanumeric),
		Format:         FormatText,
		Port:           DefaultPort,
		MaxUploadBytes: ingestion.MaxUploadBytes,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read, parsed or fails the config schema.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from ATS_* environment variables.
// Malformed numeric values are reported rather than ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLexicon); v != "" {
		c.Lexicon = v
	}
	if v := os.Getenv(EnvTokenizer); v != "" {
		c.Tokenizer = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvMaxUploadBytes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvMaxUploadBytes, err)
		}
		c.MaxUploadBytes = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("config error: '%s' failed the '%s' check (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("config error: %w", err)
}

// TokenizerMode returns the configured tokenizer as a parsing.Mode.
func (c *Config) TokenizerMode() parsing.Mode {
	return parsing.Mode(c.Tokenizer)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Bools are not merged since unset and false look the same.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.Tokenizer == "" {
		result.Tokenizer = defaults.Tokenizer
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	return result
}
