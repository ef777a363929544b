package fxdoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("document module name must not be empty")

// ErrEmptyPath is returned when the document path is empty.
var ErrEmptyPath = errors.New("document path must not be empty")

// ErrUnknownFormat is returned when Format names an unsupported codec.
var ErrUnknownFormat = errors.New("unknown document format")

// Config holds the configuration for a document module.
type Config struct {
	Path string `yaml:"path"`
	// Format forces "json" or "yaml"; empty picks it from the extension.
	Format string `yaml:"format"`
	// Autosave writes the document back when the application stops.
	Autosave bool `yaml:"autosave"`
	// PersistDefaults is handed to document.WithDefaultPersistence.
	// Nil keeps the document default.
	PersistDefaults *bool `yaml:"persist_defaults"`
}

// SetDefaults normalizes the format name.
func (c *Config) SetDefaults() bool {
	format := strings.ToLower(strings.TrimSpace(c.Format))
	if format == "yml" {
		format = "yaml"
	}

	changed := format != c.Format
	c.Format = format

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	switch c.Format {
	case "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}
