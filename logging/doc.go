// Package logging builds the structured loggers used across dotconf.
// It wraps log/slog with JSON or text output and a level parsed from configuration.
package logging
