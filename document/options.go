package document

import "log/slog"

type options struct {
	logger          *slog.Logger
	persistDefaults bool
}

// Option defines a function type for configuring a Document.
type Option func(*options)

// WithLogger sets the logger used for warnings and debug output.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithDefaultPersistence controls whether getters store the default they
// fall back to. Enabled by default.
func WithDefaultPersistence(enabled bool) Option {
	return func(opts *options) {
		opts.persistDefaults = enabled
	}
}
