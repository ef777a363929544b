package fxdoc

// Option defines a function type for configuring a document module.
type Option func(*Config)

// WithPath sets the file backing the document.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithFormat forces the codec instead of deriving it from the extension.
func WithFormat(format string) Option {
	return func(cfg *Config) {
		cfg.Format = format
	}
}

// WithAutosave saves the document when the application stops.
func WithAutosave(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Autosave = enabled
	}
}

// WithDefaultPersistence controls whether getters store their defaults.
func WithDefaultPersistence(enabled bool) Option {
	return func(cfg *Config) {
		cfg.PersistDefaults = &enabled
	}
}
