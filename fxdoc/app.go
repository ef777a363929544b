package fxdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/dotconf/logging"
)

var errAppNotInitialized = errors.New("app not initialized")

// AppOptions holds configuration settings for the application.
type AppOptions struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// AppOption defines a function type for applying application options.
type AppOption func(*AppOptions)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) AppOption {
	return func(opts *AppOptions) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDocument adds a named document module to the application.
// Call multiple times with different names to load several documents.
func WithDocument(name string, opts ...Option) AppOption {
	return func(o *AppOptions) {
		o.Modules = append(o.Modules, NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) AppOption {
	return func(opts *AppOptions) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" or "text" log output.
func WithLogFormat(format string) AppOption {
	return func(opts *AppOptions) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs, which go to stderr by default.
func WithLogOutput(w io.Writer) AppOption {
	return func(opts *AppOptions) {
		opts.LogOutput = w
	}
}

// App is a configured starting point for an application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...AppOption) *App {
	var options AppOptions

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *AppOptions) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	loggerCfg := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerCfg, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerCfg),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
