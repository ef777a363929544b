package fxdoc

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/dotconf"
	"github.com/0xalexb/dotconf/document"
)

// NewModule creates an Fx module providing a named *document.Document.
// The name is used as both the module name and the DI named tag for the document and Config.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(tag)),
		))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, logger *slog.Logger, docCfg Config) (*document.Document, error) {
				if logger == nil {
					logger = slog.Default()
				}

				doc, err := Open(docCfg, logger.With(slog.String("module", name)))
				if err != nil {
					return nil, fmt.Errorf("document %q: %w", name, err)
				}

				if docCfg.Autosave {
					lifecycle.Append(fx.Hook{
						OnStart: nil,
						OnStop: func(context.Context) error {
							return doc.Save()
						},
					})
				}

				return doc, nil
			},
			fx.ParamTags("", `optional:"true"`, tag),
			fx.ResultTags(tag),
		),
	))

	return fx.Module(name, moduleOpts...)
}

// Open validates cfg and opens the document it describes.
func Open(cfg Config, logger *slog.Logger) (*document.Document, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	docOpts := []document.Option{document.WithLogger(logger)}
	if cfg.PersistDefaults != nil {
		docOpts = append(docOpts, document.WithDefaultPersistence(*cfg.PersistDefaults))
	}

	switch cfg.Format {
	case "json":
		return dotconf.OpenJSON(cfg.Path, docOpts...)
	case "yaml":
		return dotconf.OpenYAML(cfg.Path, docOpts...)
	default:
		return dotconf.Open(cfg.Path, docOpts...)
	}
}
