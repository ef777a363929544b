package fxdoc

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/0xalexb/dotconf/config"
	"github.com/0xalexb/dotconf/document"
)

// Section provides *T decoded from the section at path of the document
// registered under docName. An empty path decodes the whole document.
// T may implement config.Defaulter and config.Validator.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Section[T any](docName, path string) fx.Option {
	if docName == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Provide(
		fx.Annotate(
			func(doc *document.Document) (*T, error) {
				section, err := config.Provider(new(T), path)(doc)
				if err != nil {
					return nil, fmt.Errorf("document %q section %q: %w", docName, path, err)
				}

				return section, nil
			},
			fx.ParamTags(fmt.Sprintf(`name:"%s"`, docName)),
		),
	)
}
