package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	yamlcodec "github.com/0xalexb/dotconf/codec/yaml"
	"github.com/0xalexb/dotconf/document"
	"github.com/0xalexb/dotconf/fxdoc"
	"github.com/0xalexb/dotconf/tree"
)

func openDocument(path, format string, logger *slog.Logger, opts ...fxdoc.Option) (*document.Document, error) {
	cfg := fxdoc.Config{Path: path, Format: format, Autosave: false, PersistDefaults: nil}

	for _, apply := range opts {
		apply(&cfg)
	}

	doc, err := fxdoc.Open(cfg, discardIfNil(logger))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return doc, nil
}

// parseValue reads a command line value as a YAML node, so "8080" is an
// integer and "[a, b]" a list, unless asString keeps it verbatim.
func parseValue(text string, asString bool) (tree.Value, error) {
	if asString || text == "" {
		return tree.String(text), nil
	}

	v, err := yamlcodec.DecodeValue([]byte(text))
	if err != nil {
		return tree.Value{}, fmt.Errorf("%w: value %q: %w", cli.ErrUsage, text, err)
	}

	return v, nil
}

func printValue(w io.Writer, v tree.Value, output string) error {
	switch output {
	case "", "text":
		_, err := fmt.Fprintln(w, v.String())

		return err
	case "yaml":
		data, err := yamlcodec.EncodeValue(v)
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("%w: unknown output %q, want text or yaml", cli.ErrUsage, output)
	}
}
