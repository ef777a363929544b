package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"github.com/0xalexb/dotconf/document"
	"github.com/0xalexb/dotconf/tree"
)

type getConfig struct {
	*cli.Command
	logger *slog.Logger

	Format  string `cli:"name=format aliases=f desc='file format, json or yaml; default from extension'"`
	Output  string `cli:"name=output aliases=o desc='output style, text or yaml'"`
	Default string `cli:"name=default aliases=d desc='value returned and stored when path is missing'"`
	Save    bool   `cli:"name=save desc='write a stored default back to the file'"`
}

// GetCommand returns the get subcommand.
func GetCommand(logger *slog.Logger) *cli.Command {
	cfg := &getConfig{logger: logger}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <file> [path] - Print the value at a dotted path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	return cfg.exec(cc.Out, args)
}

func (cfg *getConfig) exec(w io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: usage: dotconf get <file> [path]", cli.ErrUsage)
	}

	doc, err := openDocument(args[0], cfg.Format, cfg.logger)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return printValue(w, tree.Mapping(doc.Root()), cfg.Output)
	}

	v, err := cfg.lookup(doc, args[1])
	if err != nil {
		return err
	}

	return printValue(w, v, cfg.Output)
}

func (cfg *getConfig) lookup(doc *document.Document, path string) (tree.Value, error) {
	if cfg.Default == "" {
		v, err := doc.Get(path)
		if err != nil {
			return tree.Value{}, err
		}

		if v.IsAbsent() {
			return tree.Value{}, fmt.Errorf("%w: %s", document.ErrNotFound, path)
		}

		return v, nil
	}

	def, err := parseValue(cfg.Default, false)
	if err != nil {
		return tree.Value{}, err
	}

	v, err := doc.GetOr(path, def)
	if err != nil {
		return tree.Value{}, err
	}

	if cfg.Save {
		err = doc.Save()
		if err != nil {
			return tree.Value{}, err
		}
	}

	return v, nil
}
