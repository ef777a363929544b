package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

type keysConfig struct {
	*cli.Command
	logger *slog.Logger

	Format string `cli:"name=format aliases=f desc='file format, json or yaml; default from extension'"`
	Color  bool   `cli:"name=color desc='highlight keys holding nested mappings'"`
}

// KeysCommand returns the keys subcommand.
func KeysCommand(logger *slog.Logger) *cli.Command {
	cfg := &keysConfig{logger: logger}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "keys").
		WithSynopsis("keys <file> [path] - List mapping keys in file order").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *keysConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	return cfg.exec(cc.Out, args)
}

func (cfg *keysConfig) exec(w io.Writer, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: usage: dotconf keys <file> [path]", cli.ErrUsage)
	}

	doc, err := openDocument(args[0], cfg.Format, cfg.logger)
	if err != nil {
		return err
	}

	section := doc.Root()

	if len(args) == 2 {
		section, err = doc.Dictionary(args[1])
		if err != nil {
			return err
		}
	}

	highlight := color.New(color.FgCyan, color.Bold)
	highlight.EnableColor()

	for key, v := range section.All() {
		line := key
		if _, nested := v.AsMap(); nested && cfg.Color {
			line = highlight.Sprint(key)
		}

		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}

	return nil
}
