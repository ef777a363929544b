package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"
)

type setConfig struct {
	*cli.Command
	logger *slog.Logger

	Format   string `cli:"name=format aliases=f desc='file format, json or yaml; default from extension'"`
	AsString bool   `cli:"name=string aliases=s desc='store the value as a string instead of parsing it'"`
}

// SetCommand returns the set subcommand.
func SetCommand(logger *slog.Logger) *cli.Command {
	cfg := &setConfig{logger: logger}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "set").
		WithSynopsis("set <file> <path> <value> - Store a value and save the file").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *setConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	return cfg.exec(cc.Out, args)
}

func (cfg *setConfig) exec(_ io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: dotconf set <file> <path> <value>", cli.ErrUsage)
	}

	v, err := parseValue(args[2], cfg.AsString)
	if err != nil {
		return err
	}

	doc, err := openDocument(args[0], cfg.Format, cfg.logger)
	if err != nil {
		return err
	}

	err = doc.Set(args[1], v)
	if err != nil {
		return err
	}

	return doc.Save()
}
