package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"
)

type unsetConfig struct {
	*cli.Command
	logger *slog.Logger

	Format string `cli:"name=format aliases=f desc='file format, json or yaml; default from extension'"`
}

// UnsetCommand returns the unset subcommand.
func UnsetCommand(logger *slog.Logger) *cli.Command {
	cfg := &unsetConfig{logger: logger}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "unset").
		WithSynopsis("unset <file> <path> - Remove a value and save the file").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *unsetConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	return cfg.exec(cc.Out, args)
}

func (cfg *unsetConfig) exec(_ io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: dotconf unset <file> <path>", cli.ErrUsage)
	}

	doc, err := openDocument(args[0], cfg.Format, cfg.logger)
	if err != nil {
		return err
	}

	err = doc.Delete(args[1])
	if err != nil {
		return err
	}

	return doc.Save()
}
