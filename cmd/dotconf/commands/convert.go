package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"github.com/0xalexb/dotconf"
)

type convertConfig struct {
	*cli.Command
	logger *slog.Logger

	From string `cli:"name=from desc='source format, json or yaml; default from extension'"`
	To   string `cli:"name=to desc='target format, json or yaml; default from extension'"`
}

// ConvertCommand returns the convert subcommand.
func ConvertCommand(logger *slog.Logger) *cli.Command {
	cfg := &convertConfig{logger: logger}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "convert").
		WithSynopsis("convert <src> <dst> - Rewrite src in the format of dst").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *convertConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	return cfg.exec(cc.Out, args)
}

func (cfg *convertConfig) exec(_ io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: dotconf convert <src> <dst>", cli.ErrUsage)
	}

	src, err := openDocument(args[0], cfg.From, cfg.logger)
	if err != nil {
		return err
	}

	dst, err := openDocument(args[1], cfg.To, cfg.logger)
	if err != nil {
		return err
	}

	return dotconf.Convert(src, dst, true)
}
