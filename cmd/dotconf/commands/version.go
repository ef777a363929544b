package commands

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/0xalexb/dotconf"
)

type versionConfig struct {
	*cli.Command
}

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	cfg := &versionConfig{}

	return cli.NewCommandAt(&cfg.Command, "version").
		WithSynopsis("version - Print version information").
		WithRun(cfg.run)
}

func (cfg *versionConfig) run(cc *cli.Context, _ []string) error {
	return printVersion(cc.Out)
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "dotconf %s (compiled %s)\n", dotconf.Version, dotconf.CompiledAt)

	return err
}
