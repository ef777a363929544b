// Package commands implements the dotconf command line.
package commands

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/0xalexb/dotconf/logging"
)

const usageText = `dotconf - read and edit JSON and YAML files by dotted path

Usage:
  dotconf get <file> [path]               Print the value at path (whole file without path)
  dotconf set <file> <path> <value>       Store a value, parsed as YAML unless --string
  dotconf unset <file> <path>             Remove the value at path
  dotconf keys <file> [path]              List the keys of the mapping at path
  dotconf convert <src> <dst>             Rewrite a file in the format of another
  dotconf version                         Print version information

Examples:
  dotconf get app.yaml server.port
  dotconf get app.yaml server.port --default 8080 --save
  dotconf set app.json server.hosts '[a, b]'
  dotconf set app.json server.port 8080 --string
  dotconf unset app.yaml features.beta
  dotconf convert app.json app.yaml`

// Root returns the root command for dotconf.
func Root() *cli.Command {
	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  os.Getenv("DOTCONF_LOG_LEVEL"),
		Format: logFormat(os.Stderr.Fd()),
	}, os.Stderr)

	return cli.NewCommand("dotconf").
		WithSynopsis("dotconf - dotted-path access to JSON and YAML files").
		WithDescription(usageText).
		WithSubs(
			GetCommand(logger),
			SetCommand(logger),
			UnsetCommand(logger),
			KeysCommand(logger),
			ConvertCommand(logger),
			VersionCommand(),
		)
}

// logFormat picks text output for terminals and JSON when stderr is piped.
func logFormat(fd uintptr) string {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "text"
	}

	return "json"
}

func discardIfNil(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return logging.Discard()
	}

	return logger
}
