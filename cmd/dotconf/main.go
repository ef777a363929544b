package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/0xalexb/dotconf/cmd/dotconf/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
