// Command arena exercises the arena allocator from the command line.
package main

import (
	"os"

	"github.com/maruel/subcommands"

	"github.com/pavanmanishd/arena/v2/internal/subcmd/fill"
	"github.com/pavanmanishd/arena/v2/internal/subcmd/hello"
)

func getApplication() *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "arena",
		Title: "fixed-capacity bump allocator tool",
		Commands: []*subcommands.Command{
			hello.Cmd(),
			fill.Cmd(),
			subcommands.CmdHelp,
		},
	}
}

func main() {
	os.Exit(subcommands.Run(getApplication(), nil))
}
