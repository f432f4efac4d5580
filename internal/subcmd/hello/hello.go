// Package hello provides the hello subcommand, a minimal arena caller.
package hello

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/maruel/subcommands"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/internal/cliutil"
)

const usage = `allocate a block and print "hello"

 $ arena hello [-capacity <bytes>] [-size <bytes>]

creates an arena of -capacity bytes, allocates a block of -size bytes,
copies "hello" and a terminating NUL into it and prints the text.
If the arena refuses the block it prints "alloc fail" and exits with 1.
`

var greeting = []byte("hello\x00")

// Cmd returns the Command for the `hello` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "hello [-capacity <bytes>] [-size <bytes>]",
		ShortDesc: `allocate a block and print "hello"`,
		LongDesc:  usage,
		CommandRun: func() subcommands.CommandRun {
			c := &run{}
			c.init()
			return c
		},
	}
}

type run struct {
	subcommands.CommandRunBase

	capacity int
	size     int
	logFlags cliutil.LogFlags
}

func (c *run) init() {
	c.Flags.IntVar(&c.capacity, "capacity", 1024, "arena capacity in bytes")
	c.Flags.IntVar(&c.size, "size", len(greeting), "block size in bytes")
	c.logFlags.Register(&c.Flags)
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: position arguments not expected\n%s", a.GetName(), usage)
		return cliutil.ExitUsage
	}
	logger, err := c.logFlags.Logger(a.GetErr())
	if err != nil {
		fmt.Fprintf(a.GetErr(), "Error: %v\n", err)
		return cliutil.ExitUsage
	}
	return Main(a.GetOut(), a.GetErr(), logger, c.capacity, c.size)
}

// Main runs the hello program against stdout and stderr and returns its
// exit status.
func Main(stdout, stderr io.Writer, logger *log.Logger, capacity, size int) int {
	err := Hello(stdout, logger, capacity, size)
	switch {
	case err == nil:
		return cliutil.ExitOK
	case errors.Is(err, arena.ErrExhausted):
		logger.Debug("block refused", "err", err)
		fmt.Fprintln(stdout, "alloc fail")
		return cliutil.ExitFailure
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cliutil.ExitFailure
	}
}

// Hello creates an arena of capacity bytes, stores the greeting in a block
// of size bytes and writes the text up to the NUL to w.
func Hello(w io.Writer, logger *log.Logger, capacity, size int) error {
	return arena.With(capacity, func(a *arena.Arena) error {
		logger.Debug("arena created", "capacity", a.Capacity())
		b, err := a.Alloc(size)
		if err != nil {
			return errors.Wrapf(err, "alloc %d bytes", size)
		}
		logger.Debug("block allocated", "block", b, "used", a.Used())

		p := b.Bytes()
		text := p[:copy(p, greeting)]
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		_, err = fmt.Fprintf(w, "%s\n", text)
		return err
	})
}
