// Package cliutil holds plumbing shared by the arena subcommands.
package cliutil

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// EnvLogLevel names the environment variable providing the default log level.
const EnvLogLevel = "ARENA_LOG_LEVEL"

// Exit statuses of the arena command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// LogFlags are the logging flags every subcommand accepts.
type LogFlags struct {
	Level string
}

// Register adds -log_level to fs.
func (f *LogFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Level, "log_level", os.Getenv(EnvLogLevel), "log level: debug, info, warn or error. Defaults to $"+EnvLogLevel+" or info.")
}

// Logger builds a logger writing to w at the configured level.
func (f *LogFlags) Logger(w io.Writer) (*log.Logger, error) {
	return NewLogger(w, f.Level)
}

// NewLogger returns a logger writing to w. An empty level means info.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(err, "bad -log_level %q", level)
		}
		lvl = l
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "arena",
		ReportTimestamp: true,
	}), nil
}

// ExitCode maps the error returned by a subcommand to an exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitUsage
	default:
		return ExitFailure
	}
}
