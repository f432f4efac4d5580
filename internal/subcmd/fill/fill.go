// Package fill provides the fill subcommand, which packs payload words into
// arenas until they are exhausted and reports how well the space was used.
package fill

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/maruel/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/internal/cliutil"
)

const usage = `pack words into arenas until they are full

 $ arena fill [-capacity <bytes>] [-workers <n>] [-words <n>] [-stdin] [-out <file.zst>]

Each worker takes its own arena from a shared pool and copies payload
words into it, back to back, until a word no longer fits or the words run
out. Payload words are generated with go-faker, or read one per line from
stdin with -stdin.

With -out, the used region of worker 0's arena is written to the file,
zstd-compressed.
`

// Cmd returns the Command for the `fill` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "fill [-capacity <bytes>] [-workers <n>] [-words <n>] [-stdin] [-out <file.zst>]",
		ShortDesc: "pack words into arenas until they are full",
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

	cfg      Config
	stdin    bool
	logFlags cliutil.LogFlags
}

func (c *run) init() {
	c.Flags.IntVar(&c.cfg.Capacity, "capacity", 64<<10, "arena capacity in bytes")
	c.Flags.IntVar(&c.cfg.Workers, "workers", 4, "number of workers, each with its own arena")
	c.Flags.IntVar(&c.cfg.Words, "words", 10000, "number of generated payload words; ignored with -stdin")
	c.Flags.BoolVar(&c.stdin, "stdin", false, "read payload words from stdin, one per line")
	c.Flags.StringVar(&c.cfg.Out, "out", "", "write worker 0's used region, zstd-compressed, to this file")
	c.logFlags.Register(&c.Flags)
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	err := c.run(context.Background(), a.GetOut(), a.GetErr(), args)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fmt.Fprintf(a.GetErr(), "%v\n%s\n", err, usage)
		default:
			fmt.Fprintf(a.GetErr(), "Error: %v\n", err)
		}
	}
	return cliutil.ExitCode(err)
}

func (c *run) run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	if len(args) != 0 {
		return errors.Wrapf(flag.ErrHelp, "position arguments not expected: %q", args)
	}
	logger, err := c.logFlags.Logger(stderr)
	if err != nil {
		return errors.Mark(err, flag.ErrHelp)
	}
	if !c.stdin && c.cfg.Words < 0 {
		return errors.Wrapf(flag.ErrHelp, "-words must not be negative, got %d", c.cfg.Words)
	}
	logger = logger.With("run", uuid.NewString())

	var words []string
	if c.stdin {
		words, err = ReadWords(os.Stdin)
		if err != nil {
			return err
		}
	} else {
		words = GenerateWords(c.cfg.Words)
	}
	logger.Debug("payload ready", "words", len(words))

	results, err := Fill(ctx, logger, c.cfg, words)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(stdout, r)
	}
	return nil
}

// Config controls a Fill run.
type Config struct {
	Capacity int    // capacity of each worker's arena
	Workers  int    // number of concurrent workers
	Words    int    // number of generated words
	Out      string // optional dump path for worker 0
}

// Result reports one worker's arena after packing.
type Result struct {
	Worker    int
	Packed    int  // words copied into the arena
	Exhausted bool // true when a word was refused
	Metrics   arena.ArenaMetrics
}

func (r Result) String() string {
	state := "words exhausted"
	if r.Exhausted {
		state = "arena full"
	}
	return fmt.Sprintf("worker %d: packed %d words, %d/%d bytes (%.1f%%), %s",
		r.Worker, r.Packed, r.Metrics.Used, r.Metrics.Capacity, r.Metrics.Utilization*100, state)
}

// GenerateWords returns n random words.
func GenerateWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = faker.Word()
	}
	return words
}

// ReadWords reads one word per non-empty line from r.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := s.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read words")
	}
	return words, nil
}

// Fill runs cfg.Workers workers, each packing words into its own arena
// starting at a different word, and returns one Result per worker.
func Fill(ctx context.Context, logger *log.Logger, cfg Config, words []string) ([]Result, error) {
	if cfg.Workers <= 0 {
		return nil, errors.Wrapf(flag.ErrHelp, "-workers must be positive, got %d", cfg.Workers)
	}
	pool, err := arena.NewPool(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	results := make([]Result, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			a, err := pool.Get()
			if err != nil {
				return errors.Wrapf(err, "worker %d", w)
			}
			defer pool.Put(a)

			r, err := Pack(ctx, a, words, w)
			if err != nil {
				return errors.Wrapf(err, "worker %d", w)
			}
			r.Worker = w
			results[w] = r
			logger.Info("worker done",
				"worker", w,
				"packed", r.Packed,
				"used", r.Metrics.Used,
				"capacity", r.Metrics.Capacity,
				"exhausted", r.Exhausted)

			if w == 0 && cfg.Out != "" {
				n, err := DumpFile(cfg.Out, a)
				if err != nil {
					return err
				}
				logger.Info("dump written", "path", cfg.Out, "bytes", n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Pack copies words into a, starting at words[start%len(words)] and
// wrapping around, until a word does not fit or every word was copied once.
func Pack(ctx context.Context, a *arena.Arena, words []string, start int) (Result, error) {
	var r Result
	for i := range words {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		_, err := a.CopyString(words[(start+i)%len(words)])
		if errors.Is(err, arena.ErrExhausted) {
			r.Exhausted = true
			break
		}
		if err != nil {
			return r, err
		}
		r.Packed++
	}
	r.Metrics = a.Metrics()
	return r, nil
}

// Dump writes the used region of a to w, zstd-compressed.
func Dump(w io.Writer, a *arena.Arena) (int64, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return 0, errors.Wrap(err, "zstd writer")
	}
	n, err := a.WriteTo(enc)
	if err != nil {
		enc.Close()
		return n, err
	}
	if err := enc.Close(); err != nil {
		return n, errors.Wrap(err, "zstd close")
	}
	return n, nil
}

// DumpFile is Dump into a newly created file at path.
func DumpFile(path string, a *arena.Arena) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "create dump")
	}
	n, err := Dump(f, a)
	if err != nil {
		f.Close()
		return n, err
	}
	return n, errors.Wrap(f.Close(), "close dump")
}
