// Command linesplit splits a file on line endings into chunks of a maximum size.
//
//	linesplit --bytes N[k|m] <file> [dir]
//
// Chunks are written to dir, or the working directory, as 1_<file>, 2_<file>, ...
// Default options may be given in $LINESPLIT_OPTS, explicit arguments take precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/kballard/go-shellquote"
	"github.com/lanrat/linesplit"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"
)

const (
	version    = "0.1.0"
	envOptions = "LINESPLIT_OPTS"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

type cliOptions struct {
	Help    bool   `getopt:"-h --help          Display this help"`
	Version bool   `getopt:"--version          Print the version and exit"`
	Bytes   string `getopt:"-b --bytes=size    Maximum size of a chunk in bytes, [k|m] may be appended to the end of this number to indicate [k]ilobytes or [m]egabytes"`
	Buffer  int    `getopt:"--buffer=bytes     File IO buffer size used for reading and for each chunk. Default:"`
	Queue   int    `getopt:"--queue=lines      Number of lines buffered between the reader and the writer. Default:"`
	Verbose bool   `getopt:"-v --verbose       Always print a summary on stdERR"`
	Quiet   bool   `getopt:"-q --quiet         Never print a summary"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Getenv(envOptions), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals, it returns the exit code
func run(ctx context.Context, argv []string, envOpts string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "linesplit: ", 0)

	argv, err := withEnvOptions(argv, envOpts)
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	opts, set, err := parseArgs(argv)
	if err != nil {
		logger.Println(err)
		if set != nil {
			set.PrintUsage(stderr)
		}
		return exitUsage
	}
	if opts.Help {
		set.PrintUsage(stdout)
		return exitOK
	}
	if opts.Version {
		fmt.Fprintf(stdout, "linesplit %s\n", version)
		return exitOK
	}

	config, err := opts.config(set.Args())
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	stats, err := linesplit.Split(ctx, config)
	if err != nil {
		logger.Println(err)
		var cfgErr *linesplit.ConfigError
		if errors.As(err, &cfgErr) {
			return exitUsage
		}
		return exitFailure
	}

	if !opts.Quiet && (opts.Verbose || isTTY(stderr)) {
		logger.Printf("wrote %d files, %d lines, %d bytes", len(stats.Files), stats.Lines, stats.Bytes)
		if opts.Verbose {
			for _, name := range stats.Files {
				logger.Println(name)
			}
		}
	}
	return exitOK
}

// withEnvOptions puts the shell-quoted options from env right after the program
// name, so that the ones given on the command line are parsed last and win
func withEnvOptions(argv []string, env string) ([]string, error) {
	if env == "" || len(argv) == 0 {
		return argv, nil
	}
	extra, err := shellquote.Split(env)
	if err != nil {
		return nil, fmt.Errorf("parsing $%s: %w", envOptions, err)
	}
	out := make([]string, 0, len(argv)+len(extra))
	out = append(out, argv[0])
	out = append(out, extra...)
	return append(out, argv[1:]...), nil
}

// parseArgs parses argv, program name included. On error the returned set is
// still usable for printing usage, unless it is nil.
func parseArgs(argv []string) (*cliOptions, *getopt.Set, error) {
	defaults := linesplit.DefaultConfig()
	opts := &cliOptions{
		Buffer: defaults.ReadBufferSize,
		Queue:  defaults.ChanBuffSize,
	}

	// operate over a Set instead of the getopt globals so tests can parse repeatedly
	set := getopt.New()
	if err := options.RegisterSet("", opts, set); err != nil {
		return nil, nil, fmt.Errorf("option set registration failed: %w", err)
	}
	set.SetParameters("file [dir]")
	if len(argv) > 0 {
		set.SetProgram(argv[0])
	}

	if err := set.Getopt(argv, nil); err != nil {
		return opts, set, err
	}
	if opts.Help || opts.Version {
		return opts, set, nil
	}

	args := set.Args()
	switch {
	case len(args) == 0:
		return opts, set, errors.New("a file to split is required")
	case len(args) > 2:
		return opts, set, fmt.Errorf("unexpected free-form parameter(s): %s...", args[2])
	case opts.Bytes == "":
		return opts, set, errors.New("--bytes is required")
	case opts.Verbose && opts.Quiet:
		return opts, set, errors.New("--verbose and --quiet are mutually exclusive")
	}
	return opts, set, nil
}

// config builds the library configuration from parsed options and the
// positional parameters
func (o *cliOptions) config(args []string) (*linesplit.Config, error) {
	size, err := linesplit.ParseByteSize(o.Bytes)
	if err != nil {
		return nil, err
	}
	if o.Buffer <= 0 {
		return nil, fmt.Errorf("--buffer must be positive, got %d", o.Buffer)
	}
	if o.Queue < 0 {
		return nil, fmt.Errorf("--queue must not be negative, got %d", o.Queue)
	}

	config := linesplit.DefaultConfig()
	config.ChunkBytes = size
	config.Source = args[0]
	if len(args) > 1 {
		config.OutputDir = args[1]
	}
	config.ReadBufferSize = o.Buffer
	config.WriteBufferSize = o.Buffer
	config.ChanBuffSize = o.Queue
	return config, nil
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
