// tuplegen writes the arity-specific source files of the tuple and
// tuplefunc packages. It is run by go generate:
//
//	go run ../cmd/tuplegen --kind tuple --out tuple_gen.go
//
// With no --out flag the source is written to standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/tuplekit/tuplekit/internal/tuplegen"
)

const version = "v0.1.0"

// usageError marks errors caused by bad command-line arguments.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func (usageError) ExitCode() int {
	return 2
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "tuplegen: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := tuplegen.DefaultConfig()
	var (
		kindName    string
		outPath     string
		verbose     bool
		showVersion bool
	)
	flagSet := pflag.NewFlagSet("tuplegen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&kindName, "kind", string(tuplegen.KindTuple), "kind of file to generate (tuple, cat, split, tuplefunc)")
	flagSet.StringVarP(&outPath, "out", "o", "", "output file (default standard output)")
	flagSet.StringVar(&cfg.Package, "package", "", "package name (default depends on kind)")
	flagSet.IntVar(&cfg.MaxArity, "max-arity", cfg.MaxArity, "largest tuple arity")
	flagSet.IntVar(&cfg.MaxSplit, "max-split", cfg.MaxSplit, "largest arity for which Split functions are generated")
	flagSet.IntVar(&cfg.MaxFunc, "max-func", cfg.MaxFunc, "largest argument and result count for tuplefunc conversions")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError{err}
	}
	if showVersion {
		fmt.Fprintf(stdout, "tuplegen %s\n", version)
		return nil
	}
	if flagSet.NArg() > 0 {
		return usageError{fmt.Errorf("unexpected arguments %q", flagSet.Args())}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	kind, err := tuplegen.ParseKind(kindName)
	if err != nil {
		return usageError{err}
	}
	if err := cfg.Validate(kind); err != nil {
		return usageError{err}
	}
	logger.Debug("generating",
		"kind", kind,
		"max_arity", cfg.MaxArity,
		"max_split", cfg.MaxSplit,
		"max_func", cfg.MaxFunc,
	)
	src, err := tuplegen.Generate(kind, cfg)
	if err != nil {
		return err
	}
	if outPath == "" {
		_, err := stdout.Write(src)
		return err
	}
	if err := os.WriteFile(outPath, src, 0o666); err != nil {
		return fmt.Errorf("cannot write generated source: %w", err)
	}
	logger.Debug("wrote generated source", "path", outPath, "bytes", len(src))
	return nil
}
