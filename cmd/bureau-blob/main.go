// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/bureau-blob/lib/config"
	"github.com/bureau-foundation/bureau-blob/lib/version"
)

const binaryName = "bureau-blob"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// command is one subcommand. Flags are registered on a fresh flag set
// per invocation; execute runs after parsing and config resolution.
type command struct {
	name    string
	summary string
	flags   func(*pflag.FlagSet, *options)
	execute func(*invocation) error
}

var commands = []command{
	{
		name:    "encode",
		summary: "encode a JSON (or JSONC/YAML) document as a blob",
		flags:   encodeFlags,
		execute: runEncode,
	},
	{
		name:    "decode",
		summary: "decode a blob and print the JSON value",
		flags:   decodeFlags,
		execute: runDecode,
	},
	{
		name:    "inspect",
		summary: "describe a blob's format, sizes, and content digest",
		flags:   inspectFlags,
		execute: runInspect,
	},
}

// options holds every flag value. Not every command registers every
// flag.
type options struct {
	configPath   string
	verbose      bool
	inputPath    string
	inputFormat  string
	outputFormat string
	pretty       bool
	jsonOutput   bool
}

// invocation is everything a command needs to run.
type invocation struct {
	options *options
	flags   *pflag.FlagSet
	config  *config.Config
	logger  *slog.Logger
	stdin   io.Reader
	stdout  io.Writer
}

// errUsage marks errors that should print usage and exit 2.
var errUsage = errors.New("usage error")

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "--version", "version":
		verbose := slices.Contains(args[1:], "--verbose") || slices.Contains(args[1:], "-v")
		version.Fprint(stdout, binaryName, verbose)
		return exitOK
	case "-h", "--help", "help":
		printUsage(stdout)
		return exitOK
	}

	var selected *command
	for i := range commands {
		if commands[i].name == args[0] {
			selected = &commands[i]
			break
		}
	}
	if selected == nil {
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
		printUsage(stderr)
		return exitUsage
	}

	var opts options
	flagSet := pflag.NewFlagSet(binaryName+" "+selected.name, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "path to config file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flagSet.StringVarP(&opts.inputPath, "input", "i", "-", "read input from this file instead of stdin")
	selected.flags(flagSet, &opts)

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flagSet.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", flagSet.Args())
		return exitUsage
	}

	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	level, _ := cfg.Level()
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(stderr, level).With("command", selected.name)

	if opts.inputPath == "-" && isTerminal(stdin) {
		fmt.Fprintf(stderr, "error: %s reads from stdin; pipe input or pass --input FILE\n\n", selected.name)
		printUsage(stderr)
		return exitUsage
	}

	err = selected.execute(&invocation{
		options: &opts,
		flags:   flagSet,
		config:  cfg,
		logger:  logger,
		stdin:   stdin,
		stdout:  stdout,
	})
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		logger.Error("command failed", "error", err)
		return exitError
	}
	return exitOK
}

// newLogger writes human-readable text when stderr is a terminal and
// JSON records otherwise, so piped output stays machine-parseable.
func newLogger(stderr io.Writer, level slog.Level) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{Level: level}
	if isTerminal(stderr) {
		return slog.New(slog.NewTextHandler(stderr, handlerOptions))
	}
	return slog.New(slog.NewJSONHandler(stderr, handlerOptions))
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// readInput reads the whole input named by --input, or stdin for "-".
func (inv *invocation) readInput() ([]byte, error) {
	if inv.options.inputPath == "-" {
		data, err := io.ReadAll(inv.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(inv.options.inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s <command> [flags]\n\n", binaryName)
	fmt.Fprintf(w, "commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "common flags:\n")
	fmt.Fprintf(w, "  --config FILE   config file (default: $%s)\n", config.EnvironmentVariable)
	fmt.Fprintf(w, "  --input FILE    read input from FILE instead of stdin\n")
	fmt.Fprintf(w, "  --verbose       log at debug level\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Run '%s <command> --help' for command flags.\n", binaryName)
}
