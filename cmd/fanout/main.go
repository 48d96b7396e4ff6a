// Command fanout runs the delay, generator and nested-map helpers from the
// terminal.
//
//	fanout wait -n 5 -max 10
//	fanout generate -count 10
//	fanout measure -parallel 4
//	fanout get -json '{"a": {"b": 2}}' a b
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold)
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

var commands = []command{
	{"wait", "run n random delays concurrently and list them in completion order", runWait},
	{"generate", "collect values from the paced random generator", runGenerate},
	{"measure", "time parallel generator collections", runMeasure},
	{"get", "read a value out of a JSON object by key path", runGet},
}

func main() {
	enableWindowsANSI()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name := os.Args[1]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(ctx, os.Args[2:]); err != nil {
			_, _ = red.Fprintf(os.Stderr, "Error: %v\n", err)
			stop()
			os.Exit(1)
		}
		return
	}

	_, _ = red.Fprintf(os.Stderr, "Unknown command %q\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	_, _ = bold.Fprintln(os.Stderr, "Usage: fanout <command> [flags]")
	fmt.Fprintln(os.Stderr)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.usage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
