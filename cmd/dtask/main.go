// Package main is the entry point for the dtask CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dtask/internal/cli"
	"dtask/internal/commands"
	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/store"
	"dtask/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	fs := flag.NewFlagSet("dtask", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		configDir   string
		quiet       bool
		debug       bool
		fullscreen  bool
		noColor     bool
		showVersion bool
	)
	fs.StringVar(&configDir, "config", "", "override config directory")
	fs.BoolVar(&quiet, "quiet", false, "suppress informational output")
	fs.BoolVar(&debug, "debug", false, "print debug logs to stderr")
	fs.BoolVar(&fullscreen, "tui", false, "start the full-screen interface")
	fs.BoolVar(&noColor, "no-color", false, "disable styled output")
	fs.BoolVar(&showVersion, "version", false, "print version")

	if err := fs.Parse(args); err != nil {
		return exitcode.UserError
	}
	if len(fs.Args()) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Args()[0])
		return exitcode.UserError
	}

	if showVersion {
		fmt.Fprintf(out, "dtask %s\n", commands.Version)
		return exitcode.Success
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	// Flags only tighten the file values; absent flags leave them alone.
	if quiet {
		cfg.Quiet = true
	}
	if debug {
		cfg.Debug = true
	}
	if fullscreen {
		cfg.TUI = true
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	setupLogging(cfg, errOut)

	st := store.New()

	if cfg.TUI {
		if err := tui.Run(cfg, st); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	loop := cli.NewLoop(commands.DefaultRegistry, cfg, st)
	return loop.Run(ctx, in, out, errOut)
}

func setupLogging(cfg *config.Config, errOut io.Writer) {
	if cfg.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		return
	}
	slog.SetDefault(slog.New(slog.DiscardHandler))
}
