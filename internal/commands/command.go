// Package commands provides the menu command interface and implementations.
package commands

import (
	"io"

	"dtask/internal/config"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

// Command defines the interface for interactive menu commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// MenuKey returns the single-digit menu key, or "" if the command is
	// not listed on the menu (help, version).
	MenuKey() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns the menu line description.
	Synopsis() string

	// Run executes the command against the store. Sub-prompts read from in;
	// user-facing output goes to out. Every error is handled locally with a
	// message; the returned exit code reports the outcome to tests and
	// never terminates the loop.
	Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int
}
