// Package cli runs the interactive menu loop.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dtask/internal/commands"
	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

// Loop drives the menu until the user exits. Each command runs to
// completion before the next prompt; nothing the user types can terminate
// the process except the exit command or end of input.
type Loop struct {
	registry *commands.Registry
	cfg      *config.Config
	store    *store.Store
}

// NewLoop creates a loop over the given registry, config and store.
func NewLoop(registry *commands.Registry, cfg *config.Config, st *store.Store) *Loop {
	return &Loop{
		registry: registry,
		cfg:      cfg,
		store:    st,
	}
}

// Run reads menu choices from in until exit, EOF, or context cancellation.
// Returns the process exit code.
func (l *Loop) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	r := prompt.New(in, out)

	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}

		l.printMenu(out)

		line, err := r.Line("Select an option (0-6): ")
		if err != nil {
			// End of input is an exit request, not a failure.
			fmt.Fprintln(out)
			return exitcode.Success
		}

		choice := strings.TrimSpace(line)
		if choice == "" {
			continue
		}
		if isExit(choice) {
			fmt.Fprintln(out, "Exiting. Goodbye!")
			return exitcode.Success
		}

		cmd, ok := l.lookup(choice)
		if !ok {
			if _, err := strconv.Atoi(choice); err != nil {
				fmt.Fprintln(out, "Please enter a valid number.")
			} else {
				fmt.Fprintln(out, "Invalid option. Try again.")
			}
			continue
		}

		cmd.Run(l.cfg, l.store, r, out, errOut)
	}
}

func (l *Loop) printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Daily Task Manager ---")
	for _, cmd := range l.registry.Menu() {
		fmt.Fprintf(out, "%s - %s\n", cmd.MenuKey(), cmd.Synopsis())
	}
	fmt.Fprintln(out, "0 - Exit")
}

// lookup resolves a menu choice: digit keys first, then command names and
// aliases, case-insensitively.
func (l *Loop) lookup(choice string) (commands.Command, bool) {
	if cmd, ok := l.registry.FindByKey(choice); ok {
		return cmd, true
	}
	return l.registry.Find(strings.ToLower(choice))
}

func isExit(choice string) bool {
	switch strings.ToLower(choice) {
	case "0", "exit", "quit", "q":
		return true
	}
	return false
}
