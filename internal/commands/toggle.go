package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/prompt"
	"dtask/internal/store"
	"dtask/internal/task"
	"dtask/internal/view"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd flips the done flag of a task selected by display number.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) MenuKey() string   { return "3" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Toggle task status" }

func (c *ToggleCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	orig, code, ok := resolveDisplayPrompt(st, in, out, "Enter task number to toggle: ")
	if !ok {
		return code
	}

	t, err := st.Toggle(orig)
	if err != nil {
		// The mapping was freshly built, so this only fires if the caller
		// mutated the store between resolve and toggle.
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	slog.Debug("task toggled", "id", t.ID, "done", t.Done)
	if !cfg.Quiet {
		fmt.Fprintln(out, "Task status updated.")
	}
	return exitcode.Success
}

// resolveDisplayPrompt asks for a display number and resolves it to an
// original index through a freshly computed mapping. The bool result is
// false when the command should stop; code then carries its exit code.
func resolveDisplayPrompt(st *store.Store, in *prompt.Reader, out io.Writer, promptText string) (orig, code int, ok bool) {
	if st.Len() == 0 {
		fmt.Fprintln(out, "No tasks available.")
		return 0, exitcode.Success, false
	}

	n, err := in.Int(promptText)
	if err != nil {
		if errors.Is(err, task.ErrNonNumeric) {
			fmt.Fprintln(out, "Please enter a valid number.")
			return 0, exitcode.UserError, false
		}
		return 0, exitcode.Success, false
	}

	orig, err = view.ResolveDisplayNumber(st.Snapshot(), n)
	if err != nil {
		fmt.Fprintln(out, "Invalid task number.")
		return 0, exitcode.UserError, false
	}
	return orig, exitcode.Success, true
}
