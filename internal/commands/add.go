package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd prompts for a title and priority and appends a new task.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) MenuKey() string   { return "1" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Add new task" }

func (c *AddCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	title, err := in.Line("Task title: ")
	if err != nil {
		return exitcode.Success
	}

	// Title checks happen before the priority prompt so the user is not
	// asked for a priority the store will throw away.
	title = strings.TrimSpace(title)
	if title == "" {
		fmt.Fprintln(out, "Title cannot be empty.")
		return exitcode.UserError
	}
	if st.HasTitle(title) {
		fmt.Fprintln(out, "Task with this title already exists.")
		return exitcode.UserError
	}

	p, err := in.Priority("Enter priority (1=High, 2=Medium, 3=Low): ")
	if err != nil {
		return exitcode.Success
	}

	t, err := st.Add(title, p)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	slog.Debug("task added", "id", t.ID, "priority", int(t.Priority))
	if !cfg.Quiet {
		fmt.Fprintln(out, "Task added.")
	}
	return exitcode.Success
}
