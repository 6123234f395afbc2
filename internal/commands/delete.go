package commands

import (
	"fmt"
	"io"
	"log/slog"

	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd removes a task selected by display number. Original indices of
// later tasks shift down by one.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) MenuKey() string   { return "4" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }

func (c *DeleteCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	orig, code, ok := resolveDisplayPrompt(st, in, out, "Enter task number to delete: ")
	if !ok {
		return code
	}

	t, err := st.Delete(orig)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	slog.Debug("task deleted", "id", t.ID, "title", t.Title)
	if !cfg.Quiet {
		fmt.Fprintln(out, "Task deleted.")
	}
	return exitcode.Success
}
