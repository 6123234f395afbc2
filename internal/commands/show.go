package commands

import (
	"io"

	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/output"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd renders the grouped task view: undone tasks first, done tasks
// after, each group sorted by priority.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) MenuKey() string   { return "2" }
func (c *ShowCmd) Aliases() []string { return []string{"list"} }
func (c *ShowCmd) Synopsis() string  { return "Show all tasks" }

func (c *ShowCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	f := output.NewFormatter(cfg.Colorized(output.IsTTY(out)))
	f.Grouped(out, st.Snapshot())
	return exitcode.Success
}
