package commands

import (
	"fmt"
	"io"

	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd prints usage. Reachable by typing "help" at the menu prompt.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) MenuKey() string   { return "" }
func (c *HelpCmd) Aliases() []string { return []string{"?"} }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }

func (c *HelpCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `dtask is an interactive task manager. Tasks live in memory for one run.

Menu options (digits or names both work):
  1, add      Add new task
  2, show     Show all tasks
  3, toggle   Toggle task status
  4, delete   Delete a task
  5, report   Report (done/undone count)
  6, search   Search tasks
  0, exit     Exit

Flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --tui            Start the full-screen interface
  --no-color       Disable styled output
  --version        Print version

Config file (optional): <config-dir>/config.toml with keys
quiet, debug, tui, color ("auto"|"always"|"never"), default_priority.
`
