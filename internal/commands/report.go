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
	Register(&ReportCmd{})
}

// ReportCmd prints the done/undone counts.
type ReportCmd struct{}

func (c *ReportCmd) Name() string      { return "report" }
func (c *ReportCmd) MenuKey() string   { return "5" }
func (c *ReportCmd) Aliases() []string { return nil }
func (c *ReportCmd) Synopsis() string  { return "Report (done/undone count)" }

func (c *ReportCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	f := output.NewFormatter(cfg.Colorized(output.IsTTY(out)))
	f.Report(out, st.CountDone(), st.CountUndone())
	return exitcode.Success
}
