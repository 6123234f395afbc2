package commands

import (
	"fmt"
	"io"
	"strings"

	"dtask/internal/config"
	"dtask/internal/exitcode"
	"dtask/internal/output"
	"dtask/internal/prompt"
	"dtask/internal/store"
)

func init() {
	Register(&SearchCmd{})
}

// SearchCmd finds tasks by a case-insensitive keyword in their title.
// Matches are sorted by priority and include done tasks.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) MenuKey() string   { return "6" }
func (c *SearchCmd) Aliases() []string { return []string{"find"} }
func (c *SearchCmd) Synopsis() string  { return "Search tasks" }

func (c *SearchCmd) Run(cfg *config.Config, st *store.Store, in *prompt.Reader, out, errOut io.Writer) int {
	keyword, err := in.Line("Enter keyword to search: ")
	if err != nil {
		return exitcode.Success
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		fmt.Fprintln(out, "Keyword cannot be empty.")
		return exitcode.UserError
	}

	f := output.NewFormatter(cfg.Colorized(output.IsTTY(out)))
	f.SearchResults(out, st.Search(keyword))
	return exitcode.Success
}
