// Package output provides writer-based renderers for task views.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"dtask/internal/task"
	"dtask/internal/view"
)

// Formatter renders task views to a writer. With color disabled the output
// is plain bytes, which is what the golden tests pin.
type Formatter struct {
	color   bool
	heading lipgloss.Style
	open    lipgloss.Style
	closed  lipgloss.Style
}

// NewFormatter creates a formatter. Styles are only applied when color is
// enabled.
func NewFormatter(color bool) *Formatter {
	f := &Formatter{color: color}
	if color {
		f.heading = lipgloss.NewStyle().Bold(true)
		f.open = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		f.closed = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return f
}

// Grouped writes the full grouped task view: undone tasks first, done tasks
// after, each group sorted by priority with display numbers running
// continuously across the groups.
func (f *Formatter) Grouped(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	undone, done := view.Grouped(tasks)

	fmt.Fprintln(w)
	fmt.Fprintln(w, f.head("Tasks:"))

	if len(undone) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.head("Undone:"))
		for i, e := range undone {
			fmt.Fprintln(w, f.line(i+1, e.Task))
		}
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No undone tasks.")
	}

	if len(done) > 0 {
		start := len(undone) + 1
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.head("Done:"))
		for i, e := range done {
			fmt.Fprintln(w, f.line(start+i, e.Task))
		}
	}
}

// Report writes the done/undone count line.
func (f *Formatter) Report(w io.Writer, done, undone int) {
	fmt.Fprintf(w, "Done: %d | Undone: %d\n", done, undone)
}

// SearchResults writes keyword matches renumbered from 1 in match order.
func (f *Formatter) SearchResults(w io.Writer, matches []task.Indexed) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No tasks found for this keyword.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, f.head("Search results:"))
	for i, e := range matches {
		fmt.Fprintln(w, f.line(i+1, e.Task))
	}
}

func (f *Formatter) head(s string) string {
	if !f.color {
		return s
	}
	return f.heading.Render(s)
}

func (f *Formatter) line(pos int, t task.Task) string {
	s := view.FormatLine(pos, t)
	if !f.color {
		return s
	}
	if t.Done {
		return f.closed.Render(s)
	}
	return f.open.Render(s)
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
