// Package tui provides the optional full-screen interface.
//
// It is a second front end over the same store and view projector as the
// menu loop: every mutation resolves through the display mapping, so index
// semantics are identical in both modes.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dtask/internal/config"
	"dtask/internal/output"
	"dtask/internal/store"
	"dtask/internal/task"
	"dtask/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAddTitle
	modeAddPriority
	modeSearch
)

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	status   lipgloss.Style
	footer   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		done:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Model is the bubbletea model for the full-screen interface.
type Model struct {
	cfg    *config.Config
	store  *store.Store
	input  textinput.Model
	styles styles

	mode         mode
	cursor       int
	status       string
	filter       string
	pendingTitle string
	confirmDel   bool
}

// Run starts the full-screen interface. Requires a TTY.
func Run(cfg *config.Config, st *store.Store) error {
	if !output.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	program := tea.NewProgram(NewModel(cfg, st), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// NewModel creates the initial model.
func NewModel(cfg *config.Config, st *store.Store) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		cfg:    cfg,
		store:  st,
		input:  ti,
		styles: newStyles(),
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		switch m.mode {
		case modeAddTitle, modeAddPriority, modeSearch:
			return m.updateInputMode(msg)
		default:
			return m.updateListMode(msg.String())
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// entries returns what the list shows: the display-ordered grouped view, or
// the priority-sorted search matches when a filter is active. Either way
// each entry carries its original index, so mutations never depend on the
// cursor's on-screen position.
func (m Model) entries() []task.Indexed {
	if m.filter != "" {
		return m.store.Search(m.filter)
	}
	undone, done := view.Grouped(m.store.Snapshot())
	return append(undone, done...)
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.entries()))
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.entries()))
	case "a":
		m.mode = modeAddTitle
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case " ", "t":
		ents := m.entries()
		if len(ents) == 0 {
			m.status = "No tasks"
			return m, nil
		}
		e := ents[m.cursor]
		t, err := m.store.Toggle(e.Index)
		if err != nil {
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, len(m.entries()))
		m.status = fmt.Sprintf("Toggled %q", t.Title)
	case "d":
		ents := m.entries()
		if len(ents) == 0 {
			m.status = "No tasks"
			return m, nil
		}
		m.confirmDel = true
		m.status = fmt.Sprintf("Delete %q? y/n", ents[m.cursor].Task.Title)
	case "i":
		ents := m.entries()
		if len(ents) == 0 {
			m.status = "No tasks"
			return m, nil
		}
		t := ents[m.cursor].Task
		m.status = fmt.Sprintf("%s • %s • created %s",
			t.ID, t.Priority.Label(), t.CreatedAt.Format("2006-01-02 15:04"))
	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Keyword"
		m.input.SetValue(m.filter)
		m.input.Focus()
		m.status = "Search: type a keyword and press Enter (empty clears)"
	case "esc", "r":
		if m.filter != "" {
			m.filter = ""
			m.cursor = 0
			m.status = "Filter cleared"
		}
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	m.confirmDel = false
	if key != "y" {
		m.status = "Cancelled"
		return m, nil
	}

	ents := m.entries()
	if len(ents) == 0 {
		m.status = "No tasks"
		return m, nil
	}
	t, err := m.store.Delete(ents[m.cursor].Index)
	if err != nil {
		m.status = fmt.Sprintf("delete failed: %v", err)
		return m, nil
	}
	m.cursor = clampCursor(m.cursor, len(m.entries()))
	m.status = fmt.Sprintf("Deleted %q", t.Title)
	return m, nil
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		return m.submitInput()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddTitle:
		if value == "" {
			m.status = "Title cannot be empty."
			return m, nil
		}
		if m.store.HasTitle(value) {
			m.status = "Task with this title already exists."
			return m, nil
		}
		m.pendingTitle = value
		m.mode = modeAddPriority
		m.input.SetValue("")
		m.input.Placeholder = fmt.Sprintf("Priority 1-3 (default %d)", m.cfg.DefaultPriority)
		return m, nil

	case modeAddPriority:
		p := task.Priority(m.cfg.DefaultPriority)
		if value != "" {
			parsed, err := task.ParsePriority(value)
			if err != nil {
				m.status = "Priority must be 1, 2 or 3."
				return m, nil
			}
			p = parsed
		}
		t, err := m.store.Add(m.pendingTitle, p)
		if err != nil {
			m.status = fmt.Sprintf("add failed: %v", err)
		} else {
			m.status = fmt.Sprintf("Added %q", t.Title)
		}
		m.pendingTitle = ""
		m.leaveInput()
		return m, nil

	case modeSearch:
		m.filter = value
		m.cursor = 0
		if value == "" {
			m.status = "Filter cleared"
		} else {
			m.status = fmt.Sprintf("Filtering by %q", value)
		}
		m.leaveInput()
		return m, nil
	}
	return m, nil
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Daily Task Manager"))
	b.WriteString("\n\n")

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Search: %q (esc clears)\n\n", m.filter))
		b.WriteString(m.renderFlat())
	} else {
		b.WriteString(m.renderGrouped())
	}

	if m.mode != modeList {
		b.WriteString("\n")
		b.WriteString(m.inputLabel())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.styles.footer.Render("a add • space toggle • d delete • i info • / search • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) inputLabel() string {
	switch m.mode {
	case modeAddTitle:
		return "Title:"
	case modeAddPriority:
		return "Priority (1=High, 2=Medium, 3=Low):"
	case modeSearch:
		return "Keyword:"
	}
	return ""
}

func (m Model) renderGrouped() string {
	tasks := m.store.Snapshot()
	if len(tasks) == 0 {
		return "No tasks yet. Press 'a' to add one.\n"
	}

	undone, done := view.Grouped(tasks)

	var b strings.Builder
	pos := 0
	if len(undone) > 0 {
		b.WriteString(m.styles.section.Render("Undone"))
		b.WriteString("\n")
		pos = m.renderEntries(&b, undone, pos)
	}
	if len(done) > 0 {
		if len(undone) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.section.Render("Done"))
		b.WriteString("\n")
		m.renderEntries(&b, done, pos)
	}
	return b.String()
}

func (m Model) renderFlat() string {
	ents := m.entries()
	if len(ents) == 0 {
		return "No matches.\n"
	}
	var b strings.Builder
	m.renderEntries(&b, ents, 0)
	return b.String()
}

// renderEntries writes one line per entry, continuing display numbering
// from pos. Returns the next position.
func (m Model) renderEntries(b *strings.Builder, ents []task.Indexed, pos int) int {
	for _, e := range ents {
		pos++
		line := view.FormatLine(pos, e.Task)
		marker := "  "
		if m.cursorMatches(pos) {
			marker = "> "
			line = m.styles.selected.Render(line)
		} else if e.Task.Done {
			line = m.styles.done.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return pos
}

// cursorMatches maps the 0-based cursor onto 1-based display positions.
// When a filter is active the flat list restarts at 1, so the same rule
// applies.
func (m Model) cursorMatches(pos int) bool {
	return m.cursor == pos-1
}

func clampCursor(cursor, length int) int {
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		if length == 0 {
			return 0
		}
		return length - 1
	}
	return cursor
}
