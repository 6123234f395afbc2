package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtask/internal/config"
	"dtask/internal/store"
	"dtask/internal/task"
)

func newTestModel(t *testing.T, titles ...string) (Model, *store.Store) {
	t.Helper()

	cfg := &config.Config{
		Color:           config.ColorNever,
		DefaultPriority: int(task.PriorityMedium),
	}
	st := store.New()
	priorities := []task.Priority{task.PriorityMedium, task.PriorityHigh, task.PriorityLow}
	for i, title := range titles {
		_, err := st.Add(title, priorities[i%len(priorities)])
		require.NoError(t, err)
	}
	return NewModel(cfg, st), st
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func typeText(t *testing.T, m Model, s string) Model {
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func enter(t *testing.T, m Model) Model {
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestAddFlow(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "a")
	m = typeText(t, m, "Buy milk")
	m = enter(t, m)
	m = typeText(t, m, "1")
	m = enter(t, m)

	require.Equal(t, 1, st.Len())
	got, _ := st.Get(0)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, task.PriorityHigh, got.Priority)
	assert.Contains(t, m.status, `Added "Buy milk"`)
	assert.Equal(t, modeList, m.mode)
}

func TestAddFlow_EmptyTitle(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "a")
	m = enter(t, m)

	assert.Equal(t, "Title cannot be empty.", m.status)
	assert.Equal(t, modeAddTitle, m.mode, "should stay in title entry")
	assert.Equal(t, 0, st.Len())
}

func TestAddFlow_DuplicateTitle(t *testing.T) {
	m, st := newTestModel(t, "Buy milk")

	m = typeText(t, m, "a")
	m = typeText(t, m, "BUY MILK")
	m = enter(t, m)

	assert.Equal(t, "Task with this title already exists.", m.status)
	assert.Equal(t, 1, st.Len())
}

func TestAddFlow_EmptyPriorityUsesDefault(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "a")
	m = typeText(t, m, "Buy milk")
	m = enter(t, m)
	m = enter(t, m)

	require.Equal(t, 1, st.Len())
	got, _ := st.Get(0)
	assert.Equal(t, task.PriorityMedium, got.Priority)
}

func TestAddFlow_InvalidPriority(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "a")
	m = typeText(t, m, "Buy milk")
	m = enter(t, m)
	m = typeText(t, m, "9")
	m = enter(t, m)

	assert.Equal(t, "Priority must be 1, 2 or 3.", m.status)
	assert.Equal(t, modeAddPriority, m.mode, "should stay in priority entry")
	assert.Equal(t, 0, st.Len())
}

func TestAddFlow_EscCancels(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "a")
	m = typeText(t, m, "Buy milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 0, st.Len())
}

func TestToggle_UsesDisplayOrder(t *testing.T) {
	// Insertion: Buy milk (2) at index 0, Call mom (1) at index 1.
	// Display order puts Call mom first, so the cursor at the top must
	// toggle index 1.
	m, st := newTestModel(t, "Buy milk", "Call mom")

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	got, _ := st.Get(1)
	assert.Equal(t, "Call mom", got.Title)
	assert.True(t, got.Done)
	got, _ = st.Get(0)
	assert.False(t, got.Done)
	assert.Contains(t, m.status, "Toggled")
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	m, st := newTestModel(t, "Buy milk")

	m = typeText(t, m, "d")
	assert.Contains(t, m.status, `Delete "Buy milk"?`)

	m = typeText(t, m, "n")
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, "Cancelled", m.status)

	m = typeText(t, m, "d")
	m = typeText(t, m, "y")
	assert.Equal(t, 0, st.Len())
	assert.Contains(t, m.status, "Deleted")
}

func TestSearchFilter(t *testing.T) {
	m, _ := newTestModel(t, "Buy milk", "Call mom")

	m = typeText(t, m, "/")
	m = typeText(t, m, "mom")
	m = enter(t, m)

	assert.Equal(t, "mom", m.filter)
	require.Len(t, m.entries(), 1)
	assert.Equal(t, "Call mom", m.entries()[0].Task.Title)

	view := m.View()
	assert.Contains(t, view, "Call mom")
	assert.NotContains(t, view, "Buy milk")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.filter)
	assert.Len(t, m.entries(), 2)
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C")

	assert.Equal(t, 0, m.cursor)
	m = typeText(t, m, "k")
	assert.Equal(t, 0, m.cursor, "cursor stops at the top")

	m = typeText(t, m, "j")
	m = typeText(t, m, "j")
	m = typeText(t, m, "j")
	assert.Equal(t, 2, m.cursor, "cursor stops at the bottom")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_GroupsAndMarksCursor(t *testing.T) {
	m, st := newTestModel(t, "Buy milk", "Call mom")
	_, err := st.Toggle(0)
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "Undone")
	assert.Contains(t, view, "Done")
	assert.Contains(t, view, "1. [ ] Call mom (Priority: 1)")
	assert.Contains(t, view, "2. [x] Buy milk (Priority: 2)")
}

func TestView_Empty(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No tasks yet.")
}
