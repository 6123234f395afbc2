// Package task defines the task value type and shared error values.
package task

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency of a task. 1 is the highest urgency.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Valid reports whether p is one of the three allowed levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Label returns the human name for the priority level.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return strconv.Itoa(int(p))
	}
}

// ParsePriority parses user input into a priority.
// Non-numeric input returns ErrNonNumeric; numbers outside {1,2,3} return
// ErrInvalidPriority, so callers can word the two retry messages differently.
func ParsePriority(s string) (Priority, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNonNumeric
	}
	p := Priority(n)
	if !p.Valid() {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

// Task is a single task record.
//
// ID is assigned at creation and used for log correlation only; user-visible
// lookup always goes through original indices and the display mapping.
type Task struct {
	ID        string
	Title     string
	Done      bool
	Priority  Priority
	CreatedAt time.Time
}

// New creates an undone task with a fresh ID.
// The title is stored as given; validation belongs to the store.
func New(title string, p Priority) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Priority:  p,
		CreatedAt: time.Now().UTC(),
	}
}

// Indexed pairs a task with its original index in the store.
type Indexed struct {
	Index int
	Task  Task
}
