// Package store implements the in-memory task store.
//
// The store owns the insertion-ordered task sequence. A task's original
// index is its position in that sequence; deleting a task shifts every
// later index down by one. Display-order concerns live in internal/view,
// which works on snapshots taken from here.
package store

import (
	"sort"
	"strings"
	"sync"

	"dtask/internal/task"
)

// Store holds the ordered task collection for the lifetime of one run.
// Nothing is ever persisted.
type Store struct {
	mu    sync.RWMutex
	tasks []task.Task
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add validates and appends a new undone task.
// The title is trimmed before any check. Empty or whitespace-only titles
// return ErrEmptyTitle; a case-insensitive title collision returns a
// DuplicateTitleError. The store is unchanged on error.
func (s *Store) Add(title string, p task.Priority) (task.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.Task{}, task.ErrEmptyTitle
	}
	if !p.Valid() {
		return task.Task{}, task.ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if strings.EqualFold(t.Title, title) {
			return task.Task{}, &task.DuplicateTitleError{Title: title}
		}
	}

	t := task.New(title, p)
	s.tasks = append(s.tasks, t)
	return t, nil
}

// HasTitle reports whether a task with the given title exists,
// compared case-insensitively on the trimmed title.
func (s *Store) HasTitle(title string) bool {
	title = strings.TrimSpace(title)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if strings.EqualFold(t.Title, title) {
			return true
		}
	}
	return false
}

// Toggle flips the done flag on the task at the given original index.
// Returns the task after the flip.
func (s *Store) Toggle(originalIndex int) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if originalIndex < 0 || originalIndex >= len(s.tasks) {
		return task.Task{}, &task.IndexError{Index: originalIndex, Len: len(s.tasks)}
	}
	s.tasks[originalIndex].Done = !s.tasks[originalIndex].Done
	return s.tasks[originalIndex], nil
}

// Delete removes the task at the given original index. Every task after it
// shifts down by one in original-index space. Returns the removed task.
func (s *Store) Delete(originalIndex int) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if originalIndex < 0 || originalIndex >= len(s.tasks) {
		return task.Task{}, &task.IndexError{Index: originalIndex, Len: len(s.tasks)}
	}
	removed := s.tasks[originalIndex]
	s.tasks = append(s.tasks[:originalIndex], s.tasks[originalIndex+1:]...)
	return removed, nil
}

// Get returns the task at the given original index.
func (s *Store) Get(originalIndex int) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if originalIndex < 0 || originalIndex >= len(s.tasks) {
		return task.Task{}, false
	}
	return s.tasks[originalIndex], true
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Snapshot returns a copy of the current task sequence in original order.
// The view projector works on snapshots so it never holds the lock.
func (s *Store) Snapshot() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// CountDone returns the number of completed tasks.
func (s *Store) CountDone() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// CountUndone returns the number of open tasks.
func (s *Store) CountUndone() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

// Search returns tasks whose title contains the keyword, case-insensitively,
// paired with their original indices. Results are sorted by priority
// ascending; the sort is stable so equal priorities keep insertion order.
// Done and undone tasks both match.
func (s *Store) Search(keyword string) []task.Indexed {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []task.Indexed
	for i, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), keyword) {
			matches = append(matches, task.Indexed{Index: i, Task: t})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Task.Priority < matches[j].Task.Priority
	})
	return matches
}
