// Package view derives display orderings for the task store.
//
// All functions are pure over a snapshot of the store: the display mapping
// is recomputed on every call and never cached, so a number typed by the
// user always resolves against the store contents that produced the prompt.
package view

import (
	"errors"
	"fmt"
	"sort"

	"dtask/internal/task"
)

// ErrOutOfRange is returned when a display number falls outside the
// current mapping.
var ErrOutOfRange = errors.New("display number out of range")

// Grouped partitions the snapshot into undone and done groups, each sorted
// by priority ascending. The sort is stable, so tasks with equal priority
// keep their original-index order within a group.
func Grouped(tasks []task.Task) (undone, done []task.Indexed) {
	indexed := make([]task.Indexed, len(tasks))
	for i, t := range tasks {
		indexed[i] = task.Indexed{Index: i, Task: t}
	}
	sort.SliceStable(indexed, func(i, j int) bool {
		return indexed[i].Task.Priority < indexed[j].Task.Priority
	})

	for _, e := range indexed {
		if e.Task.Done {
			done = append(done, e)
		} else {
			undone = append(undone, e)
		}
	}
	return undone, done
}

// DisplayMapping returns the sequence of original indices in display order:
// the undone group followed by the done group, as produced by Grouped.
// Displayed position n corresponds to mapping[n-1].
func DisplayMapping(tasks []task.Task) []int {
	undone, done := Grouped(tasks)

	mapping := make([]int, 0, len(tasks))
	for _, e := range undone {
		mapping = append(mapping, e.Index)
	}
	for _, e := range done {
		mapping = append(mapping, e.Index)
	}
	return mapping
}

// ResolveDisplayNumber translates a 1-based display number into an original
// index, valid iff 1 <= n <= len(mapping).
func ResolveDisplayNumber(tasks []task.Task, n int) (int, error) {
	mapping := DisplayMapping(tasks)
	if n < 1 || n > len(mapping) {
		return 0, ErrOutOfRange
	}
	return mapping[n-1], nil
}

// FormatLine renders one task at its display position.
func FormatLine(pos int, t task.Task) string {
	status := " "
	if t.Done {
		status = "x"
	}
	return fmt.Sprintf("%d. [%s] %s (Priority: %d)", pos, status, t.Title, t.Priority)
}
