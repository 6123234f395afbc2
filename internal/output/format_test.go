package output_test

import (
	"bytes"
	"strings"
	"testing"

	"dtask/internal/output"
	"dtask/internal/task"
	"dtask/internal/testutil"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{Title: "Buy milk", Priority: task.PriorityMedium},
		{Title: "Call mom", Priority: task.PriorityHigh},
		{Title: "Pay bills", Priority: task.PriorityHigh, Done: true},
		{Title: "Write report", Priority: task.PriorityLow},
	}
}

func TestGrouped(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(false)

	f.Grouped(&buf, sampleTasks())
	testutil.Golden(t, "grouped", buf.Bytes())
}

func TestGrouped_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(false)

	f.Grouped(&buf, nil)

	if buf.String() != "No tasks found.\n" {
		t.Errorf("expected empty-store message, got %q", buf.String())
	}
}

func TestGrouped_AllDone(t *testing.T) {
	tasks := []task.Task{
		{Title: "Call mom", Priority: task.PriorityHigh, Done: true},
		{Title: "Buy milk", Priority: task.PriorityMedium, Done: true},
	}

	var buf bytes.Buffer
	f := output.NewFormatter(false)

	f.Grouped(&buf, tasks)
	testutil.Golden(t, "grouped_all_done", buf.Bytes())
}

func TestGrouped_ColorStillCarriesText(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(true)

	f.Grouped(&buf, sampleTasks())

	for _, want := range []string{"Tasks:", "Call mom", "Pay bills"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("colored output missing %q", want)
		}
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(false)

	f.Report(&buf, 2, 5)

	if buf.String() != "Done: 2 | Undone: 5\n" {
		t.Errorf("unexpected report, got %q", buf.String())
	}
}

func TestSearchResults(t *testing.T) {
	matches := []task.Indexed{
		{Index: 2, Task: task.Task{Title: "Pay bills", Priority: task.PriorityHigh, Done: true}},
		{Index: 0, Task: task.Task{Title: "Buy milk", Priority: task.PriorityMedium}},
	}

	var buf bytes.Buffer
	f := output.NewFormatter(false)

	f.SearchResults(&buf, matches)
	testutil.Golden(t, "search_results", buf.Bytes())
}

func TestSearchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(false)

	f.SearchResults(&buf, nil)

	if buf.String() != "No tasks found for this keyword.\n" {
		t.Errorf("expected no-match message, got %q", buf.String())
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	if output.IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}
