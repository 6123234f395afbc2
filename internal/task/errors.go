package task

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle is returned when a title is empty or whitespace-only.
var ErrEmptyTitle = errors.New("title is empty")

// ErrInvalidPriority is returned for numeric priorities outside {1,2,3}.
var ErrInvalidPriority = errors.New("priority must be 1, 2, or 3")

// ErrNonNumeric is returned when numeric input cannot be parsed.
var ErrNonNumeric = errors.New("input is not a number")

// DuplicateTitleError reports an add whose title collides case-insensitively
// with an existing task.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("task already exists: %s", e.Title)
}

// IndexError reports an original index outside the store bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task index out of range: %d (store has %d)", e.Index, e.Len)
}

// IsDuplicateTitle returns true if the error is a duplicate-title error.
// Uses errors.As to handle wrapped errors.
func IsDuplicateTitle(err error) bool {
	var de *DuplicateTitleError
	return errors.As(err, &de)
}

// IsIndexOutOfRange returns true if the error is an index-range error.
func IsIndexOutOfRange(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie)
}
