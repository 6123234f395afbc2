// Package prompt reads interactive input line by line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dtask/internal/task"
)

// Reader prompts on out and reads answers from in. Commands share one
// Reader with the menu loop so buffered input is never lost between
// prompts.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a reader over in that writes prompts to out.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line writes the prompt and reads one line, without the trailing newline.
// io.EOF is returned once input is exhausted; a final unterminated line is
// still delivered.
func (r *Reader) Line(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int reads a line and parses it as an integer.
// Unparseable input returns task.ErrNonNumeric.
func (r *Reader) Int(prompt string) (int, error) {
	line, err := r.Line(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, task.ErrNonNumeric
	}
	return n, nil
}

// Priority keeps prompting until a valid priority is entered or input ends.
// Out-of-range numbers and non-numeric input get different retry messages,
// matching the add flow.
func (r *Reader) Priority(prompt string) (task.Priority, error) {
	for {
		line, err := r.Line(prompt)
		if err != nil {
			return 0, err
		}
		p, err := task.ParsePriority(line)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, task.ErrNonNumeric):
			fmt.Fprintln(r.out, "Please enter a number (1-3).")
		default:
			fmt.Fprintln(r.out, "Invalid priority. Try again.")
		}
	}
}
