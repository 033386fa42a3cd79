package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads operator input line by line. It carries its own reader and
// writer so interactive flows stay testable.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Line prints label and returns the next trimmed input line. Returns an
// error only when input is closed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Choose displays a 1-based numbered menu and reads a selection, re-prompting
// on out-of-range or non-numeric input until a valid choice is entered.
// Returns the zero-based index of the chosen option.
func (p *Prompter) Choose(header string, options []string) (int, error) {
	fmt.Fprintln(p.out, header)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, opt)
	}
	for {
		input, err := p.Line("Select a device by number: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintln(p.out, "Invalid choice. Please try again.")
			continue
		}
		return choice - 1, nil
	}
}
