package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alem-hub/alem-lms/internal/validate"
)

// maxRetries bounds how many times a prompt re-asks before giving up and
// returning the user to the previous menu.
const maxRetries = 3

// ErrPromptAbandoned is returned when a prompt exhausts its retries.
var ErrPromptAbandoned = errors.New("too many invalid inputs")

// Prompter reads validated primitives from the terminal. The core only
// ever receives values that already passed the pure checks in the
// validate package; the retry loop lives here.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// Line prompts for a free-form line of text.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, ok := p.readLine()
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

// Int prompts for an integer in the inclusive [min, max] range,
// re-asking up to maxRetries times.
func (p *Prompter) Int(label string, min, max int) (int, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		fmt.Fprint(p.out, label)
		line, ok := p.readLine()
		if !ok {
			return 0, io.EOF
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if !validate.IntInRange(n, min, max) {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
	return 0, ErrPromptAbandoned
}

// Email prompts for an email address, re-asking on malformed input up to
// maxRetries times.
func (p *Prompter) Email(label string) (string, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		fmt.Fprint(p.out, label)
		line, ok := p.readLine()
		if !ok {
			return "", io.EOF
		}
		if validate.Email(line) {
			return line, nil
		}
		fmt.Fprintln(p.out, "Invalid email format. Please try again.")
	}
	return "", ErrPromptAbandoned
}

// YesNo prompts for a y/n answer. Anything other than y or Y counts as no.
func (p *Prompter) YesNo(label string) (bool, error) {
	fmt.Fprint(p.out, label)
	line, ok := p.readLine()
	if !ok {
		return false, io.EOF
	}
	return strings.EqualFold(line, "y"), nil
}
