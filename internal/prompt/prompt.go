// Package prompt abstracts blocking operator input so business logic can be
// driven by a real console or by a scripted answer list in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator questions.
type Prompter interface {
	// Confirm asks a yes/no question. A bare Enter selects def.
	Confirm(question string, def bool) (bool, error)
	// Input asks for a free-text line and returns it without surrounding space.
	Input(question string) (string, error)
}

// Console reads answers line by line from r and writes prompts to w.
type Console struct {
	reader *bufio.Reader
	w      io.Writer
	// Echo writes each answer after the prompt; useful when stdin is a pipe
	// and the operator would otherwise not see what was answered.
	Echo bool
}

// NewConsole returns a Console reading from r and prompting on w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{reader: bufio.NewReader(r), w: w}
}

// Confirm implements Prompter. Invalid answers re-ask the question.
func (c *Console) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(c.w, "%s %s ", question, hint)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		answer, ok := parseYesNo(line, def)
		if ok {
			return answer, nil
		}
		fmt.Fprintf(c.w, "Invalid input %q: answer y or n.\n", line)
	}
}

// Input implements Prompter.
func (c *Console) Input(question string) (string, error) {
	fmt.Fprintf(c.w, "%s ", question)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if c.Echo {
		fmt.Fprintln(c.w, line)
	}
	return line, nil
}

func parseYesNo(line string, def bool) (answer bool, ok bool) {
	switch strings.ToLower(line) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// AssumeYes accepts every confirmation without asking and delegates free-text
// questions to the wrapped Prompter.
type AssumeYes struct {
	Prompter
	w io.Writer
}

// NewAssumeYes wraps p. Auto-accepted questions are echoed to w.
func NewAssumeYes(p Prompter, w io.Writer) *AssumeYes {
	return &AssumeYes{Prompter: p, w: w}
}

// Confirm implements Prompter.
func (a *AssumeYes) Confirm(question string, _ bool) (bool, error) {
	fmt.Fprintf(a.w, "%s yes (--yes)\n", question)
	return true, nil
}
