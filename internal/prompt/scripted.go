package prompt

import (
	"fmt"
	"strings"
)

// Scripted answers questions from a fixed list, in order. It records every
// question it was asked so callers can assert on prompt traffic.
type Scripted struct {
	Answers []string
	Asked   []string
}

// NewScripted returns a Scripted prompter with the given answers.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

// Confirm implements Prompter using the same parsing as Console.
func (s *Scripted) Confirm(question string, def bool) (bool, error) {
	line, err := s.next(question)
	if err != nil {
		return false, err
	}
	answer, ok := parseYesNo(line, def)
	if !ok {
		return false, fmt.Errorf("scripted answer %q to %q is not yes/no", line, question)
	}
	return answer, nil
}

// Input implements Prompter.
func (s *Scripted) Input(question string) (string, error) {
	line, err := s.next(question)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int {
	return len(s.Answers)
}

func (s *Scripted) next(question string) (string, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("unexpected prompt %q: no scripted answers left", question)
	}
	line := s.Answers[0]
	s.Answers = s.Answers[1:]
	return line, nil
}
