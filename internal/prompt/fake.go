package prompt

import (
	"errors"
	"fmt"
)

// ErrScriptExhausted is returned by Scripted when it runs out of answers.
var ErrScriptExhausted = errors.New("no scripted answer left")

// Scripted is a Prompter that replays fixed answers in order. It backs
// non-interactive runs in tests.
type Scripted struct {
	Answers []interface{}
	Asked   []string
}

// NewScripted returns a Scripted prompter. Answers are string for Input,
// []string for MultiSelect, int for Select, bool for Confirm, or an error
// to fail that prompt.
func NewScripted(answers ...interface{}) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) next(message string) (interface{}, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrScriptExhausted, message)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	if err, ok := a.(error); ok {
		return nil, err
	}
	return a, nil
}

func (s *Scripted) Input(message string, allowEmpty bool) (string, error) {
	a, err := s.next(message)
	if err != nil {
		return "", err
	}
	v, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("scripted answer for %q is %T, want string", message, a)
	}
	return v, nil
}

func (s *Scripted) MultiSelect(message string, options []string) ([]string, error) {
	a, err := s.next(message)
	if err != nil {
		return nil, err
	}
	v, ok := a.([]string)
	if !ok {
		return nil, fmt.Errorf("scripted answer for %q is %T, want []string", message, a)
	}
	return v, nil
}

func (s *Scripted) Select(message string, options []string, defaultIndex int) (int, error) {
	a, err := s.next(message)
	if err != nil {
		return 0, err
	}
	v, ok := a.(int)
	if !ok {
		return 0, fmt.Errorf("scripted answer for %q is %T, want int", message, a)
	}
	return v, nil
}

func (s *Scripted) Confirm(message string, defaultValue bool) (bool, error) {
	a, err := s.next(message)
	if err != nil {
		return false, err
	}
	v, ok := a.(bool)
	if !ok {
		return false, fmt.Errorf("scripted answer for %q is %T, want bool", message, a)
	}
	return v, nil
}
