// Package prompt collects the request selections interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"pkgquery/internal/query"
)

// ErrNoPlatforms is returned when the platform multi-select is confirmed
// with nothing selected.
var ErrNoPlatforms = errors.New("you must select at least one platform")

// Prompter asks the user for answers. Each call blocks until answered.
type Prompter interface {
	// Input asks for free text. Empty answers are always accepted;
	// allowEmpty only adds a skip hint.
	Input(message string, allowEmpty bool) (string, error)
	// MultiSelect returns the chosen options in option order.
	MultiSelect(message string, options []string) ([]string, error)
	// Select returns the index of the chosen option.
	Select(message string, options []string, defaultIndex int) (int, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// Collect runs the token, platform, config type and search package prompts
// in that order. between is called after each of the first three answers.
func Collect(p Prompter, between func()) (query.Selections, error) {
	var sel query.Selections
	if between == nil {
		between = func() {}
	}

	token, err := p.Input("Enter your authorization token", false)
	if err != nil {
		return sel, fmt.Errorf("failed to read token: %w", err)
	}
	sel.Token = token
	between()

	options := make([]string, len(query.Platforms))
	for i, pl := range query.Platforms {
		options[i] = string(pl)
	}
	chosen, err := p.MultiSelect("Select platforms (Space to select, Enter to confirm):", options)
	if err != nil {
		return sel, fmt.Errorf("failed to read platforms: %w", err)
	}
	if len(chosen) == 0 {
		return sel, ErrNoPlatforms
	}
	for _, name := range chosen {
		pl, err := query.ParsePlatform(name)
		if err != nil {
			return sel, err
		}
		sel.Platforms = append(sel.Platforms, pl)
	}
	sel.Platforms = query.SortPlatforms(sel.Platforms)
	between()

	labels := make([]string, len(query.ConfigTypes))
	for i, ct := range query.ConfigTypes {
		labels[i] = ct.String()
	}
	idx, err := p.Select("Select config type", labels, 0)
	if err != nil {
		return sel, fmt.Errorf("failed to read config type: %w", err)
	}
	if idx < 0 || idx >= len(query.ConfigTypes) {
		return sel, fmt.Errorf("config type index out of range: %d", idx)
	}
	sel.ConfigType = query.ConfigTypes[idx]
	between()

	search, err := p.Input("Enter search package (press Enter to skip)", true)
	if err != nil {
		return sel, fmt.Errorf("failed to read search package: %w", err)
	}
	sel.SearchPackage = search

	return sel, nil
}

// Survey is a Prompter backed by survey/v2 on the given stdio.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a Survey prompter reading in and writing to out.
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	return &Survey{
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

func (s *Survey) Input(message string, allowEmpty bool) (string, error) {
	var answer string
	q := &survey.Input{Message: message}
	if allowEmpty {
		q.Help = "Leave empty to skip"
	}
	if err := survey.AskOne(q, &answer, s.opts...); err != nil {
		return "", err
	}
	return answer, nil
}

func (s *Survey) MultiSelect(message string, options []string) ([]string, error) {
	var answer []string
	q := &survey.MultiSelect{Message: message, Options: options}
	if err := survey.AskOne(q, &answer, s.opts...); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *Survey) Select(message string, options []string, defaultIndex int) (int, error) {
	var answer int
	q := &survey.Select{Message: message, Options: options}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		q.Default = options[defaultIndex]
	}
	if err := survey.AskOne(q, &answer, s.opts...); err != nil {
		return 0, err
	}
	return answer, nil
}

func (s *Survey) Confirm(message string, defaultValue bool) (bool, error) {
	var answer bool
	q := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(q, &answer, s.opts...); err != nil {
		return false, err
	}
	return answer, nil
}

// IsInterrupt reports whether err came from Ctrl+C inside a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
