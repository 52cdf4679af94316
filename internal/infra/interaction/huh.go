// Where: internal/infra/interaction/huh.go
// What: Interactive prompts using the huh library.
// Why: Provide inline validation and defaults for the scaffold questions.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title, placeholder string, validate func(string) error, input *string) error {
	field := huh.NewInput().
		Title(title).
		Value(input)
	if placeholder != "" {
		field.Placeholder(placeholder)
	}
	if validate != nil {
		field.Validate(validate)
	}
	return field.Run()
}

var runConfirmPrompt = func(title string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var input string
	if err := runInputPrompt(title, placeholder, validate, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

func (p HuhPrompter) Confirm(title string, initial bool) (bool, error) {
	value := initial
	if err := runConfirmPrompt(title, &value); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return value, nil
}
