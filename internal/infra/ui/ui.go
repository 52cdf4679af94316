// Where: internal/infra/ui/ui.go
// What: UserInterface abstraction for the scaffold workflow.
// Why: Provide a single output surface so the workflow stays terminal-agnostic.
package ui

import (
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by the workflow.
type UserInterface interface {
	Step(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface backed by Console.
func NewConsoleUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Step(msg string) {
	c.console.Step(msg)
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Error(msg string) {
	c.console.Error(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}
