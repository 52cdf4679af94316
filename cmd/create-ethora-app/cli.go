// Where: cmd/create-ethora-app/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/create-ethora-app/internal/command"
	"github.com/poruru-code/create-ethora-app/internal/infra/git"
	"github.com/poruru-code/create-ethora-app/internal/infra/interaction"
	"github.com/poruru-code/create-ethora-app/internal/infra/process"
)

var (
	stdin      = os.Stdin
	isTerminal = interaction.IsTerminal
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// Prompts use huh on a terminal and plain line reads otherwise.
func buildDependencies() command.Dependencies {
	interactive := isTerminal(stdin)
	runner := process.ExecRunner{In: stdin, Out: os.Stdout, ErrOut: os.Stderr}

	var prompter interaction.Prompter = interaction.NewLinePrompter(stdin, os.Stderr)
	if interactive {
		prompter = interaction.HuhPrompter{}
	}

	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		Prompter:    prompter,
		Interactive: interactive,
		Stdin:       stdin,
		Runner:      runner,
		Cloner:      git.NewCLICloner(runner),
		Getwd:       os.Getwd,
	}
}
