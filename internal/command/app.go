// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/poruru-code/create-ethora-app/internal/infra/git"
	"github.com/poruru-code/create-ethora-app/internal/infra/interaction"
	"github.com/poruru-code/create-ethora-app/internal/infra/process"
	"github.com/poruru-code/create-ethora-app/internal/meta"
	"github.com/poruru-code/create-ethora-app/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Runner is required by create; a nil Cloner uses git through Runner.
type Dependencies struct {
	Out    io.Writer
	ErrOut io.Writer
	// Prompter answers the scaffold questions. Nil means a line prompter on Stdin.
	Prompter interaction.Prompter
	// Interactive enables prompts that have no flag-free fallback (backend confirm).
	Interactive bool
	Stdin       io.Reader

	Runner process.CommandRunner
	Cloner git.Cloner
	Getwd  func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config  string `name:"config" help:"Path to config.yaml (default: user config dir)"`
	EnvFile string `name:"env-file" help:"Path to .env file"`
	Verbose bool   `short:"v" help:"Print diagnostic logs to stderr"`
	Emoji   bool   `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji bool   `name:"no-emoji" help:"Disable emoji output"`

	Create     CreateCmd     `cmd:"" default:"withargs" help:"Create a new app from the boilerplate (default)"`
	InitConfig InitConfigCmd `cmd:"" name:"init-config" help:"Write the default config file"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
		deps.Out = out
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description(meta.Description),
		kong.Writers(out, deps.ErrOut),
		kong.Vars{"version": version.GetVersion()},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	loadEnvFile(cli.EnvFile, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	consoleUI(out, false).Warn("unknown command")
	return 1
}

// loadEnvFile loads the given env file, or ./.env when present.
// Variables already set in the environment win.
func loadEnvFile(path string, out io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			consoleUI(out, false).Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			consoleUI(out, false).Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
		}
	}
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"create":      runCreate,
		"init-config": runInitConfig,
		"version":     func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	consoleUI(out, false).Info(fmt.Sprintf("%s %s", meta.AppName, version.GetVersion()))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		console := consoleUI(out, false)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--name"):
			console.Warn("`--name` expects a value. Provide an app name or omit the flag for interactive input.")
			console.Info(fmt.Sprintf("Example: %s --name MyApp", cmd))
			return 1
		case strings.Contains(msg, "--bundle-id"):
			console.Warn("`--bundle-id` expects a value. Provide a reverse-domain id or omit the flag for interactive input.")
			console.Info(fmt.Sprintf("Example: %s --bundle-id com.myapp", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			console.Warn("`--env-file` expects a value. Provide a file path.")
			console.Info(fmt.Sprintf("Example: %s --env-file .env.local", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}
