// Where: internal/command/create.go
// What: Create command entry and workflow execution.
// Why: Keep flag/config resolution apart from the scaffold workflow itself.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	domain "github.com/poruru-code/create-ethora-app/internal/domain/scaffold"
	"github.com/poruru-code/create-ethora-app/internal/infra/config"
	"github.com/poruru-code/create-ethora-app/internal/infra/git"
	"github.com/poruru-code/create-ethora-app/internal/infra/interaction"
	"github.com/poruru-code/create-ethora-app/internal/infra/logging"
	"github.com/poruru-code/create-ethora-app/internal/infra/render"
	"github.com/poruru-code/create-ethora-app/internal/infra/ui"
	"github.com/poruru-code/create-ethora-app/internal/usecase/scaffold"
)

const (
	promptAppName      = "What is the name of your new app?"
	promptBundleID     = "What is the bundle ID of your new app?"
	promptBackendSetup = "Set up a Firebase project for this app?"
)

var (
	errConflictingBackendFlags = errors.New("--backend-setup and --no-backend-setup cannot be used together")
	errRunnerNotConfigured     = errors.New("command runner is not configured")
)

// CreateCmd defines the create command flags.
type CreateCmd struct {
	Name           string        `short:"n" help:"App name (skips the prompt)"`
	BundleID       string        `short:"b" name:"bundle-id" help:"Bundle ID, e.g. com.myapp (skips the prompt)"`
	Repo           string        `help:"Boilerplate repository URL"`
	Branch         string        `help:"Boilerplate branch to clone"`
	BackendSetup   bool          `name:"backend-setup" help:"Run the Firebase backend setup tool"`
	NoBackendSetup bool          `name:"no-backend-setup" help:"Skip the Firebase backend setup tool"`
	Strict         bool          `help:"Fail when the rename or backend setup tool fails"`
	Timeout        time.Duration `help:"Abort the run after this duration (e.g. 20m)"`
}

// runCreate executes the 'create' command.
func runCreate(cli CLI, deps Dependencies, out io.Writer) int {
	emojiEnabled, err := resolveEmojiEnabled(out, cli)
	if err != nil {
		return exitWithError(out, err)
	}
	console := consoleUI(out, emojiEnabled)

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return exitWithError(out, err)
	}

	req, err := resolveCreateRequest(cli.Create, cfg, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	logger := logging.New(logging.Options{Verbose: cli.Verbose, Out: deps.ErrOut})
	defer func() { _ = logger.Sync() }()

	workflow, err := newCreateWorkflow(cli.Create, cfg, deps, console)
	if err != nil {
		return exitWithError(out, err)
	}
	workflow.Logger = logger

	console.Block("🧭", "Create plan", createPlanRows(req, workflow.Source))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cli.Create.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.Create.Timeout)
		defer cancel()
	}

	if _, err := workflow.Run(ctx, req); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

// loadConfig reads the config file (or defaults) and applies env overrides.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, err
	}
	return config.ApplyEnv(cfg)
}

// resolveCreateRequest merges flags, prompts and config into a request.
func resolveCreateRequest(flags CreateCmd, cfg config.Config, deps Dependencies) (domain.Request, error) {
	prompter := deps.Prompter
	if prompter == nil {
		prompter = newLinePrompter(deps)
	}

	appName, err := resolveAnswer(prompter, flags.Name, promptAppName, domain.DefaultAppName, domain.NormalizeAppName)
	if err != nil {
		return domain.Request{}, err
	}
	bundleID, err := resolveAnswer(prompter, flags.BundleID, promptBundleID, domain.DefaultBundleID, domain.NormalizeBundleID)
	if err != nil {
		return domain.Request{}, err
	}
	backendSetup, err := resolveBackendSetup(flags, cfg, prompter, deps.Interactive)
	if err != nil {
		return domain.Request{}, err
	}
	return domain.NewRequest(appName, bundleID, backendSetup)
}

type normalizer func(string) (string, error)

// resolveAnswer returns the flag value when set; otherwise it prompts, and an
// empty answer takes fallback.
func resolveAnswer(prompter interaction.Prompter, flag, title, fallback string, normalize normalizer) (string, error) {
	if strings.TrimSpace(flag) != "" {
		return normalize(flag)
	}
	answer, err := prompter.Input(title, fallback, allowEmpty(normalize))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		answer = fallback
	}
	return normalize(answer)
}

func allowEmpty(normalize normalizer) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		_, err := normalize(value)
		return err
	}
}

func resolveBackendSetup(flags CreateCmd, cfg config.Config, prompter interaction.Prompter, interactive bool) (bool, error) {
	switch {
	case flags.BackendSetup && flags.NoBackendSetup:
		return false, errConflictingBackendFlags
	case flags.BackendSetup:
		return true, nil
	case flags.NoBackendSetup:
		return false, nil
	case !interactive:
		return cfg.BackendSetup, nil
	}
	return prompter.Confirm(promptBackendSetup, cfg.BackendSetup)
}

func newCreateWorkflow(flags CreateCmd, cfg config.Config, deps Dependencies, console ui.UserInterface) (scaffold.Workflow, error) {
	getwd := deps.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	parentDir, err := getwd()
	if err != nil {
		return scaffold.Workflow{}, fmt.Errorf("resolve current directory: %w", err)
	}

	runner := deps.Runner
	if runner == nil {
		return scaffold.Workflow{}, errRunnerNotConfigured
	}
	cloner := deps.Cloner
	if cloner == nil {
		cloner = git.NewCLICloner(runner)
	}

	source := scaffold.Source{RepoURL: cfg.RepoURL, Branch: cfg.Branch, Shallow: cfg.Shallow}
	if repo := strings.TrimSpace(flags.Repo); repo != "" {
		source.RepoURL = repo
	}
	if branch := strings.TrimSpace(flags.Branch); branch != "" {
		source.Branch = branch
	}

	return scaffold.Workflow{
		Runner:    runner,
		Cloner:    cloner,
		UI:        console,
		Source:    source,
		Tools:     toolsFromConfig(cfg.Tools),
		Hints:     hintsFromConfig(cfg.Hints),
		ParentDir: parentDir,
		Strict:    flags.Strict,
	}, nil
}

func createPlanRows(req domain.Request, source scaffold.Source) []ui.KeyValue {
	bundleID := req.BundleID
	if bundleID == "" {
		bundleID = "(none)"
	}
	boilerplate := source.RepoURL
	if source.Branch != "" {
		boilerplate = fmt.Sprintf("%s (%s)", source.RepoURL, source.Branch)
	}
	return []ui.KeyValue{
		{Key: "App", Value: req.AppName},
		{Key: "BundleID", Value: bundleID},
		{Key: "Directory", Value: "./" + req.AppName},
		{Key: "Boilerplate", Value: boilerplate},
		{Key: "BackendSetup", Value: req.BackendSetup},
	}
}

func toolsFromConfig(tools config.Tools) scaffold.Tools {
	install := make([]scaffold.Command, 0, len(tools.Install))
	for _, cmd := range tools.Install {
		install = append(install, toCommand(cmd))
	}
	return scaffold.Tools{
		Rename:       toCommand(tools.Rename),
		Install:      install,
		BackendSetup: toCommand(tools.BackendSetup),
	}
}

func toCommand(cmd config.Command) scaffold.Command {
	return scaffold.Command{Name: cmd.Name, Args: append([]string(nil), cmd.Args...)}
}

func hintsFromConfig(hints []config.Hint) []render.Hint {
	out := make([]render.Hint, 0, len(hints))
	for _, h := range hints {
		out = append(out, render.Hint{Command: h.Command, Description: h.Description})
	}
	return out
}

func newLinePrompter(deps Dependencies) interaction.Prompter {
	in := deps.Stdin
	if in == nil {
		in = os.Stdin
	}
	return interaction.NewLinePrompter(in, deps.ErrOut)
}
