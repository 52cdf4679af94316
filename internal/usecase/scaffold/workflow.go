// Where: internal/usecase/scaffold/workflow.go
// What: Scaffold workflow orchestration.
// Why: Keep the clone -> rename -> install -> backend setup -> report order
// visible while each step stays callable on its own.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/poruru-code/create-ethora-app/internal/domain/scaffold"
	"github.com/poruru-code/create-ethora-app/internal/infra/git"
	"github.com/poruru-code/create-ethora-app/internal/infra/process"
	"github.com/poruru-code/create-ethora-app/internal/infra/render"
	"github.com/poruru-code/create-ethora-app/internal/infra/ui"
)

// outputTailLines bounds how much captured backend output is echoed on failure.
const outputTailLines = 20

// Workflow runs the scaffold pipeline.
type Workflow struct {
	Runner process.CommandRunner
	Cloner git.Cloner
	UI     ui.UserInterface
	Logger *zap.Logger

	Source Source
	Tools  Tools
	Hints  []render.Hint
	// ParentDir is where ./<appName> is created; empty means the process cwd.
	ParentDir string
	// Strict turns rename/backend setup failures into run failures.
	Strict bool

	Now func() time.Time
}

// Run executes the workflow. Clone and install failures abort the run and are
// returned; rename and backend setup failures are recorded in the report and
// only returned when Strict is set.
func (w Workflow) Run(ctx context.Context, req domain.Request) (Report, error) {
	report := Report{Request: req}
	if err := w.validate(); err != nil {
		return report, err
	}
	if err := req.Validate(); err != nil {
		return report, err
	}

	req, cloned, err := w.Clone(ctx, req)
	report.add(cloned)
	if err != nil {
		return report, err
	}
	report.Request = req

	renamed, err := w.Rename(ctx, req)
	report.add(renamed)
	if err != nil {
		return report, err
	}
	if err := w.checkAdvisory(renamed); err != nil {
		return report, err
	}

	installed, err := w.Install(ctx, req)
	report.add(installed...)
	if err != nil {
		return report, err
	}

	if req.BackendSetup {
		outcomes, err := w.runBackground(ctx, req)
		report.add(outcomes...)
		if err != nil {
			return report, err
		}
	}

	report.Succeeded = true
	if err := w.Report(report); err != nil {
		report.Succeeded = false
		return report, err
	}
	return report, nil
}

// Clone materializes ./<appName> and returns req bound to its absolute path.
func (w Workflow) Clone(ctx context.Context, req domain.Request) (domain.Request, StepOutcome, error) {
	outcome := StepOutcome{Step: StepClone, Tool: "git", Dir: w.ParentDir}
	if w.Cloner == nil {
		outcome.Err = errClonerNotConfigured
		return req, outcome, errClonerNotConfigured
	}
	if strings.TrimSpace(w.Source.RepoURL) == "" {
		outcome.Err = errRepoURLRequired
		return req, outcome, errRepoURLRequired
	}

	w.ui().Step(fmt.Sprintf("Cloning %s into ./%s", w.Source.RepoURL, req.AppName))
	w.logger().Debug("step started",
		zap.String("step", string(StepClone)),
		zap.String("repo", w.Source.RepoURL),
		zap.String("target", req.AppName))

	started := w.now()
	dir, err := w.Cloner.Clone(ctx, w.ParentDir, w.Source.RepoURL, req.AppName, git.CloneOptions{
		Branch:  w.Source.Branch,
		Shallow: w.Source.Shallow,
	})
	outcome.Elapsed = w.now().Sub(started)
	if err != nil {
		outcome.Err = err
		outcome.ExitCode = process.ExitCode(err)
		w.logFinished(outcome)
		return req, outcome, fmt.Errorf("clone boilerplate: %w", err)
	}

	bound, err := req.AttachWorkingDir(dir)
	if err != nil {
		outcome.Err = err
		return req, outcome, err
	}
	outcome.Dir = dir
	w.logFinished(outcome)
	return bound, outcome, nil
}

// Rename runs the rename tool in the working directory with the parent's
// streams attached. The returned error is set only when the step could not be
// attempted; tool failures live in the outcome.
func (w Workflow) Rename(ctx context.Context, req domain.Request) (StepOutcome, error) {
	outcome := StepOutcome{Step: StepRename, Tool: w.Tools.Rename.Label(), Advisory: true}
	dir, err := req.RequireWorkingDir()
	if err != nil {
		return outcome, err
	}
	if !w.Tools.Rename.configured() {
		return outcome, errRenameToolMissing
	}

	w.ui().Step(fmt.Sprintf("Renaming project to %s", req.AppName))
	name, args := w.Tools.Rename.Invocation(RenameArgs(req)...)
	outcome = w.exec(ctx, outcome, dir, name, args, false)
	w.reportExit(outcome)
	return outcome, nil
}

// Install runs every install command in order and stops at the first failure.
func (w Workflow) Install(ctx context.Context, req domain.Request) ([]StepOutcome, error) {
	dir, err := req.RequireWorkingDir()
	if err != nil {
		return nil, err
	}

	outcomes := make([]StepOutcome, 0, len(w.Tools.Install))
	for _, cmd := range w.Tools.Install {
		outcome := StepOutcome{Step: StepInstall, Tool: cmd.Label()}
		w.ui().Step(fmt.Sprintf("Installing dependencies (%s)", outcome.Tool))
		name, args := cmd.Invocation()
		outcome = w.exec(ctx, outcome, dir, name, args, false)
		outcomes = append(outcomes, outcome)
		if outcome.Failed() {
			return outcomes, fmt.Errorf("install dependencies (%s): %w", outcome.Tool, outcome.Err)
		}
	}
	return outcomes, nil
}

// BackendSetup runs the backend provisioning tool with captured output.
// Like Rename, the error return is reserved for steps that cannot be attempted.
func (w Workflow) BackendSetup(ctx context.Context, req domain.Request) (StepOutcome, error) {
	outcome := StepOutcome{Step: StepBackendSetup, Tool: w.Tools.BackendSetup.Label(), Advisory: true}
	dir, err := req.RequireWorkingDir()
	if err != nil {
		return outcome, err
	}
	if !w.Tools.BackendSetup.configured() {
		return outcome, errBackendToolMissing
	}
	if !req.HasBundleID() {
		outcome.Skipped = true
		outcome.Err = ErrBundleIDRequired
		outcome.Dir = dir
		return outcome, nil
	}

	name, args := w.Tools.BackendSetup.Invocation(BackendSetupArgs(req)...)
	return w.exec(ctx, outcome, dir, name, args, true), nil
}

// Report prints the success banner and any auxiliary warnings.
func (w Workflow) Report(report Report) error {
	dir, err := report.Request.RequireWorkingDir()
	if err != nil {
		return err
	}
	banner, err := render.Success(render.SuccessData{
		AppName: report.Request.AppName,
		Dir:     dir,
		Hints:   w.Hints,
	})
	if err != nil {
		return fmt.Errorf("render success banner: %w", err)
	}

	out := w.ui()
	out.Info("")
	for _, line := range strings.Split(strings.TrimRight(banner, "\n"), "\n") {
		out.Info(line)
	}
	if warnings := report.Warnings(); len(warnings) > 0 {
		out.Info("")
		for _, o := range warnings {
			out.Warn(warningLine(o))
		}
	}
	return nil
}

func (w Workflow) runBackground(ctx context.Context, req domain.Request) ([]StepOutcome, error) {
	if _, err := req.RequireWorkingDir(); err != nil {
		return nil, err
	}
	if !w.Tools.BackendSetup.configured() {
		return nil, errBackendToolMissing
	}

	w.ui().Step(fmt.Sprintf("Setting up backend project (%s)", w.Tools.BackendSetup.Label()))
	bg := NewBackground(ctx)
	bg.Go(func(ctx context.Context) StepOutcome {
		outcome, err := w.BackendSetup(ctx, req)
		if err != nil && outcome.Err == nil {
			outcome.Err = err
		}
		return outcome
	})

	outcomes := bg.Wait()
	for _, outcome := range outcomes {
		if outcome.Skipped {
			w.ui().Warn(warningLine(outcome))
			continue
		}
		w.reportExit(outcome)
		if outcome.Failed() {
			for _, line := range process.Tail(outcome.Output, outputTailLines) {
				w.ui().Info("   " + line)
			}
		}
		if err := w.checkAdvisory(outcome); err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

func (w Workflow) exec(ctx context.Context, outcome StepOutcome, dir, name string, args []string, capture bool) StepOutcome {
	outcome.Dir = dir
	outcome.Args = args
	w.logger().Debug("step started",
		zap.String("step", string(outcome.Step)),
		zap.String("dir", dir),
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Bool("captured", capture))

	started := w.now()
	var (
		res process.Result
		err error
	)
	if capture {
		res, err = w.Runner.RunOutput(ctx, dir, name, args...)
	} else {
		res, err = w.Runner.Run(ctx, dir, name, args...)
	}
	outcome.Elapsed = w.now().Sub(started)
	outcome.ExitCode = res.ExitCode
	outcome.Output = res.Output
	outcome.Err = err
	if err != nil && outcome.ExitCode == 0 {
		outcome.ExitCode = process.ExitCode(err)
	}
	w.logFinished(outcome)
	return outcome
}

func (w Workflow) checkAdvisory(outcome StepOutcome) error {
	if !w.Strict || !outcome.Advisory || !outcome.Failed() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAuxiliaryFailed, warningLine(outcome))
}

func (w Workflow) reportExit(outcome StepOutcome) {
	var startErr error
	if outcome.ExitCode == process.StartFailedCode {
		startErr = outcome.Err
	}
	switch {
	case startErr != nil:
		w.ui().Warn(fmt.Sprintf("%s could not be started: %v", outcome.Tool, startErr))
	case outcome.ExitCode != 0:
		w.ui().Warn(fmt.Sprintf("%s exited with code %d", outcome.Tool, outcome.ExitCode))
	default:
		w.ui().Info(fmt.Sprintf("%s exited with code %d", outcome.Tool, outcome.ExitCode))
	}
}

func (w Workflow) logFinished(outcome StepOutcome) {
	fields := []zap.Field{
		zap.String("step", string(outcome.Step)),
		zap.String("tool", outcome.Tool),
		zap.Int("exit_code", outcome.ExitCode),
		zap.Duration("elapsed", outcome.Elapsed),
	}
	if outcome.Err != nil {
		w.logger().Debug("step failed", append(fields, zap.Error(outcome.Err))...)
		return
	}
	w.logger().Debug("step finished", fields...)
}

func (w Workflow) validate() error {
	if w.Runner == nil {
		return errRunnerNotConfigured
	}
	if w.Cloner == nil {
		return errClonerNotConfigured
	}
	return nil
}

func (w Workflow) ui() ui.UserInterface {
	if w.UI == nil {
		return discardUI{}
	}
	return w.UI
}

func (w Workflow) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

func (w Workflow) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

func warningLine(o StepOutcome) string {
	switch {
	case o.Skipped && errors.Is(o.Err, ErrBundleIDRequired):
		return fmt.Sprintf("%s skipped: %v", o.Tool, o.Err)
	case o.ExitCode == process.StartFailedCode && o.Err != nil:
		return fmt.Sprintf("%s could not be started: %v", o.Tool, o.Err)
	default:
		return fmt.Sprintf("%s exited with code %d", o.Tool, o.ExitCode)
	}
}

type discardUI struct{}

func (discardUI) Step(string) {}
func (discardUI) Info(string) {}
func (discardUI) Warn(string) {}
func (discardUI) Error(string) {}
func (discardUI) Success(string) {}
func (discardUI) Block(string, string, []ui.KeyValue) {}
