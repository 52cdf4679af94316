package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/poruru-code/create-ethora-app/internal/infra/process"
)

type runnerCall struct {
	mode string
	dir  string
	line string
}

// fakeRunner records command lines; a `git clone` call creates the target
// directory so the real git cloner can resolve it.
type fakeRunner struct {
	mu       sync.Mutex
	calls    []runnerCall
	exitCode map[string]int
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (process.Result, error) {
	return f.record("run", dir, name, args)
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) (process.Result, error) {
	return f.record("output", dir, name, args)
}

func (f *fakeRunner) record(mode, dir, name string, args []string) (process.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.calls = append(f.calls, runnerCall{mode: mode, dir: dir, line: line})

	for prefix, code := range f.exitCode {
		if strings.HasPrefix(line, prefix) && code != 0 {
			return process.Result{ExitCode: code}, &process.ExitError{Name: name, Args: args, Code: code}
		}
	}
	if name == "git" && len(args) > 0 && args[0] == "clone" {
		if err := os.MkdirAll(filepath.Join(dir, args[len(args)-1]), 0o755); err != nil {
			return process.Result{ExitCode: process.StartFailedCode}, err
		}
	}
	return process.Result{}, nil
}

func (f *fakeRunner) lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.line)
	}
	return out
}

func (f *fakeRunner) snapshot() []runnerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runnerCall(nil), f.calls...)
}

type inputCall struct {
	title       string
	placeholder string
}

// fakePrompter answers Input calls from a queue and records every prompt.
type fakePrompter struct {
	answers  []string
	confirm  bool
	inputs   []inputCall
	confirms []string
}

func (p *fakePrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	p.inputs = append(p.inputs, inputCall{title: title, placeholder: placeholder})
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *fakePrompter) Confirm(title string, _ bool) (bool, error) {
	p.confirms = append(p.confirms, title)
	return p.confirm, nil
}

// isolateConfig points the default config path at a missing file and clears
// env overrides so tests see built-in defaults.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("CREATE_ETHORA_APP_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("CREATE_ETHORA_APP_REPO_URL", "")
	t.Setenv("CREATE_ETHORA_APP_BRANCH", "")
	t.Setenv("CREATE_ETHORA_APP_BACKEND_SETUP", "")
	t.Setenv("NO_EMOJI", "1")
}

func workDir(t *testing.T) (string, func() (string, error)) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	return dir, func() (string, error) { return dir, nil }
}
