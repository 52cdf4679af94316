package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/poruru-code/create-ethora-app/internal/infra/git"
	"github.com/poruru-code/create-ethora-app/internal/infra/process"
	"github.com/poruru-code/create-ethora-app/internal/infra/ui"
)

type runnerCall struct {
	mode string
	dir  string
	name string
	args []string
}

func (c runnerCall) commandLine() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// fakeRunner records calls and fails commands whose command line starts with
// a configured prefix.
type fakeRunner struct {
	mu       sync.Mutex
	calls    []runnerCall
	exitCode map[string]int
	startErr map[string]error
	output   map[string]string
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
	call := runnerCall{mode: mode, dir: dir, name: name, args: append([]string(nil), args...)}
	f.calls = append(f.calls, call)

	line := call.commandLine()
	var output []byte
	for prefix, text := range f.output {
		if strings.HasPrefix(line, prefix) {
			output = []byte(text)
		}
	}
	for prefix, err := range f.startErr {
		if strings.HasPrefix(line, prefix) {
			return process.Result{ExitCode: process.StartFailedCode, Output: output}, err
		}
	}
	for prefix, code := range f.exitCode {
		if strings.HasPrefix(line, prefix) && code != 0 {
			return process.Result{ExitCode: code, Output: output}, &process.ExitError{Name: name, Args: args, Code: code, Output: output}
		}
	}
	return process.Result{Output: output}, nil
}

func (f *fakeRunner) snapshot() []runnerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runnerCall(nil), f.calls...)
}

// fakeCloner creates parentDir/target instead of cloning.
type fakeCloner struct {
	calls  int
	url    string
	target string
	opts   git.CloneOptions
	err    error
}

func (f *fakeCloner) Clone(_ context.Context, parentDir, url, target string, opts git.CloneOptions) (string, error) {
	f.calls++
	f.url = url
	f.target = target
	f.opts = opts
	if f.err != nil {
		return "", f.err
	}
	dir := filepath.Join(parentDir, target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

type uiLine struct {
	kind string
	msg  string
}

type recordingUI struct {
	mu    sync.Mutex
	lines []uiLine
}

func (r *recordingUI) add(kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, uiLine{kind: kind, msg: msg})
}

func (r *recordingUI) Step(msg string)    { r.add("step", msg) }
func (r *recordingUI) Info(msg string)    { r.add("info", msg) }
func (r *recordingUI) Warn(msg string)    { r.add("warn", msg) }
func (r *recordingUI) Error(msg string)   { r.add("error", msg) }
func (r *recordingUI) Success(msg string) { r.add("success", msg) }
func (r *recordingUI) Block(emoji, title string, rows []ui.KeyValue) {
	r.add("block", fmt.Sprintf("%s %s %v", emoji, title, rows))
}

func (r *recordingUI) text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, l := range r.lines {
		b.WriteString(l.kind)
		b.WriteString(": ")
		b.WriteString(l.msg)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *recordingUI) indexOf(substr string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.lines {
		if strings.Contains(l.msg, substr) {
			return i
		}
	}
	return -1
}
