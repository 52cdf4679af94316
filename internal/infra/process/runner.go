// Where: internal/infra/process/runner.go
// What: External command execution with exit code reporting.
// Why: Every scaffold step is an external tool; steps depend on this seam so
// tests can substitute a fake runner.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// StartFailedCode is reported when the process could not be started.
const StartFailedCode = -1

// Result describes a finished process.
type Result struct {
	ExitCode int
	Output   []byte
}

// CommandRunner defines the interface for executing external commands.
// dir is the child's working directory; empty means the caller's.
type CommandRunner interface {
	// Run attaches the child's standard streams to the runner's streams.
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
	// RunOutput captures combined stdout and stderr.
	RunOutput(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExitError is returned when a command ran but exited non-zero.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Output []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command(), e.Code)
}

// Command returns the command line as a single string.
func (e *ExitError) Command() string {
	if len(e.Args) == 0 {
		return e.Name
	}
	return e.Name + " " + strings.Join(e.Args, " ")
}

// ExitCode extracts the exit code carried by err.
// It returns 0 for nil and StartFailedCode for errors without an exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return StartFailedCode
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
	// Env is appended to the inherited environment.
	Env []string
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := r.command(ctx, dir, name, args)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return finish(cmd.Run(), name, args, nil)
}

func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := r.command(ctx, dir, name, args)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return finish(err, name, args, buf.Bytes())
}

func (r ExecRunner) command(ctx context.Context, dir, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}
	return cmd
}

func (r ExecRunner) stdin() io.Reader {
	if r.In != nil {
		return r.In
	}
	return os.Stdin
}

func (r ExecRunner) stdout() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.ErrOut != nil {
		return r.ErrOut
	}
	return os.Stderr
}

func finish(err error, name string, args []string, output []byte) (Result, error) {
	if err == nil {
		return Result{ExitCode: 0, Output: output}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return Result{ExitCode: code, Output: output}, &ExitError{
			Name:   name,
			Args:   append([]string(nil), args...),
			Code:   code,
			Output: output,
		}
	}
	return Result{ExitCode: StartFailedCode, Output: output}, fmt.Errorf("run %s: %w", name, err)
}

// Tail returns the last n non-empty lines of output.
func Tail(output []byte, n int) []string {
	if n <= 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(string(output), "\n"), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return kept
}
