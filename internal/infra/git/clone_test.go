// Where: internal/infra/git/clone_test.go
// What: Tests for the git clone adapter.
// Why: Clone is the gate for every other step; its argument shape and
// conflict handling must stay stable.
package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/poruru-code/create-ethora-app/internal/infra/process"
)

type fakeRunner struct {
	dir   string
	name  string
	args  []string
	calls int
	mkdir bool
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (process.Result, error) {
	f.calls++
	f.dir = dir
	f.name = name
	f.args = args
	if f.err != nil {
		return process.Result{ExitCode: 128}, f.err
	}
	if f.mkdir {
		target := args[len(args)-1]
		if err := os.MkdirAll(filepath.Join(dir, target), 0o755); err != nil {
			return process.Result{}, err
		}
	}
	return process.Result{}, nil
}

func (f *fakeRunner) RunOutput(ctx context.Context, dir, name string, args ...string) (process.Result, error) {
	return f.Run(ctx, dir, name, args...)
}

func TestCloneArgs(t *testing.T) {
	got := CloneArgs("https://example.com/repo.git", "DemoApp", CloneOptions{})
	want := []string{"clone", "https://example.com/repo.git", "DemoApp"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CloneArgs mismatch (-want +got):\n%s", diff)
	}

	got = CloneArgs("u", "t", CloneOptions{Branch: "main", Shallow: true})
	want = []string{"clone", "--branch", "main", "--depth", "1", "u", "t"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CloneArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestCLIClonerReturnsAbsoluteDir(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{mkdir: true}
	cloner := NewCLICloner(runner)

	dir, err := cloner.Clone(context.Background(), parent, "https://example.com/repo.git", "DemoApp", CloneOptions{})
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	want := filepath.Join(parent, "DemoApp")
	if dir != want {
		t.Fatalf("dir = %q, want %q", dir, want)
	}
	if !filepath.IsAbs(dir) {
		t.Fatalf("dir %q is not absolute", dir)
	}
	if runner.name != "git" {
		t.Fatalf("binary = %q, want git", runner.name)
	}
	if runner.dir != parent {
		t.Fatalf("clone ran in %q, want %q", runner.dir, parent)
	}
}

func TestCLIClonerKeepsSymlinkedParent(t *testing.T) {
	target := t.TempDir()
	link := filepath.Join(t.TempDir(), "work")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}
	runner := &fakeRunner{mkdir: true}

	dir, err := NewCLICloner(runner).Clone(context.Background(), link, "u", "DemoApp", CloneOptions{})
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if want := filepath.Join(link, "DemoApp"); dir != want {
		t.Fatalf("dir = %q, want %q", dir, want)
	}
}

func TestCLIClonerRejectsExistingTarget(t *testing.T) {
	parent := t.TempDir()
	if err := os.Mkdir(filepath.Join(parent, "DemoApp"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	runner := &fakeRunner{}
	_, err := NewCLICloner(runner).Clone(context.Background(), parent, "u", "DemoApp", CloneOptions{})
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}
	if runner.calls != 0 {
		t.Fatalf("git must not run when the target exists, calls = %d", runner.calls)
	}
}

func TestCLIClonerWrapsRunnerError(t *testing.T) {
	runner := &fakeRunner{err: &process.ExitError{Name: "git", Code: 128}}
	_, err := NewCLICloner(runner).Clone(context.Background(), t.TempDir(), "u", "DemoApp", CloneOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if process.ExitCode(err) != 128 {
		t.Fatalf("exit code = %d, want 128", process.ExitCode(err))
	}
}

func TestCLIClonerRequiresInputs(t *testing.T) {
	cloner := NewCLICloner(&fakeRunner{})
	if _, err := cloner.Clone(context.Background(), "", "", "DemoApp", CloneOptions{}); !errors.Is(err, errRepoURLRequired) {
		t.Fatalf("expected errRepoURLRequired, got %v", err)
	}
	if _, err := cloner.Clone(context.Background(), "", "u", " ", CloneOptions{}); !errors.Is(err, errTargetRequired) {
		t.Fatalf("expected errTargetRequired, got %v", err)
	}
	if _, err := (CLICloner{}).Clone(context.Background(), "", "u", "t", CloneOptions{}); !errors.Is(err, errRunnerNil) {
		t.Fatalf("expected errRunnerNil, got %v", err)
	}
}
