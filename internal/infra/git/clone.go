// Where: internal/infra/git/clone.go
// What: Boilerplate repository acquisition through the git CLI.
// Why: Materialize ./<appName> and resolve the absolute path that every later
// step runs in.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/create-ethora-app/internal/infra/process"
)

var (
	ErrTargetExists    = errors.New("target directory already exists")
	errRepoURLRequired = errors.New("repository url is required")
	errTargetRequired  = errors.New("target directory name is required")
	errRunnerNil       = errors.New("command runner is nil")
)

// CloneOptions tunes the clone invocation.
type CloneOptions struct {
	Branch  string
	Shallow bool
}

// Cloner clones a repository into parentDir/target and returns the absolute
// path of the new directory.
type Cloner interface {
	Clone(ctx context.Context, parentDir, url, target string, opts CloneOptions) (string, error)
}

// CLICloner runs `git clone` through a process.CommandRunner.
type CLICloner struct {
	Runner process.CommandRunner
	Binary string
}

// NewCLICloner returns a Cloner backed by the git binary on PATH.
func NewCLICloner(runner process.CommandRunner) CLICloner {
	return CLICloner{Runner: runner, Binary: "git"}
}

func (c CLICloner) Clone(ctx context.Context, parentDir, url, target string, opts CloneOptions) (string, error) {
	if c.Runner == nil {
		return "", errRunnerNil
	}
	if strings.TrimSpace(url) == "" {
		return "", errRepoURLRequired
	}
	if strings.TrimSpace(target) == "" {
		return "", errTargetRequired
	}
	parent, err := resolveParent(parentDir)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(parent, target)
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrTargetExists, dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat target: %w", err)
	}

	binary := c.Binary
	if binary == "" {
		binary = "git"
	}
	if _, err := c.Runner.Run(ctx, parent, binary, CloneArgs(url, target, opts)...); err != nil {
		return "", fmt.Errorf("git clone %s failed: %w", url, err)
	}
	return resolveClonedDir(dest)
}

// CloneArgs builds the git arguments for a clone.
func CloneArgs(url, target string, opts CloneOptions) []string {
	args := []string{"clone"}
	if branch := strings.TrimSpace(opts.Branch); branch != "" {
		args = append(args, "--branch", branch)
	}
	if opts.Shallow {
		args = append(args, "--depth", "1")
	}
	return append(args, url, target)
}

func resolveParent(parentDir string) (string, error) {
	dir := strings.TrimSpace(parentDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve parent dir: %w", err)
	}
	return abs, nil
}

func resolveClonedDir(dest string) (string, error) {
	info, err := os.Stat(dest)
	if err != nil {
		return "", fmt.Errorf("cloned directory missing: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("cloned path is not a directory: %s", dest)
	}
	// Symlinks in the parent stay as typed; the banner reports cwd/<appName>.
	return filepath.Clean(dest), nil
}
