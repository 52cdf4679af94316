// Where: internal/usecase/scaffold/tools.go
// What: External tool definitions and argument shaping.
// Why: Keep argument construction pure so it can be asserted without
// launching processes.
package scaffold

import (
	"path/filepath"
	"strings"

	domain "github.com/poruru-code/create-ethora-app/internal/domain/scaffold"
)

// Command is an executable plus the leading arguments that select a tool,
// e.g. {Name: "npx", Args: ["react-native-rename"]}.
type Command struct {
	Name string
	Args []string
}

// Label is the tool name used in progress and exit-code lines.
func (c Command) Label() string {
	if isLauncher(c.Name) && len(c.Args) > 0 {
		return c.Args[0]
	}
	return filepath.Base(c.Name)
}

// Invocation appends extra to the command's own arguments.
func (c Command) Invocation(extra ...string) (string, []string) {
	args := make([]string, 0, len(c.Args)+len(extra))
	args = append(args, c.Args...)
	args = append(args, extra...)
	return c.Name, args
}

func (c Command) configured() bool {
	return strings.TrimSpace(c.Name) != ""
}

func isLauncher(name string) bool {
	switch filepath.Base(name) {
	case "npx", "pnpx", "bunx":
		return true
	}
	return false
}

// Tools groups the external collaborators invoked after the clone.
type Tools struct {
	Rename       Command
	Install      []Command
	BackendSetup Command
}

// Source identifies the boilerplate repository.
type Source struct {
	RepoURL string
	Branch  string
	Shallow bool
}

// RenameArgs returns the rename tool arguments for req:
// <appName> [--bundleID <bundleId>].
func RenameArgs(req domain.Request) []string {
	args := []string{req.AppName}
	if req.HasBundleID() {
		args = append(args, "--bundleID", req.BundleID)
	}
	return args
}

// BackendSetupArgs returns the backend setup arguments: <bundleId> <displayName>.
func BackendSetupArgs(req domain.Request) []string {
	return []string{req.BundleID, req.AppName}
}
