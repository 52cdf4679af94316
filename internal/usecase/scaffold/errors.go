// Where: internal/usecase/scaffold/errors.go
// What: Workflow error definitions.
// Why: Let the command layer tell configuration faults from step failures.
package scaffold

import "errors"

var (
	errRunnerNotConfigured = errors.New("command runner is not configured")
	errClonerNotConfigured = errors.New("cloner is not configured")
	errRepoURLRequired     = errors.New("repository url is not configured")
	errRenameToolMissing   = errors.New("rename tool is not configured")
	errBackendToolMissing  = errors.New("backend setup tool is not configured")

	// ErrAuxiliaryFailed is returned in strict mode when the rename or backend
	// setup tool fails.
	ErrAuxiliaryFailed = errors.New("auxiliary step failed")
	// ErrBundleIDRequired marks a backend setup skipped for lack of a bundle ID.
	ErrBundleIDRequired = errors.New("backend setup requires a bundle ID")
)
