// Where: internal/domain/scaffold/errors.go
// What: Sentinel errors for scaffold request validation.
// Why: Let callers branch on validation failures with errors.Is.
package scaffold

import "errors"

var (
	ErrAppNameRequired      = errors.New("app name is required")
	ErrAppNameInvalid       = errors.New("app name is not a valid directory name")
	ErrBundleIDInvalid      = errors.New("bundle ID must be a reverse-domain identifier (e.g. com.example.app)")
	ErrWorkingDirNotSet     = errors.New("working directory is not set; clone has not completed")
	ErrWorkingDirAlreadySet = errors.New("working directory is already set")
	ErrWorkingDirNotAbs     = errors.New("working directory must be an absolute path")
)
