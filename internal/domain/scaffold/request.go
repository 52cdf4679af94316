// Where: internal/domain/scaffold/request.go
// What: The single per-run scaffold request and its validation rules.
// Why: Keep input rules and the working directory lifecycle in one place.
package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	DefaultAppName  = "MyApp"
	DefaultBundleID = "com.myapp"

	// maxAppNameLength follows the npm package name limit.
	maxAppNameLength = 214
)

const reservedNameChars = `/\:*?"<>|`

// Request captures the inputs of one scaffold run.
// WorkingDir is empty until the clone step attaches it.
type Request struct {
	AppName      string
	BundleID     string
	WorkingDir   string
	BackendSetup bool
}

// NewRequest normalizes and validates the user supplied values.
func NewRequest(appName, bundleID string, backendSetup bool) (Request, error) {
	name, err := NormalizeAppName(appName)
	if err != nil {
		return Request{}, err
	}
	bundle, err := NormalizeBundleID(bundleID)
	if err != nil {
		return Request{}, err
	}
	return Request{AppName: name, BundleID: bundle, BackendSetup: backendSetup}, nil
}

// Validate checks AppName and BundleID.
func (r Request) Validate() error {
	if _, err := NormalizeAppName(r.AppName); err != nil {
		return err
	}
	if _, err := NormalizeBundleID(r.BundleID); err != nil {
		return err
	}
	return nil
}

// HasBundleID reports whether downstream tools should receive a bundle flag.
func (r Request) HasBundleID() bool {
	return r.BundleID != ""
}

// AttachWorkingDir returns a copy of the request bound to the cloned directory.
// It may be called once per request.
func (r Request) AttachWorkingDir(dir string) (Request, error) {
	if r.WorkingDir != "" {
		return r, ErrWorkingDirAlreadySet
	}
	if !filepath.IsAbs(dir) {
		return r, fmt.Errorf("%w: %s", ErrWorkingDirNotAbs, dir)
	}
	r.WorkingDir = filepath.Clean(dir)
	return r, nil
}

// RequireWorkingDir returns the cloned directory or ErrWorkingDirNotSet.
func (r Request) RequireWorkingDir() (string, error) {
	if r.WorkingDir == "" {
		return "", ErrWorkingDirNotSet
	}
	return r.WorkingDir, nil
}

// NormalizeAppName trims the name and rejects values that cannot be used as a
// single path segment.
func NormalizeAppName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", ErrAppNameRequired
	}
	if name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrAppNameInvalid, name)
	}
	if len(name) > maxAppNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrAppNameInvalid, maxAppNameLength)
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q must not start with '-' or '.'", ErrAppNameInvalid, name)
	}
	for _, r := range name {
		if strings.ContainsRune(reservedNameChars, r) || unicode.IsControl(r) {
			return "", fmt.Errorf("%w: %q contains %q", ErrAppNameInvalid, name, r)
		}
	}
	return name, nil
}

// NormalizeBundleID trims the identifier. Empty is allowed and means the
// bundle flag is omitted.
func NormalizeBundleID(value string) (string, error) {
	id := strings.TrimSpace(value)
	if id == "" {
		return "", nil
	}
	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: %q", ErrBundleIDInvalid, id)
	}
	for _, segment := range segments {
		if !validBundleSegment(segment) {
			return "", fmt.Errorf("%w: %q", ErrBundleIDInvalid, id)
		}
	}
	return id, nil
}

func validBundleSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for i, r := range segment {
		if r > unicode.MaxASCII {
			return false
		}
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}
	return true
}
