// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var errEnvPrefixRequired = errors.New("env prefix is required")

// Key constructs a prefixed environment variable name.
// Example: Key("CREATE_ETHORA_APP", "REPO_URL") returns "CREATE_ETHORA_APP_REPO_URL".
func Key(prefix, suffix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errEnvPrefixRequired
	}
	return prefix + "_" + suffix, nil
}

// Lookup retrieves a prefixed environment variable.
// Blank values are reported as unset.
func Lookup(prefix, suffix string) (string, bool, error) {
	key, err := Key(prefix, suffix)
	if err != nil {
		return "", false, err
	}
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	return strings.TrimSpace(value), true, nil
}

// Set sets a prefixed environment variable.
func Set(prefix, suffix, value string) error {
	key, err := Key(prefix, suffix)
	if err != nil {
		return err
	}
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}
