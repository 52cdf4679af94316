// Where: internal/infra/config/errors.go
// What: Shared error definitions for config infra.
// Why: Ensure consistent error wrapping without dynamic error creation.
package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEnv   = errors.New("invalid environment value")
	ErrSchemaFailed = errors.New("config does not match schema")
)

func invalidEnvError(key, value string, cause error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, key, value, cause)
}
