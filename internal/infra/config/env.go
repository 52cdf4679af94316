// Where: internal/infra/config/env.go
// What: Environment overrides for config values.
// Why: Allow CI and .env files to point at a fork of the boilerplate.
package config

import (
	"strconv"

	"github.com/poruru-code/create-ethora-app/internal/infra/envutil"
	"github.com/poruru-code/create-ethora-app/internal/meta"
)

const (
	envSuffixConfig       = "CONFIG"
	envSuffixRepoURL      = "REPO_URL"
	envSuffixBranch       = "BRANCH"
	envSuffixBackendSetup = "BACKEND_SETUP"
)

func lookupEnv(suffix string) (string, bool, error) {
	return envutil.Lookup(meta.EnvPrefix, suffix)
}

// ApplyEnv overlays CREATE_ETHORA_APP_* variables on cfg.
func ApplyEnv(cfg Config) (Config, error) {
	if value, ok, err := lookupEnv(envSuffixRepoURL); err != nil {
		return cfg, err
	} else if ok {
		cfg.RepoURL = value
	}
	if value, ok, err := lookupEnv(envSuffixBranch); err != nil {
		return cfg, err
	} else if ok {
		cfg.Branch = value
	}
	if value, ok, err := lookupEnv(envSuffixBackendSetup); err != nil {
		return cfg, err
	} else if ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			key, _ := envutil.Key(meta.EnvPrefix, envSuffixBackendSetup)
			return cfg, invalidEnvError(key, value, err)
		}
		cfg.BackendSetup = enabled
	}
	return cfg, nil
}
