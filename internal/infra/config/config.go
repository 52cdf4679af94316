// Where: internal/infra/config/config.go
// What: Scaffold configuration load/save.
// Why: Keep the boilerplate URL, tool invocations and usage hints out of the
// workflow so they can be overridden and faked.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/create-ethora-app/internal/meta"
)

const currentVersion = 1

// Config represents config.yaml.
type Config struct {
	Version      int    `yaml:"version"`
	RepoURL      string `yaml:"repo_url,omitempty"`
	Branch       string `yaml:"branch,omitempty"`
	Shallow      bool   `yaml:"shallow,omitempty"`
	BackendSetup bool   `yaml:"backend_setup,omitempty"`
	Tools        Tools  `yaml:"tools,omitempty"`
	Hints        []Hint `yaml:"hints,omitempty"`
}

// Command is an executable plus its leading arguments.
type Command struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args,omitempty"`
}

// Tools lists the external collaborators invoked by the workflow.
type Tools struct {
	Rename       Command   `yaml:"rename,omitempty"`
	Install      []Command `yaml:"install,omitempty"`
	BackendSetup Command   `yaml:"backend_setup,omitempty"`
}

// Hint is one usage line printed after a successful run.
type Hint struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type commandOverlay struct {
	Tools struct {
		Rename       *Command `yaml:"rename"`
		BackendSetup *Command `yaml:"backend_setup"`
	} `yaml:"tools"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version: currentVersion,
		RepoURL: meta.DefaultRepoURL,
		Tools: Tools{
			Rename: Command{Name: "npx", Args: []string{"react-native-rename"}},
			Install: []Command{
				{Name: "yarn"},
				{Name: "npx", Args: []string{"pod-install"}},
			},
			BackendSetup: Command{Name: "npx", Args: []string{"create-ethora-fireapp"}},
		},
		Hints: []Hint{
			{Command: "yarn start", Description: "Starts the development server."},
			{Command: "yarn ios", Description: "Starts the app in the iOS simulator (requires Xcode)."},
			{Command: "yarn android", Description: "Starts the app in the Android emulator (requires Android Studio)."},
		},
	}
}

// DefaultPath returns <user config dir>/create-ethora-app/config.yaml.
func DefaultPath() (string, error) {
	if value, ok, err := lookupEnv(envSuffixConfig); err != nil {
		return "", err
	} else if ok {
		return value, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, meta.Slug, meta.ConfigFileName), nil
}

// Load reads path, validates it and overlays it on Default.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Validate(payload); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	// yaml merges into existing structs; a configured command replaces the
	// default whole so its args are never inherited.
	var commands commandOverlay
	if err := yaml.Unmarshal(payload, &commands); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if commands.Tools.Rename != nil {
		cfg.Tools.Rename = *commands.Tools.Rename
	}
	if commands.Tools.BackendSetup != nil {
		cfg.Tools.BackendSetup = *commands.Tools.BackendSetup
	}
	if cfg.Version == 0 {
		cfg.Version = currentVersion
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
// An empty path resolves to DefaultPath.
func LoadOrDefault(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		resolved, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = resolved
	}
	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
