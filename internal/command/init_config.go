// Where: internal/command/init_config.go
// What: init-config command.
// Why: Give users an editable copy of the built-in tool and hint settings.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/create-ethora-app/internal/infra/config"
)

// InitConfigCmd defines the init-config command flags.
type InitConfigCmd struct {
	Force bool `help:"Overwrite an existing config file"`
}

func runInitConfig(cli CLI, _ Dependencies, out io.Writer) int {
	path := strings.TrimSpace(cli.Config)
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			return exitWithError(out, err)
		}
		path = resolved
	}

	if _, err := os.Stat(path); err == nil && !cli.InitConfig.Force {
		return exitWithError(out, fmt.Errorf("config already exists: %s (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return exitWithError(out, fmt.Errorf("stat config: %w", err))
	}

	if err := config.Save(path, config.Default()); err != nil {
		return exitWithError(out, err)
	}
	consoleUI(out, false).Success(fmt.Sprintf("Wrote %s", path))
	return 0
}
