// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure output and exit codes consistent across commands.
package command

import (
	"io"

	"github.com/poruru-code/create-ethora-app/internal/infra/ui"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Error(err.Error())
	return 1
}
