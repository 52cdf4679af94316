// Where: cmd/create-ethora-app/main.go
// What: CLI entrypoint.
// Why: Execute the scaffold commands with process-backed dependencies.
package main

import (
	"os"

	"github.com/poruru-code/create-ethora-app/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
