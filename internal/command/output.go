// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction and emoji resolution.
package command

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/create-ethora-app/internal/infra/interaction"
	"github.com/poruru-code/create-ethora-app/internal/infra/ui"
)

var errConflictingEmojiFlags = errors.New("--emoji and --no-emoji cannot be used together")

func consoleUI(out io.Writer, emojiEnabled bool) ui.UserInterface {
	return ui.NewConsoleUI(out, emojiEnabled)
}

func resolveEmojiEnabled(out io.Writer, cli CLI) (bool, error) {
	if cli.Emoji && cli.NoEmoji {
		return false, errConflictingEmojiFlags
	}
	if cli.Emoji {
		return true, nil
	}
	if cli.NoEmoji {
		return false, nil
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false, nil
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file), nil
	}
	return false, nil
}
