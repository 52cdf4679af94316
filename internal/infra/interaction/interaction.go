// Where: internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter defines the interface for interactive user input.
// Input returns the raw answer; an empty answer means "use the placeholder".
type Prompter interface {
	Input(title, placeholder string, validate func(string) error) (string, error)
	Confirm(title string, initial bool) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LinePrompter reads one line per prompt. It is used when stdin is not a TTY.
// Reads are unbuffered so input after the answers stays available to the
// child processes that share stdin.
type LinePrompter struct {
	reader io.Reader
	out    io.Writer
}

// NewLinePrompter builds a LinePrompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{reader: in, out: out}
}

func (p *LinePrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	if placeholder != "" {
		_, _ = fmt.Fprintf(p.out, "%s (%s): ", title, placeholder)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", title)
	}
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if validate != nil {
		if err := validate(line); err != nil {
			return "", err
		}
	}
	return line, nil
}

func (p *LinePrompter) Confirm(title string, initial bool) (bool, error) {
	hint := "[y/N]"
	if initial {
		hint = "[Y/n]"
	}
	_, _ = fmt.Fprintf(p.out, "%s %s: ", title, hint)
	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(line) {
	case "":
		return initial, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *LinePrompter) readLine() (string, error) {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := p.reader.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(line.String()), nil
}
