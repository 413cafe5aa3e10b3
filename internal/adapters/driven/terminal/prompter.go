// Package terminal implements driven.Prompter over the console.
// Secrets are read without echo when stdin is a real terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/casics/annotator/internal/core/ports/driven"
)

// Ensure Prompter implements the interface.
var _ driven.Prompter = (*Prompter)(nil)

// Prompter reads credential fields from the console.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the stdin descriptor used for echo suppression, or -1 when
	// input is not a terminal (tests, pipes).
	fd int
}

// NewPrompter creates a prompter on stdin/stderr. Prompt text goes to
// stderr so piped stdout stays clean.
func NewPrompter() *Prompter {
	return &Prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
		fd:  int(os.Stdin.Fd()),
	}
}

// NewPrompterWithIO creates a prompter on arbitrary reader/writer pairs.
// Echo suppression is disabled. Useful for testing.
func NewPrompterWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
}

// ReadString prompts for a plain value. A non-empty defaultValue is shown
// in brackets and returned when the user just presses enter. End of input
// surfaces as an error so the resolver can report an abandoned prompt.
func (p *Prompter) ReadString(prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	line, err := p.in.ReadString('\n')
	input := strings.TrimSpace(line)
	if err != nil && input == "" {
		return "", fmt.Errorf("reading %s: %w", prompt, err)
	}
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// ReadSecret prompts for a value without echoing it on a terminal, falling
// back to a plain read otherwise.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)

	if p.fd >= 0 && term.IsTerminal(p.fd) {
		secret, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", prompt, err)
		}
		return string(secret), nil
	}

	line, err := p.in.ReadString('\n')
	input := strings.TrimSpace(line)
	if err != nil && input == "" {
		return "", fmt.Errorf("reading %s: %w", prompt, err)
	}
	return input, nil
}
