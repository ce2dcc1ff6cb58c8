// Package prompt handles interactive input for provctl.
//
// Purpose:
//
//	Collect secrets and customer details from the operator. Token input
//	is masked when stdin is a terminal; prompts are written to stderr
//	so that piped stdout stays clean.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/provtools/provctl/internal/errors"
)

// Prompter asks the operator for a service token.
type Prompter interface {
	Token(serviceURL string) (string, error)
}

// TerminalPrompter reads from stdin and writes prompts to stderr.
type TerminalPrompter struct {
	in  *os.File
	out io.Writer
}

// NewTerminalPrompter returns a prompter bound to the process terminal.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{in: os.Stdin, out: os.Stderr}
}

// Token asks for the service token belonging to serviceURL. Input is
// masked when stdin is a terminal and read as a plain line otherwise.
func (p *TerminalPrompter) Token(serviceURL string) (string, error) {
	fmt.Fprintf(p.out, "Please enter X-SDS-Service-Token for %s: ", serviceURL)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", errors.NewIO(err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.NewIO(err)
	}
	return strings.TrimSpace(line), nil
}
