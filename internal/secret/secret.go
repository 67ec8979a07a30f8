package secret

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Source yields the optional API key for the keyed generation check. An empty
// key means the keyed check should be skipped.
type Source interface {
	APIKey() (string, error)
}

// Static is a fixed key (or no key), for tests and non-interactive use.
type Static string

func (s Static) APIKey() (string, error) { return string(s), nil }

// Prompt asks the operator on a terminal. Pressing Enter skips.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) APIKey() (string, error) {
	fmt.Fprint(p.out, "\n🔑 Enter your API key (or press Enter to skip): ")
	line, err := p.in.ReadString('\n')
	// EOF with no input behaves like pressing Enter.
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
