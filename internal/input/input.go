// Package input reads one query line at a time (a steno stroke, optionally
// with its target word) from either a plain stream or an interactive terminal, for
// spectra-batch's interactive mode.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectLineReader reads lines from any generic input stream directly. It
// can be used with any io.Reader but does not sanitize the input of control
// and escape sequences; it's meant for piped, non-interactive input.
//
// DirectLineReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectLineReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveLineReader reads lines from stdin using a Go implementation of
// the GNU Readline library, keeping input clear of typing/editing escape
// sequences and enabling query history. Use this only when directly
// connected to a TTY.
//
// InteractiveLineReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveLineReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader initializes a buffered reader on r. The returned reader
// must have Close called on it before disposal.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader initializes readline with a default prompt. The
// returned reader must have Close called on it before disposal to properly
// tear down readline resources.
func NewInteractiveReader() (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "steno> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveLineReader{
		rl:     rl,
		prompt: "steno> ",
	}, nil
}

// Close is a no-op for DirectLineReader; it exists so both readers satisfy
// the same interface.
func (dr *DirectLineReader) Close() error {
	return nil
}

// Close tears down readline's terminal resources.
func (ir *InteractiveLineReader) Close() error {
	return ir.rl.Close()
}

// ReadLine reads the next line. It blocks until a line with non-space
// content is read, unless AllowBlank has been set, in which case a blank
// line is returned immediately.
//
// At end of input, the returned string is empty and the error is io.EOF.
func (dr *DirectLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadLine reads the next line from the readline session, with the same
// blocking/blank-handling contract as DirectLineReader.ReadLine.
func (ir *InteractiveLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && ir.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// AllowBlank sets whether a blank line is returned as-is. By default it is
// not, and ReadLine blocks past blank lines instead.
func (dr *DirectLineReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether a blank line is returned as-is. By default it is
// not, and ReadLine blocks past blank lines instead.
func (ir *InteractiveLineReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the prompt text shown before each read.
func (ir *InteractiveLineReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
	ir.prompt = p
}

// GetPrompt returns the current prompt text.
func (ir *InteractiveLineReader) GetPrompt() string {
	return ir.prompt
}
