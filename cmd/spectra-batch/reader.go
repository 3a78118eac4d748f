package main

import (
	"io"
	"os"

	"github.com/sachac/spectra/internal/input"
)

// lineReader is the common surface both of internal/input's readers offer;
// runInteractive only needs ReadLine and Close.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

// newLineReader picks an interactive (readline-backed) reader unless direct
// is set or r isn't a TTY worth driving readline against, mirroring tqi's
// --direct flag and its fallback to direct stdin reading.
func newLineReader(r io.Reader, direct bool) (lineReader, error) {
	if !direct {
		if f, ok := r.(*os.File); ok {
			if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
				return input.NewInteractiveReader()
			}
		}
	}
	return input.NewDirectReader(r), nil
}
