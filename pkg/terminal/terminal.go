// Package terminal is the small slice of terminal control the canvas needs:
// size queries, cursor positioning escapes and ANSI enablement.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Sizer reports the size of an output surface in columns and lines.
type Sizer interface {
	Size() (cols, lines int, err error)
}

// Fixed is a Sizer that never changes.
type Fixed struct {
	Cols, Lines int
}

func (f Fixed) Size() (int, int, error) {
	return f.Cols, f.Lines, nil
}

// Terminal is a tty backed output.
type Terminal struct {
	f *os.File
}

func New(f *os.File) *Terminal {
	return &Terminal{f: f}
}

// Stdout returns the process's standard output terminal.
func Stdout() *Terminal {
	return New(os.Stdout)
}

func (t *Terminal) Size() (int, int, error) {
	cols, lines, err := getSize(int(t.f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("unable to query size of %s: %w", t.f.Name(), err)
	}
	return cols, lines, nil
}

// IsTerminal reports whether the file is attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.f.Fd()))
}

// EnableANSI turns on escape sequence processing where the platform needs it.
// The returned func restores the previous console mode.
func (t *Terminal) EnableANSI() (func() error, error) {
	return enableANSI(t.f)
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.f.Write(p)
}
