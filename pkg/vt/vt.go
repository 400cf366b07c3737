// Package vt is an in-memory virtual terminal. Frames written to it are
// interpreted the way a real VT would, which makes it a render target for
// snapshots and tests.
package vt

import (
	"strings"

	"github.com/hinshun/vt10x"
)

type VT struct {
	term vt10x.Terminal
}

func New(cols, rows int) *VT {
	return &VT{
		term: vt10x.New(vt10x.WithSize(cols, rows)),
	}
}

func (vt *VT) Write(p []byte) (n int, err error) {
	return vt.term.Write(p)
}

// Size implements terminal.Sizer.
func (vt *VT) Size() (int, int, error) {
	cols, rows := vt.term.Size()
	return cols, rows, nil
}

func (vt *VT) Resize(cols, rows int) {
	vt.term.Resize(cols, rows)
}

// Char returns the character displayed at x,y, or 0 outside the screen.
func (vt *VT) Char(x, y int) rune {
	vt.term.Lock()
	defer vt.term.Unlock()
	cols, rows := vt.term.Size()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return 0
	}
	return vt.term.Cell(x, y).Char
}

// Cursor returns the cursor position.
func (vt *VT) Cursor() (x, y int) {
	vt.term.Lock()
	defer vt.term.Unlock()
	c := vt.term.Cursor()
	return c.X, c.Y
}

// Lines returns the screen contents, one string per line.
func (vt *VT) Lines() []string {
	return strings.Split(strings.TrimSuffix(vt.term.String(), "\n"), "\n")
}

func (vt *VT) String() string {
	return vt.term.String()
}
