// Package grid is the cell store a canvas composes windows into.
package grid

import (
	"github.com/hinshun/termwin/pkg/border"
)

// Cell holds either a border mask or a content character. The zero Cell is an
// empty border.
type Cell struct {
	mask    border.Mask
	content rune
	isText  bool
}

// BorderCell returns a cell holding the given mask.
func BorderCell(m border.Mask) Cell {
	return Cell{mask: m}
}

// ContentCell returns a cell holding the character r.
func ContentCell(r rune) Cell {
	return Cell{content: r, isText: true}
}

// IsContent reports whether the cell holds a character rather than a mask.
func (c Cell) IsContent() bool {
	return c.isText
}

// Mask returns the border mask, or 0 for content cells.
func (c Cell) Mask() border.Mask {
	if c.isText {
		return 0
	}
	return c.mask
}

// Rune returns the content character, or 0 for border cells.
func (c Cell) Rune() rune {
	if !c.isText {
		return 0
	}
	return c.content
}

// Surface is what windows draw onto.
type Surface interface {
	SetBorder(x, y int, side border.Side, style border.Style)
	SetContent(x, y int, r rune)
}

// Grid is a width x height array of cells. Writes outside the grid are
// dropped.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

var _ Surface = (*Grid)(nil)

// New creates a grid with every cell empty.
func New(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid. All previous cells are discarded, even when
// the size does not change.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := width * height
	if cap(g.cells) >= n {
		g.cells = g.cells[:n]
		for i := range g.cells {
			g.cells[i] = Cell{}
		}
	} else {
		g.cells = make([]Cell, n)
	}
	g.width = width
	g.height = height
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds returns true if the given coordinates are within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Cell returns the cell at x,y, or an empty cell when out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[g.index(x, y)]
}

// SetBorder overwrites one side of the cell's mask. A content cell is reset
// to an empty mask first.
func (g *Grid) SetBorder(x, y int, side border.Side, style border.Style) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	c := g.cells[idx]
	if c.isText {
		c = Cell{}
	}
	c.mask = border.Compose(c.mask, side, style)
	g.cells[idx] = c
}

// SetContent replaces the cell with a character.
func (g *Grid) SetContent(x, y int, r rune) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = ContentCell(r)
}

// PrintLine writes text left to right starting at x,y. Characters falling
// outside the grid are dropped.
func PrintLine(s Surface, x, y int, text string) {
	for _, r := range text {
		s.SetContent(x, y, r)
		x++
	}
}
