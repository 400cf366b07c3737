// Package window draws bordered, padded rectangles of text onto a grid.
//
// A window's size is its outer size and includes the border on every edge: a
// window at (0,0) of size (10,10) owns columns 0..9 and lines 0..9.
package window

import (
	"sync"

	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/grid"
)

// Padding is the distance from the outer edge to the content area.
type Padding struct {
	Top, Right, Bottom, Left int
}

// DefaultPadding leaves one line above and below and two columns on each side.
var DefaultPadding = Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}

type Window struct {
	mu      sync.RWMutex
	x, y    int
	w, h    int
	style   border.Style
	fill    bool
	padding Padding
	layout  Layout
	lines   []string
}

type Option func(*Window)

func WithPosition(x, y int) Option {
	return func(w *Window) {
		w.x, w.y = x, y
	}
}

func WithSize(width, height int) Option {
	return func(w *Window) {
		w.w, w.h = width, height
	}
}

func WithStyle(style border.Style) Option {
	return func(w *Window) {
		w.style = style
	}
}

// WithFill controls whether the interior is blanked before content is drawn.
func WithFill(fill bool) Option {
	return func(w *Window) {
		w.fill = fill
	}
}

func WithPadding(p Padding) Option {
	return func(w *Window) {
		w.padding = p
	}
}

func WithLayout(l Layout) Option {
	return func(w *Window) {
		w.layout = l
	}
}

// New returns a 10x10 filled double-bordered window at the origin, adjusted
// by opts.
func New(opts ...Option) *Window {
	w := &Window{
		w:       10,
		h:       10,
		style:   border.Double,
		fill:    true,
		padding: DefaultPadding,
		layout:  Fixed{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.layout == nil {
		w.layout = Fixed{}
	}
	return w
}

func (w *Window) Position() (x, y int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.x, w.y
}

func (w *Window) SetPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x, w.y = x, y
}

func (w *Window) Size() (width, height int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.w, w.h
}

func (w *Window) SetSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.w, w.h = width, height
}

func (w *Window) Style() border.Style {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.style
}

func (w *Window) SetStyle(style border.Style) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.style = style
}

// Bounds returns the outer rectangle, border included.
func (w *Window) Bounds() grid.Rect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return grid.Rect{X: w.x, Y: w.y, W: w.w, H: w.h}
}

// Inner returns the content rectangle: the outer rectangle shrunk by the
// padding.
func (w *Window) Inner() grid.Rect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.inner()
}

func (w *Window) inner() grid.Rect {
	p := w.padding
	return grid.Rect{
		X: w.x + p.Left,
		Y: w.y + p.Top,
		W: w.w - p.Left - p.Right,
		H: w.h - p.Top - p.Bottom,
	}
}

// Print appends a line of content.
func (w *Window) Print(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, text)
}

// SetLines replaces all content.
func (w *Window) SetLines(lines []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append([]string(nil), lines...)
}

// Lines returns a copy of the content.
func (w *Window) Lines() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string(nil), w.lines...)
}

// Clear removes all content.
func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = nil
}

// Draw writes the border, the fill and the content onto s.
func (w *Window) Draw(s grid.Surface) {
	w.mu.RLock()
	x, y, width, height := w.x, w.y, w.w, w.h
	style, fill, layout := w.style, w.fill, w.layout
	inner := w.inner()
	lines := append([]string(nil), w.lines...)
	w.mu.RUnlock()

	if width <= 0 || height <= 0 {
		return
	}
	drawBorder(s, x, y, width, height, style, fill)
	if fill {
		for j := 1; j < height-1; j++ {
			for i := 1; i < width-1; i++ {
				s.SetContent(x+i, y+j, ' ')
			}
		}
	}
	layout.Render(s, inner, lines)
}

// drawBorder sets, for every edge cell, only the sides that continue along
// the edge. Corners get the two sides that exist there. A filled window also
// clears the side of each non-corner edge cell facing its interior, so lines
// drawn underneath do not poke through.
func drawBorder(s grid.Surface, x, y, width, height int, style border.Style, fill bool) {
	top, bottom := y, y+height-1
	left, right := x, x+width-1

	for i := 0; i < width; i++ {
		if i != 0 {
			s.SetBorder(x+i, top, border.Left, style)
			s.SetBorder(x+i, bottom, border.Left, style)
		}
		if i != width-1 {
			s.SetBorder(x+i, top, border.Right, style)
			s.SetBorder(x+i, bottom, border.Right, style)
		}
		if fill && i != 0 && i != width-1 {
			s.SetBorder(x+i, top, border.Down, border.Empty)
			s.SetBorder(x+i, bottom, border.Up, border.Empty)
		}
	}

	for j := 0; j < height; j++ {
		if j != 0 {
			s.SetBorder(left, y+j, border.Up, style)
			s.SetBorder(right, y+j, border.Up, style)
		}
		if j != height-1 {
			s.SetBorder(left, y+j, border.Down, style)
			s.SetBorder(right, y+j, border.Down, style)
		}
		if fill && j != 0 && j != height-1 {
			s.SetBorder(right, y+j, border.Left, border.Empty)
			s.SetBorder(left, y+j, border.Right, border.Empty)
		}
	}
}
