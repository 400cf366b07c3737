// Package canvas composes windows onto a grid sized to the terminal and
// writes the result as a single buffered frame.
package canvas

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/grid"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/pkg/terminal"
	"github.com/hinshun/termwin/ui/window"
	"github.com/rs/zerolog"
)

const (
	// DefaultCols and DefaultLines are used until the first successful size
	// query.
	DefaultCols  = 80
	DefaultLines = 24
)

// Stage is the step of the render pipeline a canvas is in.
type Stage int32

const (
	Idle Stage = iota
	Redrawing
	Serializing
	Flushing
)

func (s Stage) String() string {
	switch s {
	case Idle:
		return "idle"
	case Redrawing:
		return "redrawing"
	case Serializing:
		return "serializing"
	case Flushing:
		return "flushing"
	default:
		return "unknown"
	}
}

type Canvas struct {
	// renderMu is held for a whole refresh, printMu for a single frame write.
	renderMu sync.Mutex
	printMu  sync.Mutex

	mu      sync.Mutex
	windows []*window.Window

	gridMu      sync.RWMutex
	grid        *grid.Grid
	cols, lines int

	sizer  terminal.Sizer
	out    io.Writer
	glyphs border.Table
	debug  bool
	log    zerolog.Logger

	stage  atomic.Int32
	seq    atomic.Uint64
	pubsub *pubsub.Pubsub
}

type Option func(*Canvas)

// WithDebug renders unknown masks as their decoded sides and leaves the
// cursor where it is before a frame.
func WithDebug(debug bool) Option {
	return func(c *Canvas) {
		c.debug = debug
	}
}

// WithGlyphs replaces the glyph table. Any placeholder set with
// WithPlaceholder must come after it.
func WithGlyphs(t border.Table) Option {
	return func(c *Canvas) {
		c.glyphs = t
	}
}

func WithPlaceholder(r rune) Option {
	return func(c *Canvas) {
		c.glyphs = c.glyphs.WithPlaceholder(r)
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Canvas) {
		c.log = log
	}
}

func WithWindows(windows ...*window.Window) Option {
	return func(c *Canvas) {
		for _, w := range windows {
			c.addWindow(w)
		}
	}
}

// New creates a canvas sized by sizer that writes frames to out. A nil out
// discards frames.
func New(sizer terminal.Sizer, out io.Writer, opts ...Option) *Canvas {
	if out == nil {
		out = io.Discard
	}
	c := &Canvas{
		grid:   grid.New(DefaultCols, DefaultLines),
		cols:   DefaultCols,
		lines:  DefaultLines,
		sizer:  sizer,
		out:    out,
		glyphs: border.Default,
		log:    zerolog.Nop(),
		pubsub: pubsub.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddWindow appends w to the draw order. Adding a window twice is a no-op.
func (c *Canvas) AddWindow(w *window.Window) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addWindow(w)
}

func (c *Canvas) addWindow(w *window.Window) {
	for _, existing := range c.windows {
		if existing == w {
			return
		}
	}
	c.windows = append(c.windows, w)
}

// RemoveWindow drops w from the draw order if present.
func (c *Canvas) RemoveWindow(w *window.Window) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.windows {
		if existing == w {
			c.windows = append(c.windows[:i], c.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the windows in draw order.
func (c *Canvas) Windows() []*window.Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*window.Window(nil), c.windows...)
}

// Size returns the size observed by the last redraw.
func (c *Canvas) Size() (cols, lines int) {
	c.gridMu.RLock()
	defer c.gridMu.RUnlock()
	return c.cols, c.lines
}

// Stage returns the pipeline step currently running.
func (c *Canvas) Stage() Stage {
	return Stage(c.stage.Load())
}

// Subscribe registers ch to receive a Frame after every flushed frame. A
// subscriber that is not ready misses the frame.
func (c *Canvas) Subscribe(id string, ch chan pubsub.Frame) {
	c.pubsub.Subscribe(id, ch)
}

func (c *Canvas) Unsubscribe(id string) {
	c.pubsub.Unsubscribe(id)
}

// Close closes every subscription.
func (c *Canvas) Close() error {
	return c.pubsub.Close()
}

// Redraw queries the terminal size, discards the grid and draws every window
// onto a fresh one in order. When the size query fails the previous size is
// kept.
func (c *Canvas) Redraw() {
	c.stage.Store(int32(Redrawing))
	defer c.stage.Store(int32(Idle))
	c.redraw()
}

func (c *Canvas) redraw() {
	cols, lines := c.querySize()
	windows := c.Windows()

	c.gridMu.Lock()
	defer c.gridMu.Unlock()

	if cols != c.cols || lines != c.lines {
		c.log.Debug().
			Int("cols", cols).
			Int("lines", lines).
			Int("prevCols", c.cols).
			Int("prevLines", c.lines).
			Msg("terminal resized")
	}
	c.cols, c.lines = cols, lines
	c.grid.Resize(cols, lines)

	for _, w := range windows {
		w.Draw(c.grid)
	}
}

func (c *Canvas) querySize() (int, int) {
	c.gridMu.RLock()
	cols, lines := c.cols, c.lines
	c.gridMu.RUnlock()

	if c.sizer == nil {
		return cols, lines
	}
	qc, ql, err := c.sizer.Size()
	if err != nil {
		c.log.Warn().Err(err).Msg("unable to query terminal size, keeping previous size")
		return cols, lines
	}
	return qc, ql
}

// Cell returns the grid cell at x,y from the last redraw.
func (c *Canvas) Cell(x, y int) grid.Cell {
	c.gridMu.RLock()
	defer c.gridMu.RUnlock()
	return c.grid.Cell(x, y)
}

// Visit calls fn for every cell of r that lies on the grid with the single
// rune displayed there. Border cells resolve through the glyph table.
func (c *Canvas) Visit(r grid.Rect, fn func(x, y int, ch rune)) {
	c.gridMu.RLock()
	defer c.gridMu.RUnlock()

	r = r.Intersect(c.grid.Bounds())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cell := c.grid.Cell(x, y)
			if cell.IsContent() {
				fn(x, y, cell.Rune())
				continue
			}
			ch, _ := c.glyphs.Rune(cell.Mask())
			fn(x, y, ch)
		}
	}
}
