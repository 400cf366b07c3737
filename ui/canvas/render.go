package canvas

import (
	"fmt"
	"unicode/utf8"

	"github.com/hinshun/termwin/pkg/grid"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/pkg/terminal"
	"github.com/hinshun/termwin/ui/window"
	"github.com/mattn/go-runewidth"
)

// Serialize renders the part of r on the grid row by row. Rows after the
// first are preceded by a cursor move to the left edge of r, so the output
// stays aligned when r is narrower than the terminal.
func (c *Canvas) Serialize(r grid.Rect) string {
	c.gridMu.RLock()
	defer c.gridMu.RUnlock()
	return string(c.appendRegion(nil, r.Intersect(c.grid.Bounds())))
}

func (c *Canvas) appendRegion(b []byte, r grid.Rect) []byte {
	for y := r.Y; y < r.Y+r.H; y++ {
		if y != r.Y {
			b = terminal.AppendMove(b, r.X, y)
		}
		for x := r.X; x < r.X+r.W; x++ {
			cell := c.grid.Cell(x, y)
			if !cell.IsContent() {
				b = append(b, c.glyphs.Glyph(cell.Mask(), c.debug)...)
				continue
			}

			ch := cell.Rune()
			b = utf8.AppendRune(b, ch)
			// Wide and zero width characters leave the cursor off by one
			// or more columns.
			if runewidth.RuneWidth(ch) != 1 && x+1 < r.X+r.W {
				b = terminal.AppendMove(b, x+1, y)
			}
		}
	}
	return b
}

// region returns the rectangle a refresh of w covers: the whole grid for a
// nil window, otherwise the window's bounds clipped to the grid.
func (c *Canvas) region(w *window.Window) grid.Rect {
	bounds := c.grid.Bounds()
	if w == nil {
		return bounds
	}
	return w.Bounds().Intersect(bounds)
}

// frame builds the bytes written for a refresh of w.
func (c *Canvas) frame(w *window.Window, saveCursor bool) ([]byte, grid.Rect) {
	c.stage.Store(int32(Serializing))

	c.gridMu.RLock()
	defer c.gridMu.RUnlock()

	r := c.region(w)
	b := make([]byte, 0, r.W*r.H*3+r.H*8+16)
	if saveCursor {
		b = append(b, terminal.SaveCursor...)
	}
	if !c.debug && !r.Empty() {
		b = terminal.AppendMove(b, r.X, r.Y)
	}
	b = c.appendRegion(b, r)
	if saveCursor {
		b = append(b, terminal.RestoreCursor...)
	}
	return b, r
}

// Print writes the region of w, or the whole grid for a nil window, as it
// stands after the last redraw.
func (c *Canvas) Print(w *window.Window) error {
	b, r := c.frame(w, false)
	return c.flush(b, r)
}

// Refresh redraws every window and writes the region of w, or the whole
// grid for a nil window. The cursor is saved before the frame and restored
// after it. Concurrent refreshes wait for each other; frames never
// interleave.
func (c *Canvas) Refresh(w *window.Window) error {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	c.stage.Store(int32(Redrawing))
	c.redraw()
	b, r := c.frame(w, true)
	return c.flush(b, r)
}

// flusher is implemented by buffered outputs such as bufio.Writer.
type flusher interface {
	Flush() error
}

// flush writes one frame. A failed write drops that frame only.
func (c *Canvas) flush(b []byte, r grid.Rect) error {
	c.printMu.Lock()
	defer c.printMu.Unlock()

	c.stage.Store(int32(Flushing))
	defer c.stage.Store(int32(Idle))

	_, err := c.out.Write(b)
	if fl, ok := c.out.(flusher); ok && err == nil {
		err = fl.Flush()
	}
	if err != nil {
		c.log.Error().Err(err).Msg("unable to write frame")
		return fmt.Errorf("unable to write frame: %w", err)
	}

	cols, lines := c.Size()
	f := pubsub.Frame{
		Seq:    c.seq.Add(1),
		Cols:   cols,
		Lines:  lines,
		Region: r,
		Bytes:  len(b),
	}
	n := c.pubsub.Publish(f)
	c.log.Debug().
		Uint64("seq", f.Seq).
		Int("bytes", f.Bytes).
		Int("subscribers", n).
		Msg("flushed frame")
	return nil
}
