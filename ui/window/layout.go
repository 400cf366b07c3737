package window

import (
	"sort"
	"unicode/utf8"

	"github.com/hinshun/termwin/pkg/grid"
)

// Layout places a window's content lines inside its inner rectangle. Lines
// wider than the rectangle wrap; whatever does not fit is dropped.
type Layout interface {
	Render(s grid.Surface, inner grid.Rect, lines []string)
}

// Fixed draws lines top to bottom in the order given.
type Fixed struct{}

func (Fixed) Render(s grid.Surface, inner grid.Rect, lines []string) {
	if inner.Empty() {
		return
	}
	row := 0
	for _, line := range lines {
		for _, chunk := range Wrap(line, inner.W) {
			if row >= inner.H {
				return
			}
			grid.PrintLine(s, inner.X, inner.Y+row, chunk)
			row++
		}
	}
}

// Log draws the newest line at the bottom. Older lines scroll off the top
// once the rectangle is full. With Forward set it draws like Fixed.
type Log struct {
	Forward bool
}

func (l Log) Render(s grid.Surface, inner grid.Rect, lines []string) {
	if l.Forward {
		Fixed{}.Render(s, inner, lines)
		return
	}
	if inner.Empty() {
		return
	}
	row := inner.H - 1
	for i := len(lines) - 1; i >= 0; i-- {
		chunks := Wrap(lines[i], inner.W)
		for j := len(chunks) - 1; j >= 0; j-- {
			grid.PrintLine(s, inner.X, inner.Y+row, chunks[j])
			row--
			if row < 0 {
				return
			}
		}
	}
}

// Sorted draws a lexicographically sorted copy of the lines. The window's
// own order is left alone.
type Sorted struct{}

func (Sorted) Render(s grid.Surface, inner grid.Rect, lines []string) {
	sorted := append([]string(nil), lines...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	Fixed{}.Render(s, inner, sorted)
}

// Wrap splits line into chunks of width characters; the last chunk may be
// shorter. An empty line or a non-positive width yields no chunks. Invalid
// UTF-8 bytes count as one character each and are kept as they are.
func Wrap(line string, width int) []string {
	if width <= 0 || line == "" {
		return nil
	}
	var chunks []string
	for len(line) > 0 {
		end := 0
		for n := 0; n < width && end < len(line); n++ {
			_, size := utf8.DecodeRuneInString(line[end:])
			end += size
		}
		chunks = append(chunks, line[:end])
		line = line[end:]
	}
	return chunks
}
