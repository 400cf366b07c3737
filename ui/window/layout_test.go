package window

import (
	"strings"
	"testing"

	"github.com/hinshun/termwin/pkg/grid"
	"github.com/stretchr/testify/assert"
)

func content(g *grid.Grid, r grid.Rect) []string {
	var out []string
	for y := r.Y; y < r.Y+r.H; y++ {
		var sb strings.Builder
		for x := r.X; x < r.X+r.W; x++ {
			c := g.Cell(x, y)
			if c.IsContent() {
				sb.WriteRune(c.Rune())
			} else {
				sb.WriteRune('.')
			}
		}
		out = append(out, sb.String())
	}
	return out
}

func TestLogShowsNewest(t *testing.T) {
	g := grid.New(10, 7)
	w := New(WithSize(10, 5), WithLayout(Log{}))
	for _, line := range []string{"a", "b", "c", "d", "e"} {
		w.Print(line)
	}
	w.Draw(g)

	inner := w.Inner()
	assert.Equal(t, 3, inner.H)
	assert.Equal(t, []string{"c     ", "d     ", "e     "}, content(g, inner))
}

func TestLogWrapsNewestLast(t *testing.T) {
	g := grid.New(3, 3)
	Log{}.Render(g, grid.Rect{W: 3, H: 3}, []string{"old", "abcdefg"})
	assert.Equal(t, []string{"abc", "def", "g.."}, content(g, g.Bounds()))
}

func TestLogForward(t *testing.T) {
	g := grid.New(2, 2)
	Log{Forward: true}.Render(g, g.Bounds(), []string{"a", "b", "c"})
	assert.Equal(t, []string{"a.", "b."}, content(g, g.Bounds()))
}

func TestLogPartiallyFilled(t *testing.T) {
	g := grid.New(2, 3)
	Log{}.Render(g, g.Bounds(), []string{"a"})
	assert.Equal(t, []string{"..", "..", "a."}, content(g, g.Bounds()))
}

func TestFixedTruncates(t *testing.T) {
	g := grid.New(4, 2)
	Fixed{}.Render(g, g.Bounds(), []string{"abcdef", "ghij", "klm"})
	assert.Equal(t, []string{"abcd", "ef.."}, content(g, g.Bounds()))
}

func TestEmptyLinesTakeNoRows(t *testing.T) {
	g := grid.New(3, 2)
	Fixed{}.Render(g, g.Bounds(), []string{"", "x", ""})
	assert.Equal(t, []string{"x..", "..."}, content(g, g.Bounds()))
}

func TestSortedLeavesOrder(t *testing.T) {
	g := grid.New(12, 7)
	w := New(WithSize(12, 7), WithLayout(Sorted{}))
	w.SetLines([]string{"pear", "apple", "fig"})
	w.Draw(g)

	got := content(g, w.Inner())
	assert.Equal(t, "apple   ", got[0])
	assert.Equal(t, "fig     ", got[1])
	assert.Equal(t, "pear    ", got[2])
	assert.Equal(t, []string{"pear", "apple", "fig"}, w.Lines())
}

func TestEmptyInnerDrawsNothing(t *testing.T) {
	g := grid.New(3, 3)
	for _, l := range []Layout{Fixed{}, Log{}, Sorted{}} {
		l.Render(g, grid.Rect{W: 0, H: 3}, []string{"abc"})
		l.Render(g, grid.Rect{W: 3, H: -1}, []string{"abc"})
	}
	assert.Equal(t, []string{"...", "...", "..."}, content(g, g.Bounds()))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap("", 4))
	assert.Nil(t, Wrap("abc", 0))
	assert.Equal(t, []string{"abc"}, Wrap("abc", 4))
	assert.Equal(t, []string{"abcd", "ef"}, Wrap("abcdef", 4))
	assert.Equal(t, []string{"╔═", "╗"}, Wrap("╔═╗", 2))
	assert.Equal(t, []string{"a\xff", "bc", "\xfe"}, Wrap("a\xffbc\xfe", 2))

	for _, tc := range []struct {
		line  string
		width int
	}{
		{"the quick brown fox", 1},
		{"the quick brown fox", 5},
		{"the quick brown fox", 19},
		{"héllo wörld", 3},
		{"h\xc3llo \xe2\x94", 2},
	} {
		chunks := Wrap(tc.line, tc.width)
		assert.Equal(t, tc.line, strings.Join(chunks, ""))
		for i, chunk := range chunks {
			n := len([]rune(chunk))
			if i < len(chunks)-1 {
				assert.Equal(t, tc.width, n)
			} else {
				assert.LessOrEqual(t, n, tc.width)
			}
		}
	}
}
