package command

import (
	"fmt"
	"math/rand"

	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/ui/window"
)

const (
	sidebarWidth = 32
	maxLogLines  = 64
)

// scene is the demo: a background filling the terminal, a window that grows
// and collects greetings, a thin window that wanders, a log of flushed
// frames and a sorted list of window geometry.
type scene struct {
	background *window.Window
	static     *window.Window
	cat        *window.Window
	log        *window.Window
	list       *window.Window

	i, j int
	rnd  *rand.Rand
}

func newScene(cols, lines int, style border.Style, rnd *rand.Rand) *scene {
	s := &scene{
		background: window.New(window.WithStyle(style)),
		static: window.New(
			window.WithPosition(2, 1),
			window.WithStyle(border.Thin),
			window.WithLayout(window.Log{}),
		),
		cat: window.New(
			window.WithPosition(6, 9),
			window.WithSize(1, 4),
			window.WithStyle(border.Thin),
		),
		log: window.New(
			window.WithStyle(style),
			window.WithPadding(window.Padding{Top: 1, Right: 1, Bottom: 1, Left: 1}),
			window.WithLayout(window.Log{}),
		),
		list: window.New(
			window.WithStyle(style),
			window.WithPadding(window.Padding{Top: 1, Right: 1, Bottom: 1, Left: 1}),
			window.WithLayout(window.Sorted{}),
		),
		rnd: rnd,
	}
	s.resize(cols, lines)
	return s
}

// windows returns the scene in draw order.
func (s *scene) windows() []*window.Window {
	return []*window.Window{s.background, s.static, s.cat, s.log, s.list}
}

// resize fits the background to the terminal and docks the log and list
// windows to its right edge. The docked windows share their edges with the
// background and each other.
func (s *scene) resize(cols, lines int) {
	s.background.SetSize(cols, lines)

	x := cols - sidebarWidth
	half := lines / 2
	s.log.SetPosition(x, 0)
	s.log.SetSize(sidebarWidth, half+1)
	s.list.SetPosition(x, half)
	s.list.SetSize(sidebarWidth, lines-half)
}

// step advances the animation by one frame.
func (s *scene) step() {
	s.i = s.i%10 + 1
	s.j = s.j%10 + s.rnd.Intn(3)*s.rnd.Intn(2)*s.rnd.Intn(2)*s.rnd.Intn(2)

	appendBounded(s.static, fmt.Sprintf("Welcome to Iteration %d,%d", s.i, s.j))
	s.static.SetSize(10+s.j, 10)
	s.cat.SetPosition(6+s.j, 9+s.j)
	s.cat.SetSize(1+s.i, 4)

	var lines []string
	for name, w := range map[string]*window.Window{
		"background": s.background,
		"static":     s.static,
		"cat":        s.cat,
		"log":        s.log,
	} {
		b := w.Bounds()
		lines = append(lines, fmt.Sprintf("%s %dx%d+%d+%d", name, b.W, b.H, b.X, b.Y))
	}
	s.list.SetLines(lines)
}

func (s *scene) logFrame(f pubsub.Frame) {
	appendBounded(s.log, fmt.Sprintf("#%d %dx%d %dB", f.Seq, f.Region.W, f.Region.H, f.Bytes))
}

func appendBounded(w *window.Window, line string) {
	lines := append(w.Lines(), line)
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
	}
	w.SetLines(lines)
}
