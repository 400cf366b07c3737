// Package screen presents a canvas on a tcell screen instead of writing
// escape sequences directly.
package screen

import (
	"context"
	"fmt"
	"sync/atomic"

	tcell "github.com/gdamore/tcell/v2"
	"github.com/hinshun/termwin/pkg/grid"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/ui/canvas"
	"github.com/hinshun/termwin/ui/window"
	"github.com/rs/zerolog"
)

type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	log    zerolog.Logger
	pubsub *pubsub.Pubsub
	seq    atomic.Uint64
}

type Option func(*Screen)

func WithStyle(style tcell.Style) Option {
	return func(s *Screen) {
		s.style = style
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Screen) {
		s.log = log
	}
}

// New initializes the terminal's screen.
func New(opts ...Option) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("unable to create screen: %w", err)
	}

	err = s.Init()
	if err != nil {
		return nil, fmt.Errorf("unable to init screen: %w", err)
	}

	return Wrap(s, opts...), nil
}

// Wrap uses an initialized tcell screen.
func Wrap(s tcell.Screen, opts ...Option) *Screen {
	scr := &Screen{
		screen: s,
		style:  tcell.StyleDefault,
		log:    zerolog.Nop(),
		pubsub: pubsub.New(),
	}
	for _, opt := range opts {
		opt(scr)
	}
	return scr
}

// Size implements terminal.Sizer.
func (s *Screen) Size() (int, int, error) {
	cols, lines := s.screen.Size()
	return cols, lines, nil
}

// Present redraws c and shows the region of w, or the whole canvas for a nil
// window. Subscribers receive a Frame with zero Bytes.
func (s *Screen) Present(c *canvas.Canvas, w *window.Window) {
	c.Redraw()
	cols, lines := c.Size()

	r := grid.Rect{W: cols, H: lines}
	if w != nil {
		r = w.Bounds().Intersect(r)
	}
	c.Visit(r, func(x, y int, ch rune) {
		s.screen.SetContent(x, y, ch, nil, s.style)
	})
	s.screen.Show()

	s.pubsub.Publish(pubsub.Frame{
		Seq:    s.seq.Add(1),
		Cols:   cols,
		Lines:  lines,
		Region: r,
	})
}

func (s *Screen) Subscribe(id string, ch chan pubsub.Frame) {
	s.pubsub.Subscribe(id, ch)
}

func (s *Screen) Unsubscribe(id string) {
	s.pubsub.Unsubscribe(id)
}

// Loop handles screen events until ctx is done or the user asks to quit with
// ctrl-c, escape or q.
func (s *Screen) Loop(ctx context.Context) error {
	eventCh := make(chan tcell.Event, 4)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(eventCh)
		for {
			event := s.screen.PollEvent()
			if event == nil {
				return
			}
			select {
			case eventCh <- event:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			switch evt := ev.(type) {
			case *tcell.EventResize:
				cols, lines := evt.Size()
				s.log.Debug().Int("cols", cols).Int("lines", lines).Msg("screen resized")
				s.screen.Sync()
			case *tcell.EventKey:
				if isQuit(evt) {
					return nil
				}
			}
		}
	}
}

func isQuit(evt *tcell.EventKey) bool {
	switch evt.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return evt.Rune() == 'q'
	}
	return false
}

// Close ends subscriptions and restores the terminal. Loop returns once the
// screen is closed.
func (s *Screen) Close() error {
	s.screen.Fini()
	return s.pubsub.Close()
}
