package command

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/pkg/terminal"
	"github.com/hinshun/termwin/ui/canvas"
	"github.com/hinshun/termwin/ui/screen"
	"github.com/hinshun/termwin/ui/window"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func demoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "backend",
			Usage:   "output backend, ansi or tcell",
			Value:   "ansi",
			EnvVars: []string{"TERMWIN_BACKEND"},
		},
		&cli.DurationFlag{
			Name:    "interval",
			Usage:   "time between frames",
			Value:   100 * time.Millisecond,
			EnvVars: []string{"TERMWIN_INTERVAL"},
		},
		&cli.IntFlag{
			Name:    "frames",
			Usage:   "stop after this many frames, 0 runs until interrupted",
			EnvVars: []string{"TERMWIN_FRAMES"},
		},
	}
}

var demoCommand = &cli.Command{
	Name:   "demo",
	Usage:  "animate overlapping windows until interrupted",
	Flags:  demoFlags(),
	Action: Demo,
}

// presenter is an output backend for the demo.
type presenter interface {
	terminal.Sizer
	present(w *window.Window) error
	AddWindow(w *window.Window)
	Subscribe(id string, ch chan pubsub.Frame)
	Close() error
}

type ansiPresenter struct {
	*canvas.Canvas
	sizer terminal.Sizer
}

func (p *ansiPresenter) Size() (int, int, error) {
	return p.sizer.Size()
}

func (p *ansiPresenter) present(w *window.Window) error {
	return p.Refresh(w)
}

type tcellPresenter struct {
	*screen.Screen
	canvas *canvas.Canvas
}

func (p *tcellPresenter) present(w *window.Window) error {
	p.Present(p.canvas, w)
	return nil
}

func (p *tcellPresenter) AddWindow(w *window.Window) {
	p.canvas.AddWindow(w)
}

func Demo(c *cli.Context) error {
	ctx, closeLog, err := withLogFile(c)
	if err != nil {
		return err
	}
	defer closeLog()

	style, err := border.ParseStyle(c.String("style"))
	if err != nil {
		return err
	}

	interval := c.Duration("interval")
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	logger := *zerolog.Ctx(ctx)
	opts := []canvas.Option{
		canvas.WithDebug(c.Bool("debug")),
		canvas.WithLogger(logger),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	var p presenter
	switch backend := c.String("backend"); backend {
	case "ansi":
		term := terminal.Stdout()
		if !term.IsTerminal() {
			logger.Warn().Msg("stdout is not a terminal")
		}
		restore, err := term.EnableANSI()
		if err != nil {
			return err
		}
		defer restore()

		p = &ansiPresenter{
			Canvas: canvas.New(term, term, opts...),
			sizer:  term,
		}
	case "tcell":
		scr, err := screen.New(screen.WithLogger(logger))
		if err != nil {
			return err
		}
		p = &tcellPresenter{
			Screen: scr,
			canvas: canvas.New(scr, nil, opts...),
		}

		eg.Go(func() error {
			defer cancel()
			return scr.Loop(ctx)
		})
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	cols, lines := canvas.DefaultCols, canvas.DefaultLines
	if qc, ql, err := p.Size(); err == nil {
		cols, lines = qc, ql
	}
	sc := newScene(cols, lines, style, rand.New(rand.NewSource(time.Now().UnixNano())))
	for _, w := range sc.windows() {
		p.AddWindow(w)
	}

	eg.Go(func() error {
		defer cancel()
		return animate(ctx, p, sc, interval, c.Int("frames"))
	})

	return eg.Wait()
}

// animate steps the scene and presents it every interval until ctx is done
// or frames have been presented. Flushed frames are fed back into the
// scene's log window.
func animate(ctx context.Context, p presenter, sc *scene, interval time.Duration, frames int) error {
	eg, ctx := errgroup.WithContext(ctx)

	frameCh := make(chan pubsub.Frame, 8)
	p.Subscribe("demo", frameCh)

	eg.Go(func() error {
		for f := range frameCh {
			sc.logFrame(f)
		}
		return nil
	})

	eg.Go(func() error {
		defer p.Close()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for n := 0; frames <= 0 || n < frames; n++ {
			if cols, lines, err := p.Size(); err == nil {
				sc.resize(cols, lines)
			}
			sc.step()
			if err := p.present(nil); err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
		return nil
	})

	return eg.Wait()
}
