package command

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/pkg/vt"
	"github.com/hinshun/termwin/ui/canvas"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
)

var snapshotCommand = &cli.Command{
	Name:  "snapshot",
	Usage: "render the demo into a virtual terminal and print the screen",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Usage:   "columns of the virtual terminal",
			Value:   80,
			EnvVars: []string{"TERMWIN_WIDTH"},
		},
		&cli.IntFlag{
			Name:    "height",
			Usage:   "lines of the virtual terminal",
			Value:   24,
			EnvVars: []string{"TERMWIN_HEIGHT"},
		},
		&cli.IntFlag{
			Name:    "frames",
			Usage:   "animation frames rendered before the snapshot",
			Value:   1,
			EnvVars: []string{"TERMWIN_FRAMES"},
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the animation",
			Value: 1,
		},
	},
	Action: Snapshot,
}

func Snapshot(c *cli.Context) error {
	ctx, closeLog, err := withLogFile(c)
	if err != nil {
		return err
	}
	defer closeLog()

	style, err := border.ParseStyle(c.String("style"))
	if err != nil {
		return err
	}

	width, height := c.Int("width"), c.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}
	frames := c.Int("frames")
	if frames < 1 {
		return fmt.Errorf("snapshot needs at least one frame, got %d", frames)
	}

	screen := vt.New(width, height)
	cv := canvas.New(screen, screen,
		canvas.WithDebug(c.Bool("debug")),
		canvas.WithLogger(*zerolog.Ctx(ctx)),
	)
	defer cv.Close()

	sc := newScene(width, height, style, rand.New(rand.NewSource(c.Int64("seed"))))
	for _, w := range sc.windows() {
		cv.AddWindow(w)
	}

	frameCh := make(chan pubsub.Frame, 1)
	cv.Subscribe("snapshot", frameCh)

	for n := 0; n < frames; n++ {
		sc.step()
		if err := cv.Refresh(nil); err != nil {
			return err
		}
		sc.logFrame(<-frameCh)
	}

	zerolog.Ctx(ctx).Info().Int("width", width).Int("height", height).Msg("snapshot rendered")
	_, err = fmt.Fprintln(c.App.Writer, strings.Join(screen.Lines(), "\n"))
	return err
}
