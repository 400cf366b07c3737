package screen

import (
	"context"
	"testing"
	"time"

	tcell "github.com/gdamore/tcell/v2"
	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/grid"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/hinshun/termwin/ui/canvas"
	"github.com/hinshun/termwin/ui/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulation(t *testing.T, cols, lines int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(cols, lines)
	t.Cleanup(sim.Fini)
	return sim
}

func contents(sim tcell.SimulationScreen) []string {
	cells, cols, lines := sim.GetContents()
	rows := make([]string, lines)
	for y := 0; y < lines; y++ {
		var row []rune
		for x := 0; x < cols; x++ {
			row = append(row, cells[y*cols+x].Runes...)
		}
		rows[y] = string(row)
	}
	return rows
}

func TestPresent(t *testing.T) {
	sim := newSimulation(t, 6, 4)
	scr := Wrap(sim)

	cols, lines, err := scr.Size()
	require.NoError(t, err)
	assert.Equal(t, 6, cols)
	assert.Equal(t, 4, lines)

	w := window.New(window.WithSize(6, 4), window.WithStyle(border.Thin))
	c := canvas.New(scr, nil, canvas.WithWindows(w))
	scr.Present(c, nil)

	assert.Equal(t, []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, contents(sim))
}

func TestPresentWindow(t *testing.T) {
	sim := newSimulation(t, 8, 3)
	scr := Wrap(sim)

	background := window.New(window.WithSize(8, 3), window.WithStyle(border.Thin))
	c := canvas.New(scr, nil, canvas.WithWindows(background))
	scr.Present(c, nil)

	right := window.New(window.WithPosition(3, 0), window.WithSize(5, 3), window.WithStyle(border.Thin))
	c.AddWindow(right)
	scr.Present(c, right)

	assert.Equal(t, []string{
		"┌──┬───┐",
		"│  │   │",
		"└──┴───┘",
	}, contents(sim))
}

func TestLoopQuits(t *testing.T) {
	for _, key := range []struct {
		key tcell.Key
		ch  rune
	}{
		{tcell.KeyCtrlC, 0},
		{tcell.KeyEscape, 0},
		{tcell.KeyRune, 'q'},
	} {
		sim := newSimulation(t, 4, 4)
		scr := Wrap(sim)

		errCh := make(chan error, 1)
		go func() {
			errCh <- scr.Loop(context.Background())
		}()

		sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		sim.PostEvent(tcell.NewEventResize(4, 4))
		sim.InjectKey(key.key, key.ch, tcell.ModNone)

		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatalf("loop did not quit on %v", key.key)
		}
	}
}

func TestLoopCancel(t *testing.T) {
	sim := newSimulation(t, 4, 4)
	scr := Wrap(sim)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- scr.Loop(ctx)
	}()
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}

func TestPresentPublishesFrames(t *testing.T) {
	sim := newSimulation(t, 5, 3)
	scr := Wrap(sim)

	frames := make(chan pubsub.Frame, 2)
	scr.Subscribe("test", frames)

	w := window.New(window.WithPosition(1, 1), window.WithSize(3, 2))
	c := canvas.New(scr, nil, canvas.WithWindows(w))
	scr.Present(c, nil)
	scr.Present(c, w)

	f := <-frames
	assert.Equal(t, uint64(1), f.Seq)
	assert.Equal(t, grid.Rect{W: 5, H: 3}, f.Region)

	f = <-frames
	assert.Equal(t, uint64(2), f.Seq)
	assert.Equal(t, grid.Rect{X: 1, Y: 1, W: 3, H: 2}, f.Region)

	scr.Unsubscribe("test")
	_, ok := <-frames
	assert.False(t, ok)
}
