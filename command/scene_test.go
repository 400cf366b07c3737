package command

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/hinshun/termwin/pkg/border"
	"github.com/hinshun/termwin/pkg/grid"
	"github.com/hinshun/termwin/pkg/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneLayout(t *testing.T) {
	sc := newScene(100, 30, border.Double, rand.New(rand.NewSource(1)))
	require.Len(t, sc.windows(), 5)
	assert.Same(t, sc.background, sc.windows()[0])

	assert.Equal(t, grid.Rect{W: 100, H: 30}, sc.background.Bounds())
	assert.Equal(t, grid.Rect{X: 68, Y: 0, W: 32, H: 16}, sc.log.Bounds())
	assert.Equal(t, grid.Rect{X: 68, Y: 15, W: 32, H: 15}, sc.list.Bounds())

	sc.resize(50, 11)
	assert.Equal(t, grid.Rect{W: 50, H: 11}, sc.background.Bounds())
	assert.Equal(t, grid.Rect{X: 18, Y: 5, W: 32, H: 6}, sc.list.Bounds())
}

func TestSceneStep(t *testing.T) {
	sc := newScene(80, 24, border.Double, rand.New(rand.NewSource(7)))
	for n := 1; n <= 25; n++ {
		sc.step()
		assert.Equal(t, (n-1)%10+1, sc.i)
		assert.GreaterOrEqual(t, sc.j, 0)
		assert.LessOrEqual(t, sc.j, 11)

		w, h := sc.static.Size()
		assert.Equal(t, 10+sc.j, w)
		assert.Equal(t, 10, h)

		x, y := sc.cat.Position()
		assert.Equal(t, 6+sc.j, x)
		assert.Equal(t, 9+sc.j, y)
	}
	assert.Len(t, sc.static.Lines(), 25)

	list := sc.list.Lines()
	assert.Len(t, list, 4)
	sorted := append([]string(nil), list...)
	sort.Strings(sorted)
	assert.ElementsMatch(t, sorted, list)
}

func TestSceneLogBounded(t *testing.T) {
	sc := newScene(80, 24, border.Thin, rand.New(rand.NewSource(1)))
	for n := 1; n <= maxLogLines+10; n++ {
		sc.logFrame(pubsub.Frame{Seq: uint64(n), Region: grid.Rect{W: 80, H: 24}, Bytes: 10})
	}
	lines := sc.log.Lines()
	require.Len(t, lines, maxLogLines)
	assert.Equal(t, "#11 80x24 10B", lines[0])
	assert.Equal(t, "#74 80x24 10B", lines[len(lines)-1])
}
