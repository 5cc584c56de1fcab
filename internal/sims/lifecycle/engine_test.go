package lifecycle

import (
	"errors"
	"testing"

	"lifecycle-ca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows ...string) Grid {
	t.Helper()
	lookup := map[rune]State{'.': Off, 'y': Young, 'A': Adult, 'E': Elder}
	states := make([][]State, len(rows))
	for i, row := range rows {
		for _, r := range row {
			s, ok := lookup[r]
			require.True(t, ok, "unknown glyph %q", r)
			states[i] = append(states[i], s)
		}
	}
	g, err := GridFromRows(states)
	require.NoError(t, err)
	return g
}

// stepInPlace updates cells sequentially, letting later cells see earlier
// results. Step must not behave like this.
func stepInPlace(g Grid) Grid {
	out := Grid{n: g.n, cells: g.Cells()}
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			idx := row*g.n + col
			out.cells[idx] = NextState(out.cells[idx], out.Counts(row, col))
		}
	}
	return out
}

func TestStepUsesSnapshot(t *testing.T) {
	g := mustGrid(t,
		"yAyA",
		"....",
		"....",
		"....",
	)
	want := mustGrid(t,
		"Ay.E",
		"y..y",
		"....",
		"....",
	)

	got := Step(g)
	assert.True(t, want.Equal(got), "got %v, expected %v", got.Rows(), want.Rows())
	assert.False(t, stepInPlace(g).Equal(got), "sequential update should differ on this pattern")
}

func TestStepDoesNotWrap(t *testing.T) {
	g := mustGrid(t,
		"..y",
		"...",
		"y..",
	)
	assert.Equal(t, NeighborCounts{}, g.Counts(0, 0))
	assert.Equal(t, Off, Step(g).At(0, 0))
	assert.Equal(t, NeighborCounts{Young: 2}, g.Counts(1, 1))
	assert.Equal(t, Young, Step(g).At(1, 1))
}

func TestStepPreservesShapeAndValidity(t *testing.T) {
	rng := core.NewRNG(7)
	g := Seed(DefaultSize, Weights{10, 30, 30, 30}, rng)
	for tick := 0; tick < 50; tick++ {
		g = Step(g)
		require.Equal(t, DefaultSize, g.Size())
		require.Len(t, g.Cells(), DefaultSize*DefaultSize)
		for _, s := range g.Cells() {
			require.True(t, s.Valid(), "tick %d produced %v", tick, s)
		}
	}
}

func TestStepDeterministicAndPure(t *testing.T) {
	g := Seed(12, DefaultWeights(), core.NewRNG(3))
	before := g.Cells()

	first := Step(g)
	second := Step(g)

	assert.True(t, first.Equal(second))
	assert.Equal(t, before, g.Cells(), "Step must not modify its input")
}

func TestToggleCyclesOneCell(t *testing.T) {
	g := Reset(5)
	want := []State{Young, Adult, Elder, Off}
	for _, w := range want {
		next, err := Toggle(g, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, w, next.At(2, 3))
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				if row == 2 && col == 3 {
					continue
				}
				assert.Equal(t, g.At(row, col), next.At(row, col))
			}
		}
		assert.NotEqual(t, next.At(2, 3), g.At(2, 3), "input grid must stay untouched")
		g = next
	}
}

func TestToggleRejectsOutOfRange(t *testing.T) {
	g := Reset(4)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, err := Toggle(g, rc[0], rc[1])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Toggle(%d,%d): expected ErrInvalidArgument, got %v", rc[0], rc[1], err)
		}
	}
}

func TestResetClearsGrid(t *testing.T) {
	g := Reset(DefaultSize)
	assert.Equal(t, DefaultSize, g.Size())
	assert.Equal(t, DefaultSize*DefaultSize, g.Census().Get(Off))
	assert.Equal(t, 1, Reset(0).Size())
}

func TestGridFromRowsValidates(t *testing.T) {
	_, err := GridFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = GridFromRows([][]State{{Off, Off}, {Off}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = GridFromRows([][]State{{State(5)}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
