package lifecycle

import (
	"fmt"
	"strings"
)

// DefaultSize is the grid dimension used when none is configured.
const DefaultSize = 20

// Grid is an immutable square matrix of cell states stored in row-major order.
// Operations that change cells return a new Grid and never touch the receiver.
type Grid struct {
	n     int
	cells []State
}

// NewGrid returns an n*n grid with every cell Off. Non-positive sizes are
// clamped to 1.
func NewGrid(n int) Grid {
	if n <= 0 {
		n = 1
	}
	return Grid{n: n, cells: make([]State, n*n)}
}

// GridFromRows builds a grid from explicit rows. Rows must form a square and
// contain only valid states.
func GridFromRows(rows [][]State) (Grid, error) {
	n := len(rows)
	if n == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInvalidArgument)
	}
	g := Grid{n: n, cells: make([]State, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidArgument, i, len(row), n)
		}
		for j, s := range row {
			if !s.Valid() {
				return Grid{}, fmt.Errorf("%w: cell (%d,%d) holds %v", ErrInvalidArgument, i, j, s)
			}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Size returns the grid dimension N.
func (g Grid) Size() int { return g.n }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// At returns the state at (row, col), or Off outside the grid.
func (g Grid) At(row, col int) State {
	if !g.InBounds(row, col) {
		return Off
	}
	return g.cells[row*g.n+col]
}

// Cells returns a copy of the row-major cell states.
func (g Grid) Cells() []State {
	return append([]State(nil), g.cells...)
}

// Rows returns a copy of the grid as a slice of rows.
func (g Grid) Rows() [][]State {
	rows := make([][]State, g.n)
	for i := range rows {
		rows[i] = append([]State(nil), g.cells[i*g.n:(i+1)*g.n]...)
	}
	return rows
}

// Equal reports whether both grids have the same size and cells.
func (g Grid) Equal(other Grid) bool {
	if g.n != other.n || len(g.cells) != len(other.cells) {
		return false
	}
	for i, s := range g.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// Counts tallies the Moore neighbourhood of (row, col). Neighbours outside the
// grid are skipped; there is no wraparound.
func (g Grid) Counts(row, col int) NeighborCounts {
	var counts NeighborCounts
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := row+di, col+dj
			if !g.InBounds(ni, nj) {
				continue
			}
			switch g.cells[ni*g.n+nj] {
			case Young:
				counts.Young++
			case Adult:
				counts.Adult++
			case Elder:
				counts.Elder++
			}
		}
	}
	return counts
}

// Census counts cells per state, indexed by State.
type Census [len(States)]int

// Get returns the number of cells in state s.
func (c Census) Get(s State) int {
	if !s.Valid() {
		return 0
	}
	return c[s]
}

func (c Census) String() string {
	parts := make([]string, len(States))
	for i, s := range States {
		parts[i] = fmt.Sprintf("%s=%d", s, c[s])
	}
	return strings.Join(parts, " ")
}

// Census counts the cells of each state.
func (g Grid) Census() Census {
	var c Census
	for _, s := range g.cells {
		if s.Valid() {
			c[s]++
		}
	}
	return c
}

func (g Grid) encode(dst []uint8) []uint8 {
	if cap(dst) < len(g.cells) {
		dst = make([]uint8, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i, s := range g.cells {
		dst[i] = uint8(s)
	}
	return dst
}
