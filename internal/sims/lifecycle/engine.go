package lifecycle

import "fmt"

// Step advances the whole grid by one tick. Every new cell is computed from
// the old snapshot, so updates within a tick never observe each other.
func Step(g Grid) Grid {
	next := Grid{n: g.n, cells: make([]State, len(g.cells))}
	for row := 0; row < g.n; row++ {
		for col := 0; col < g.n; col++ {
			idx := row*g.n + col
			next.cells[idx] = NextState(g.cells[idx], g.Counts(row, col))
		}
	}
	return next
}

// Toggle advances the cell at (row, col) one stage along the cycle
// Off -> Young -> Adult -> Elder -> Off and leaves every other cell alone.
func Toggle(g Grid, row, col int) (Grid, error) {
	if !g.InBounds(row, col) {
		return g, fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", ErrInvalidArgument, row, col, g.n, g.n)
	}
	next := Grid{n: g.n, cells: g.Cells()}
	idx := row*g.n + col
	next.cells[idx] = next.cells[idx].Next()
	return next, nil
}

// Reset returns an n*n grid with every cell Off.
func Reset(n int) Grid {
	return NewGrid(n)
}
