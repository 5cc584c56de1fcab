package lifecycle

// Source supplies uniform random values in [0, 1). *rand.Rand and core.RNG
// both satisfy it.
type Source interface {
	Float64() float64
}

// Sample draws one state with probability proportional to its weight. A zero
// total always yields Off.
func Sample(w Weights, src Source) State {
	total := 0
	for _, s := range States {
		total += max(w[s], 0)
	}
	if total == 0 {
		return Off
	}
	draw := src.Float64() * float64(total)
	cumulative := 0
	for _, s := range States {
		cumulative += max(w[s], 0)
		if draw < float64(cumulative) {
			return s
		}
	}
	return Off
}

// Seed fills a new n*n grid, drawing every cell independently from w.
func Seed(n int, w Weights, src Source) Grid {
	g := NewGrid(n)
	for i := range g.cells {
		g.cells[i] = Sample(w, src)
	}
	return g
}
