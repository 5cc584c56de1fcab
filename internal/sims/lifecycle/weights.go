package lifecycle

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// WeightTotal is the sum every weight vector keeps after an adjustment.
const WeightTotal = 100

// Weights holds the seeding percentage for each state, indexed by State.
type Weights [len(States)]int

// DefaultWeights splits the total evenly across the four states.
func DefaultWeights() Weights {
	return Weights{25, 25, 25, 25}
}

// Get returns the weight of s, or 0 for unknown states.
func (w Weights) Get(s State) int {
	if !s.Valid() {
		return 0
	}
	return w[s]
}

// Sum adds up all four weights.
func (w Weights) Sum() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

func (w Weights) String() string {
	parts := make([]string, len(States))
	for i, s := range States {
		parts[i] = fmt.Sprintf("%s=%d", s, w[s])
	}
	return strings.Join(parts, " ")
}

// Validate checks that no weight is negative and that they sum to WeightTotal.
func (w Weights) Validate() error {
	for _, s := range States {
		if w[s] < 0 {
			return fmt.Errorf("%w: %s weight %d is negative", ErrInvalidArgument, s, w[s])
		}
	}
	if sum := w.Sum(); sum != WeightTotal {
		return fmt.Errorf("%w: weights sum to %d, expected %d", ErrInvalidArgument, sum, WeightTotal)
	}
	return nil
}

// Adjust sets the weight of changed to value (clamped to [0, WeightTotal]) and
// rescales the other three so the vector still sums to WeightTotal. The others
// keep their relative proportions as closely as integer rounding allows, using
// largest-remainder rounding. When the others are all zero the remainder is
// split evenly, with leftover units going to the earliest states.
//
// Any rounding slack left after that lands on the first other state, which is
// clamped at zero.
func Adjust(w Weights, changed State, value int) (Weights, error) {
	if !changed.Valid() {
		return w, fmt.Errorf("%w: cannot adjust %v", ErrInvalidArgument, changed)
	}
	if err := w.Validate(); err != nil {
		return w, err
	}

	value = min(max(value, 0), WeightTotal)
	others := make([]State, 0, len(States)-1)
	originalOtherSum := 0
	for _, s := range States {
		if s == changed {
			continue
		}
		others = append(others, s)
		originalOtherSum += w[s]
	}
	remaining := WeightTotal - value

	out := w
	out[changed] = value
	if len(others) == 0 {
		return out, nil
	}

	if originalOtherSum == 0 {
		each := remaining / len(others)
		extra := remaining % len(others)
		for i, s := range others {
			out[s] = each
			if i < extra {
				out[s]++
			}
		}
	} else {
		shares := make([]float64, len(others))
		for i, s := range others {
			shares[i] = float64(w[s]) / float64(originalOtherSum) * float64(remaining)
		}
		for i, v := range distribute(shares, remaining) {
			out[others[i]] = v
		}
	}

	if total := out.Sum(); total != WeightTotal {
		first := others[0]
		out[first] += WeightTotal - total
		if out[first] < 0 {
			out[first] = 0
		}
	}
	return out, nil
}

// distribute rounds shares to integers summing to target: every share is
// floored and the shortfall goes one unit at a time to the largest fractional
// parts, ties keeping their original order. If the floors already exceed the
// target they are returned unchanged.
func distribute(shares []float64, target int) []int {
	parts := make([]int, len(shares))
	order := make([]int, len(shares))
	sum := 0
	for i, v := range shares {
		parts[i] = int(math.Floor(v))
		sum += parts[i]
		order[i] = i
	}
	shortfall := target - sum
	if shortfall < 0 {
		return parts
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(shares[b]-float64(parts[b]), shares[a]-float64(parts[a]))
	})
	for i := 0; i < shortfall && i < len(order); i++ {
		parts[order[i]]++
	}
	return parts
}
