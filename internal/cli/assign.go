package cli

import (
	"fmt"
	"strconv"
	"strings"

	"lifecycle-ca/internal/sims/lifecycle"
)

// parseAssignment reads a "state=value" weight change.
func parseAssignment(s string) (lifecycle.State, int, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return lifecycle.Off, 0, fmt.Errorf("expected state=value, got %q", s)
	}
	state, err := lifecycle.ParseState(name)
	if err != nil {
		return lifecycle.Off, 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return lifecycle.Off, 0, fmt.Errorf("weight for %s: %w", state, err)
	}
	return state, value, nil
}

// parseWeights reads four comma-separated weights in state order.
func parseWeights(s string) (lifecycle.Weights, error) {
	var w lifecycle.Weights
	parts := strings.Split(s, ",")
	if len(parts) != len(w) {
		return w, fmt.Errorf("expected %d comma-separated weights, got %q", len(w), s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return w, fmt.Errorf("weight for %s: %w", lifecycle.States[i], err)
		}
		w[i] = v
	}
	return w, w.Validate()
}
