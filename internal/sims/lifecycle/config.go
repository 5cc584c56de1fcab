package lifecycle

import (
	"strconv"

	"lifecycle-ca/internal/core"
)

// Config controls the lifecycle simulation.
type Config struct {
	Size  int
	Seed  int64
	Speed int

	Weights Weights
}

// DefaultConfig returns the standard configuration: a 20x20 grid, a one
// second tick delay and an even seeding split.
func DefaultConfig() Config {
	return Config{
		Size:    DefaultSize,
		Seed:    1337,
		Speed:   core.SpeedDefault,
		Weights: DefaultWeights(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Weight keys are named after the states and are applied in state order
// through Adjust, so later keys win and the vector always sums to 100.
// Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Speed = core.ClampSpeed(parsed)
		}
	}
	for _, s := range States {
		v, ok := cfg[s.String()]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		if adjusted, err := Adjust(c.Weights, s, parsed); err == nil {
			c.Weights = adjusted
		}
	}
	return c
}

// Map renders the config back into FromMap's key/value form.
func (c Config) Map() map[string]string {
	m := map[string]string{
		"size":  strconv.Itoa(c.Size),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"speed": strconv.Itoa(c.Speed),
	}
	for _, s := range States {
		m[s.String()] = strconv.Itoa(c.Weights[s])
	}
	return m
}
