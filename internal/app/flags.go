package app

import (
	"flag"
	"strconv"

	"lifecycle-ca/internal/core"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Size     int
	Speed    int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "lifecycle",
		Scale:    24,
		TPS:      60,
		Seed:     1337,
		Size:     20,
		Speed:    core.SpeedDefault,
		HUDWidth: 240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "grid dimension N (N x N cells)")
	fs.IntVar(&c.Speed, "speed", c.Speed, "speed slider 100..1900; tick delay is 2000ms minus speed")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
}

// SimParams renders the sim-facing options in the registry's key/value form.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"size":  strconv.Itoa(c.Size),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"speed": strconv.Itoa(c.Speed),
	}
}
