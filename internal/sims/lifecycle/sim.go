package lifecycle

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"lifecycle-ca/internal/core"
)

// Sim is the stateful driver around the pure engine. It owns the current
// grid, the seeding weights and the speed setting, and tracks whether the
// simulation is running. Sim is not safe for concurrent use.
type Sim struct {
	cfg Config

	grid    Grid
	weights Weights
	speed   int
	running bool
	tick    int

	rng     *core.RNG
	display []uint8
}

// New returns a paused simulation with an empty grid.
func New(cfg Config) *Sim {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Weights.Validate() != nil {
		cfg.Weights = DefaultWeights()
	}
	s := &Sim{
		cfg:     cfg,
		grid:    NewGrid(cfg.Size),
		weights: cfg.Weights,
		speed:   core.ClampSpeed(cfg.Speed),
		rng:     core.NewRNG(cfg.Seed),
	}
	s.refreshDisplay()
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "lifecycle" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.n, H: s.grid.n} }

// Cells exposes the current grid as one byte per cell, valued by State.
func (s *Sim) Cells() []uint8 { return s.display }

// Grid returns the current grid snapshot.
func (s *Sim) Grid() Grid { return s.grid }

// Weights returns the current seeding weights.
func (s *Sim) Weights() Weights { return s.weights }

// Tick reports how many ticks ran since the last reset or clear.
func (s *Sim) Tick() int { return s.tick }

// Reset reseeds the RNG and refills the grid from the current weights. A zero
// seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = core.NewRNG(seed)
	s.Randomize()
}

// Randomize refills the grid from the current weights using the running RNG.
func (s *Sim) Randomize() {
	s.setGrid(Seed(s.grid.n, s.weights, s.rng))
	s.tick = 0
}

// Clear empties the grid and stops the simulation.
func (s *Sim) Clear() {
	s.setGrid(Reset(s.grid.n))
	s.running = false
	s.tick = 0
}

// Step advances the grid by one tick regardless of the running flag; the
// caller decides when ticks happen.
func (s *Sim) Step() {
	s.setGrid(Step(s.grid))
	s.tick++
}

// ToggleCell cycles the state of one cell. Edits are only accepted while the
// simulation is paused.
func (s *Sim) ToggleCell(row, col int) error {
	if s.running {
		return ErrRunning
	}
	next, err := Toggle(s.grid, row, col)
	if err != nil {
		return err
	}
	s.setGrid(next)
	return nil
}

// SetGrid replaces the current grid. The grid must match the configured size.
func (s *Sim) SetGrid(g Grid) error {
	if g.n != s.grid.n {
		return fmt.Errorf("%w: grid size %d, expected %d", ErrInvalidArgument, g.n, s.grid.n)
	}
	s.setGrid(g)
	return nil
}

// SetWeight moves one seeding slider and rebalances the others.
func (s *Sim) SetWeight(state State, value int) error {
	next, err := Adjust(s.weights, state, value)
	if err != nil {
		return err
	}
	s.weights = next
	return nil
}

// Running reports whether the simulation is ticking.
func (s *Sim) Running() bool { return s.running }

// Start resumes ticking.
func (s *Sim) Start() { s.running = true }

// Stop pauses ticking.
func (s *Sim) Stop() { s.running = false }

// ToggleRunning flips between running and paused.
func (s *Sim) ToggleRunning() { s.running = !s.running }

// Speed returns the speed slider value.
func (s *Sim) Speed() int { return s.speed }

// SetSpeed updates the speed slider, clamped to its range.
func (s *Sim) SetSpeed(speed int) { s.speed = core.ClampSpeed(speed) }

// TickDelay is the wait between ticks implied by the speed setting.
func (s *Sim) TickDelay() time.Duration { return core.TickDelay(s.speed) }

// Palette exposes the state colours for rendering Cells.
func (s *Sim) Palette() []color.RGBA { return Palette() }

// ParameterControls lists the HUD sliders: one per state weight plus speed.
func (s *Sim) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(States)+1)
	for _, st := range States {
		controls = append(controls, core.ParameterControl{
			Key:    st.String(),
			Label:  weightLabel(st),
			Type:   core.ParamTypeInt,
			Step:   5,
			Min:    0,
			Max:    WeightTotal,
			HasMin: true,
			HasMax: true,
		})
	}
	controls = append(controls, core.ParameterControl{
		Key:    "speed",
		Label:  "Speed",
		Type:   core.ParamTypeInt,
		Step:   core.SpeedStep,
		Min:    core.SpeedMin,
		Max:    core.SpeedMax,
		HasMin: true,
		HasMax: true,
	})
	return controls
}

// SetIntParameter applies a HUD slider change. Weight keys go through Adjust,
// so the other weights move too.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key == "speed" {
		s.SetSpeed(value)
		return true
	}
	st, err := ParseState(key)
	if err != nil {
		return false
	}
	return s.SetWeight(st, value) == nil
}

// Parameters returns a snapshot of the tunables for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	weights := make([]core.Parameter, 0, len(States))
	for _, st := range States {
		weights = append(weights, intParam(st.String(), weightLabel(st), s.weights[st]))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", s.grid.n),
				intParam("tick", "Tick", s.tick),
			},
		},
		{
			Name:    "Seeding",
			Params:  weights,
			Summary: fmt.Sprintf("total %d%%", s.weights.Sum()),
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("speed", "Speed", s.speed),
				intParam("delay_ms", "Delay (ms)", int(s.TickDelay()/time.Millisecond)),
			},
		},
	}}
}

func (s *Sim) setGrid(g Grid) {
	s.grid = g
	s.refreshDisplay()
}

func (s *Sim) refreshDisplay() {
	s.display = s.grid.encode(s.display)
}

func weightLabel(st State) string {
	name := st.String()
	return strings.ToUpper(name[:1]) + name[1:] + " %"
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func init() {
	core.Register("lifecycle", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
