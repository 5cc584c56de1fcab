package lifecycle

import (
	"testing"
	"time"

	"lifecycle-ca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimStartsPausedAndEmpty(t *testing.T) {
	sim := New(DefaultConfig())
	assert.False(t, sim.Running())
	assert.Equal(t, core.Size{W: DefaultSize, H: DefaultSize}, sim.Size())
	assert.Len(t, sim.Cells(), DefaultSize*DefaultSize)
	assert.Equal(t, DefaultSize*DefaultSize, sim.Grid().Census().Get(Off))
	assert.Equal(t, time.Second, sim.TickDelay())
}

func TestSimToggleCellOnlyWhilePaused(t *testing.T) {
	sim := New(DefaultConfig())
	require.NoError(t, sim.ToggleCell(0, 0))
	assert.Equal(t, Young, sim.Grid().At(0, 0))
	assert.Equal(t, uint8(Young), sim.Cells()[0])

	sim.Start()
	assert.ErrorIs(t, sim.ToggleCell(0, 0), ErrRunning)
	assert.Equal(t, Young, sim.Grid().At(0, 0))

	sim.ToggleRunning()
	assert.ErrorIs(t, sim.ToggleCell(DefaultSize, 0), ErrInvalidArgument)
}

func TestSimStepAndClear(t *testing.T) {
	sim := New(DefaultConfig())
	sim.Reset(42)
	before := sim.Grid()

	sim.Step()
	assert.Equal(t, 1, sim.Tick())
	assert.True(t, Step(before).Equal(sim.Grid()))

	sim.Start()
	sim.Clear()
	assert.False(t, sim.Running(), "clear stops the simulation")
	assert.Equal(t, 0, sim.Tick())
	assert.Equal(t, DefaultSize*DefaultSize, sim.Grid().Census().Get(Off))
	for _, c := range sim.Cells() {
		assert.Equal(t, uint8(Off), c)
	}
}

func TestSimResetDeterministic(t *testing.T) {
	sim := New(DefaultConfig())
	sim.Reset(0)
	first := sim.Grid()
	sim.Reset(0)
	assert.True(t, first.Equal(sim.Grid()), "zero seed falls back to the configured seed")

	sim.Reset(1234)
	other := sim.Grid()
	sim.Reset(1234)
	assert.True(t, other.Equal(sim.Grid()))
	assert.False(t, first.Equal(other))
}

func TestSimRandomizeUsesWeights(t *testing.T) {
	sim := New(DefaultConfig())
	require.NoError(t, sim.SetWeight(Elder, 100))
	sim.Randomize()
	assert.Equal(t, DefaultSize*DefaultSize, sim.Grid().Census().Get(Elder))
}

func TestSimSetIntParameter(t *testing.T) {
	sim := New(DefaultConfig())
	require.True(t, sim.SetIntParameter("young", 40))
	assert.Equal(t, Weights{20, 40, 20, 20}, sim.Weights())

	require.True(t, sim.SetIntParameter("speed", 1900))
	assert.Equal(t, 100*time.Millisecond, sim.TickDelay())

	assert.False(t, sim.SetIntParameter("bogus", 1))

	snap := sim.Parameters()
	p, ok := snap.Lookup("young")
	require.True(t, ok)
	assert.Equal(t, "40", p.Value)
	p, ok = snap.Lookup("delay_ms")
	require.True(t, ok)
	assert.Equal(t, "100", p.Value)
}

func TestSimParameterControls(t *testing.T) {
	controls := New(DefaultConfig()).ParameterControls()
	require.Len(t, controls, len(States)+1)
	assert.Equal(t, "off", controls[0].Key)
	assert.Equal(t, "Off %", controls[0].Label)
	assert.Equal(t, float64(WeightTotal), controls[0].Max)
	assert.Equal(t, "speed", controls[len(controls)-1].Key)
}

func TestSimSetGridChecksSize(t *testing.T) {
	sim := New(Config{Size: 4, Weights: DefaultWeights()})
	assert.ErrorIs(t, sim.SetGrid(NewGrid(5)), ErrInvalidArgument)

	g, err := Toggle(NewGrid(4), 1, 1)
	require.NoError(t, err)
	require.NoError(t, sim.SetGrid(g))
	assert.Equal(t, uint8(Young), sim.Cells()[5])
}

func TestSimRegistered(t *testing.T) {
	sim, err := core.Lookup("lifecycle", map[string]string{"size": "8"})
	require.NoError(t, err)
	assert.Equal(t, "lifecycle", sim.Name())
	assert.Equal(t, core.Size{W: 8, H: 8}, sim.Size())
}

func TestNewSimFallsBackOnBadWeights(t *testing.T) {
	sim := New(Config{Size: 3, Weights: Weights{1, 2, 3, 4}})
	assert.Equal(t, DefaultWeights(), sim.Weights())
}
