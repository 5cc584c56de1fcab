//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifecycle-ca/internal/core"
	"lifecycle-ca/internal/render"
	"lifecycle-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Optional capabilities a sim can offer to the GUI.
type (
	runController interface {
		Running() bool
		ToggleRunning()
		Stop()
		Tick() int
		TickDelay() time.Duration
	}
	speedController interface {
		Speed() int
		SetSpeed(int)
	}
	cellToggler interface {
		ToggleCell(row, col int) error
	}
	clearer interface {
		Clear()
	}
	paletteProvider interface {
		Palette() []color.RGBA
	}
)

// Game adapts a core simulation to the ebiten.Game interface. Sims without
// run control step every frame like a plain automaton.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	palette []color.RGBA

	scale    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:     ui.NewHUD(sim, hudWidth),
		stepper: core.NewFixedStepTPS(60),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:   scale,
		seed:    seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	if rc, ok := sim.(runController); ok {
		g.overlay = ui.NewOverlay(rc)
		g.stepper.SetDelay(rc.TickDelay())
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	rc, controlled := g.sim.(runController)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && controlled {
		rc.ToggleRunning()
		g.stepper.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if sc, ok := g.sim.(speedController); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
			sc.SetSpeed(sc.Speed() + core.SpeedStep)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
			sc.SetSpeed(sc.Speed() - core.SpeedStep)
		}
	}
	g.handleCellClick()

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.Update(g.gridWidth())

	if !controlled {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	g.stepper.SetDelay(rc.TickDelay())
	switch {
	case rc.Running():
		if g.stepper.ShouldStep() {
			g.sim.Step()
		}
	case g.tickOnce:
		g.sim.Step()
	}
	g.tickOnce = false
	return nil
}

func (g *Game) handleCellClick() {
	t, ok := g.sim.(cellToggler)
	if !ok || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.gridWidth() || my >= g.gridHeight() {
		return
	}
	// Clicks while running are rejected by the sim.
	_ = t.ToggleCell(my/g.scale, mx/g.scale)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.gridWidth())
	}
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.gridWidth(), h)
}

// Layout returns the logical screen size: the scaled grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hud.Width(), max(g.gridHeight(), g.hud.MinHeight())
}

func (g *Game) gridWidth() int  { return g.sim.Size().W * g.scale }
func (g *Game) gridHeight() int { return g.sim.Size().H * g.scale }
