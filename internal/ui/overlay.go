//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusProvider is the run state shown by the overlay.
type StatusProvider interface {
	Running() bool
	Tick() int
	TickDelay() time.Duration
}

// Overlay draws a status line and key help on top of the grid. Key 1 toggles
// the status line and key 2 the help text.
type Overlay struct {
	status   StatusProvider
	showInfo bool
	showHelp bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay bound to status. A nil provider disables
// the status line.
func NewOverlay(status StatusProvider) *Overlay {
	o := &Overlay{status: status, showInfo: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showInfo = !o.showInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay inside a width-pixel-wide strip at the top left.
func (o *Overlay) Draw(screen *ebiten.Image, width int) {
	lines := make([]string, 0, 6)
	if o.showInfo && o.status != nil {
		lines = append(lines, statusLine(o.status))
	}
	if o.showHelp {
		lines = append(lines,
			"space start/stop  n step",
			"c clear  r reseed  s new seed",
			"+/- speed  click toggles cell",
		)
	}
	if len(lines) == 0 || width <= 0 {
		return
	}

	height := overlayPadding*2 + len(lines)*overlayLineHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := overlayPadding + (i+1)*overlayLineHeight - 3
		text.Draw(screen, line, face, overlayPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func statusLine(s StatusProvider) string {
	mode := "paused"
	if s.Running() {
		mode = "running"
	}
	return fmt.Sprintf("%s  tick %d  delay %dms", mode, s.Tick(), s.TickDelay()/time.Millisecond)
}

const (
	overlayPadding    = 4
	overlayLineHeight = 14
)
