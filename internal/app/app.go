//go:build ebiten

package app

import (
	"log"
	"time"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It is the only
// owner of the sim: input handling, ticking and drawing all happen on the
// ebiten loop, so reads and writes never overlap.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	frames *core.FrameStats
	tick   *core.Stopwatch

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cellSize, hudWidth int) *Game {
	size := sim.Size()
	layout := render.NewLayout(size.W, size.H, cellSize)
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(layout, render.DefaultPalette()),
		hud:     ui.NewHUD(sim, hudWidth),
		frames:  &core.FrameStats{},
		tick:    core.NewStopwatch("tick"),
	}
}

// WindowSize returns the outer size the window should open at.
func (g *Game) WindowSize() (int, int) {
	w, h := g.painter.Layout().Bounds()
	return w + g.hud.Width(), h
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if r, ok := g.sim.(core.Reseeder); ok {
			r.Reseed(core.ClockSeed())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(core.Clearer); ok {
			c.Clear()
		}
	}
	g.handleMouse()

	if !g.paused || g.tickOnce {
		g.tick.Time(g.sim.Tick)
		g.tickOnce = false
	}
	g.hud.Update(ui.Status{Paused: g.paused, Frames: g.frames, Tick: g.tick})
	return nil
}

func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	x, y := ebiten.CursorPosition()
	layout := g.painter.Layout()
	if w, h := layout.Bounds(); x >= w || y >= h {
		return
	}
	row, col, ok := layout.CellAt(x, y)
	if !ok {
		return
	}
	switch {
	case left:
		if s, ok := g.sim.(core.PatternStamper); ok {
			log.Printf("glider at cell %d %d", row, col)
			s.SetGlider(row, col)
		}
	case right:
		if t, ok := g.sim.(core.CellToggler); ok {
			if err := t.ToggleCell(row, col); err != nil {
				log.Printf("toggle: %v", err)
			}
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frames.Frame(time.Now())
	g.painter.Blit(screen, g.sim.Cells())
	w, h := g.painter.Layout().Bounds()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
