//go:build ebiten

package app

import (
	"context"
	"image/color"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It carries all
// of the window state: the pacing clock, the painter and the cancellation
// context.
type Game struct {
	ctx     context.Context
	sim     core.Sim
	clock   *core.FixedInterval
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	dirty *dirtySet

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The loop ends when ctx
// is cancelled.
func New(ctx context.Context, sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		ctx:      ctx,
		sim:      sim,
		clock:    core.NewFixedInterval(cfg.Interval),
		painter:  render.NewGridPainter(size.W, size.H),
		onColor:  color.White,
		offColor: color.Black,
		dirty:    newDirtySet(size.W * size.H),
		scale:    cfg.CellSize,
		seed:     cfg.Seed,
	}
	if cfg.Status {
		g.hud = ui.NewHUD(sim)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.clock.Restart()
	g.dirty.mark(g.sim)
}

func (g *Game) step() {
	g.sim.Step()
	g.dirty.mark(g.sim)
}

// Update handles input and advances the simulation once per interval.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.clock.Restart()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce {
		g.step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.clock.Due() {
		g.step()
	}
	return nil
}

// Draw repaints changed cells and renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Sync(g.sim.Cells(), g.dirty.flush(), g.onColor, g.offColor)

	g.painter.Draw(screen, g.scale)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
