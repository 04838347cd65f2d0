//go:build ebiten

package app

import (
	"time"

	"pixmas/internal/core"
	"pixmas/internal/render"
	"pixmas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core hack to the ebiten.Game interface. It owns the fixed
// timestep accounting so the hack ticks at its own rate regardless of the
// display refresh, and skips presentation work when the hack reports nothing
// changed.
type Game struct {
	hack    core.Hack
	frame   *core.Frame
	painter *render.FramePainter
	step    *core.FixedStep
	overlay *ui.Overlay

	scale  int
	seed   int64
	paused bool
}

// New constructs a Game for the provided hack.
func New(hack core.Hack, scale int, seed int64) *Game {
	size := hack.Size()
	return &Game{
		hack:    hack,
		frame:   core.NewFrame(size.W, size.H),
		painter: render.NewFramePainter(size.W, size.H),
		step:    core.NewFixedStep(hack.TickDuration()),
		overlay: ui.NewOverlay(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the hack state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.hack.Reset(seed)
}

// Update handles per-frame input and advances the simulation by however many
// fixed ticks are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.overlay.SetPaused(g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	steps := g.step.Steps()
	if g.paused {
		return nil
	}
	for i := 0; i < steps; i++ {
		g.hack.Simulate(time.Now())
	}
	g.overlay.SetSlipped(g.step.Slipped())
	return nil
}

// Draw presents the hack's frame, recompositing only when it asks for it.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.hack.WantRender() {
		g.hack.Render(g.frame)
		g.painter.Blit(screen, g.frame, g.scale)
	} else {
		g.painter.Redraw(screen, g.scale)
	}
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.hack.Size()
	return s.W * g.scale, s.H * g.scale
}
