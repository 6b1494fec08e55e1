package ember

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxFrameDt caps the measured frame delta so a paused or suspended window
// does not fast-forward the simulation on resume, in ms.
const maxFrameDt = 250

// RunConfig configures [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// System, when set, is resized with the window and updated and drawn
	// every frame.
	System *System

	// Tweener, when set, is updated every frame before System.
	Tweener *Tweener

	// Update is called once per frame with the measured elapsed time in
	// ms, before System and Tweener advance. Returning an error stops the
	// loop; return ebiten.Termination for a clean exit.
	Update func(dt float64) error

	// Draw is called after System has drawn, for overlays and sprites.
	Draw func(screen *ebiten.Image)

	// ShowStats draws the FPS/particle counter in the corner.
	ShowStats bool
}

// Run opens a window and drives the configured components with measured
// wall-clock frame times until the window closes. It is a convenience
// wrapper; hosts that own their ebiten.Game keep full control by calling
// Update and Draw on the components directly.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&runGame{cfg: cfg})
}

type runGame struct {
	cfg  RunConfig
	last time.Time
}

func (g *runGame) Update() error {
	now := time.Now()
	dt := 1000.0 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		dt = float64(now.Sub(g.last)) / float64(time.Millisecond)
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	g.last = now

	if g.cfg.Update != nil {
		if err := g.cfg.Update(dt); err != nil {
			return err
		}
	}
	if g.cfg.Tweener != nil {
		g.cfg.Tweener.Update(dt)
	}
	if g.cfg.System != nil {
		g.cfg.System.Update(dt)
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.System != nil {
		g.cfg.System.Draw(screen)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.cfg.ShowStats && g.cfg.System != nil {
		g.cfg.System.DrawStats(screen)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.System != nil {
		g.cfg.System.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
