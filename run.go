package reel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop created by [Run].
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the window and logical layout size in pixels.
	// Zero values default to 640x480.
	Width  int
	Height int
	// TPS overrides the tick rate. Zero keeps ebiten's default (60).
	TPS int
	// Draw, if non-nil, is called once per rendered frame after the tick.
	// Reel draws nothing itself.
	Draw func(screen *ebiten.Image)
}

// game adapts a Stage to the ebiten.Game interface: one stage tick per update.
type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error {
	return g.stage.Tick()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run creates a window and drives the stage with one tick per update until
// the window is closed or a listener returns an error. A listener error stops
// the loop and is returned.
//
// Run never returns on some platforms (see ebiten.RunGame); for headless or
// test use, call [Stage.Tick] in your own loop instead.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}
