//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/rockbmb/wasm-game-of-life/internal/render"
	"github.com/rockbmb/wasm-game-of-life/internal/ui"
	"github.com/rockbmb/wasm-game-of-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Universe to the ebiten.Game interface.
type Game struct {
	uni     *life.Universe
	cfg     *Config
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *Pacer

	onColor  color.Color
	offColor color.Color

	generation int
	paused     bool
	tickOnce   bool
	seed       int64
}

// New constructs a Game for the provided universe.
func New(uni *life.Universe, cfg *Config) *Game {
	return &Game{
		uni:      uni,
		cfg:      cfg,
		painter:  render.NewGridPainter(uni.Width(), uni.Height()),
		hud:      ui.NewHUD(),
		pacer:    NewPacer(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		seed:     cfg.Seed,
	}
}

// Reset reseeds the universe in place with the provided seed.
func (g *Game) Reset(seed int64) error {
	pattern, err := g.cfg.NewPattern(seed)
	if err != nil {
		return err
	}
	g.seed = seed
	g.uni.Reset(pattern)
	g.generation = 0
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the universe when due.
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
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		// Clicks outside the window resolve to out-of-range cells; those
		// are rejected by Toggle and simply dropped here.
		_ = g.uni.Toggle(py/g.cfg.Scale, px/g.cfg.Scale)
	}

	g.hud.Update()

	if (!g.paused && g.pacer.Due()) || g.tickOnce {
		g.uni.Tick()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.uni.Cells(), g.onColor, g.offColor, g.cfg.Scale)
	g.hud.Draw(screen, g.statusLine())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.uni.Width() * g.cfg.Scale, g.uni.Height() * g.cfg.Scale
}

func (g *Game) statusLine() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s | gen %d | pop %d | %s", g.cfg.Pattern, g.generation, g.uni.Population(), state)
}
