// Package game hosts the scenes in an ebiten window.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/game/shaders"
	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/render"
	"github.com/iburimskiy/trails/internal/scene"
)

// Muter is implemented by the bounce chime.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

type Options struct {
	Triangles []*render.Layer
	Points    []*render.Layer
	Chime     Muter
	// Counter reports how many trail points are held, for the HUD.
	Counter func() int
}

type Game struct {
	settings *config.Settings
	loop     *scene.Loop
	opts     Options

	// drawing
	shader   *ebiten.Shader
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16

	// pointer
	cursorX, cursorY int
	haveCursor       bool

	// state
	start   time.Time
	paused  bool
	showHUD bool
	lastErr error
}

// New compiles the colour-cycle shader; a compile failure means the game
// cannot start.
func New(settings *config.Settings, loop *scene.Loop, opts Options) (*Game, error) {
	shader, err := ebiten.NewShader(shaders.Triangle)
	if err != nil {
		return nil, fmt.Errorf("compile triangle shader: %w", err)
	}

	return &Game{
		settings: settings,
		loop:     loop,
		opts:     opts,
		shader:   shader,
		white:    newWhiteImage(),
		start:    time.Now(),
		showHUD:  settings.ShowHUD,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.opts.Chime != nil {
		g.opts.Chime.SetMuted(!g.opts.Chime.Muted())
	}

	g.updatePointer()

	if g.paused {
		return nil
	}
	elapsed := float64(time.Since(g.start)) / float64(time.Millisecond)
	if err := g.loop.Frame(elapsed); err != nil {
		g.lastErr = err
	}
	return nil
}

// updatePointer turns cursor movement inside the window into pointer-move
// events. The first cursor sample only sets the baseline.
func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	moved := g.haveCursor && (x != g.cursorX || y != g.cursorY)
	g.cursorX, g.cursorY = x, y
	g.haveCursor = true

	w, h := g.settings.WindowWidth, g.settings.WindowHeight
	if !moved || x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	surface := models.Rect{Width: float64(w), Height: float64(h)}
	if err := g.loop.PointerMove(float64(x), float64(y), surface); err != nil {
		g.lastErr = err
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.WindowWidth, g.settings.WindowHeight
}

func (g *Game) Elapsed() time.Duration {
	return time.Since(g.start)
}
