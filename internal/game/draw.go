package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/render"
)

// Points per DrawTriangles call; keeps vertex indices inside uint16.
const pointBatch = 4096

func newWhiteImage() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, l := range g.opts.Triangles {
		g.drawTriangles(screen, l.Frame())
	}
	for _, l := range g.opts.Points {
		g.drawPoints(screen, l.Frame().Points)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawTriangles(screen *ebiten.Image, f render.Frame) {
	w, h := g.settings.WindowWidth, g.settings.WindowHeight

triangles:
	for _, tri := range f.Triangles {
		g.vertices = g.vertices[:0]
		for _, v := range tri.Vertices {
			x, y := toScreen(v, w, h)
			if !finite(x) || !finite(y) {
				continue triangles
			}
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: x, DstY: y,
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			})
		}

		op := &ebiten.DrawTrianglesShaderOptions{}
		op.Uniforms = map[string]any{
			"Time":         float32(tri.Time),
			"ScreenHeight": float32(h),
		}
		screen.DrawTrianglesShader(g.vertices, []uint16{0, 1, 2}, g.shader, op)
	}
}

// drawPoints draws each point as a PointSize square centred on its
// position. Non-finite positions are skipped.
func (g *Game) drawPoints(screen *ebiten.Image, points []models.Point) {
	w, h := g.settings.WindowWidth, g.settings.WindowHeight
	half := float32(config.PointSize) / 2

	flush := func() {
		if len(g.indices) == 0 {
			return
		}
		screen.DrawTriangles(g.vertices, g.indices, g.white, &ebiten.DrawTrianglesOptions{})
		g.vertices = g.vertices[:0]
		g.indices = g.indices[:0]
	}

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	n := 0
	for _, p := range points {
		x, y := toScreen(p.Pos, w, h)
		if !finite(x) || !finite(y) {
			continue
		}

		r := float32(clamp01(p.Color.R))
		gr := float32(clamp01(p.Color.G))
		b := float32(clamp01(p.Color.B))
		a := float32(clamp01(p.Color.A))

		base := uint16(len(g.vertices))
		for _, c := range [4][2]float32{{-half, -half}, {half, -half}, {-half, half}, {half, half}} {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: x + c[0], DstY: y + c[1],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2, base+1, base+3, base+2)

		n++
		if n%pointBatch == 0 {
			flush()
		}
	}
	flush()
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("%s  TPS %.0f", formatDuration(g.Elapsed()), ebiten.ActualTPS())
	if g.opts.Counter != nil {
		status += fmt.Sprintf("  points %d/%d", g.opts.Counter(), config.Capacity)
	}
	if g.paused {
		status += "  [paused]"
	}
	if g.opts.Chime != nil && g.opts.Chime.Muted() {
		status += "  [muted]"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 4, 20)
	}
}
