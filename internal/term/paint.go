package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/render"
)

const pointRune = '•'

// canvas is the part of tcell.Screen the painter needs.
type canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// CycleColor is the triangle fill at a fragment position (bottom-left
// origin, in ShaderScale units) for a time in milliseconds.
func CycleColor(fragX, fragY, timeMs float64) colorful.Color {
	t := timeMs / config.TimeScale
	stX := fragX / config.ShaderScale
	stY := fragY / config.ShaderScale
	return colorful.Color{
		R: math.Sin(stX * t),
		G: math.Sin(stY * t),
		B: math.Sin(t),
	}.Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// paintTriangle fills every cell whose centre lies inside tri.
func paintTriangle(c canvas, tri render.Triangle) {
	cols, rows := c.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	var px, py [3]float64
	for i, v := range tri.Vertices {
		px[i], py[i] = render.ToScreen(v, float64(cols), float64(rows))
	}
	if area := edge(px[0], py[0], px[1], py[1], px[2], py[2]); area == 0 || math.IsNaN(area) {
		return
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			if !inside(cx, cy, px, py) {
				continue
			}
			// Fragment coordinates of a virtual ShaderScale-sized canvas.
			fx := cx / float64(cols) * config.ShaderScale
			fy := (float64(rows) - cy) / float64(rows) * config.ShaderScale
			col := toTcell(CycleColor(fx, fy, tri.Time))
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(col))
		}
	}
}

// inside accepts either winding. NaN coordinates never match.
func inside(x, y float64, px, py [3]float64) bool {
	d0 := edge(px[0], py[0], px[1], py[1], x, y)
	d1 := edge(px[1], py[1], px[2], py[2], x, y)
	d2 := edge(px[2], py[2], px[0], py[0], x, y)

	neg := d0 < 0 || d1 < 0 || d2 < 0
	pos := d0 > 0 || d1 > 0 || d2 > 0
	if math.IsNaN(d0 + d1 + d2) {
		return false
	}
	return !(neg && pos)
}

func edge(ax, ay, bx, by, x, y float64) float64 {
	return (bx-ax)*(y-ay) - (by-ay)*(x-ax)
}

// paintPoints draws one cell per point. Points that map outside the
// screen or to non-finite coordinates are dropped.
func paintPoints(c canvas, points []models.Point) {
	cols, rows := c.Size()

	for _, p := range points {
		if !p.Pos.Finite() {
			continue
		}
		fx, fy := render.ToScreen(p.Pos, float64(cols), float64(rows))
		x, y := int(math.Floor(fx)), int(math.Floor(fy))
		if x < 0 || y < 0 || x >= cols || y >= rows {
			continue
		}
		col := toTcell(colorful.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B})
		c.SetContent(x, y, pointRune, nil, tcell.StyleDefault.Foreground(col).Background(tcell.ColorBlack))
	}
}
