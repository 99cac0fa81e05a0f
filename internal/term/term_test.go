package term

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/motion"
	"github.com/iburimskiy/trails/internal/render"
	"github.com/iburimskiy/trails/internal/scene"
	"github.com/iburimskiy/trails/internal/trail"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: map[[2]int]cell{}}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }

func (f *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

func TestCycleColor(t *testing.T) {
	c := CycleColor(200, 200, 0)
	assert.Equal(t, 0.0, c.R)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 0.0, c.B)

	// st = (0.5, 1), t = pi/2
	tm := math.Pi / 2 * 1000
	c = CycleColor(200, 400, tm)
	assert.InDelta(t, math.Sin(math.Pi/4), c.R, 1e-9)
	assert.InDelta(t, 1.0, c.G, 1e-9)
	assert.InDelta(t, 1.0, c.B, 1e-9)

	// Negative sine clamps to zero.
	c = CycleColor(400, 400, 3*math.Pi/2*1000)
	assert.Equal(t, 0.0, c.B)
}

func TestPaintTriangle(t *testing.T) {
	c := newFakeCanvas(20, 10)
	paintTriangle(c, render.Triangle{
		Vertices: [3]models.Vec2{{X: 0, Y: 0.5}, {X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}},
		Time:     1000,
	})

	require.NotEmpty(t, c.cells)
	// Centre column near the bottom edge is inside; corners are not.
	_, ok := c.cells[[2]int{10, 6}]
	assert.True(t, ok)
	_, ok = c.cells[[2]int{0, 0}]
	assert.False(t, ok)
	_, ok = c.cells[[2]int{19, 9}]
	assert.False(t, ok)

	for pos := range c.cells {
		assert.GreaterOrEqual(t, pos[1], 2, "nothing above the apex")
		assert.LessOrEqual(t, pos[1], 7, "nothing below the base")
	}
}

func TestPaintTriangleWindingAndDegenerate(t *testing.T) {
	cw := newFakeCanvas(20, 10)
	paintTriangle(cw, render.Triangle{
		Vertices: [3]models.Vec2{{X: 0, Y: 0.5}, {X: 0.5, Y: -0.5}, {X: -0.5, Y: -0.5}},
	})
	ccw := newFakeCanvas(20, 10)
	paintTriangle(ccw, render.Triangle{
		Vertices: [3]models.Vec2{{X: 0, Y: 0.5}, {X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}},
	})
	assert.Equal(t, len(ccw.cells), len(cw.cells))

	flat := newFakeCanvas(20, 10)
	paintTriangle(flat, render.Triangle{
		Vertices: [3]models.Vec2{{X: 0.1, Y: 0.1}, {X: 0.1, Y: 0.1}, {X: 0.1, Y: 0.1}},
	})
	assert.Empty(t, flat.cells)
}

func TestPaintPoints(t *testing.T) {
	c := newFakeCanvas(10, 10)
	paintPoints(c, []models.Point{
		{Pos: models.Vec2{X: 0, Y: 0}, Color: models.Color{R: 1, G: 0, B: 0, A: 1}},
		{Pos: models.Vec2{X: -1, Y: 1}, Color: models.Color{R: 0, G: 1, B: 0, A: 1}},
		{Pos: models.Vec2{X: 1, Y: 0}, Color: models.Color{A: 1}},                  // right edge, off screen
		{Pos: models.Vec2{X: math.Inf(1), Y: math.Inf(-1)}, Color: models.Color{A: 1}}, // zero-sized surface
		{Pos: models.Vec2{X: math.NaN(), Y: 0}, Color: models.Color{A: 1}},
	})

	require.Len(t, c.cells, 2)

	centre := c.cells[[2]int{5, 5}]
	assert.Equal(t, pointRune, centre.r)
	assert.Equal(t, pointStyle(tcell.NewRGBColor(255, 0, 0)), centre.style)

	corner := c.cells[[2]int{0, 0}]
	assert.Equal(t, pointStyle(tcell.NewRGBColor(0, 255, 0)), corner.style)
}

func pointStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func newHost(t *testing.T) (*Host, *scene.Loop, *render.Layer, *render.Layer) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	loop := scene.NewLoop()
	triLayer, ptLayer := render.NewLayer(), render.NewLayer()
	loop.OnFrame(scene.NewTriangleScene(motion.New(func() float64 { return 0.75 }), triLayer))
	loop.OnPointerMove(scene.NewTrailScene(trail.New(func() float64 { return 0.5 }), ptLayer))

	h := New(screen, loop, Options{
		Triangles: []*render.Layer{triLayer},
		Points:    []*render.Layer{ptLayer},
	})
	return h, loop, triLayer, ptLayer
}

func TestHostMouseMoves(t *testing.T) {
	h, loop, _, ptLayer := newHost(t)

	h.handleMouse(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	h.handleMouse(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	h.handleMouse(tcell.NewEventMouse(21, 10, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, uint64(2), loop.Moves(), "a report at the same cell is not a move")

	points := ptLayer.Frame().Points
	require.Len(t, points, 2)
	// 40x20 surface: x is scaled by half the height, y by half the width.
	assert.InDelta(t, 1.0, points[0].Pos.X, 1e-9)
	assert.InDelta(t, 0.5, points[0].Pos.Y, 1e-9)
}

func TestHostTickAndPause(t *testing.T) {
	h, loop, triLayer, _ := newHost(t)

	h.handleTick()
	assert.Equal(t, uint64(1), loop.Ticks())
	assert.Len(t, triLayer.Frame().Triangles, 1)

	h.paused = true
	h.handleTick()
	assert.Equal(t, uint64(1), loop.Ticks())
}
