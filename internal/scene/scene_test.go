package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/motion"
	"github.com/iburimskiy/trails/internal/render"
	"github.com/iburimskiy/trails/internal/trail"
)

// recorder logs every Renderer call in order.
type recorder struct {
	calls    []string
	vertices []models.Vec2
	time     float64
	points   []models.Point
}

func (r *recorder) ClearSurface() { r.calls = append(r.calls, "clear") }

func (r *recorder) UploadVertices(vs []models.Vec2) {
	r.calls = append(r.calls, "upload")
	r.vertices = append([]models.Vec2(nil), vs...)
}

func (r *recorder) SetTimeUniform(t float64) {
	r.calls = append(r.calls, "time")
	r.time = t
}

func (r *recorder) DrawTriangle() { r.calls = append(r.calls, "triangle") }

func (r *recorder) DrawPoints(ps []models.Point) {
	r.calls = append(r.calls, fmt.Sprintf("points(%d)", len(ps)))
	r.points = ps
}

type bounceLog []motion.Bounce

func (b *bounceLog) Bounce(x motion.Bounce) { *b = append(*b, x) }

func TestTriangleSceneFrame(t *testing.T) {
	in := motion.NewWithVertices([config.VertexCount]motion.Vertex{
		{Pos: models.Vec2{X: 0, Y: 0.5}, Vel: models.Vec2{X: 0.01, Y: 0.01}},
		{Pos: models.Vec2{X: -1.005, Y: -0.5}, Vel: models.Vec2{X: -0.01, Y: -0.01}},
		{Pos: models.Vec2{X: 0.5, Y: -0.5}},
	})
	r := &recorder{}
	s := NewTriangleScene(in, r)
	var bounces bounceLog
	s.SetBounceListener(&bounces)

	s.Frame(100)

	assert.Equal(t, []string{"clear", "upload", "time", "triangle"}, r.calls)
	assert.Equal(t, 100.0, r.time)

	pos := in.Positions()
	assert.Equal(t, pos[:], r.vertices, "redraw shows the positions just computed")
	assert.Equal(t, bounceLog{{Vertex: 1, Axis: motion.AxisX}}, bounces)
}

func TestTrailSceneRedrawsSnapshot(t *testing.T) {
	acc := trail.New(func() float64 { return 0.25 })
	r := &recorder{}
	s := NewTrailScene(acc, r)
	surface := models.Rect{Width: 400, Height: 400}

	s.PointerMove(200, 200, surface)
	s.PointerMove(0, 0, surface)

	assert.Equal(t, []string{"clear", "points(1)", "clear", "points(2)"}, r.calls)
	require.Len(t, r.points, 2)
	assert.Equal(t, models.Vec2{X: 0, Y: 0}, r.points[0].Pos)
	assert.Equal(t, models.Vec2{X: -1, Y: 1}, r.points[1].Pos)
}

func TestScenesOnLayers(t *testing.T) {
	loop := NewLoop()
	triLayer, ptLayer := render.NewLayer(), render.NewLayer()

	tri := NewTriangleScene(motion.New(func() float64 { return 0.5 }), triLayer)
	pts := NewTrailScene(trail.New(func() float64 { return 0.5 }), ptLayer)
	loop.OnFrame(tri)
	loop.OnPointerMove(pts)

	surface := models.Rect{Width: 400, Height: 400}
	require.NoError(t, loop.PointerMove(100, 100, surface))
	require.NoError(t, loop.Frame(16))

	// Clearing the triangle layer must not wipe the trail.
	assert.Len(t, triLayer.Frame().Triangles, 1)
	assert.Len(t, ptLayer.Frame().Points, 1)
	assert.Empty(t, triLayer.Frame().Points)
}

type reentrant struct {
	loop *Loop
	errs []error
}

func (r *reentrant) Frame(float64) {
	r.errs = append(r.errs, r.loop.Frame(0))
}

func (r *reentrant) PointerMove(float64, float64, models.Rect) {
	r.errs = append(r.errs, r.loop.PointerMove(0, 0, models.Rect{}))
}

func TestLoopRejectsReentrantDispatch(t *testing.T) {
	loop := NewLoop()
	h := &reentrant{loop: loop}
	loop.OnFrame(h)
	loop.OnPointerMove(h)

	require.NoError(t, loop.Frame(1))
	require.NoError(t, loop.PointerMove(1, 1, models.Rect{}))

	assert.Equal(t, []error{ErrReentrant, ErrReentrant}, h.errs)
	assert.Equal(t, uint64(1), loop.Ticks())
	assert.Equal(t, uint64(1), loop.Moves())
}

type elapsedLog []float64

func (e *elapsedLog) Frame(elapsed float64) { *e = append(*e, elapsed) }

func TestLoopClockNeverGoesBackwards(t *testing.T) {
	loop := NewLoop()
	var got elapsedLog
	loop.OnFrame(&got)

	for _, v := range []float64{0, 16, 33, 20, 50} {
		require.NoError(t, loop.Frame(v))
	}

	assert.Equal(t, elapsedLog{0, 16, 33, 33, 50}, got)
	assert.Equal(t, 50.0, loop.Elapsed())
}

func TestLoopDispatchOrder(t *testing.T) {
	loop := NewLoop()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		loop.OnFrame(frameFunc(func(float64) { order = append(order, name) }))
	}

	require.NoError(t, loop.Frame(0))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

type frameFunc func(float64)

func (f frameFunc) Frame(elapsed float64) { f(elapsed) }
