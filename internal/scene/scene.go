package scene

import (
	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/motion"
	"github.com/iburimskiy/trails/internal/render"
	"github.com/iburimskiy/trails/internal/trail"
)

// BounceListener is told about every velocity reflection.
type BounceListener interface {
	Bounce(b motion.Bounce)
}

// TriangleScene redraws the bouncing triangle on every frame.
type TriangleScene struct {
	integrator *motion.Integrator
	renderer   render.Renderer
	listener   BounceListener
	vertices   []models.Vec2
}

func NewTriangleScene(in *motion.Integrator, r render.Renderer) *TriangleScene {
	return &TriangleScene{
		integrator: in,
		renderer:   r,
		vertices:   make([]models.Vec2, 0, 3),
	}
}

func (s *TriangleScene) SetBounceListener(l BounceListener) {
	s.listener = l
}

func (s *TriangleScene) Frame(elapsed float64) {
	pos := s.integrator.Tick(elapsed)

	if s.listener != nil {
		for _, b := range s.integrator.Bounces() {
			s.listener.Bounce(b)
		}
	}

	s.vertices = append(s.vertices[:0], pos[:]...)

	s.renderer.ClearSurface()
	s.renderer.UploadVertices(s.vertices)
	s.renderer.SetTimeUniform(elapsed)
	s.renderer.DrawTriangle()
}

func (s *TriangleScene) Integrator() *motion.Integrator {
	return s.integrator
}

// TrailScene appends a point on every pointer move and redraws the whole
// trail.
type TrailScene struct {
	acc      *trail.Accumulator
	renderer render.Renderer
}

func NewTrailScene(acc *trail.Accumulator, r render.Renderer) *TrailScene {
	return &TrailScene{acc: acc, renderer: r}
}

func (s *TrailScene) PointerMove(x, y float64, surface models.Rect) {
	s.acc.Insert(x, y, surface)

	s.renderer.ClearSurface()
	s.renderer.DrawPoints(s.acc.Snapshot())
}

func (s *TrailScene) Accumulator() *trail.Accumulator {
	return s.acc
}
