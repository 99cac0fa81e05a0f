package render

import (
	"sync"

	"github.com/iburimskiy/trails/internal/models"
)

// Triangle is one recorded DrawTriangle call.
type Triangle struct {
	Vertices [3]models.Vec2
	Time     float64
}

// Frame is what a Layer holds between two ClearSurface calls.
type Frame struct {
	Triangles []Triangle
	Points    []models.Point
}

// Layer is a Renderer that keeps the last frame so a host can composite it
// on its own schedule. Each scene owns one layer.
type Layer struct {
	mu       sync.RWMutex
	vertices []models.Vec2
	time     float64
	frame    Frame
	seq      uint64
}

func NewLayer() *Layer {
	return &Layer{}
}

func (l *Layer) ClearSurface() {
	l.mu.Lock()
	l.frame = Frame{}
	l.seq++
	l.mu.Unlock()
}

func (l *Layer) UploadVertices(vs []models.Vec2) {
	l.mu.Lock()
	l.vertices = append(l.vertices[:0], vs...)
	l.mu.Unlock()
}

func (l *Layer) SetTimeUniform(t float64) {
	l.mu.Lock()
	l.time = t
	l.mu.Unlock()
}

// DrawTriangle records the first three uploaded vertices. Fewer than three
// uploaded vertices draws nothing.
func (l *Layer) DrawTriangle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.vertices) < 3 {
		return
	}
	var tri Triangle
	copy(tri.Vertices[:], l.vertices[:3])
	tri.Time = l.time
	l.frame.Triangles = append(l.frame.Triangles, tri)
	l.seq++
}

func (l *Layer) DrawPoints(ps []models.Point) {
	l.mu.Lock()
	l.frame.Points = append(l.frame.Points, ps...)
	l.seq++
	l.mu.Unlock()
}

// Frame returns the recorded frame. The returned slices must not be
// modified.
func (l *Layer) Frame() Frame {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.frame
}

// Seq changes every time the recorded frame changes.
func (l *Layer) Seq() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.seq
}
