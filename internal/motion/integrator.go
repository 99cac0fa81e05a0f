// Package motion moves the three vertices of the bouncing triangle.
package motion

import (
	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/models"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

type Vertex struct {
	Pos models.Vec2
	Vel models.Vec2
}

// Bounce records one velocity reflection during a tick.
type Bounce struct {
	Vertex int
	Axis   Axis
}

// StartPositions are the fixed initial triangle corners.
var StartPositions = [config.VertexCount]models.Vec2{
	{X: 0.0, Y: 0.5},
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
}

type Integrator struct {
	vertices [config.VertexCount]Vertex
	elapsed  float64
	bounces  []Bounce
}

// New places the vertices at StartPositions. Each vertex gets a single
// random scalar used for both velocity components, so it moves along a
// diagonal.
func New(rnd func() float64) *Integrator {
	var vs [config.VertexCount]Vertex
	for i := range vs {
		v := (rnd() - 0.5) / config.VelocityDivisor
		vs[i] = Vertex{
			Pos: StartPositions[i],
			Vel: models.Vec2{X: v, Y: v},
		}
	}
	return NewWithVertices(vs)
}

func NewWithVertices(vs [config.VertexCount]Vertex) *Integrator {
	return &Integrator{
		vertices: vs,
		bounces:  make([]Bounce, 0, 2*config.VertexCount),
	}
}

// Tick advances every vertex by one step. An axis outside [-1, 1] has its
// velocity negated before the step; positions are never clamped.
func (in *Integrator) Tick(elapsed float64) [config.VertexCount]models.Vec2 {
	in.elapsed = elapsed
	in.bounces = in.bounces[:0]

	for i := range in.vertices {
		v := &in.vertices[i]

		if outside(v.Pos.X) {
			v.Vel.X = -v.Vel.X
			in.bounces = append(in.bounces, Bounce{Vertex: i, Axis: AxisX})
		}
		if outside(v.Pos.Y) {
			v.Vel.Y = -v.Vel.Y
			in.bounces = append(in.bounces, Bounce{Vertex: i, Axis: AxisY})
		}

		v.Pos = v.Pos.Add(v.Vel)
	}

	return in.Positions()
}

func outside(v float64) bool {
	return v > 1 || v < -1
}

func (in *Integrator) Positions() [config.VertexCount]models.Vec2 {
	var out [config.VertexCount]models.Vec2
	for i, v := range in.vertices {
		out[i] = v.Pos
	}
	return out
}

func (in *Integrator) Vertices() [config.VertexCount]Vertex {
	return in.vertices
}

// Elapsed is the time value passed to the most recent Tick.
func (in *Integrator) Elapsed() float64 {
	return in.elapsed
}

// Bounces lists the reflections made by the most recent Tick. The slice is
// reused by the next Tick.
func (in *Integrator) Bounces() []Bounce {
	return in.bounces
}
