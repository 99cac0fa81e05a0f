package models

import "math"

// Vec2 is a position or velocity in normalized device coordinates.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Color channels are in [0, 1].
type Color struct {
	R, G, B, A float64
}

type Point struct {
	Pos   Vec2
	Color Color
}

// Rect is the bounding box of the drawing surface in screen units.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}
