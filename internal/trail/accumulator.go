// Package trail accumulates coloured points at pointer positions in a
// fixed set of slots.
//
// Slots are chosen as counter mod Capacity. Once the counter passes
// Capacity a new point replaces whatever sits in its slot, so the surviving
// old points are not necessarily contiguous in insertion order.
package trail

import (
	"math"

	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/models"
)

const Capacity = config.Capacity

type Accumulator struct {
	points  [Capacity]models.Point
	written [Capacity]bool
	counter uint64
	high    int // highest slot written so far, -1 when empty
	rnd     func() float64
}

func New(rnd func() float64) *Accumulator {
	return &Accumulator{
		high: -1,
		rnd:  rnd,
	}
}

// ToNDC maps a screen position to normalized device coordinates. The
// surface height normalizes x and the width normalizes y; on a square
// surface the two agree. A zero-sized surface yields non-finite values.
func ToNDC(screenX, screenY float64, surface models.Rect) models.Vec2 {
	halfH := surface.Height / 2
	halfW := surface.Width / 2
	return models.Vec2{
		X: ((screenX - surface.Left) - halfH) / halfH,
		Y: (halfW - (screenY - surface.Top)) / halfW,
	}
}

// RandomColor draws r, g and b rounded to two decimals; alpha is always 1.
func RandomColor(rnd func() float64) models.Color {
	return models.Color{
		R: roundTo(rnd(), config.ColorDecimals),
		G: roundTo(rnd(), config.ColorDecimals),
		B: roundTo(rnd(), config.ColorDecimals),
		A: 1.0,
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Insert stores a new point for the pointer position and returns the slot
// it was written to.
func (a *Accumulator) Insert(screenX, screenY float64, surface models.Rect) int {
	slot := int(a.counter % Capacity)

	a.points[slot] = models.Point{
		Pos:   ToNDC(screenX, screenY, surface),
		Color: RandomColor(a.rnd),
	}
	a.written[slot] = true
	if slot > a.high {
		a.high = slot
	}
	a.counter++

	return slot
}

// Snapshot returns every written slot in slot order.
func (a *Accumulator) Snapshot() []models.Point {
	out := make([]models.Point, 0, a.high+1)
	for i := 0; i <= a.high; i++ {
		if a.written[i] {
			out = append(out, a.points[i])
		}
	}
	return out
}

func (a *Accumulator) At(slot int) (models.Point, bool) {
	if slot < 0 || slot >= Capacity || !a.written[slot] {
		return models.Point{}, false
	}
	return a.points[slot], true
}

// Len is the number of written slots.
func (a *Accumulator) Len() int {
	if a.counter >= Capacity {
		return Capacity
	}
	return int(a.counter)
}

// Count is the total number of inserts, including overwritten ones.
func (a *Accumulator) Count() uint64 {
	return a.counter
}
