package render

import "github.com/iburimskiy/trails/internal/models"

// ToScreen maps normalized device coordinates onto a width x height
// surface with the origin at the top left and y growing downwards.
func ToScreen(v models.Vec2, width, height float64) (float64, float64) {
	x := (v.X + 1) / 2 * width
	y := (1 - v.Y) / 2 * height
	return x, y
}
