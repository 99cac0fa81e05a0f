// Package render defines what the scenes need from a drawing backend.
package render

import "github.com/iburimskiy/trails/internal/models"

// Renderer accepts vertex data and per-frame uniforms and issues the draw
// calls for one surface.
type Renderer interface {
	// ClearSurface discards everything drawn since the previous clear.
	ClearSurface()
	// UploadVertices replaces the vertex data used by the next DrawTriangle.
	UploadVertices(vs []models.Vec2)
	// SetTimeUniform supplies the time sampled by the colour-cycle program.
	SetTimeUniform(t float64)
	DrawTriangle()
	DrawPoints(ps []models.Point)
}
