package game

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/render"
)

func toScreen(v models.Vec2, width, height int) (float32, float32) {
	x, y := render.ToScreen(v, float64(width), float64(height))
	return float32(x), float32(y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
