package geo

import "math"

// Euclidean returns the straight-line distance between two points on a flat
// plane. It applies no Earth model and no units.
func Euclidean(fromX, fromY, toX, toY float64) float64 {
	dx := fromX - toX
	dy := fromY - toY
	return math.Sqrt(dx*dx + dy*dy)
}
