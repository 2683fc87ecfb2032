package geom

import (
	"math"
)

// ReduceAngle returns theta modulo 2 pi. The result keeps the sign of theta,
// so it lies in (-2 pi, 2 pi).
func ReduceAngle(theta float64) float64 {
	return math.Mod(theta, 2*math.Pi)
}
