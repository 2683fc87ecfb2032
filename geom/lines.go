package geom

import (
	"math"
)

// Line is the non-vertical line y = Y0 + M * x.
type Line struct {
	Y0, M float64
}

// InitFromSlope initializes the line with slope m passing through (x, y).
func (l *Line) InitFromSlope(x, y, m float64) {
	l.M = m
	l.Y0 = y - m*x
}

// InitFromAngle initializes the line passing through (x, y) at an angle theta
// from the x-axis. |theta| must be less than pi/2.
func (l *Line) InitFromAngle(x, y, theta float64) {
	l.InitFromSlope(x, y, math.Tan(theta))
}

// At returns the y value of the line at x.
func (l *Line) At(x float64) float64 { return l.Y0 + l.M*x }

// AreParallel returns true if l1 and l2 never intersect (or coincide).
func AreParallel(l1, l2 *Line) bool {
	return l1.M == l2.M
}

// Solve returns the intersection point of two lines. ok is false if the lines
// are parallel.
func Solve(l1, l2 *Line) (x, y float64, ok bool) {
	if AreParallel(l1, l2) {
		return 0, 0, false
	}

	x = (l2.Y0 - l1.Y0) / (l1.M - l2.M)
	y = l1.At(x)
	return x, y, true
}
