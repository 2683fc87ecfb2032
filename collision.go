package billiards

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/billiards/geom"
)

// NextCollision returns the state of p immediately after it reflects off the
// wall given by b.CheckCollision(p). sigma is the angle between the top wall
// and the x-axis. The reflected heading is s 2 sigma - theta, where s is the
// sign of the wall that was hit.
func NextCollision(p Particle, b *Border, sigma float64) (Particle, error) {
	if math.Abs(p.Theta) >= math.Pi/2 {
		return p, fmt.Errorf("%w: theta = %g", ErrBackwards, p.Theta)
	}

	hit := b.CheckCollision(p)
	if hit == None {
		return p, fmt.Errorf("%w: theta = %g", ErrNoCollision, p.Theta)
	}
	s := hit.Sign()

	ray, wall := &geom.Line{}, &geom.Line{}
	ray.InitFromAngle(p.X, p.Y, p.Theta)
	wall.InitFromSlope(0, s*b.R1(), s*b.Slope())

	x, _, ok := geom.Solve(ray, wall)
	if !ok {
		return p, fmt.Errorf("%w: theta = %g, %s wall", ErrParallel, p.Theta, hit)
	}

	return Particle{
		X:     x,
		Y:     ray.M*(x-p.X) + p.Y,
		Theta: s*2*sigma - p.Theta,
	}, nil
}

// FinalPosition extrapolates p along its current heading to the exit plane,
// x = b.L().
func FinalPosition(p Particle, b *Border) (Particle, error) {
	if math.Abs(p.Theta) > math.Pi/2 {
		return p, fmt.Errorf("%w: theta = %g", ErrBackwards, p.Theta)
	} else if p.X > b.L() {
		return p, fmt.Errorf("%w: x = %g, L = %g", ErrPastExit, p.X, b.L())
	}

	return Particle{
		X:     b.L(),
		Y:     math.Tan(p.Theta)*(b.L()-p.X) + p.Y,
		Theta: p.Theta,
	}, nil
}
