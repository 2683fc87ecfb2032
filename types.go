package billiards

import (
	"fmt"
)

// Particle is the state of the particle: its position and its heading,
// measured from the x-axis.
type Particle struct {
	X, Y, Theta float64
}

func (p Particle) String() string {
	return fmt.Sprintf("X: %.2f  Y: %.2f  Angle: %.2f", p.X, p.Y, p.Theta)
}

// FinalState is the exit state of a single trajectory. Valid is false if the
// trajectory could not be computed, in which case Err holds the reason.
type FinalState struct {
	X, Y, Theta float64
	Valid       bool
	Err         error
}

// Particle returns the exit state as a Particle.
func (fs FinalState) Particle() Particle {
	return Particle{fs.X, fs.Y, fs.Theta}
}
