package billiards

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/billiards/geom"
)

// MaxBounces bounds the number of reflections in a single trajectory.
var MaxBounces = 1 << 20

// Trajectory is the sequence of states of a particle: the entry state, one
// state per bounce, and the state at the exit plane.
type Trajectory struct {
	positions []Particle
}

// NewTrajectory returns a Trajectory which starts at p.
func NewTrajectory(p Particle) *Trajectory {
	return &Trajectory{positions: []Particle{p}}
}

// Positions returns the recorded states. The slice must not be modified.
func (t *Trajectory) Positions() []Particle { return t.positions }

func (t *Trajectory) Size() int { return len(t.positions) }

// Final returns the last recorded state.
func (t *Trajectory) Final() Particle { return t.positions[len(t.positions)-1] }

// Bounces returns the number of reflections in a simulated trajectory.
func (t *Trajectory) Bounces() int {
	if len(t.positions) < 2 {
		return 0
	}
	return len(t.positions) - 2
}

// SimulateCollisions appends every bounce of the particle against b and then
// its state at the exit plane.
func (t *Trajectory) SimulateCollisions(b *Border) error {
	sigma := math.Atan2(b.R2()-b.R1(), b.L())

	for {
		last := t.Final()
		if last.X >= b.L() || b.CheckCollision(last) == None {
			break
		}
		if len(t.positions)-1 >= MaxBounces {
			return &TrajectoryError{t.Size() - 1, last, ErrTooManyBounces}
		}

		next, err := NextCollision(last, b, sigma)
		if err != nil {
			return &TrajectoryError{t.Size() - 1, last, err}
		} else if next.X < last.X {
			return &TrajectoryError{t.Size() - 1, next, ErrBackwards}
		}

		t.positions = append(t.positions, next)
	}

	// A bounce past the exit plane never happens inside the table.
	if len(t.positions) > 1 && t.Final().X > b.L() {
		t.positions = t.positions[:len(t.positions)-1]
	}

	end, err := FinalPosition(t.Final(), b)
	if err != nil {
		return &TrajectoryError{t.Size() - 1, t.Final(), err}
	}
	t.positions = append(t.positions, end)

	return nil
}

// ComputeTrajectory checks the entry state p against b and computes its full
// trajectory. p.Theta is reduced modulo 2 pi first.
func ComputeTrajectory(p Particle, b *Border) (*Trajectory, error) {
	p.Theta = geom.ReduceAngle(p.Theta)

	if math.IsNaN(p.Theta) {
		return nil, fmt.Errorf(
			"%w: theta must be finite", ErrInvalidConditions,
		)
	} else if b.Kind() == Straight && math.Abs(p.Theta) == math.Pi/2 {
		return nil, fmt.Errorf(
			"%w: theta = %g never reaches the exit of a straight border",
			ErrInvalidConditions, p.Theta,
		)
	} else if !b.Contains(p.Y) {
		return nil, fmt.Errorf(
			"%w: Y = %g must be in range [%g, %g]",
			ErrInvalidConditions, p.Y, -b.R1(), b.R1(),
		)
	}

	t := NewTrajectory(p)
	if err := t.SimulateCollisions(b); err != nil {
		return nil, err
	}
	return t, nil
}

// SimulateFinalState computes the trajectory of p and returns only its exit
// state. Failures are reported through FinalState.Valid and FinalState.Err.
func SimulateFinalState(p Particle, b *Border) FinalState {
	t, err := ComputeTrajectory(p, b)
	if err != nil {
		return FinalState{Err: err}
	}
	end := t.Final()
	return FinalState{end.X, end.Y, end.Theta, true, nil}
}
