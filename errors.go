package billiards

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBorder is returned for negative (or NaN) border geometry.
	ErrInvalidBorder = errors.New("invalid border value(s)")
	// ErrInvalidConditions is returned for entry states that can never reach
	// the exit plane or that start outside the table.
	ErrInvalidConditions = errors.New("invalid conditions")
	// ErrBackwards is returned when a heading can no longer make progress
	// along the x-axis.
	ErrBackwards = errors.New("particle moves backwards")
	// ErrNoCollision is returned when a bounce is requested for a heading that
	// hits neither wall.
	ErrNoCollision = errors.New("particle does not hit a border")
	// ErrParallel is returned when the particle travels exactly parallel to the
	// wall it is supposed to hit.
	ErrParallel = errors.New("particle moves parallel to the border")
	// ErrPastExit is returned when extrapolating from beyond the exit plane.
	ErrPastExit = errors.New("particle is past the exit plane")
	// ErrTooManyBounces is returned when a trajectory exceeds MaxBounces.
	ErrTooManyBounces = errors.New("too many bounces")
	// ErrBadTrialCount is returned for a non-positive number of trials.
	ErrBadTrialCount = errors.New("number of trials must be positive")

	ErrNoBorder   = errors.New("borders have not been set")
	ErrNoParticle = errors.New("initial conditions have not been set")
)

// TrajectoryError records where in a trajectory a failure happened.
type TrajectoryError struct {
	// Bounce is the number of bounces computed before the failure.
	Bounce int
	State  Particle
	Err    error
}

func (e *TrajectoryError) Error() string {
	return fmt.Sprintf("bounce %d at (%g, %g, %g): %s",
		e.Bounce, e.State.X, e.State.Y, e.State.Theta, e.Err.Error())
}

func (e *TrajectoryError) Unwrap() error { return e.Err }
