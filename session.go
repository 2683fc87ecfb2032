package billiards

import (
	"fmt"
	"io"
	"log"
	"math"

	bio "github.com/phil-mansfield/billiards/io"
	"github.com/phil-mansfield/billiards/stats"
)

// Session is the state kept between commands: the current border, the last
// entry state, and every trial accepted since the last Erase.
type Session struct {
	border   *Border
	particle Particle
	hasEntry bool
	result   *Result

	log *log.Logger
}

// NewSession returns an empty Session. A nil logger discards log output.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{result: NewResult(), log: logger}
}

// SetBorder replaces the current border.
func (s *Session) SetBorder(r1, r2, l float64) (*Border, error) {
	b, err := NewBorder(r1, r2, l)
	if err != nil {
		return nil, err
	}
	s.border = b
	s.log.Printf("Border set: %s", b)
	return b, nil
}

// Border returns the current border, or nil if none has been set.
func (s *Session) Border() *Border { return s.border }

// Result returns the trials accumulated by the session.
func (s *Session) Result() *Result { return s.result }

func (s *Session) checkEntry(p Particle) error {
	if s.border == nil {
		return ErrNoBorder
	}
	if !(math.Mod(math.Abs(p.Theta), 2*math.Pi) <= math.Pi/2) ||
		!s.border.Contains(p.Y) {
		return fmt.Errorf(
			"%w: Y0 = %g must be in [%g, %g] and Theta0 must point forwards, "+
				"but is %g", ErrInvalidConditions,
			p.Y, -s.border.R1(), s.border.R1(), p.Theta,
		)
	}
	return nil
}

// FinalState computes the exit state of a particle entering at height y0 with
// angle theta0 and remembers the entry state for LastTrajectory.
func (s *Session) FinalState(y0, theta0 float64) (Particle, error) {
	p := Particle{0, y0, theta0}
	if err := s.checkEntry(p); err != nil {
		return Particle{}, err
	}
	s.particle, s.hasEntry = p, true

	t, err := ComputeTrajectory(p, s.border)
	if err != nil {
		return Particle{}, err
	}
	s.log.Printf("Final state of %s: %s", p, t.Final())
	return t.Final(), nil
}

// Trajectory computes the full trajectory of a particle entering at height y0
// with angle theta0.
func (s *Session) Trajectory(y0, theta0 float64) (*Trajectory, error) {
	if s.border == nil {
		return nil, ErrNoBorder
	}
	p := Particle{0, y0, theta0}
	t, err := ComputeTrajectory(p, s.border)
	if err != nil {
		return nil, err
	}
	s.log.Printf("Trajectory of %s: %d bounces", p, t.Bounces())
	return t, nil
}

// LastTrajectory computes the trajectory of the entry state last passed to
// FinalState.
func (s *Session) LastTrajectory() (*Trajectory, error) {
	if !s.hasEntry {
		return nil, ErrNoParticle
	}
	return s.Trajectory(s.particle.Y, s.particle.Theta)
}

// Generate runs a batch against the current border and adds its accepted
// trials to the session. The returned Result holds only the new batch.
func (s *Session) Generate(p Params) (*Result, error) {
	if s.border == nil {
		return nil, ErrNoBorder
	}
	p.Border = s.border

	res, err := Run(p)
	if err != nil {
		return nil, err
	}
	s.result.Merge(res)
	s.log.Printf(
		"Generated %d trials (seed %d): %d accepted, %d rejected",
		res.Trials(), res.Seed, res.Accepted, res.Rejected,
	)
	return res, nil
}

// Statistics returns the statistics of the accumulated exit heights and
// angles.
func (s *Session) Statistics() (y, theta stats.Statistics, err error) {
	if y, err = s.result.Y.Statistics(); err != nil {
		return y, theta, err
	}
	theta, err = s.result.Theta.Statistics()
	return y, theta, err
}

// Erase drops every accumulated trial.
func (s *Session) Erase() {
	s.result.Clear()
	s.log.Printf("Erased all values")
}

// Dump writes the accumulated exit states to w, one "Y Theta" line per
// accepted trial.
func (s *Session) Dump(w io.Writer) error {
	return bio.WriteResults(w, s.result.Y, s.result.Theta)
}
