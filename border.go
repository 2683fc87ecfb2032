package billiards

import (
	"fmt"
	"math"
)

// BorderKind selects how a Border answers collision queries.
type BorderKind int

const (
	// Straight borders have parallel walls, R1 == R2.
	Straight BorderKind = iota
	// Opened borders diverge, R2 > R1.
	Opened
	// Closed borders converge, R2 < R1.
	Closed
)

func (k BorderKind) String() string {
	switch k {
	case Straight:
		return "Straight"
	case Opened:
		return "Opened"
	case Closed:
		return "Closed"
	}
	panic(fmt.Sprintf("Unknown BorderKind %d", int(k)))
}

// BorderHit identifies the wall a heading will strike next.
type BorderHit int

const (
	None BorderHit = iota
	Top
	Bottom
)

func (h BorderHit) String() string {
	switch h {
	case None:
		return "None"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	panic(fmt.Sprintf("Unknown BorderHit %d", int(h)))
}

// Sign is +1 for the top wall, -1 for the bottom wall and 0 otherwise.
func (h BorderHit) Sign() float64 {
	switch h {
	case Top:
		return +1
	case Bottom:
		return -1
	}
	return 0
}

// Border is the pair of walls y = +/-(R1 + m x) for 0 <= x <= L, with
// m = (R2 - R1) / L. Borders are immutable.
type Border struct {
	r1, r2, l float64
	kind      BorderKind
	sigma     float64
}

// NewBorder creates the Border with half-height r1 at x = 0 and r2 at x = l.
func NewBorder(r1, r2, l float64) (*Border, error) {
	if !(r1 >= 0) || !(r2 >= 0) || !(l >= 0) {
		return nil, fmt.Errorf(
			"%w: R1 = %g, R2 = %g, L = %g must all be non-negative",
			ErrInvalidBorder, r1, r2, l,
		)
	}

	b := &Border{r1: r1, r2: r2, l: l}
	switch {
	case r1 == r2:
		b.kind = Straight
	case r2 > r1:
		b.kind = Opened
		b.sigma = math.Atan2(r2-r1, l)
	default:
		b.kind = Closed
		b.sigma = math.Atan2(r2-r1, l)
	}

	return b, nil
}

func (b *Border) R1() float64      { return b.r1 }
func (b *Border) R2() float64      { return b.r2 }
func (b *Border) L() float64       { return b.l }
func (b *Border) Kind() BorderKind { return b.kind }

// Slope is the slope of the top wall.
func (b *Border) Slope() float64 { return (b.r2 - b.r1) / b.l }

// Sigma is the angle between the top wall and the x-axis. It is negative for
// Closed borders.
func (b *Border) Sigma() float64 { return b.sigma }

// Contains returns true if y lies between the walls at the entry plane.
func (b *Border) Contains(y float64) bool { return y <= b.r1 && y >= -b.r1 }

// CheckCollision returns the wall that a particle with heading p.Theta will
// hit next. Only the Closed border at p.Theta == 0 looks at the position.
func (b *Border) CheckCollision(p Particle) BorderHit {
	switch b.kind {
	case Straight:
		if p.Theta > 0 {
			return Top
		} else if p.Theta < 0 {
			return Bottom
		}
		return None

	case Opened:
		if p.Theta > b.sigma {
			return Top
		} else if p.Theta < -b.sigma {
			return Bottom
		}
		return None

	case Closed:
		if p.Theta > 0 || (p.Theta == 0 && p.Y > 0) {
			return Top
		} else if p.Theta < 0 || (p.Theta == 0 && p.Y < 0) {
			return Bottom
		}
		return None
	}
	panic(fmt.Sprintf("Unknown BorderKind %d", int(b.kind)))
}

func (b *Border) String() string {
	return fmt.Sprintf("%s border: R1 = %g, R2 = %g, L = %g",
		b.kind, b.r1, b.r2, b.l)
}
