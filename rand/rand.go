// Package rand provides the seeded random streams and the Gaussian sampler
// used to draw entry conditions.
package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSeed returns a seed read from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG source. Different stream values with the same seed
// give independent sequences.
func NewSource(seed, stream uint64) mrand.Source {
	return mrand.NewPCG(seed, stream)
}

// Normal draws values from a Gaussian with mean Mu and standard deviation
// Sigma.
type Normal struct {
	Mu, Sigma float64
	dist      distuv.Normal
}

// NewNormal returns a Normal sampler drawing from src. Sigma must be
// non-negative; a zero Sigma always returns mu.
func NewNormal(mu, sigma float64, src mrand.Source) (*Normal, error) {
	if !(sigma >= 0) {
		return nil, fmt.Errorf(
			"Standard deviation of a normal distribution must be "+
				"non-negative, but is %g", sigma,
		)
	}
	return &Normal{
		Mu: mu, Sigma: sigma,
		dist: distuv.Normal{Mu: mu, Sigma: sigma, Src: src},
	}, nil
}

// Draw returns the next value.
func (n *Normal) Draw() float64 {
	if n.Sigma == 0 {
		return n.Mu
	}
	return n.dist.Rand()
}
