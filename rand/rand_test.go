package rand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalRejectsNegativeSigma(t *testing.T) {
	for _, sigma := range []float64{-1, -1e-12, math.NaN()} {
		_, err := NewNormal(0, sigma, NewSource(1, 1))
		assert.Error(t, err, "sigma = %g", sigma)
	}
}

func TestNormalZeroSigma(t *testing.T) {
	n, err := NewNormal(3.5, 0, NewSource(1, 2))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 3.5, n.Draw())
	}
}

func TestNormalMoments(t *testing.T) {
	n, err := NewNormal(2, 0.5, NewSource(42, 0))
	require.NoError(t, err)

	const draws = 200000
	sum, sum2 := 0.0, 0.0
	for i := 0; i < draws; i++ {
		x := n.Draw()
		sum += x
		sum2 += x * x
	}
	mean := sum / draws
	sigma := math.Sqrt(sum2/draws - mean*mean)

	assert.InDelta(t, 2, mean, 0.01)
	assert.InDelta(t, 0.5, sigma, 0.01)
}

func TestSourceReproducible(t *testing.T) {
	a, err := NewNormal(0, 1, NewSource(7, 3))
	require.NoError(t, err)
	b, err := NewNormal(0, 1, NewSource(7, 3))
	require.NoError(t, err)
	c, err := NewNormal(0, 1, NewSource(7, 4))
	require.NoError(t, err)

	same, differ := true, false
	for i := 0; i < 100; i++ {
		x, y, z := a.Draw(), b.Draw(), c.Draw()
		same = same && x == y
		differ = differ || x != z
	}
	assert.True(t, same, "same seed and stream")
	assert.True(t, differ, "different streams")
}

func TestNewSeed(t *testing.T) {
	s1, err := NewSeed()
	require.NoError(t, err)
	s2, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}
