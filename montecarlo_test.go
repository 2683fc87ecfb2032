package billiards

import (
	"context"
	"errors"
	"math"
	mrand "math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/billiards/stats"
)

func checkCounts(t *testing.T, res *Result, n int) {
	t.Helper()
	assert.Equal(t, n, res.Accepted+res.Rejected, "accepted + rejected")
	assert.Equal(t, res.Accepted, res.Y.Size(), "Y sample size")
	assert.Equal(t, res.Accepted, res.Theta.Size(), "Theta sample size")
}

func TestRun(t *testing.T) {
	b := mustBorder(t, 20, 15, 50)
	res, err := Run(Params{
		N: 10000, Y0Mean: 5, Y0Err: 0.01, Theta0Mean: 0.785, Theta0Err: 0.001,
		Border: b, Seed: 11,
	})
	require.NoError(t, err)
	checkCounts(t, res, 10000)
	assert.Greater(t, res.Accepted, 0)
	assert.Equal(t, uint64(11), res.Seed)

	for i, x := range res.Y.Values() {
		if x < -b.R2()-1e-9 || x > b.R2()+1e-9 {
			t.Errorf("%d) Exit height %g outside of the exit plane", i+1, x)
		}
	}

	st, err := res.Y.Statistics()
	require.NoError(t, err)
	assert.Less(t, st.Sigma, 1.0)
}

func TestRunBackwards(t *testing.T) {
	b := mustBorder(t, 20, 2, 20)
	res, err := Run(Params{
		N: 10000, Y0Mean: 18, Y0Err: 0.01, Theta0Mean: 0, Theta0Err: 0.001,
		Border: b, Seed: 5,
	})
	require.NoError(t, err)
	checkCounts(t, res, 10000)
	assert.Greater(t, res.Rejected, 0)
}

func TestRunOutsideTable(t *testing.T) {
	b := mustBorder(t, 20, 15, 50)
	res, err := Run(Params{N: 100, Y0Mean: 25, Border: b, Seed: 1})
	require.NoError(t, err)
	checkCounts(t, res, 100)
	assert.Equal(t, 100, res.Rejected)
}

func TestRunNonFiniteAngle(t *testing.T) {
	b := mustBorder(t, 20, 15, 50)
	for i, theta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res, err := Run(Params{
			N: 20, Y0Mean: 5, Theta0Mean: theta, Theta0Err: 0.1,
			Border: b, Seed: 4,
		})
		require.NoError(t, err)
		checkCounts(t, res, 20)
		if res.Rejected != 20 {
			t.Errorf("%d) Expected every trial at theta = %g to be rejected, "+
				"got %d accepted", i+1, theta, res.Accepted)
		}
	}
}

func TestRunZeroErrors(t *testing.T) {
	b := mustBorder(t, 20, 15, 50)
	res, err := Run(Params{
		N: 50, Y0Mean: 5, Theta0Mean: .7853982, Border: b, Seed: 2,
	})
	require.NoError(t, err)
	checkCounts(t, res, 50)
	require.Equal(t, 50, res.Accepted)

	fs := SimulateFinalState(Particle{0, 5, .7853982}, b)
	require.True(t, fs.Valid)
	for i := range res.Y.Values() {
		assert.Equal(t, fs.Y, res.Y.Values()[i])
		assert.Equal(t, fs.Theta, res.Theta.Values()[i])
	}

	st, err := res.Y.Statistics()
	require.NoError(t, err)
	assert.Equal(t, stats.Statistics{Mean: fs.Y}, st, "identical trials")
}

type recordingNormal struct {
	mu float64
}

func (n recordingNormal) Draw() float64 { return n.mu }

func TestRunNegativeErrors(t *testing.T) {
	var mu sync.Mutex
	sigmas := []float64{}

	defer func(f func(float64, float64, mrand.Source) (sampler, error)) {
		newNormal = f
	}(newNormal)
	newNormal = func(m, sigma float64, _ mrand.Source) (sampler, error) {
		mu.Lock()
		sigmas = append(sigmas, sigma)
		mu.Unlock()
		return recordingNormal{m}, nil
	}

	b := mustBorder(t, 20, 2, 20)
	res, err := Run(Params{
		N: 1000, Y0Mean: 18, Y0Err: -0.01, Theta0Mean: 0, Theta0Err: -0.001,
		Border: b, Seed: 9, Workers: 3,
	})
	require.NoError(t, err)
	checkCounts(t, res, 1000)

	require.Len(t, sigmas, 6, "two samplers per worker")
	for _, sigma := range sigmas {
		assert.True(t, sigma == 0.01 || sigma == 0.001,
			"sigma = %g passed to the sampler", sigma)
	}
}

func TestRunParallel(t *testing.T) {
	b := mustBorder(t, 15, 20, 50)
	p := Params{
		N: 5003, Y0Mean: 0, Y0Err: 5, Theta0Mean: 0.2, Theta0Err: 0.3,
		Border: b, Seed: 77, Workers: 4,
	}

	res1, err := Run(p)
	require.NoError(t, err)
	checkCounts(t, res1, p.N)

	res2, err := Run(p)
	require.NoError(t, err)
	assert.Equal(t, res1.Y.Values(), res2.Y.Values(), "same seed, same trials")
	assert.Equal(t, res1.Theta.Values(), res2.Theta.Values())

	p.Workers = 10000
	res3, err := Run(p)
	require.NoError(t, err)
	checkCounts(t, res3, p.N)
}

func TestRunInvalidParams(t *testing.T) {
	b := mustBorder(t, 20, 15, 50)

	_, err := Run(Params{N: 0, Border: b})
	assert.True(t, errors.Is(err, ErrBadTrialCount), "got %v", err)
	_, err = Run(Params{N: -3, Border: b})
	assert.True(t, errors.Is(err, ErrBadTrialCount), "got %v", err)
	_, err = Run(Params{N: 10})
	assert.True(t, errors.Is(err, ErrInvalidBorder), "got %v", err)
}

func TestRunCancelled(t *testing.T) {
	b := mustBorder(t, 20, 15, 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := RunContext(ctx, Params{N: 100, Border: b, Seed: 1, Workers: workers})
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	}
}

func TestRunTrialRecovers(t *testing.T) {
	broken := &Border{r1: 20, r2: 15, l: 50, kind: BorderKind(7)}
	_, ok := runTrial(Particle{0, 0, 0.1}, broken)
	assert.False(t, ok)
}

func TestResultMergeClear(t *testing.T) {
	a, b := NewResult(), NewResult()
	a.Y.Append(1)
	a.Theta.Append(0.1)
	a.Accepted, a.Rejected = 1, 2
	b.Y.Append(2, 3)
	b.Theta.Append(0.2, 0.3)
	b.Accepted, b.Rejected = 2, 0

	a.Merge(b)
	assert.Equal(t, []float64{1, 2, 3}, a.Y.Values())
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, a.Theta.Values())
	assert.Equal(t, 5, a.Trials())

	a.Clear()
	assert.Equal(t, 0, a.Trials())
	assert.Equal(t, 0, a.Y.Size())
}

func BenchmarkRun(b *testing.B) {
	border, _ := NewBorder(20, 15, 50)
	p := Params{
		N: 1000, Y0Mean: 5, Y0Err: 1, Theta0Mean: 0.785, Theta0Err: 0.1,
		Border: border, Seed: 1,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Run(p)
	}
}
