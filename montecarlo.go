package billiards

import (
	"context"
	"fmt"
	"math"
	mrand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/phil-mansfield/billiards/rand"
	"github.com/phil-mansfield/billiards/stats"
)

// cancelCheckInterval is the number of trials between context checks.
const cancelCheckInterval = 1 << 10

// Params describes a batch of trajectories with Gaussian entry conditions.
type Params struct {
	// N is the number of trials.
	N int
	// Y0Mean, Y0Err, Theta0Mean and Theta0Err are the means and standard
	// deviations of the entry height and angle. Negative errors are treated
	// as their absolute values.
	Y0Mean, Y0Err         float64
	Theta0Mean, Theta0Err float64

	Border *Border

	// Seed initializes the random streams. Zero means a seed is read from
	// crypto/rand.
	Seed uint64
	// Workers is the number of goroutines running trials. Values below two
	// run every trial on the calling goroutine.
	Workers int
}

// Result holds the exit heights and angles of every accepted trial, in
// acceptance order.
type Result struct {
	Y, Theta           *stats.Sample
	Accepted, Rejected int
	// Seed is the seed that was actually used.
	Seed uint64
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{Y: stats.NewSample(), Theta: stats.NewSample()}
}

// Merge appends the trials of other to r.
func (r *Result) Merge(other *Result) {
	r.Y.Merge(other.Y)
	r.Theta.Merge(other.Theta)
	r.Accepted += other.Accepted
	r.Rejected += other.Rejected
}

// Clear removes every trial from r.
func (r *Result) Clear() {
	r.Y.Clear()
	r.Theta.Clear()
	r.Accepted, r.Rejected = 0, 0
}

// Trials returns the number of trials recorded in r.
func (r *Result) Trials() int { return r.Accepted + r.Rejected }

// sampler draws one value per call. newNormal can be replaced in tests.
type sampler interface {
	Draw() float64
}

var newNormal = func(mu, sigma float64, src mrand.Source) (sampler, error) {
	return rand.NewNormal(mu, sigma, src)
}

// Run runs p.N trials. See RunContext.
func Run(p Params) (*Result, error) {
	return RunContext(context.Background(), p)
}

// RunContext draws p.N entry states, computes the trajectory of each and
// records the exit states of the ones which succeed. Entry states outside the
// table and trajectories which fail are counted as rejected; they never stop
// the batch. Only an invalid Params or a cancelled ctx returns an error.
func RunContext(ctx context.Context, p Params) (*Result, error) {
	if p.N <= 0 {
		return nil, fmt.Errorf("%w: N = %d", ErrBadTrialCount, p.N)
	} else if p.Border == nil {
		return nil, fmt.Errorf("%w: no border given", ErrInvalidBorder)
	}

	p.Y0Err, p.Theta0Err = math.Abs(p.Y0Err), math.Abs(p.Theta0Err)

	if p.Seed == 0 {
		seed, err := rand.NewSeed()
		if err != nil {
			return nil, err
		}
		p.Seed = seed
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	} else if workers > p.N {
		workers = p.N
	}

	results := make([]*Result, workers)
	if workers == 1 {
		res, err := runTrials(ctx, &p, p.N, 0)
		if err != nil {
			return nil, err
		}
		results[0] = res
	} else {
		g, gctx := errgroup.WithContext(ctx)
		per, rem := p.N/workers, p.N%workers
		for i := 0; i < workers; i++ {
			n := per
			if i < rem {
				n++
			}
			g.Go(func() error {
				res, err := runTrials(gctx, &p, n, uint64(i))
				results[i] = res
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := NewResult()
	out.Seed = p.Seed
	for _, res := range results {
		out.Merge(res)
	}
	return out, nil
}

// runTrials runs n trials using the random stream with the given index.
func runTrials(
	ctx context.Context, p *Params, n int, stream uint64,
) (*Result, error) {
	src := rand.NewSource(p.Seed, stream)
	yDist, err := newNormal(p.Y0Mean, p.Y0Err, src)
	if err != nil {
		return nil, err
	}
	thetaDist, err := newNormal(p.Theta0Mean, p.Theta0Err, src)
	if err != nil {
		return nil, err
	}

	res := NewResult()
	for i := 0; i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		entry := Particle{0, yDist.Draw(), thetaDist.Draw()}
		if !p.Border.Contains(entry.Y) {
			res.Rejected++
			continue
		}

		end, ok := runTrial(entry, p.Border)
		if !ok {
			res.Rejected++
			continue
		}

		res.Y.Append(end.Y)
		res.Theta.Append(end.Theta)
		res.Accepted++
	}

	return res, nil
}

// runTrial isolates a single trajectory: errors and panics both count as a
// failed trial.
func runTrial(entry Particle, b *Border) (end Particle, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	fs := SimulateFinalState(entry, b)
	if !fs.Valid {
		return Particle{}, false
	}
	return fs.Particle(), true
}
