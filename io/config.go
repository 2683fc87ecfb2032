package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleBatchFile = `[Border]

#######################
# Required Parameters #
#######################

# Half-height of the channel at the entrance (x = 0) and at the exit (x = L),
# and the length of the channel. All three must be non-negative. R1 == R2
# gives parallel walls, R2 > R1 diverging walls and R2 < R1 converging walls.
R1 = 20
R2 = 15
L  = 50

[Generate]

#######################
# Required Parameters #
#######################

# Number of particles to shoot into the channel.
N = 10000

# Entry heights and angles are drawn from Gaussians with these means and
# standard deviations. Angles are in radians, measured from the x-axis.
# Negative standard deviations are treated as their absolute values.
Y0Mean = 5
Y0Err = 0.01
Theta0Mean = 0.785
Theta0Err = 0.001

#######################
# Optional Parameters #
#######################

# Seed for the random number generator. 0 (the default) picks a new seed on
# every run. The seed that was used is written to the log.
# Seed = 1234

# Number of goroutines used to run the trials. Default is 1.
# Workers = 4

[Output]

#######################
# Optional Parameters #
#######################

# Two-column text file holding the exit Y and exit Theta of every accepted
# particle. Default is results.txt.
# Results = results.txt

# If set, histograms of the exit Y and exit Theta are saved to this
# directory as hist_y.png and hist_theta.png. Requires python + matplotlib.
# PlotDir = plots

# Number of histogram bins. Default is 50.
# Bins = 50

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

type BorderConfig struct {
	// Required
	R1, R2, L float64
}

func (con *BorderConfig) ValidR1() bool { return con.R1 >= 0 }
func (con *BorderConfig) ValidR2() bool { return con.R2 >= 0 }
func (con *BorderConfig) ValidL() bool  { return con.L >= 0 }

type GenerateConfig struct {
	// Required
	N                     int
	Y0Mean, Y0Err         float64
	Theta0Mean, Theta0Err float64

	// Optional
	Seed    int64
	Workers int
}

func (con *GenerateConfig) ValidN() bool       { return con.N > 0 }
func (con *GenerateConfig) ValidSeed() bool    { return con.Seed >= 0 }
func (con *GenerateConfig) ValidWorkers() bool { return con.Workers > 0 }

type OutputConfig struct {
	// Optional
	Results, PlotDir     string
	LogFile, ProfileFile string
	Bins                 int
}

func (con *OutputConfig) ValidResults() bool { return con.Results != "" }
func (con *OutputConfig) ValidPlotDir() bool { return con.PlotDir != "" }
func (con *OutputConfig) ValidLogFile() bool { return con.LogFile != "" }
func (con *OutputConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}
func (con *OutputConfig) ValidBins() bool { return con.Bins > 0 }

type BatchWrapper struct {
	Border   BorderConfig
	Generate GenerateConfig
	Output   OutputConfig
}

// DefaultBatchWrapper returns a wrapper whose required values are marked as
// unset.
func DefaultBatchWrapper() *BatchWrapper {
	return &BatchWrapper{
		Border:   BorderConfig{R1: -1, R2: -1, L: -1},
		Generate: GenerateConfig{N: -1, Workers: 1},
		Output:   OutputConfig{Results: "results.txt", Bins: 50},
	}
}

// CheckInit returns an error describing the first invalid value.
func (wrap *BatchWrapper) CheckInit() error {
	b, g, o := &wrap.Border, &wrap.Generate, &wrap.Output

	if !b.ValidR1() {
		return fmt.Errorf("Invalid/non-existent 'R1' value, %g.", b.R1)
	} else if !b.ValidR2() {
		return fmt.Errorf("Invalid/non-existent 'R2' value, %g.", b.R2)
	} else if !b.ValidL() {
		return fmt.Errorf("Invalid/non-existent 'L' value, %g.", b.L)
	}

	if !g.ValidN() {
		return fmt.Errorf("Invalid/non-existent 'N' value, %d.", g.N)
	} else if !g.ValidSeed() {
		return fmt.Errorf("'Seed' must be non-negative, but is %d.", g.Seed)
	} else if !g.ValidWorkers() {
		return fmt.Errorf("'Workers' must be positive, but is %d.", g.Workers)
	}

	if !o.ValidResults() {
		return fmt.Errorf("'Results' must not be empty.")
	} else if !o.ValidBins() {
		return fmt.Errorf("'Bins' must be positive, but is %d.", o.Bins)
	}

	return nil
}

// ReadBatchConfig reads and validates a batch configuration file.
func ReadBatchConfig(fname string) (*BatchWrapper, error) {
	wrap := DefaultBatchWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return wrap, nil
}

// ParseBatchConfig is ReadBatchConfig for a configuration held in a string.
func ParseBatchConfig(str string) (*BatchWrapper, error) {
	wrap := DefaultBatchWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}
