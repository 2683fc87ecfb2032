package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/phil-mansfield/billiards"
	bio "github.com/phil-mansfield/billiards/io"
	"github.com/phil-mansfield/billiards/plot"
	"github.com/phil-mansfield/billiards/stats"
)

const shellHelp = `Valid commands:
- add borders [b R1 R2 L]
- calculate final conditions [f Y0 Theta0]
- compute the trajectory [v (Y0) (Theta0)]
- generate data [g N Y0_mean Y0_err Theta0_mean Theta0_err]
- erase all values [e]
- print data [o]
- quit [q]`

var errQuit = errors.New("quit")

// shell runs text commands against a Session.
type shell struct {
	s   *billiards.Session
	out io.Writer

	// results is the file written by 'o'.
	results string
	// plotDir is where 'v' and 'g' save figures. Empty disables plotting.
	plotDir string
	bins    int
	seed    uint64
	workers int

	plots int
}

// Run reads commands from in until 'q' or the end of the input. Command
// errors are printed and do not stop the loop.
func (sh *shell) Run(in io.Reader) error {
	fmt.Fprintln(sh.out, shellHelp)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		err := sh.exec(tokens[0], tokens[1:])
		if err == errQuit {
			return nil
		} else if err != nil {
			fmt.Fprintf(sh.out, "Error: %s\n", err.Error())
		}
	}
	return scanner.Err()
}

func (sh *shell) exec(cmd string, args []string) error {
	switch cmd {
	case "b":
		vals, err := parseFloats(args, 3, 3)
		if err != nil {
			return err
		}
		b, err := sh.s.SetBorder(vals[0], vals[1], vals[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "%s\n", b)

	case "f":
		vals, err := parseFloats(args, 2, 2)
		if err != nil {
			return err
		}
		end, err := sh.s.FinalState(vals[0], vals[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "- Final X: %g\n- Final Y: %g\n- Final Theta: %g\n",
			end.X, end.Y, end.Theta)

	case "v":
		vals, err := parseFloats(args, 0, 2)
		if err != nil {
			return err
		} else if len(vals) == 1 {
			return fmt.Errorf("'v' takes either no arguments or Y0 and Theta0")
		}

		var traj *billiards.Trajectory
		if len(vals) == 2 {
			traj, err = sh.s.Trajectory(vals[0], vals[1])
		} else {
			traj, err = sh.s.LastTrajectory()
		}
		if err != nil {
			return err
		}
		for i, p := range traj.Positions() {
			fmt.Fprintf(sh.out, "%3d  %s\n", i, p)
		}
		if sh.plotDir != "" {
			fname := path.Join(sh.plotDir, fmt.Sprintf("trajectory_%d.png", sh.plots))
			plot.Trajectory(traj, sh.s.Border(), fname)
			sh.plots++
		}

	case "g":
		vals, err := parseFloats(args, 5, 5)
		if err != nil {
			return err
		}
		n := int(vals[0])
		if float64(n) != vals[0] {
			return fmt.Errorf("N must be an integer, but is %s", args[0])
		}

		res, err := sh.s.Generate(billiards.Params{
			N: n, Y0Mean: vals[1], Y0Err: vals[2],
			Theta0Mean: vals[3], Theta0Err: vals[4],
			Seed: sh.seed, Workers: sh.workers,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Accepted: %d\nRejected: %d\n",
			res.Accepted, res.Rejected)

		return sh.printStatistics()

	case "e":
		sh.s.Erase()

	case "o":
		total := sh.s.Result()
		if err := bio.WriteResultsFile(sh.results, total.Y, total.Theta); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Output file %s written successfully.\n", sh.results)

	case "q":
		return errQuit

	default:
		fmt.Fprintln(sh.out, "Command not found, insert new command:")
	}

	return nil
}

func (sh *shell) printStatistics() error {
	yStats, thetaStats, err := sh.s.Statistics()
	if errors.Is(err, stats.ErrNotEnoughPoints) {
		return fmt.Errorf(
			"Not enough particles reach final conditions to run statistics: %w",
			err,
		)
	} else if err != nil {
		return err
	}

	printStats(sh.out, yStats, "Y")
	printStats(sh.out, thetaStats, "Theta")

	if sh.plotDir != "" {
		total := sh.s.Result()
		if err := histograms(total, yStats, thetaStats, sh.bins, sh.plotDir); err != nil {
			return err
		}
		sh.plots++
	}
	return nil
}

// Plotted returns true if any figure has been queued.
func (sh *shell) Plotted() bool { return sh.plots > 0 }

func printStats(out io.Writer, st stats.Statistics, name string) {
	fmt.Fprintf(out,
		"Final %s :\n - Mean : %g\n - Sigma : %g\n - Skewness : %g\n"+
			" - Kurtosis : %g\n",
		name, st.Mean, st.Sigma, st.Skewness, st.Kurtosis,
	)
}

// histograms queues the exit Y and exit Theta histograms of res.
func histograms(
	res *billiards.Result, yStats, thetaStats stats.Statistics,
	bins int, dir string,
) error {
	info := stats.HistInfo{Bins: bins}
	yHist, err := stats.NewHistogram(info, res.Y)
	if err != nil {
		return err
	}
	thetaHist, err := stats.NewHistogram(info, res.Theta)
	if err != nil {
		return err
	}

	plot.Histogram(yHist, yStats, "Y", path.Join(dir, "hist_y.png"))
	plot.Histogram(thetaHist, thetaStats, "Theta", path.Join(dir, "hist_theta.png"))
	return nil
}

// parseFloats parses between min and max arguments.
func parseFloats(args []string, min, max int) ([]float64, error) {
	if len(args) < min || len(args) > max {
		if min == max {
			return nil, fmt.Errorf("Expected %d arguments, got %d", min, len(args))
		}
		return nil, fmt.Errorf(
			"Expected between %d and %d arguments, got %d", min, max, len(args),
		)
	}

	vals := make([]float64, len(args))
	for i := range args {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("Could not parse argument %d, '%s'",
				i+1, args[i])
		}
		vals[i] = x
	}
	return vals, nil
}
