package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/billiards/stats"
)

// WriteResults writes one "Y Theta" line per entry of ys and thetas, in order,
// with no header.
func WriteResults(w io.Writer, ys, thetas *stats.Sample) error {
	if ys.Size() != thetas.Size() {
		return fmt.Errorf(
			"Y sample has %d values, but Theta sample has %d",
			ys.Size(), thetas.Size(),
		)
	}

	bw := bufio.NewWriter(w)
	yVals, thetaVals := ys.Values(), thetas.Values()
	for i := range yVals {
		if _, err := fmt.Fprintf(bw, "%g %g\n", yVals[i], thetaVals[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteResultsFile writes ys and thetas to the file fname, replacing it if it
// already exists.
func WriteResultsFile(fname string, ys, thetas *stats.Sample) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	if err := WriteResults(f, ys, thetas); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadResults reads a file written by WriteResults.
func ReadResults(fname string) (ys, thetas *stats.Sample, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}
	return stats.NewSample(cols[0]...), stats.NewSample(cols[1]...), nil
}
