// Package plot queues matplotlib figures of trajectories and exit
// distributions. Nothing is drawn until the executable calls plt.Execute().
package plot

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/billiards"
	"github.com/phil-mansfield/billiards/stats"
)

var (
	topColor    = "Goldenrod"
	bottomColor = "FireBrick"
	pathColor   = "DarkSlateBlue"
	axisColor   = "DimGray"
)

// Trajectory queues a figure of the table walls and the path of t, saved to
// fname.
func Trajectory(t *billiards.Trajectory, b *billiards.Border, fname string) {
	wallXs, topYs, bottomYs := wallLines(b)
	xs, ys := pathLine(t)
	r := tableHeight(b)

	plt.Figure(plt.FigSize(10, 6))
	plt.Plot(wallXs, topYs, plt.C(topColor), plt.LW(2))
	plt.Plot(wallXs, bottomYs, plt.C(bottomColor), plt.LW(2))
	plt.Plot(wallXs, []float64{0, 0}, "--", plt.C(axisColor))
	plt.Plot([]float64{b.L(), b.L()}, []float64{-r, r}, ":", plt.C(axisColor))
	plt.Plot(xs, ys, "-o", plt.C(pathColor), plt.LW(1))

	end := t.Final()
	plt.Title(fmt.Sprintf(
		`%s border, %d bounces: $Y_f$ = %.4g, $\theta_f$ = %.4g`,
		b.Kind(), t.Bounces(), end.Y, end.Theta,
	))
	plt.XLabel(`$X$`, plt.FontSize(16))
	plt.YLabel(`$Y$`, plt.FontSize(16))
	plt.XLim(0, b.L())
	plt.YLim(-r, r)
	plt.SaveFig(fname)
}

// Histogram queues a step plot of h, labeled with the variable name and the
// statistics of the sample it was built from.
func Histogram(
	h *stats.Histogram, st stats.Statistics, name, fname string,
) {
	xs, ys := stepLine(h)

	plt.Figure()
	plt.Plot(xs, ys, "k", plt.LW(2))
	plt.Title(fmt.Sprintf(
		`Final %s: $\mu$ = %.4g, $\sigma$ = %.4g, skew = %.3g, kurt = %.3g`,
		name, st.Mean, st.Sigma, st.Skewness, st.Kurtosis,
	))
	plt.XLabel(name, plt.FontSize(16))
	plt.YLabel("Density", plt.FontSize(16))
	plt.XLim(h.Min, h.Max)
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
}

// wallLines returns the end points of the two walls.
func wallLines(b *billiards.Border) (xs, topYs, bottomYs []float64) {
	return []float64{0, b.L()},
		[]float64{b.R1(), b.R2()},
		[]float64{-b.R1(), -b.R2()}
}

// tableHeight returns a y limit with some margin above the widest wall.
func tableHeight(b *billiards.Border) float64 {
	r := b.R1()
	if b.R2() > r {
		r = b.R2()
	}
	if r == 0 {
		return 1
	}
	return 1.1 * r
}

func pathLine(t *billiards.Trajectory) (xs, ys []float64) {
	ps := t.Positions()
	xs, ys = make([]float64, len(ps)), make([]float64, len(ps))
	for i, p := range ps {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// stepLine returns the outline of the normalized histogram.
func stepLine(h *stats.Histogram) (xs, ys []float64) {
	density := h.Density()
	dx := (h.Max - h.Min) / float64(h.Bins)

	xs = make([]float64, 0, 2*h.Bins+2)
	ys = make([]float64, 0, 2*h.Bins+2)
	xs, ys = append(xs, h.Min), append(ys, 0)
	for i, d := range density {
		lo := h.Min + dx*float64(i)
		xs, ys = append(xs, lo, lo+dx), append(ys, d, d)
	}
	xs, ys = append(xs, h.Max), append(ys, 0)
	return xs, ys
}
