package stats

// KahanSum is a compensated accumulator. The correction term C holds the
// low-order bits lost by the previous addition and is subtracted from the
// next one.
type KahanSum struct {
	Sum, C float64
}

// Add adds x to the running sum.
func (k *KahanSum) Add(x float64) {
	y := x - k.C
	t := k.Sum + y
	k.C = (t - k.Sum) - y
	k.Sum = t
}
