package mlmc

import "gonum.org/v1/gonum/stat"

// column copies component c of every output into dst and returns it.
// dst must have len(ys) capacity.
func column(dst []float64, ys []Output, c int) []float64 {
	dst = dst[:len(ys)]
	for i, y := range ys {
		dst[i] = y[c]
	}
	return dst
}

// sampleVariance returns the per-component unbiased (n-1) sample variance of
// the level contributions. len(ys) must be >= 2; callers gate on pilot size.
func sampleVariance(ys []Output) []float64 {
	dim := len(ys[0])
	out := make([]float64, dim)
	col := make([]float64, len(ys))
	for c := 0; c < dim; c++ {
		out[c] = stat.Variance(column(col, ys, c), nil)
	}
	return out
}
