package nested

import (
	"math"
	"math/rand"
)

// EqualWeighted resamples the weighted dead points into an equal-weight
// posterior sample set of the same size, using systematic resampling: a
// single uniform offset places one draw per 1/n stratum of the cumulative
// weight, which has lower variance than independent multinomial draws.
func (r *Result) EqualWeighted(seed int64) [][]float64 {
	n := len(r.Samples)
	if n == 0 {
		return nil
	}

	w := make([]float64, n)
	maxw := math.Inf(-1)
	for _, lw := range r.LogWt {
		if lw > maxw {
			maxw = lw
		}
	}
	total := 0.0
	for i, lw := range r.LogWt {
		w[i] = math.Exp(lw - maxw)
		total += w[i]
	}
	for i := range w {
		w[i] /= total
	}

	rng := rand.New(rand.NewSource(seed))
	u0 := rng.Float64() / float64(n)
	out := make([][]float64, n)
	j, cumw := 0, w[0]
	for i := 0; i < n; i++ {
		pos := u0 + float64(i)/float64(n)
		for pos > cumw && j < n-1 {
			j++
			cumw += w[j]
		}
		out[i] = append([]float64(nil), r.Samples[j]...)
	}

	return out
}
