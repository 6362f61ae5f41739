package prior

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TransformOne maps a single unit-cube coordinate u ∈ [0,1] to the physical
// value of parameter p. It is monotone non-decreasing in u for every kind.
// The registry has already rejected unsupported kinds, so the switch is
// exhaustive; Fixed parameters never reach the transform.
func TransformOne(p Parameter, u float64) float64 {
	switch p.Kind {
	case Uniform:
		return p.A + u*(p.B-p.A)
	case Normal:
		return distuv.Normal{Mu: p.A, Sigma: p.B}.Quantile(u)
	case LogUniform:
		la := math.Log(p.A)

		return math.Exp(la + u*(math.Log(p.B)-la))
	case Beta:
		return distuv.Beta{Alpha: p.A, Beta: p.B}.Quantile(u)
	case Exponential:
		return -p.A * math.Log(1-u)
	default:
		return p.A
	}
}

// Transform maps a full unit-cube vector to the physical parameter vector in
// registry free order. The input is not modified; a fresh output slice is
// returned so concurrent sampler workers never alias scratch space.
func (r *Registry) Transform(u []float64) ([]float64, error) {
	if len(u) != len(r.freeNames) {
		return nil, ErrLengthMismatch
	}
	x := make([]float64, len(u))
	for i, name := range r.freeNames {
		x[i] = TransformOne(r.params[r.byName[name]], u[i])
	}

	return x, nil
}
