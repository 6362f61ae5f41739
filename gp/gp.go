package gp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GP is the default Gaussian-process Oracle: a dense-covariance process
// over arbitrary covariates, factorized with Cholesky decomposition.
//
// Not safe for concurrent mutation; evaluation workers use Clone.
type GP struct {
	kind KernelKind
	ctx  Context
	nCov int

	// Immutable after Compute; shared between clones.
	x         [][]float64 // standardized covariates, one row per point
	mean, std []float64   // standardization applied (SEKernel only)
	yerr      []float64

	// Per-clone mutable state.
	vec   []float64
	chol  mat.Cholesky
	dirty bool
}

// New validates the kernel/context combination and returns an empty GP.
// nCov is the covariate dimensionality (1 for the time-series kernels).
func New(kind KernelKind, ctx Context, nCov int) (*GP, error) {
	if nCov < 1 {
		return nil, fmt.Errorf("%w: nCov must be at least 1", ErrDimension)
	}
	n, err := VectorLen(kind, ctx, nCov)
	if err != nil {
		return nil, err
	}

	return &GP{kind: kind, ctx: ctx, nCov: nCov, vec: make([]float64, n), dirty: true}, nil
}

// Kind returns the kernel family.
func (g *GP) Kind() KernelKind { return g.kind }

// Compute binds the covariate matrix (one row per observation) and the
// per-point measurement uncertainties. SEKernel covariates are standardized
// to zero mean and unit variance per column, matching the declared α scale.
func (g *GP) Compute(x [][]float64, yerr []float64) error {
	if len(x) == 0 || len(x) != len(yerr) {
		return fmt.Errorf("%w: %d covariate rows vs %d uncertainties", ErrDimension, len(x), len(yerr))
	}
	for _, row := range x {
		if len(row) != g.nCov {
			return fmt.Errorf("%w: covariate row has %d columns, want %d", ErrDimension, len(row), g.nCov)
		}
	}
	g.x = make([][]float64, len(x))
	for i, row := range x {
		g.x[i] = append([]float64(nil), row...)
	}
	g.mean, g.std = nil, nil
	if g.kind == SEKernel {
		g.mean, g.std = standardize(g.x)
	}
	g.yerr = append([]float64(nil), yerr...)
	g.dirty = true

	return nil
}

// SetParameterVector updates the hyperparameters in the kernel's fixed
// layout and invalidates the current factorization.
func (g *GP) SetParameterVector(v []float64) error {
	if len(v) != len(g.vec) {
		return fmt.Errorf("%w: got %d, want %d", ErrBadVector, len(v), len(g.vec))
	}
	copy(g.vec, v)
	g.dirty = true

	return nil
}

// LogLikelihood returns the GP marginal log-likelihood of the residuals,
// refactorizing the covariance if the hyperparameters changed.
func (g *GP) LogLikelihood(resid []float64) (float64, error) {
	if g.x == nil {
		return 0, ErrNotComputed
	}
	if len(resid) != len(g.x) {
		return 0, fmt.Errorf("%w: %d residuals vs %d points", ErrDimension, len(resid), len(g.x))
	}
	if err := g.factorize(); err != nil {
		return 0, err
	}
	n := len(resid)
	r := mat.NewVecDense(n, append([]float64(nil), resid...))
	var alpha mat.VecDense
	if err := g.chol.SolveVecTo(&alpha, r); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}

	return -0.5 * (mat.Dot(r, &alpha) + g.chol.LogDet() + float64(n)*math.Log(2*math.Pi)), nil
}

// Predict returns the conditional mean and variance of the process at the
// query covariates, given the residuals at the computed points. The
// variance is that of the latent process (no white-noise term).
func (g *GP) Predict(resid []float64, xq [][]float64) (mean, variance []float64, err error) {
	if g.x == nil {
		return nil, nil, ErrNotComputed
	}
	if len(resid) != len(g.x) {
		return nil, nil, fmt.Errorf("%w: %d residuals vs %d points", ErrDimension, len(resid), len(g.x))
	}
	if err = g.factorize(); err != nil {
		return nil, nil, err
	}

	q := make([][]float64, len(xq))
	for i, row := range xq {
		if len(row) != g.nCov {
			return nil, nil, fmt.Errorf("%w: query row has %d columns, want %d", ErrDimension, len(row), g.nCov)
		}
		q[i] = append([]float64(nil), row...)
		if g.kind == SEKernel {
			for d := range q[i] {
				q[i][d] = (q[i][d] - g.mean[d]) / g.std[d]
			}
		}
	}

	n := len(g.x)
	r := mat.NewVecDense(n, append([]float64(nil), resid...))
	var alpha mat.VecDense
	if err = g.chol.SolveVecTo(&alpha, r); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}

	mean = make([]float64, len(q))
	variance = make([]float64, len(q))
	ks := mat.NewVecDense(n, nil)
	var tmp mat.VecDense
	for j, xj := range q {
		for i, xi := range g.x {
			ks.SetVec(i, g.kval(xi, xj))
		}
		mean[j] = mat.Dot(ks, &alpha)
		if err = g.chol.SolveVecTo(&tmp, ks); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
		}
		variance[j] = g.kval(xj, xj) - mat.Dot(ks, &tmp)
	}

	return mean, variance, nil
}

// Clone returns a GP sharing the immutable covariates and uncertainties but
// owning its own hyperparameter vector and factorization scratch, so each
// sampler worker can mutate its copy independently.
func (g *GP) Clone() Oracle {
	return &GP{
		kind: g.kind, ctx: g.ctx, nCov: g.nCov,
		x: g.x, mean: g.mean, std: g.std, yerr: g.yerr,
		vec:   append([]float64(nil), g.vec...),
		dirty: true,
	}
}

var _ Oracle = (*GP)(nil)

// factorize rebuilds and factorizes the covariance when dirty.
func (g *GP) factorize() error {
	if !g.dirty {
		return nil
	}
	n := len(g.x)
	k := mat.NewSymDense(n, nil)
	jit := g.jitterVar()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := g.kval(g.x[i], g.x[j])
			if i == j {
				v += g.yerr[i]*g.yerr[i] + jit
			}
			k.SetSym(i, j, v)
		}
	}
	if ok := g.chol.Factorize(k); !ok {
		return ErrNotPositiveDefinite
	}
	g.dirty = false

	return nil
}

// jitterVar returns the white-noise variance encoded in the vector's jitter
// slot, or 0 for RV layouts where jitter is folded into yerr.
func (g *GP) jitterVar() float64 {
	if g.ctx != Photometric {
		return 0
	}
	switch g.kind {
	case CeleriteQPKernel:
		// Slot holds log(jitter), not log(jitter²).
		j := math.Exp(g.vec[4])

		return j * j
	default:
		return math.Exp(g.vec[0])
	}
}

// kval evaluates the kernel covariance between two covariate rows.
func (g *GP) kval(a, b []float64) float64 {
	switch g.kind {
	case SEKernel:
		s2 := math.Exp(g.vec[1])
		sum := 0.0
		for d := 0; d < g.nCov; d++ {
			diff := a[d] - b[d]
			sum += diff * diff / math.Exp(g.vec[2+d])
		}

		return s2 * math.Exp(-0.5*sum)
	case ExpSineSquaredSEKernel:
		off := 0
		if g.ctx == Photometric {
			off = 1
		}
		s2 := math.Exp(g.vec[off])
		metric := math.Exp(g.vec[off+1])
		gamma := g.vec[off+2]
		prot := math.Exp(g.vec[off+3])
		dt := a[0] - b[0]
		sin := math.Sin(math.Pi * dt / prot)

		return s2 * math.Exp(-0.5*dt*dt/metric) * math.Exp(-gamma*sin*sin)
	case CeleriteQPKernel:
		amp := math.Exp(g.vec[0])
		ell := math.Exp(g.vec[1])
		prot := math.Exp(g.vec[2])
		c := math.Exp(g.vec[3])
		tau := math.Abs(a[0] - b[0])

		return amp / (2 + c) * math.Exp(-tau/ell) * (math.Cos(2*math.Pi*tau/prot) + 1 + c)
	default:
		return 0
	}
}

// standardize rescales each covariate column to zero mean, unit variance in
// place and returns the applied means and standard deviations.
func standardize(x [][]float64) (mean, std []float64) {
	d := len(x[0])
	n := float64(len(x))
	mean = make([]float64, d)
	std = make([]float64, d)
	for c := 0; c < d; c++ {
		sum := 0.0
		for _, row := range x {
			sum += row[c]
		}
		mean[c] = sum / n
		varSum := 0.0
		for _, row := range x {
			diff := row[c] - mean[c]
			varSum += diff * diff
		}
		std[c] = math.Sqrt(varSum / n)
		if std[c] == 0 {
			std[c] = 1
		}
		for _, row := range x {
			row[c] = (row[c] - mean[c]) / std[c]
		}
	}

	return mean, std
}
