package gp

import (
	"errors"
	"strconv"
)

// Sentinel errors for configuration and numerical failures.
var (
	// ErrUnknownKernel indicates an unsupported kernel family.
	ErrUnknownKernel = errors.New("gp: unknown kernel family")

	// ErrUnsupported indicates a kernel/context combination with no defined
	// vector layout (SEKernel in the RV context).
	ErrUnsupported = errors.New("gp: kernel not supported in this context")

	// ErrBadVector indicates a parameter vector of the wrong length.
	ErrBadVector = errors.New("gp: parameter vector length does not match kernel layout")

	// ErrNotComputed indicates use of a GP before Compute.
	ErrNotComputed = errors.New("gp: covariates not computed")

	// ErrDimension indicates mismatched covariate/uncertainty/residual sizes.
	ErrDimension = errors.New("gp: dimension mismatch")

	// ErrUnboundRole indicates a kernel hyperparameter role with no bound
	// parameter in the registry.
	ErrUnboundRole = errors.New("gp: unbound hyperparameter role")

	// ErrNotPositiveDefinite indicates a covariance factorization failure.
	// Callers treat it as fatal: it signals a configuration or data problem,
	// not ordinary prior-space infeasibility.
	ErrNotPositiveDefinite = errors.New("gp: covariance matrix is not positive definite")
)

// ppm rescales photometric hyperparameters declared in parts-per-million.
const ppm = 1e-6

// Oracle is the correlated-noise surface the likelihood aggregator drives:
// covariate setup, per-evaluation hyperparameter updates, and Gaussian
// log-likelihood/prediction over residuals. Clone returns an independent
// copy for a parallel evaluation worker.
type Oracle interface {
	Compute(x [][]float64, yerr []float64) error
	SetParameterVector(v []float64) error
	LogLikelihood(resid []float64) (float64, error)
	Predict(resid []float64, xq [][]float64) (mean, variance []float64, err error)
	Clone() Oracle
}

// KernelKind enumerates the supported kernel families.
type KernelKind int

const (
	// SEKernel is the multi-dimensional squared-exponential kernel.
	SEKernel KernelKind = iota

	// ExpSineSquaredSEKernel is the exp-sine-squared × squared-exponential
	// quasi-periodic kernel.
	ExpSineSquaredSEKernel

	// CeleriteQPKernel is the celerite-style rotation (quasi-periodic)
	// kernel.
	CeleriteQPKernel
)

// String returns the canonical kernel tag.
func (k KernelKind) String() string {
	switch k {
	case SEKernel:
		return "SEKernel"
	case ExpSineSquaredSEKernel:
		return "ExpSineSquaredSEKernel"
	case CeleriteQPKernel:
		return "CeleriteQPKernel"
	default:
		return "unknown"
	}
}

// Context distinguishes the photometric and RV vector layouts: photometric
// kernels carry a jitter slot, RV kernels do not.
type Context int

const (
	// Photometric layout — jitter slot present, ppm scaling applied.
	Photometric Context = iota

	// RadialVelocity layout — jitter handled via inflated errors.
	RadialVelocity
)

// VectorLen returns the fixed parameter-vector length of a kernel in a
// context; nCov is the covariate dimensionality (SEKernel only).
func VectorLen(kind KernelKind, ctx Context, nCov int) (int, error) {
	switch kind {
	case SEKernel:
		if ctx == RadialVelocity {
			return 0, ErrUnsupported
		}

		return nCov + 2, nil
	case ExpSineSquaredSEKernel, CeleriteQPKernel:
		if ctx == Photometric {
			return 5, nil
		}

		return 4, nil
	default:
		return 0, ErrUnknownKernel
	}
}

// Roles returns the named hyperparameter roles of a kernel, in layout order
// (jitter excluded: it is sourced from the instrument's white-noise
// parameter, not from a GP_ prior).
func Roles(kind KernelKind, nCov int) ([]string, error) {
	switch kind {
	case SEKernel:
		roles := make([]string, 0, nCov+1)
		roles = append(roles, "sigma")
		for i := 0; i < nCov; i++ {
			roles = append(roles, "alpha"+strconv.Itoa(i))
		}

		return roles, nil
	case ExpSineSquaredSEKernel:
		return []string{"sigma", "alpha", "Gamma", "Prot"}, nil
	case CeleriteQPKernel:
		return []string{"B", "C", "L", "Prot"}, nil
	default:
		return nil, ErrUnknownKernel
	}
}
