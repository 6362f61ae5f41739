package transit

import "errors"

// ErrUnknownLDLaw indicates an unsupported limb-darkening law tag.
var ErrUnknownLDLaw = errors.New("transit: unknown limb-darkening law")

// LDLaw enumerates the supported limb-darkening laws.
type LDLaw int

const (
	// Linear uses one coefficient: I(μ) = 1 - u1(1-μ).
	Linear LDLaw = iota

	// Quadratic uses I(μ) = 1 - u1(1-μ) - u2(1-μ)².
	Quadratic

	// SquareRoot uses I(μ) = 1 - u1(1-μ) - u2(1-√μ).
	SquareRoot

	// Logarithmic uses I(μ) = 1 - u1(1-μ) - u2·μ·ln(μ).
	Logarithmic
)

// String returns the configuration tag of the law.
func (l LDLaw) String() string {
	switch l {
	case Quadratic:
		return "quadratic"
	case SquareRoot:
		return "squareroot"
	case Logarithmic:
		return "logarithmic"
	default:
		return "linear"
	}
}

// LDLawFromString parses a limb-darkening law tag.
func LDLawFromString(s string) (LDLaw, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "quadratic":
		return Quadratic, nil
	case "squareroot":
		return SquareRoot, nil
	case "logarithmic":
		return Logarithmic, nil
	default:
		return 0, ErrUnknownLDLaw
	}
}

// Supersampling averages the model over a finite exposure time with N
// uniformly spaced sub-samples. The zero value disables supersampling.
type Supersampling struct {
	N       int
	ExpTime float64 // days
}

// Enabled reports whether s describes a real supersampling request.
func (s Supersampling) Enabled() bool { return s.N > 1 && s.ExpTime > 0 }

// Params is the full per-planet parametrization of one transit curve.
// Angles are in degrees, times and the period in days, and p, a are in
// stellar radii units.
type Params struct {
	T0       float64 // time of inferior conjunction
	Period   float64
	P        float64 // radius ratio Rp/R*
	A        float64 // scaled semi-major axis a/R*
	IncDeg   float64
	Ecc      float64
	OmegaDeg float64
	Law      LDLaw
	U1, U2   float64
	Super    Supersampling
}

// Oracle produces a normalized transit light curve (baseline 1) aligned to
// the time grid t. Implementations must be safe for concurrent use: the
// likelihood aggregator may evaluate many parameter vectors in parallel.
type Oracle interface {
	LightCurve(p Params, t []float64) []float64
}
