// Package orbit defines the enumerations and configuration types shared by
// the geometry and eccentricity reparametrizations.
package orbit

import "errors"

// ErrBadBounds indicates a radius-ratio window violating 0 ≤ Pl < Pu ≤ 1.
var ErrBadBounds = errors.New("orbit: sampling bounds must satisfy 0 <= Pl < Pu <= 1")

// GravitationalConstant is Newton's constant in mks units, used by the
// stellar-density ↔ scaled-semi-major-axis conversions.
const GravitationalConstant = 6.67408e-11

// SecondsPerDay converts orbital periods, specified in days, to seconds.
const SecondsPerDay = 86400.0

// EccParametrization selects how a planet's (eccentricity, argument of
// periastron) pair is expressed in the sampled parameter space.
//
//   - Direct       — (e, ω) sampled directly, ω in degrees.
//   - CosSin       — (e·cosω, e·sinω).
//   - SqrtCosSin   — (√e·cosω, √e·sinω), uniform in e with full ω coverage.
type EccParametrization int

const (
	// Direct samples (e, ω) with ω in degrees.
	Direct EccParametrization = iota

	// CosSin samples (e·cosω, e·sinω).
	CosSin

	// SqrtCosSin samples (√e·cosω, √e·sinω).
	SqrtCosSin
)

// String returns the canonical tag for the parametrization.
func (p EccParametrization) String() string {
	switch p {
	case CosSin:
		return "ecosomega"
	case SqrtCosSin:
		return "secosomega"
	default:
		return "ecc"
	}
}

// Context distinguishes the two consumers of a resolved (e, ω) pair.
// Transit models expect ω in degrees, RV models in radians.
type Context int

const (
	// ContextTransit resolves ω in degrees.
	ContextTransit Context = iota

	// ContextRV resolves ω in radians.
	ContextRV
)

// SamplingBounds holds the radius-ratio window [Pl, Pu] of the efficient
// (b,p) sampling scheme. Construct via NewSamplingBounds, which validates
// the window once; conversions assume a valid window.
type SamplingBounds struct {
	Pl, Pu float64
}

// NewSamplingBounds validates and returns a radius-ratio window.
func NewSamplingBounds(pl, pu float64) (SamplingBounds, error) {
	if pl < 0 || pu > 1 || pl >= pu {
		return SamplingBounds{}, ErrBadBounds
	}

	return SamplingBounds{Pl: pl, Pu: pu}, nil
}

// Ar returns the area fraction (Pu-Pl)/(2+Pl+Pu) splitting the (r1,r2)
// square between the two branches of the bijection.
func (s SamplingBounds) Ar() float64 {
	return (s.Pu - s.Pl) / (2 + s.Pl + s.Pu)
}
