package orbit

import "math"

// ResolveEcc maps the two sampled values of an eccentricity parametrization
// to the canonical (eccentricity, argument of periastron) pair for the given
// context.
//
// Per parametrization:
//
//	Direct:      e = v1, ω = v2 (degrees as sampled)
//	CosSin:      e = √(v1² + v2²),  ω = atan2(v2, v1)
//	SqrtCosSin:  e = v1² + v2²,     ω = atan2(v2, v1)
//
// Angle-unit convention: ContextTransit yields ω in degrees, ContextRV in
// radians. Direct priors declare ω in degrees, so the RV context converts.
func ResolveEcc(param EccParametrization, v1, v2 float64, ctx Context) (ecc, omega float64) {
	switch param {
	case CosSin:
		ecc = math.Hypot(v1, v2)
		omega = math.Atan2(v2, v1)
		if ctx == ContextTransit {
			omega *= 180 / math.Pi
		}
	case SqrtCosSin:
		ecc = v1*v1 + v2*v2
		omega = math.Atan2(v2, v1)
		if ctx == ContextTransit {
			omega *= 180 / math.Pi
		}
	default: // Direct
		ecc = v1
		omega = v2
		if ctx == ContextRV {
			omega *= math.Pi / 180
		}
	}

	return ecc, omega
}
