package orbit

import "math"

// BPFromR maps a point of the unit square (r1,r2) to an (impact parameter,
// radius ratio) pair under the efficient sampling scheme with window s.
//
// The square splits at Ar = (Pu-Pl)/(2+Pl+Pu):
//
//	r1 > Ar:  b = (1+Pl)·(1 + (r1-1)/(1-Ar))
//	          p = (1-r2)·Pl + r2·Pu
//	r1 ≤ Ar:  b = (1+Pl) + √(r1/Ar)·r2·(Pu-Pl)
//	          p = Pu + (Pl-Pu)·√(r1/Ar)·(1-r2)
//
// For (r1,r2) ∈ [0,1]² the output always satisfies b ≥ 0 and Pl ≤ p ≤ Pu.
// Whether the resulting geometry is a feasible transit is judged downstream.
func BPFromR(r1, r2 float64, s SamplingBounds) (b, p float64) {
	ar := s.Ar()
	if r1 > ar {
		b = (1 + s.Pl) * (1 + (r1-1)/(1-ar))
		p = (1-r2)*s.Pl + r2*s.Pu

		return b, p
	}
	q := math.Sqrt(r1 / ar)
	b = (1 + s.Pl) + q*r2*(s.Pu-s.Pl)
	p = s.Pu + (s.Pl-s.Pu)*q*(1-r2)

	return b, p
}

// RFromBP inverts BPFromR. It is used to reconstruct the sampled (r1,r2)
// corresponding to a physical (b,p), e.g. when deriving transit depths from
// posterior samples. Points produced by BPFromR round-trip to within
// floating-point accuracy.
func RFromBP(b, p float64, s SamplingBounds) (r1, r2 float64) {
	ar := s.Ar()
	if b <= 1+s.Pl {
		// Grazing-free branch (r1 > Ar).
		r1 = 1 + (b/(1+s.Pl)-1)*(1-ar)
		r2 = (p - s.Pl) / (s.Pu - s.Pl)

		return r1, r2
	}
	// Grazing branch (r1 ≤ Ar): recover the shared factor q = √(r1/Ar)
	// from the sum of the two displacement terms.
	q := ((b - 1 - s.Pl) + (s.Pu - p)) / (s.Pu - s.Pl)
	r1 = q * q * ar
	r2 = (b - 1 - s.Pl) / (q * (s.Pu - s.Pl))

	return r1, r2
}

// SemiMajorAxisFromDensity converts a mean stellar density rho (kg/m³) and
// an orbital period (days) to the scaled semi-major axis a/R* via Kepler's
// third law:
//
//	a/R* = (ρ·G·(P·86400)² / 3π)^(1/3)
func SemiMajorAxisFromDensity(rho, periodDays float64) float64 {
	ps := periodDays * SecondsPerDay

	return math.Cbrt(rho * GravitationalConstant * ps * ps / (3 * math.Pi))
}

// DensityFromSemiMajorAxis is the inverse of SemiMajorAxisFromDensity:
//
//	ρ = 3π·(a/R*)³ / (G·(P·86400)²)
//
// It supplies the model density for the stellar-density likelihood term when
// a/R* is the sampled quantity.
func DensityFromSemiMajorAxis(a, periodDays float64) float64 {
	ps := periodDays * SecondsPerDay

	return 3 * math.Pi * a * a * a / (GravitationalConstant * ps * ps)
}

// InclinationDeg computes the orbital inclination (degrees) of a transiting
// configuration from the impact parameter, radius ratio, scaled semi-major
// axis, eccentricity and argument of periastron (degrees).
//
// The eccentric correction factor is (1 + e·sinω)/(1 - e²); the inclination
// satisfies cos(inc) = (b/a)·factor. The configuration is geometrically
// infeasible — reported as ok=false — when the planet never crosses the disk
// (b > 1+p) or the cosine leaves its domain (inc_inv ≥ 1).
func InclinationDeg(b, p, a, ecc, omegaDeg float64) (inc float64, ok bool) {
	eccFactor := (1 + ecc*math.Sin(omegaDeg*math.Pi/180)) / (1 - ecc*ecc)
	incInv := (b / a) * eccFactor
	if b > 1+p || incInv >= 1 {
		return 0, false
	}

	return math.Acos(incInv) * 180 / math.Pi, true
}
