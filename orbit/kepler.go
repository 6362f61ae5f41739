package orbit

import "math"

// keplerTol is the convergence tolerance of the Kepler-equation solver, in
// radians of eccentric anomaly.
const keplerTol = 1e-12

// keplerMaxIter bounds the Newton iteration; convergence is quadratic and
// the starting guess keeps the iteration in-basin for e < 1, so the bound
// exists only to guarantee termination on degenerate inputs.
const keplerMaxIter = 50

// SolveKepler returns the eccentric anomaly E solving Kepler's equation
// M = E - e·sin(E) for mean anomaly M (radians) and eccentricity e ∈ [0,1).
// Newton iteration from E₀ = M + 0.85·e·sign(sin M), accurate to 1e-12 rad.
func SolveKepler(m, e float64) float64 {
	if e == 0 {
		return m
	}
	// Wrap M into (-π, π] for a stable starting guess.
	m = math.Mod(m, 2*math.Pi)
	if m > math.Pi {
		m -= 2 * math.Pi
	} else if m < -math.Pi {
		m += 2 * math.Pi
	}
	guess := m + math.Copysign(0.85*e, math.Sin(m))
	ecc := guess
	for i := 0; i < keplerMaxIter; i++ {
		f := ecc - e*math.Sin(ecc) - m
		d := f / (1 - e*math.Cos(ecc))
		ecc -= d
		if math.Abs(d) < keplerTol {
			break
		}
	}

	return ecc
}

// TrueAnomaly converts mean anomaly M (radians) and eccentricity e to the
// true anomaly ν via the eccentric anomaly.
func TrueAnomaly(m, e float64) float64 {
	ea := SolveKepler(m, e)

	return 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(ea/2), math.Sqrt(1-e)*math.Cos(ea/2))
}

// MeanAnomalyAtConjunction returns the mean anomaly at inferior conjunction
// (mid-transit) for eccentricity e and argument of periastron ω (radians):
// the true anomaly there is ν₀ = π/2 - ω.
func MeanAnomalyAtConjunction(e, omega float64) float64 {
	nu0 := math.Pi/2 - omega
	ea0 := 2 * math.Atan2(math.Sqrt(1-e)*math.Sin(nu0/2), math.Sqrt(1+e)*math.Cos(nu0/2))

	return ea0 - e*math.Sin(ea0)
}
