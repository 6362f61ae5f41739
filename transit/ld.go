package transit

import "math"

// ReverseLDCoeffs maps the sampled (q1,q2) pair of the triangular
// limb-darkening basis onto the physical coefficients (u1,u2) of the law.
// Sampling q1,q2 uniformly on [0,1]² covers exactly the physically allowed
// coefficient space (Kipping 2013 for the quadratic law; analogous mappings
// for the other two-coefficient laws). The linear law passes q1 through.
func ReverseLDCoeffs(law LDLaw, q1, q2 float64) (u1, u2 float64) {
	switch law {
	case Quadratic:
		sq := math.Sqrt(q1)
		u1 = 2 * sq * q2
		u2 = sq * (1 - 2*q2)
	case SquareRoot:
		sq := math.Sqrt(q1)
		u1 = sq * (1 - 2*q2)
		u2 = 2 * sq * q2
	case Logarithmic:
		sq := math.Sqrt(q1)
		u1 = 1 - sq*q2
		u2 = 1 - sq
	default: // Linear
		u1 = q1
		u2 = q2
	}

	return u1, u2
}

// intensity evaluates the limb-darkening profile I(μ) at projected radius
// r ∈ [0,1], with μ = √(1-r²). Profiles are normalized to I(μ=1) = 1.
func intensity(law LDLaw, u1, u2, r float64) float64 {
	if r > 1 {
		r = 1
	}
	mu := math.Sqrt(1 - r*r)
	switch law {
	case Quadratic:
		return 1 - u1*(1-mu) - u2*(1-mu)*(1-mu)
	case SquareRoot:
		return 1 - u1*(1-mu) - u2*(1-math.Sqrt(mu))
	case Logarithmic:
		if mu <= 0 {
			return 1 - u1
		}

		return 1 - u1*(1-mu) - u2*mu*math.Log(mu)
	default: // Linear
		return 1 - u1*(1-mu)
	}
}

// meanIntensity returns the disk-averaged intensity Ī = ∫₀¹ I(μ(r))·2r dr,
// the normalization of the flux deficit. Closed forms per law.
func meanIntensity(law LDLaw, u1, u2 float64) float64 {
	switch law {
	case Quadratic:
		return 1 - u1/3 - u2/6
	case SquareRoot:
		return 1 - u1/3 - u2/5
	case Logarithmic:
		return 1 - u1/3 + 2*u2/9
	default: // Linear
		return 1 - u1/3
	}
}
