package transit

import (
	"math"

	"github.com/exofit/exofit/orbit"
)

// Model is the default transit Oracle: uniform-source overlap geometry with
// the small-planet limb-darkening correction. It is stateless and safe for
// concurrent use.
type Model struct{}

// LightCurve evaluates the normalized transit curve at every time in t.
func (Model) LightCurve(p Params, t []float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = p.flux(ti)
	}

	return out
}

// flux returns the (optionally supersampled) model flux at time t.
func (p Params) flux(t float64) float64 {
	if !p.Super.Enabled() {
		return p.instantFlux(t)
	}
	// Boxcar average over the exposure window.
	sum := 0.0
	step := p.Super.ExpTime / float64(p.Super.N)
	start := t - p.Super.ExpTime/2 + step/2
	for k := 0; k < p.Super.N; k++ {
		sum += p.instantFlux(start + float64(k)*step)
	}

	return sum / float64(p.Super.N)
}

// instantFlux evaluates the instantaneous flux: sky-projected separation
// from the Keplerian orbit, then the occultation deficit.
func (p Params) instantFlux(t float64) float64 {
	omega := p.OmegaDeg * math.Pi / 180
	inc := p.IncDeg * math.Pi / 180

	m0 := orbit.MeanAnomalyAtConjunction(p.Ecc, omega)
	m := m0 + 2*math.Pi*(t-p.T0)/p.Period
	nu := orbit.TrueAnomaly(m, p.Ecc)

	r := p.A * (1 - p.Ecc*p.Ecc) / (1 + p.Ecc*math.Cos(nu))
	sinWNu := math.Sin(omega + nu)
	if sinWNu <= 0 {
		// Planet behind the star: no dimming (secondary eclipses are not
		// modeled).
		return 1
	}
	z := r * math.Sqrt(1-sinWNu*sinWNu*math.Sin(inc)*math.Sin(inc))

	area := overlapArea(z, p.P)
	if area == 0 {
		return 1
	}

	return 1 - area*intensity(p.Law, p.U1, p.U2, z)/(math.Pi*meanIntensity(p.Law, p.U1, p.U2))
}

// overlapArea returns the intersection area of the stellar disk (radius 1)
// and the planetary disk (radius p) whose centers are separated by z.
func overlapArea(z, p float64) float64 {
	switch {
	case z >= 1+p:
		return 0
	case z <= 1-p:
		return math.Pi * p * p
	case z <= p-1:
		// Planet covers the whole star; outside the supported regime but
		// kept total.
		return math.Pi
	default:
		k0 := math.Acos((z*z + p*p - 1) / (2 * z * p))
		k1 := math.Acos((z*z + 1 - p*p) / (2 * z))
		s := (1 + p + z) * (p + z - 1) * (z + 1 - p) * (z + 1 + p)
		if s < 0 {
			s = 0
		}

		return p*p*k0 + k1 - 0.5*math.Sqrt(s)
	}
}
