package rv

import (
	"math"

	"github.com/exofit/exofit/orbit"
)

// Model is the default Keplerian Oracle. It is stateless and safe for
// concurrent use.
type Model struct{}

// Velocity sums all planet components at every time in t.
func (m Model) Velocity(planets []Planet, t []float64) []float64 {
	out := make([]float64, len(t))
	for _, p := range planets {
		addPlanet(out, p, t)
	}

	return out
}

// PlanetVelocity evaluates a single planet's component in isolation.
func (m Model) PlanetVelocity(p Planet, t []float64) []float64 {
	out := make([]float64, len(t))
	addPlanet(out, p, t)

	return out
}

// addPlanet accumulates one Keplerian component into dst.
func addPlanet(dst []float64, p Planet, t []float64) {
	m0 := orbit.MeanAnomalyAtConjunction(p.Ecc, p.Omega)
	for i, ti := range t {
		ma := m0 + 2*math.Pi*(ti-p.Tc)/p.Period
		nu := orbit.TrueAnomaly(ma, p.Ecc)
		dst[i] += p.K * (math.Cos(nu+p.Omega) + p.Ecc*math.Cos(p.Omega))
	}
}
