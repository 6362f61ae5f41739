package orbit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exofit/exofit/orbit"
)

// TestSolveKepler_ResidualAndCircular verifies the Kepler residual stays
// below tolerance across eccentricities and that e=0 is the identity.
func TestSolveKepler_ResidualAndCircular(t *testing.T) {
	for _, e := range []float64{0.0, 0.1, 0.4, 0.9} {
		for m := -3.0; m <= 3.0; m += 0.37 {
			ea := orbit.SolveKepler(m, e)
			assert.InDelta(t, 0.0, ea-e*math.Sin(ea)-wrapPi(m), 1e-10,
				"residual at M=%v e=%v", m, e)
		}
	}
	assert.Equal(t, 1.3, orbit.SolveKepler(1.3, 0.0))
}

// TestTrueAnomaly_Symmetry checks ν(M=0)=0 and ν(π)=π for any eccentricity.
func TestTrueAnomaly_Symmetry(t *testing.T) {
	for _, e := range []float64{0.0, 0.3, 0.7} {
		assert.InDelta(t, 0.0, orbit.TrueAnomaly(0, e), 1e-12)
		assert.InDelta(t, math.Pi, math.Abs(orbit.TrueAnomaly(math.Pi, e)), 1e-9)
	}
}

// TestMeanAnomalyAtConjunction pins the circular case: for e=0 the mean
// anomaly at conjunction equals the true anomaly π/2 - ω.
func TestMeanAnomalyAtConjunction(t *testing.T) {
	assert.InDelta(t, math.Pi/2, orbit.MeanAnomalyAtConjunction(0, 0), 1e-12)
	assert.InDelta(t, 0.0, orbit.MeanAnomalyAtConjunction(0, math.Pi/2), 1e-12)
}

// wrapPi reduces an angle to (-π, π], mirroring the solver's internal wrap.
func wrapPi(m float64) float64 {
	m = math.Mod(m, 2*math.Pi)
	if m > math.Pi {
		m -= 2 * math.Pi
	} else if m < -math.Pi {
		m += 2 * math.Pi
	}

	return m
}
