package rv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exofit/exofit/rv"
)

// TestVelocity_CircularSinusoid pins the circular Keplerian to its closed
// form: v = K·cos(2π(t-tc)/P + π/2) for ω = π/2.
func TestVelocity_CircularSinusoid(t *testing.T) {
	p := rv.Planet{Period: 10.0, Tc: 3.0, Ecc: 0.0, Omega: math.Pi / 2, K: 25.0}
	var m rv.Model

	ts := []float64{3.0, 5.5, 8.0, 10.5, 13.0}
	v := m.PlanetVelocity(p, ts)
	for i, ti := range ts {
		phase := 2 * math.Pi * (ti - p.Tc) / p.Period
		assert.InDelta(t, p.K*math.Cos(phase+math.Pi/2), v[i], 1e-9, "t=%v", ti)
	}
	assert.InDelta(t, 0.0, v[0], 1e-9, "RV crosses zero at conjunction")
}

// TestVelocity_Additivity: the joint model is the sum of per-planet
// components.
func TestVelocity_Additivity(t *testing.T) {
	p1 := rv.Planet{Period: 4.0, Tc: 0.5, Ecc: 0.0, Omega: math.Pi / 2, K: 10}
	p2 := rv.Planet{Period: 31.0, Tc: 7.0, Ecc: 0.2, Omega: 1.1, K: 40}
	var m rv.Model

	ts := []float64{0, 1, 2, 5, 13, 29}
	joint := m.Velocity([]rv.Planet{p1, p2}, ts)
	v1 := m.PlanetVelocity(p1, ts)
	v2 := m.PlanetVelocity(p2, ts)
	for i := range ts {
		assert.InDelta(t, v1[i]+v2[i], joint[i], 1e-12)
	}
}

// TestVelocity_EccentricAmplitude checks the peak-to-peak amplitude of an
// eccentric orbit: max-min = K·(1+... ) bounded by 2K/(1-e) and exceeding 2K·(1-e).
func TestVelocity_EccentricAmplitude(t *testing.T) {
	p := rv.Planet{Period: 7.0, Tc: 0.0, Ecc: 0.4, Omega: 0.7, K: 30.0}
	var m rv.Model

	ts := make([]float64, 2000)
	for i := range ts {
		ts[i] = float64(i) * p.Period / 2000
	}
	v := m.PlanetVelocity(p, ts)
	minV, maxV := v[0], v[0]
	for _, x := range v {
		minV = math.Min(minV, x)
		maxV = math.Max(maxV, x)
	}
	span := maxV - minV
	require.Greater(t, span, 2*p.K*(1-p.Ecc))
	require.Less(t, span, 2*p.K/(1-p.Ecc))
}

// TestTrend_AnchoredAtTZero verifies the trend vanishes exactly at the
// reference epoch for both linear and quadratic forms.
func TestTrend_AnchoredAtTZero(t *testing.T) {
	lin := rv.Trend{Slope: 0.3, TZero: 12.0}
	assert.Equal(t, 0.0, lin.Eval(12.0))
	assert.InDelta(t, 0.3*5, lin.Eval(17.0), 1e-12)

	quad := rv.Trend{Slope: 0.3, Quad: 0.02, TZero: 12.0}
	assert.InDelta(t, 0.0, quad.Eval(12.0), 1e-12)
	assert.InDelta(t, 0.02*(17*17-12*12)+0.3*5, quad.Eval(17.0), 1e-12)
}
