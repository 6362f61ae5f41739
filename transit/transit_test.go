package transit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exofit/exofit/transit"
)

// refParams is a central, circular single-planet transit with no limb
// darkening, for which the mid-transit depth is exactly p².
func refParams() transit.Params {
	return transit.Params{
		T0:       2.0,
		Period:   3.5,
		P:        0.1,
		A:        12.0,
		IncDeg:   90.0,
		Ecc:      0.0,
		OmegaDeg: 90.0,
		Law:      transit.Linear,
		U1:       0.0,
	}
}

// TestLightCurve_BaselineAndDepth checks the unit baseline far from transit
// and the exact p² depth at mid-transit for a uniform source.
func TestLightCurve_BaselineAndDepth(t *testing.T) {
	p := refParams()
	var m transit.Model

	f := m.LightCurve(p, []float64{p.T0 - p.Period/4, p.T0, p.T0 + p.Period/4})
	assert.Equal(t, 1.0, f[0], "out of transit must sit on the unit baseline")
	assert.InDelta(t, 1.0-p.P*p.P, f[1], 1e-9, "uniform-source central depth is p²")
	assert.Equal(t, 1.0, f[2])
}

// TestLightCurve_Symmetry verifies the curve is symmetric about t0 for a
// circular orbit.
func TestLightCurve_Symmetry(t *testing.T) {
	p := refParams()
	var m transit.Model

	var ts []float64
	for dt := -0.1; dt <= 0.1001; dt += 0.005 {
		ts = append(ts, p.T0+dt)
	}
	f := m.LightCurve(p, ts)
	n := len(f)
	for i := 0; i < n/2; i++ {
		assert.InDelta(t, f[i], f[n-1-i], 1e-8, "symmetry at offset %d", i)
	}
}

// TestLightCurve_LimbDarkeningDeepensCenter checks that a limb-darkened
// star yields a deeper central transit than a uniform one (the center of
// the disk is brighter than average).
func TestLightCurve_LimbDarkeningDeepensCenter(t *testing.T) {
	var m transit.Model
	p := refParams()
	uniform := m.LightCurve(p, []float64{p.T0})[0]

	p.Law = transit.Quadratic
	p.U1, p.U2 = 0.4, 0.2
	darkened := m.LightCurve(p, []float64{p.T0})[0]

	assert.Less(t, darkened, uniform, "limb darkening must deepen the central dip")
}

// TestLightCurve_SecondaryNotModeled: the planet behind the star leaves the
// baseline untouched.
func TestLightCurve_SecondaryNotModeled(t *testing.T) {
	p := refParams()
	var m transit.Model
	f := m.LightCurve(p, []float64{p.T0 + p.Period/2})
	assert.Equal(t, 1.0, f[0])
}

// TestLightCurve_Supersampling verifies the boxcar average dilutes the
// depth when the exposure window straddles egress. For these parameters
// egress spans dt ∈ [0.0418, 0.0511] d, so a 0.05 d exposure centred at
// dt = 0.035 mixes flat-bottom, egress and baseline samples; an exposure
// wholly inside the flat bottom averages to the instantaneous depth and
// would show no dilution.
func TestLightCurve_Supersampling(t *testing.T) {
	var m transit.Model
	p := refParams()
	at := []float64{p.T0 + 0.035}
	instant := m.LightCurve(p, at)[0]

	p.Super = transit.Supersampling{N: 20, ExpTime: 0.05}
	sampled := m.LightCurve(p, at)[0]

	assert.Greater(t, sampled, instant, "long-cadence averaging must dilute the dip")
	assert.Less(t, sampled, 1.0, "but a dip must remain")

	// Deep inside the flat bottom a short exposure changes nothing.
	p.Super = transit.Supersampling{N: 20, ExpTime: 0.01}
	flat := m.LightCurve(p, []float64{p.T0})[0]
	assert.InDelta(t, m.LightCurve(refParams(), []float64{p.T0})[0], flat, 1e-12)
}

// TestReverseLDCoeffs_Quadratic pins the Kipping (2013) mapping.
func TestReverseLDCoeffs_Quadratic(t *testing.T) {
	q1, q2 := 0.36, 0.25
	u1, u2 := transit.ReverseLDCoeffs(transit.Quadratic, q1, q2)
	assert.InDelta(t, 2*math.Sqrt(q1)*q2, u1, 1e-15)
	assert.InDelta(t, math.Sqrt(q1)*(1-2*q2), u2, 1e-15)

	// Linear passes q1 through.
	u1, _ = transit.ReverseLDCoeffs(transit.Linear, 0.5, 0.0)
	assert.Equal(t, 0.5, u1)
}

// TestLDLawFromString parses all tags and rejects unknown ones.
func TestLDLawFromString(t *testing.T) {
	for _, tag := range []string{"linear", "quadratic", "squareroot", "logarithmic"} {
		law, err := transit.LDLawFromString(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, law.String())
	}
	_, err := transit.LDLawFromString("cubic")
	assert.ErrorIs(t, err, transit.ErrUnknownLDLaw)
}

// TestEccentricTransit_DimsNearT0 checks that an eccentric orbit still
// produces its dip at the time of conjunction.
func TestEccentricTransit_DimsNearT0(t *testing.T) {
	p := refParams()
	p.Ecc = 0.3
	p.OmegaDeg = 60.0
	var m transit.Model
	f := m.LightCurve(p, []float64{p.T0, p.T0 + p.Period/3})
	assert.Less(t, f[0], 1.0, "dip at conjunction")
	assert.Equal(t, 1.0, f[1], "baseline away from conjunction")
}
