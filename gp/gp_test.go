package gp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource is a ValueSource over a plain map, standing in for the
// aggregator's per-evaluation parameter set.
type mapSource map[string]float64

func (m mapSource) Value(name string) (float64, bool) {
	v, ok := m[name]

	return v, ok
}

// TestVectorLen_Layouts checks the fixed vector length of every
// kernel/context combination, including the unsupported SE+RV pairing.
func TestVectorLen_Layouts(t *testing.T) {
	n, err := VectorLen(SEKernel, Photometric, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = VectorLen(SEKernel, RadialVelocity, 1)
	assert.ErrorIs(t, err, ErrUnsupported)

	n, err = VectorLen(ExpSineSquaredSEKernel, Photometric, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = VectorLen(ExpSineSquaredSEKernel, RadialVelocity, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = VectorLen(CeleriteQPKernel, Photometric, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = VectorLen(CeleriteQPKernel, RadialVelocity, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

// TestDetectKernel_RoleMarkers checks that the kernel family is inferred
// from the characteristic hyperparameter role of each kernel.
func TestDetectKernel_RoleMarkers(t *testing.T) {
	kind, err := DetectKernel([]string{"GP_sigma_TESS", "GP_alpha0_TESS"}, "TESS", false)
	require.NoError(t, err)
	assert.Equal(t, SEKernel, kind)

	kind, err = DetectKernel([]string{"GP_sigma_K2", "GP_Gamma_K2", "GP_Prot_K2"}, "K2", false)
	require.NoError(t, err)
	assert.Equal(t, ExpSineSquaredSEKernel, kind)

	kind, err = DetectKernel([]string{"GP_B_rv", "GP_C_rv"}, "", true)
	require.NoError(t, err)
	assert.Equal(t, CeleriteQPKernel, kind)

	_, err = DetectKernel([]string{"GP_B_TESS"}, "CHEOPS", false)
	assert.ErrorIs(t, err, ErrUnknownKernel)
}

// TestBindGroups_SharedGroup checks that an underscore-joined group name
// binds the same prior parameter to several instruments and to the pooled
// RV dataset.
func TestBindGroups_SharedGroup(t *testing.T) {
	names := []string{
		"GP_B_TESS_K2_RV",
		"GP_C_TESS_K2_RV",
		"GP_L_TESS",
		"GP_L_K2",
		"GP_L_RV",
		"GP_Prot_TESS_K2_RV",
	}

	b, err := BindGroups(CeleriteQPKernel, names, "TESS", "sigma_w_TESS", 1, false)
	require.NoError(t, err)
	assert.Equal(t, "GP_B_TESS_K2_RV", b.Roles["B"])
	assert.Equal(t, "GP_L_TESS", b.Roles["L"])
	assert.Equal(t, "sigma_w_TESS", b.JitterName)

	b, err = BindGroups(CeleriteQPKernel, names, "", "", 1, true)
	require.NoError(t, err)
	assert.Equal(t, "GP_Prot_TESS_K2_RV", b.Roles["Prot"])
	assert.Equal(t, "GP_L_RV", b.Roles["L"])
	assert.Empty(t, b.JitterName)
}

// TestBindGroups_MissingRole checks that an instrument with no matching
// group for a required role is rejected at build time.
func TestBindGroups_MissingRole(t *testing.T) {
	names := []string{"GP_B_TESS", "GP_C_TESS", "GP_L_TESS"}

	_, err := BindGroups(CeleriteQPKernel, names, "TESS", "sigma_w_TESS", 1, false)
	assert.ErrorIs(t, err, ErrUnboundRole)
}

// TestBindGroups_IndexedAlpha checks that the SE kernel's indexed alpha
// roles bind exactly, without alpha0 leaking into alpha1.
func TestBindGroups_IndexedAlpha(t *testing.T) {
	names := []string{
		"GP_sigma_TESS",
		"GP_alpha0_TESS",
		"GP_alpha1_TESS",
	}

	b, err := BindGroups(SEKernel, names, "TESS", "sigma_w_TESS", 2, false)
	require.NoError(t, err)
	assert.Equal(t, "GP_alpha0_TESS", b.Roles["alpha0"])
	assert.Equal(t, "GP_alpha1_TESS", b.Roles["alpha1"])
}

// TestMarshal_CeleriteQPLayout pins the exact photometric rotation-kernel
// vector: [log B, log L, log Prot, log C, log jitter] with the jitter value
// declared in ppm.
func TestMarshal_CeleriteQPLayout(t *testing.T) {
	b := Binding{
		Roles: map[string]string{
			"B": "GP_B_TESS", "L": "GP_L_TESS", "Prot": "GP_Prot_TESS", "C": "GP_C_TESS",
		},
		JitterName: "sigma_w_TESS",
	}
	vals := mapSource{
		"GP_B_TESS": 2.0, "GP_L_TESS": 5.0, "GP_Prot_TESS": 3.0, "GP_C_TESS": 1.0,
		"sigma_w_TESS": 100.0,
	}

	vec, err := Marshal(CeleriteQPKernel, Photometric, b, vals, 1)
	require.NoError(t, err)
	require.Len(t, vec, 5)
	assert.InDelta(t, math.Log(2.0), vec[0], 1e-12)
	assert.InDelta(t, math.Log(5.0), vec[1], 1e-12)
	assert.InDelta(t, math.Log(3.0), vec[2], 1e-12)
	assert.InDelta(t, math.Log(1.0), vec[3], 1e-12)
	assert.InDelta(t, math.Log(100e-6), vec[4], 1e-12)
}

// TestMarshal_SEKernelLayout checks the squared-exponential layout: ppm
// scaling of the variance slots and inverse-length-scale inversion of the
// per-covariate alphas.
func TestMarshal_SEKernelLayout(t *testing.T) {
	b := Binding{
		Roles: map[string]string{
			"sigma": "GP_sigma_TESS", "alpha0": "GP_alpha0_TESS", "alpha1": "GP_alpha1_TESS",
		},
		JitterName: "sigma_w_TESS",
	}
	vals := mapSource{
		"GP_sigma_TESS": 500.0, "GP_alpha0_TESS": 2.0, "GP_alpha1_TESS": 4.0,
		"sigma_w_TESS": 100.0,
	}

	vec, err := Marshal(SEKernel, Photometric, b, vals, 2)
	require.NoError(t, err)
	require.Len(t, vec, 4)
	assert.InDelta(t, math.Log(100e-6*100e-6), vec[0], 1e-12)
	assert.InDelta(t, math.Log(500e-6*500e-6), vec[1], 1e-12)
	assert.InDelta(t, math.Log(0.5), vec[2], 1e-12)
	assert.InDelta(t, math.Log(0.25), vec[3], 1e-12)
}

// TestMarshal_ExpSineSquaredRVLayout checks the four-slot RV layout, where
// the amplitude keeps its native velocity units and no jitter slot exists.
func TestMarshal_ExpSineSquaredRVLayout(t *testing.T) {
	b := Binding{
		Roles: map[string]string{
			"sigma": "GP_sigma_rv", "alpha": "GP_alpha_rv", "Gamma": "GP_Gamma_rv", "Prot": "GP_Prot_rv",
		},
	}
	vals := mapSource{
		"GP_sigma_rv": 10.0, "GP_alpha_rv": 0.1, "GP_Gamma_rv": 3.0, "GP_Prot_rv": 12.5,
	}

	vec, err := Marshal(ExpSineSquaredSEKernel, RadialVelocity, b, vals, 1)
	require.NoError(t, err)
	require.Len(t, vec, 4)
	assert.InDelta(t, math.Log(100.0), vec[0], 1e-12)
	assert.InDelta(t, math.Log(10.0), vec[1], 1e-12)
	assert.InDelta(t, 3.0, vec[2], 1e-12)
	assert.InDelta(t, math.Log(12.5), vec[3], 1e-12)
}

// TestMarshal_UnboundRole checks that a role missing from the binding table
// surfaces as ErrUnboundRole rather than a zero slot.
func TestMarshal_UnboundRole(t *testing.T) {
	b := Binding{Roles: map[string]string{"B": "GP_B_TESS"}, JitterName: "sigma_w_TESS"}
	vals := mapSource{"GP_B_TESS": 2.0, "sigma_w_TESS": 100.0}

	_, err := Marshal(CeleriteQPKernel, Photometric, b, vals, 1)
	assert.ErrorIs(t, err, ErrUnboundRole)
}

// TestGP_SinglePointLogLikelihood evaluates the marginal log-likelihood on
// one point, where the rotation covariance at lag zero collapses to B and
// the closed form is checkable by hand.
func TestGP_SinglePointLogLikelihood(t *testing.T) {
	g, err := New(CeleriteQPKernel, RadialVelocity, 1)
	require.NoError(t, err)
	require.NoError(t, g.Compute([][]float64{{0}}, []float64{2.0}))

	amp, ell, prot, c := 3.0, 10.0, 5.0, 1.0
	require.NoError(t, g.SetParameterVector([]float64{
		math.Log(amp), math.Log(ell), math.Log(prot), math.Log(c),
	}))

	r := 1.5
	k := amp + 2.0*2.0 // k(0) = B, plus the measurement variance
	want := -0.5 * (r*r/k + math.Log(k) + math.Log(2*math.Pi))

	got, err := g.LogLikelihood([]float64{r})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// TestGP_LogLikelihoodRespondsToVector checks that changing the
// hyperparameter vector after Compute refactorizes the covariance.
func TestGP_LogLikelihoodRespondsToVector(t *testing.T) {
	g, err := New(ExpSineSquaredSEKernel, RadialVelocity, 1)
	require.NoError(t, err)

	x := make([][]float64, 20)
	yerr := make([]float64, 20)
	resid := make([]float64, 20)
	for i := range x {
		ti := float64(i) * 0.37
		x[i] = []float64{ti}
		yerr[i] = 0.5
		resid[i] = math.Sin(2 * math.Pi * ti / 4.0)
	}
	require.NoError(t, g.Compute(x, yerr))

	require.NoError(t, g.SetParameterVector([]float64{math.Log(1.0), math.Log(50.0), 2.0, math.Log(4.0)}))
	ll1, err := g.LogLikelihood(resid)
	require.NoError(t, err)

	require.NoError(t, g.SetParameterVector([]float64{math.Log(1e-6), math.Log(50.0), 2.0, math.Log(4.0)}))
	ll2, err := g.LogLikelihood(resid)
	require.NoError(t, err)

	assert.NotEqual(t, ll1, ll2)
	// The kernel tuned to the residuals' own period should fit far better
	// than a near-zero-amplitude process.
	assert.Greater(t, ll1, ll2)
}

// TestGP_PredictInterpolates checks that the conditional mean reproduces
// the residuals at the training points when the measurement noise is small.
func TestGP_PredictInterpolates(t *testing.T) {
	g, err := New(CeleriteQPKernel, RadialVelocity, 1)
	require.NoError(t, err)

	n := 25
	x := make([][]float64, n)
	yerr := make([]float64, n)
	resid := make([]float64, n)
	for i := range x {
		ti := float64(i) * 0.2
		x[i] = []float64{ti}
		yerr[i] = 1e-3
		resid[i] = 0.8 * math.Cos(2*math.Pi*ti/5.0)
	}
	require.NoError(t, g.Compute(x, yerr))
	require.NoError(t, g.SetParameterVector([]float64{
		math.Log(1.0), math.Log(100.0), math.Log(5.0), math.Log(1.0),
	}))

	mean, variance, err := g.Predict(resid, x)
	require.NoError(t, err)
	require.Len(t, mean, n)
	for i := range mean {
		assert.InDelta(t, resid[i], mean[i], 1e-2)
		assert.GreaterOrEqual(t, variance[i], 0.0)
	}
}

// TestGP_CloneIsIndependent checks that a clone shares the computed data
// but owns its hyperparameter vector and factorization.
func TestGP_CloneIsIndependent(t *testing.T) {
	g, err := New(CeleriteQPKernel, RadialVelocity, 1)
	require.NoError(t, err)
	require.NoError(t, g.Compute([][]float64{{0}, {1}, {2}}, []float64{1, 1, 1}))
	base := []float64{math.Log(2.0), math.Log(5.0), math.Log(3.0), math.Log(1.0)}
	require.NoError(t, g.SetParameterVector(base))

	resid := []float64{0.3, -0.1, 0.2}
	ll0, err := g.LogLikelihood(resid)
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.SetParameterVector([]float64{math.Log(20.0), math.Log(5.0), math.Log(3.0), math.Log(1.0)}))
	llClone, err := c.LogLikelihood(resid)
	require.NoError(t, err)
	assert.NotEqual(t, ll0, llClone)

	again, err := g.LogLikelihood(resid)
	require.NoError(t, err)
	assert.Equal(t, ll0, again)
}

// TestOracle_DefaultImplementation drives the default process entirely
// through the Oracle surface the likelihood layer programs against.
func TestOracle_DefaultImplementation(t *testing.T) {
	g, err := New(CeleriteQPKernel, RadialVelocity, 1)
	require.NoError(t, err)

	var o Oracle = g
	require.NoError(t, o.Compute([][]float64{{0}, {1}, {2}}, []float64{1, 1, 1}))
	require.NoError(t, o.SetParameterVector([]float64{math.Log(2.0), math.Log(5.0), math.Log(3.0), math.Log(1.0)}))
	ll, err := o.LogLikelihood([]float64{0.3, -0.1, 0.2})
	require.NoError(t, err)

	c := o.Clone()
	llClone, err := c.LogLikelihood([]float64{0.3, -0.1, 0.2})
	require.NoError(t, err)
	assert.InDelta(t, ll, llClone, 1e-12)
}

// TestGP_ErrorsBeforeCompute checks the oracle's state guards.
func TestGP_ErrorsBeforeCompute(t *testing.T) {
	g, err := New(CeleriteQPKernel, RadialVelocity, 1)
	require.NoError(t, err)

	_, err = g.LogLikelihood([]float64{1})
	assert.ErrorIs(t, err, ErrNotComputed)

	err = g.SetParameterVector([]float64{1, 2})
	assert.ErrorIs(t, err, ErrBadVector)
}
