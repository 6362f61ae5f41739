package likelihood

import (
	"math"

	"github.com/exofit/exofit/gp"
	"github.com/exofit/exofit/orbit"
	"github.com/exofit/exofit/rv"
	"github.com/exofit/exofit/transit"
)

var log2Pi = math.Log(2 * math.Pi)

// GaussianLogLike is the closed-form white-noise log-likelihood of
// residuals with per-point errors and a common jitter added in quadrature:
//
//	-0.5·(N·log 2π + Σ log(σ_i²+j²) + Σ r_i²/(σ_i²+j²))
func GaussianLogLike(resid, errs []float64, jitter float64) float64 {
	s := float64(len(resid)) * log2Pi
	for i := range resid {
		v := errs[i]*errs[i] + jitter*jitter
		s += math.Log(v) + resid[i]*resid[i]/v
	}

	return -0.5 * s
}

// LogLike evaluates the joint log-likelihood of one physical parameter
// vector. Infeasible samples return FloorLogLike with a nil error; a
// non-nil error means an oracle or configuration failure that must abort
// the run.
func (a *Aggregator) LogLike(x []float64) (float64, error) {
	ps, err := NewParameterSet(a.reg, x)
	if err != nil {
		return 0, err
	}

	ll := 0.0
	if len(a.phot) > 0 {
		v, ok, err := a.photLogLike(ps)
		if err != nil {
			return 0, err
		}
		if !ok {
			return FloorLogLike, nil
		}
		ll += v
	}
	if a.rvu != nil {
		v, ok, err := a.rvLogLike(ps)
		if err != nil {
			return 0, err
		}
		if !ok {
			return FloorLogLike, nil
		}
		ll += v
	}

	return ll, nil
}

// photLogLike accumulates the photometric terms plus the optional density
// constraint. ok=false flags an infeasible sample.
func (a *Aggregator) photLogLike(ps ParameterSet) (ll float64, ok bool, err error) {
	if !periodsOrdered(ps, a.tPeriods) {
		return 0, false, nil
	}

	// Resolve each planet's geometry once; instruments only differ in limb
	// darkening and supersampling.
	var densA, densP float64
	curves := make([]transit.Params, len(a.tPlanets))
	for i, pl := range a.tPlanets {
		period, t0 := ps.at(pl.period), ps.at(pl.t0)
		var b, p float64
		if pl.efficient {
			b, p = orbit.BPFromR(ps.at(pl.r1), ps.at(pl.r2), a.bounds)
		} else {
			b, p = ps.at(pl.b), ps.at(pl.p)
		}
		var sma float64
		if pl.fromRho {
			sma = orbit.SemiMajorAxisFromDensity(ps.at("rho"), period)
		} else {
			sma = ps.at(pl.a)
		}
		ecc, omega := orbit.ResolveEcc(pl.eccParam, ps.at(pl.e1), ps.at(pl.e2), orbit.ContextTransit)
		if ecc >= MaxTransitEcc {
			return 0, false, nil
		}
		inc, feasible := orbit.InclinationDeg(b, p, sma, ecc, omega)
		if !feasible {
			return 0, false, nil
		}
		curves[i] = transit.Params{T0: t0, Period: period, P: p, A: sma, IncDeg: inc, Ecc: ecc, OmegaDeg: omega}
		if pl.id == a.densityID {
			densA, densP = sma, period
		}
	}

	for i := range a.phot {
		ph := &a.phot[i]
		q1 := ps.at(ph.q1)
		q2 := 0.0
		if ph.Law != transit.Linear {
			q2 = ps.at(ph.q2)
		}
		u1, u2 := transit.ReverseLDCoeffs(ph.Law, q1, q2)

		model := make([]float64, len(ph.Time))
		for j := range model {
			model[j] = 1
		}
		for _, c := range curves {
			c.Law, c.U1, c.U2, c.Super = ph.Law, u1, u2, ph.Super
			lc := a.toracle.LightCurve(c, ph.Time)
			for j := range model {
				model[j] *= lc[j]
			}
		}

		dil, off := ps.at(ph.dilution), ps.at(ph.offset)
		resid := make([]float64, len(model))
		for j := range resid {
			resid[j] = ph.Flux[j] - (model[j]*dil + off)
		}

		if ph.gpo == nil {
			ll += GaussianLogLike(resid, ph.FluxErr, ps.at(ph.jitter)*1e-6)

			continue
		}
		vec, err := gp.Marshal(ph.kind, gp.Photometric, ph.binding, ps, ph.nCov)
		if err != nil {
			return 0, false, err
		}
		if err := ph.gpo.SetParameterVector(vec); err != nil {
			return 0, false, err
		}
		v, err := ph.gpo.LogLikelihood(resid)
		if err != nil {
			return 0, false, err
		}
		ll += v
	}

	if a.density != nil {
		rho := orbit.DensityFromSemiMajorAxis(densA, densP)
		d := (rho - a.density.Mean) / a.density.Sigma
		ll += -0.5 * (log2Pi + 2*math.Log(a.density.Sigma) + d*d)
	}

	return ll, true, nil
}

// rvLogLike accumulates the radial-velocity terms. ok=false flags an
// infeasible sample.
func (a *Aggregator) rvLogLike(ps ParameterSet) (ll float64, ok bool, err error) {
	if !periodsOrdered(ps, a.rPeriods) {
		return 0, false, nil
	}

	planets := make([]rv.Planet, len(a.rPlanets))
	for i, pl := range a.rPlanets {
		ecc, omega := orbit.ResolveEcc(pl.eccParam, ps.at(pl.e1), ps.at(pl.e2), orbit.ContextRV)
		if ecc >= 1 {
			return 0, false, nil
		}
		planets[i] = rv.Planet{
			Period: ps.at(pl.period),
			Tc:     ps.at(pl.t0),
			Ecc:    ecc,
			Omega:  omega,
			K:      ps.at(pl.k),
		}
	}

	model := a.roracle.Velocity(planets, a.rvu.Time)
	if a.hasSlope {
		tr := rv.Trend{Slope: ps.at("rv_slope"), TZero: ps.at("rv_tzero")}
		if a.hasQuad {
			tr.Quad = ps.at("rv_quad")
		}
		for j, t := range a.rvu.Time {
			model[j] += tr.Eval(t)
		}
	}

	if a.rvu.gpo == nil {
		for k, inst := range a.rvu.Instruments {
			idx := a.rvu.Indices[inst]
			mu := ps.at(a.rvu.mu[k])
			resid := make([]float64, len(idx))
			errs := make([]float64, len(idx))
			for j, ix := range idx {
				resid[j] = a.rvu.Value[ix] - (model[ix] + mu)
				errs[j] = a.rvu.Error[ix]
			}
			ll += GaussianLogLike(resid, errs, ps.at(a.rvu.jitter[k]))
		}

		return ll, true, nil
	}

	// Shared RV GP: pooled residuals, with each instrument's jitter folded
	// into its measurement errors before factorization.
	n := len(a.rvu.Time)
	resid := make([]float64, n)
	errs := make([]float64, n)
	for k, inst := range a.rvu.Instruments {
		mu, jit := ps.at(a.rvu.mu[k]), ps.at(a.rvu.jitter[k])
		for _, ix := range a.rvu.Indices[inst] {
			resid[ix] = a.rvu.Value[ix] - (model[ix] + mu)
			errs[ix] = math.Sqrt(a.rvu.Error[ix]*a.rvu.Error[ix] + jit*jit)
		}
	}
	vec, err := gp.Marshal(a.rvu.kind, gp.RadialVelocity, a.rvu.binding, ps, a.rvu.nCov)
	if err != nil {
		return 0, false, err
	}
	if err := a.rvu.gpo.Compute(a.rvu.Covariates, errs); err != nil {
		return 0, false, err
	}
	if err := a.rvu.gpo.SetParameterVector(vec); err != nil {
		return 0, false, err
	}
	v, err := a.rvu.gpo.LogLikelihood(resid)
	if err != nil {
		return 0, false, err
	}

	return ll + v, true, nil
}

// periodsOrdered gates on ascending, positive periods in planet-numbering
// order, preventing the sampler from exploring label-swapped modes.
func periodsOrdered(ps ParameterSet, names []string) bool {
	prev := 0.0
	for i, name := range names {
		p := ps.at(name)
		if p <= 0 || (i > 0 && p < prev) {
			return false
		}
		prev = p
	}

	return true
}
