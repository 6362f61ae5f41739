package likelihood

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exofit/exofit/gp"
	"github.com/exofit/exofit/orbit"
	"github.com/exofit/exofit/prior"
	"github.com/exofit/exofit/rv"
	"github.com/exofit/exofit/transit"
)

// transitPlanet is the build-time name table of one transiting planet:
// every registry name its evaluation reads, resolved once.
type transitPlanet struct {
	id        int
	efficient bool // (r1, r2) sampling instead of direct (b, p)
	fromRho   bool // a derived from the sampled stellar density
	eccParam  orbit.EccParametrization

	period, t0, a, b, p, r1, r2, e1, e2 string
}

// rvPlanet is the analogous table for one RV planet.
type rvPlanet struct {
	id       int
	eccParam orbit.EccParametrization

	period, t0, k, e1, e2 string
}

// photUnit couples one photometer's data with its resolved parameter names
// and, when configured, its GP oracle and binding table.
type photUnit struct {
	Photometer

	q1, q2, dilution, offset, jitter string

	gpo     gp.Oracle
	kind    gp.KernelKind
	binding gp.Binding
	nCov    int
}

// rvUnit is the pooled RV dataset with per-instrument parameter names and
// the optional shared GP.
type rvUnit struct {
	*RVData

	mu, jitter []string // parallel to Instruments

	gpo     gp.Oracle
	kind    gp.KernelKind
	binding gp.Binding
	nCov    int
}

// Aggregator evaluates the joint log-likelihood. Build it once with
// NewAggregator; evaluate through per-worker Clones when sampling in
// parallel.
type Aggregator struct {
	reg *prior.Registry

	tPlanets []transitPlanet
	tPeriods []string
	rPlanets []rvPlanet
	rPeriods []string

	phot []photUnit
	rvu  *rvUnit

	bounds    orbit.SamplingBounds
	fitRho    bool
	density   *DensityConstraint
	densityID int

	hasSlope, hasQuad bool

	toracle transit.Oracle
	roracle rv.Oracle
}

// NewAggregator validates the configuration against the registry and
// resolves every name, numbering, kernel and binding the evaluation loop
// will use. All configuration errors surface here, never per sample.
func NewAggregator(cfg Config) (*Aggregator, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrBadConfig)
	}
	if len(cfg.Photometers) == 0 && cfg.RV == nil {
		return nil, fmt.Errorf("%w: no datasets", ErrBadConfig)
	}

	a := &Aggregator{
		reg:     cfg.Registry,
		bounds:  cfg.Bounds,
		fitRho:  cfg.Registry.Has("rho"),
		density: cfg.Density,
		toracle: cfg.TransitOracle,
		roracle: cfg.RVOracle,
	}
	if a.toracle == nil {
		a.toracle = transit.Model{}
	}
	if a.roracle == nil {
		a.roracle = rv.Model{}
	}

	num, err := a.reg.PlanetNumbering()
	if err != nil {
		return nil, err
	}

	var gpNames []string
	for _, name := range a.reg.Names() {
		if strings.HasPrefix(name, "GP_") {
			gpNames = append(gpNames, name)
		}
	}

	if len(cfg.Photometers) > 0 {
		if err := a.buildTransit(num.Transit); err != nil {
			return nil, err
		}
		if err := a.buildPhotometers(cfg.Photometers, gpNames); err != nil {
			return nil, err
		}
		if err := a.resolveDensity(cfg, num.Transit); err != nil {
			return nil, err
		}
	}
	if cfg.RV != nil {
		if err := a.buildRV(cfg.RV, num.RV, gpNames); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// NDim returns the sampler dimensionality: the free parameter count.
func (a *Aggregator) NDim() int { return a.reg.NFree() }

// PriorTransform maps a unit-cube vector to physical values in registry
// order.
func (a *Aggregator) PriorTransform(u []float64) ([]float64, error) {
	return a.reg.Transform(u)
}

// Clone returns an evaluation-independent copy: shared immutable
// configuration and data, private GP oracles.
func (a *Aggregator) Clone() *Aggregator {
	c := *a
	c.phot = append([]photUnit(nil), a.phot...)
	for i := range c.phot {
		if c.phot[i].gpo != nil {
			c.phot[i].gpo = c.phot[i].gpo.Clone()
		}
	}
	if a.rvu != nil {
		r := *a.rvu
		if r.gpo != nil {
			r.gpo = r.gpo.Clone()
		}
		c.rvu = &r
	}

	return &c
}

func (a *Aggregator) buildTransit(ids []int) error {
	for _, id := range ids {
		s := strconv.Itoa(id)
		tp := transitPlanet{
			id:     id,
			period: "P_p" + s,
			t0:     "t0_p" + s,
		}
		if err := a.require(tp.period, tp.t0); err != nil {
			return err
		}
		if a.reg.Has("r1_p" + s) {
			tp.efficient = true
			tp.r1, tp.r2 = "r1_p"+s, "r2_p"+s
			if err := a.require(tp.r2); err != nil {
				return err
			}
			if !(a.bounds.Pu > a.bounds.Pl) {
				return fmt.Errorf("%w: planet %d uses (r1, r2) sampling but no radius-ratio bounds were given", ErrBadConfig, id)
			}
		} else {
			tp.b, tp.p = "b_p"+s, "p_p"+s
			if err := a.require(tp.b, tp.p); err != nil {
				return err
			}
		}
		if a.fitRho {
			tp.fromRho = true
		} else {
			tp.a = "a_p" + s
			if err := a.require(tp.a); err != nil {
				return err
			}
		}
		var err error
		tp.eccParam, tp.e1, tp.e2, err = a.detectEcc(id)
		if err != nil {
			return err
		}
		a.tPlanets = append(a.tPlanets, tp)
		a.tPeriods = append(a.tPeriods, tp.period)
	}

	return nil
}

func (a *Aggregator) buildPhotometers(phots []Photometer, gpNames []string) error {
	for _, ph := range phots {
		if len(ph.Time) == 0 || len(ph.Time) != len(ph.Flux) || len(ph.Time) != len(ph.FluxErr) {
			return fmt.Errorf("%w: instrument %q has inconsistent light-curve columns", ErrBadConfig, ph.Name)
		}
		u := photUnit{
			Photometer: ph,
			q1:         "q1_" + ph.Name,
			dilution:   "mdilution_" + ph.Name,
			offset:     "mflux_" + ph.Name,
			jitter:     "sigma_w_" + ph.Name,
		}
		if err := a.require(u.q1, u.dilution, u.offset, u.jitter); err != nil {
			return err
		}
		if ph.Law != transit.Linear {
			u.q2 = "q2_" + ph.Name
			if err := a.require(u.q2); err != nil {
				return err
			}
		}
		if ph.Covariates != nil {
			if len(ph.Covariates) != len(ph.Time) {
				return fmt.Errorf("%w: instrument %q has %d covariate rows for %d observations", ErrBadConfig, ph.Name, len(ph.Covariates), len(ph.Time))
			}
			u.nCov = len(ph.Covariates[0])
			kind, err := gp.DetectKernel(gpNames, ph.Name, false)
			if err != nil {
				return err
			}
			u.kind = kind
			u.binding, err = gp.BindGroups(kind, gpNames, ph.Name, u.jitter, u.nCov, false)
			if err != nil {
				return err
			}
			u.gpo, err = gp.New(kind, gp.Photometric, u.nCov)
			if err != nil {
				return err
			}
			if err := u.gpo.Compute(ph.Covariates, ph.FluxErr); err != nil {
				return err
			}
		}
		a.phot = append(a.phot, u)
	}

	return nil
}

func (a *Aggregator) buildRV(data *RVData, ids []int, gpNames []string) error {
	if len(data.Time) == 0 || len(data.Time) != len(data.Value) || len(data.Time) != len(data.Error) {
		return fmt.Errorf("%w: inconsistent RV columns", ErrBadConfig)
	}
	u := &rvUnit{RVData: data}
	for _, inst := range data.Instruments {
		mu, jit := "mu_"+inst, "sigma_w_rv_"+inst
		if err := a.require(mu, jit); err != nil {
			return err
		}
		u.mu = append(u.mu, mu)
		u.jitter = append(u.jitter, jit)
	}

	for _, id := range ids {
		s := strconv.Itoa(id)
		rp := rvPlanet{
			id:     id,
			period: "P_p" + s,
			t0:     "t0_p" + s,
			k:      "K_p" + s,
		}
		if err := a.require(rp.period, rp.t0, rp.k); err != nil {
			return err
		}
		var err error
		rp.eccParam, rp.e1, rp.e2, err = a.detectEcc(id)
		if err != nil {
			return err
		}
		a.rPlanets = append(a.rPlanets, rp)
		a.rPeriods = append(a.rPeriods, rp.period)
	}

	a.hasSlope = a.reg.Has("rv_slope")
	a.hasQuad = a.reg.Has("rv_quad")
	if a.hasQuad && !a.hasSlope {
		return fmt.Errorf("%w: rv_quad declared without rv_slope", ErrBadConfig)
	}
	if a.hasSlope {
		if err := a.require("rv_tzero"); err != nil {
			return err
		}
	}

	if data.Covariates != nil {
		if len(data.Covariates) != len(data.Time) {
			return fmt.Errorf("%w: %d RV covariate rows for %d observations", ErrBadConfig, len(data.Covariates), len(data.Time))
		}
		u.nCov = len(data.Covariates[0])
		kind, err := gp.DetectKernel(gpNames, "", true)
		if err != nil {
			return err
		}
		u.kind = kind
		u.binding, err = gp.BindGroups(kind, gpNames, "", "", u.nCov, true)
		if err != nil {
			return err
		}
		u.gpo, err = gp.New(kind, gp.RadialVelocity, u.nCov)
		if err != nil {
			return err
		}
	}
	a.rvu = u

	return nil
}

// resolveDensity validates the external stellar-density constraint and
// selects the planet whose (a, P) feed it. The constraint only applies
// when the density is not itself a sampled parameter.
func (a *Aggregator) resolveDensity(cfg Config, transitIDs []int) error {
	if cfg.Density == nil || a.fitRho {
		a.density = nil

		return nil
	}
	if cfg.Density.Sigma <= 0 {
		return fmt.Errorf("%w: density constraint needs a positive sigma", ErrBadConfig)
	}
	if len(transitIDs) == 0 {
		return fmt.Errorf("%w: density constraint needs at least one transiting planet", ErrBadConfig)
	}
	a.densityID = cfg.DensityPlanet
	if a.densityID == 0 {
		a.densityID = transitIDs[len(transitIDs)-1]
	}
	for _, id := range transitIDs {
		if id == a.densityID {
			return nil
		}
	}

	return fmt.Errorf("%w: density planet %d is not a transiting planet", ErrBadConfig, a.densityID)
}

// detectEcc infers a planet's eccentricity parametrization from which
// names are declared.
func (a *Aggregator) detectEcc(id int) (orbit.EccParametrization, string, string, error) {
	s := strconv.Itoa(id)
	switch {
	case a.reg.Has("ecc_p"+s) && a.reg.Has("omega_p"+s):
		return orbit.Direct, "ecc_p" + s, "omega_p" + s, nil
	case a.reg.Has("ecosomega_p"+s) && a.reg.Has("esinomega_p"+s):
		return orbit.CosSin, "ecosomega_p" + s, "esinomega_p" + s, nil
	case a.reg.Has("secosomega_p"+s) && a.reg.Has("sesinomega_p"+s):
		return orbit.SqrtCosSin, "secosomega_p" + s, "sesinomega_p" + s, nil
	default:
		return 0, "", "", fmt.Errorf("%w: planet %d has no eccentricity parametrization", ErrMissingParameter, id)
	}
}

// require checks that every name is declared in the registry.
func (a *Aggregator) require(names ...string) error {
	for _, name := range names {
		if !a.reg.Has(name) {
			return fmt.Errorf("%w: %s", ErrMissingParameter, name)
		}
	}

	return nil
}
