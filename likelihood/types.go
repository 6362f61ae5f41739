package likelihood

import (
	"errors"

	"github.com/exofit/exofit/orbit"
	"github.com/exofit/exofit/prior"
	"github.com/exofit/exofit/rv"
	"github.com/exofit/exofit/transit"
)

var (
	// ErrMissingParameter indicates a parameter name the configured model
	// needs is not declared in the prior registry.
	ErrMissingParameter = errors.New("likelihood: required parameter not declared")

	// ErrBadConfig indicates inconsistent datasets or model options.
	ErrBadConfig = errors.New("likelihood: invalid configuration")

	// ErrLengthMismatch indicates a physical vector whose length differs
	// from the registry's free parameter count.
	ErrLengthMismatch = errors.New("likelihood: physical vector length does not match free parameter count")
)

// FloorLogLike is returned for infeasible samples: a finite very-negative
// value, practically −∞ for sampler arithmetic, so the likelihood surface
// stays defined everywhere.
const FloorLogLike = -1e101

// MaxTransitEcc is the exclusive eccentricity ceiling for transit-affecting
// evaluations; RV-only evaluations allow any e < 1.
const MaxTransitEcc = 0.95

// Photometer describes one photometric instrument and its light curve.
// A non-nil Covariates matrix (one row per observation) switches the
// instrument's noise model from white noise to a GP over those covariates.
type Photometer struct {
	Name    string
	Law     transit.LDLaw
	Super   transit.Supersampling
	Time    []float64
	Flux    []float64
	FluxErr []float64

	Covariates [][]float64
}

// RVData holds the pooled radial-velocity dataset across all instruments,
// in file order, with per-instrument row indices. A non-nil Covariates
// matrix enables a single GP shared by all RV instruments.
type RVData struct {
	Time  []float64
	Value []float64
	Error []float64

	Instruments []string
	Indices     map[string][]int

	Covariates [][]float64
}

// DensityConstraint is an external stellar-density measurement added as a
// Gaussian likelihood term when the density is not itself being sampled.
type DensityConstraint struct {
	Mean  float64 // kg/m³
	Sigma float64
}

// Config assembles everything the Aggregator needs. Registry is required;
// at least one of Photometers and RV must be present.
type Config struct {
	Registry *prior.Registry

	Photometers []Photometer
	RV          *RVData

	// Bounds is the (pl, pu) radius-ratio window of the efficient (r1, r2)
	// sampling scheme; required when any planet declares r1/r2 parameters.
	Bounds orbit.SamplingBounds

	Density *DensityConstraint

	// DensityPlanet selects the planet whose (a, P) feed the density
	// constraint; 0 selects the last transiting planet.
	DensityPlanet int

	// Oracles; nil selects the built-in models.
	TransitOracle transit.Oracle
	RVOracle      rv.Oracle
}
