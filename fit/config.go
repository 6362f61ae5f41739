package fit

import (
	"errors"

	"github.com/exofit/exofit/transit"
)

var (
	// ErrBadConfig indicates missing or inconsistent run options.
	ErrBadConfig = errors.New("fit: invalid configuration")

	// ErrBadArtifact indicates an unreadable posterior artifact.
	ErrBadArtifact = errors.New("fit: malformed posterior artifact")
)

// ArtifactName is the persisted posterior file inside the output
// directory; its presence makes a rerun skip sampling.
const ArtifactName = "posteriors.json"

// PriorCopyName is the prior file copied into the output directory, used
// to rebuild the registry when resuming.
const PriorCopyName = "priors.dat"

// Config describes one fit. PriorFile and OutDir are required, plus at
// least one of LCFile and RVFile.
type Config struct {
	PriorFile string
	LCFile    string
	RVFile    string
	OutDir    string

	// LDLaw is either a single law name applied to every photometric
	// instrument, or a comma list of instrument-law entries
	// ("TESS-quadratic,K2-linear").
	LDLaw string

	// Supersampling per photometric instrument.
	Supersampling map[string]transit.Supersampling

	// GP external-parameter files; empty means white noise.
	LCEParamFile string
	RVEParamFile string

	// Radius-ratio window for planets sampled in (r1, r2).
	Pl, Pu float64

	// External stellar-density constraint; Sigma 0 disables it.
	DensityMean  float64
	DensitySigma float64

	// DensityPlanet selects the planet feeding the density term;
	// 0 selects the last transiting planet.
	DensityPlanet int

	// Sampler options.
	NLive   int
	Walks   int
	DLogZ   float64
	Workers int
	Seed    int64
}

// Result is the persisted posterior artifact.
type Result struct {
	LogZ       float64              `json:"lnZ"`
	LogZErr    float64              `json:"lnZ_err"`
	Posteriors map[string][]float64 `json:"posterior_samples"`
}
