package fit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/exofit/exofit/dataset"
	"github.com/exofit/exofit/likelihood"
	"github.com/exofit/exofit/nested"
	"github.com/exofit/exofit/orbit"
	"github.com/exofit/exofit/prior"
	"github.com/exofit/exofit/transit"
)

// Run executes a fit end to end. If the posterior artifact already exists
// in the output directory, sampling is skipped and the stored result is
// returned.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.PriorFile == "" || cfg.OutDir == "" {
		return nil, fmt.Errorf("%w: prior file and output directory are required", ErrBadConfig)
	}
	if cfg.LCFile == "" && cfg.RVFile == "" {
		return nil, fmt.Errorf("%w: at least one of the light-curve and RV files is required", ErrBadConfig)
	}

	artifact := filepath.Join(cfg.OutDir, ArtifactName)
	if _, err := os.Stat(artifact); err == nil {
		slog.Info("posterior artifact found, skipping sampling", "path", artifact)

		return resume(cfg.OutDir, artifact)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	reg, err := prior.LoadFile(cfg.PriorFile)
	if err != nil {
		return nil, err
	}
	if err := copyFile(cfg.PriorFile, filepath.Join(cfg.OutDir, PriorCopyName)); err != nil {
		return nil, err
	}
	slog.Info("prior registry loaded", "file", cfg.PriorFile, "free", reg.NFree(), "total", len(reg.Names()))

	lcfg := likelihood.Config{Registry: reg, DensityPlanet: cfg.DensityPlanet}
	if cfg.Pu > cfg.Pl {
		lcfg.Bounds, err = orbit.NewSamplingBounds(cfg.Pl, cfg.Pu)
		if err != nil {
			return nil, err
		}
	}
	if cfg.DensitySigma > 0 {
		lcfg.Density = &likelihood.DensityConstraint{Mean: cfg.DensityMean, Sigma: cfg.DensitySigma}
	}
	if cfg.LCFile != "" {
		lcfg.Photometers, err = loadPhotometers(cfg)
		if err != nil {
			return nil, err
		}
	}
	if cfg.RVFile != "" {
		lcfg.RV, err = loadRV(cfg)
		if err != nil {
			return nil, err
		}
	}

	agg, err := likelihood.NewAggregator(lcfg)
	if err != nil {
		return nil, err
	}
	sampler, err := nested.New(nested.Options{
		NLive:   cfg.NLive,
		Walks:   cfg.Walks,
		DLogZ:   cfg.DLogZ,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("sampling", "ndim", agg.NDim(), "nlive", cfg.NLive, "workers", cfg.Workers)
	raw, err := sampler.Run(ctx, func() nested.Problem { return agg.Clone() })
	if err != nil {
		return nil, err
	}
	slog.Info("sampling finished",
		"lnZ", raw.LogZ, "lnZ_err", raw.LogZErr, "ncall", raw.NCall, "niter", raw.NIter)

	eq := raw.EqualWeighted(cfg.Seed + 1)
	res := &Result{
		LogZ:       raw.LogZ,
		LogZErr:    raw.LogZErr,
		Posteriors: make(map[string][]float64, reg.NFree()),
	}
	for i, name := range reg.FreeNames() {
		col := make([]float64, len(eq))
		for j, x := range eq {
			col[j] = x[i]
		}
		res.Posteriors[name] = col
	}
	if err := saveArtifact(artifact, res); err != nil {
		return nil, err
	}
	slog.Info("posterior artifact written", "path", artifact, "samples", len(eq))

	return res, nil
}

// loadPhotometers turns the light-curve file into per-instrument
// photometers with their laws, supersampling and GP covariates.
func loadPhotometers(cfg Config) ([]likelihood.Photometer, error) {
	ts, err := dataset.ReadTimeSeries(cfg.LCFile)
	if err != nil {
		return nil, err
	}
	laws, err := parseLDLaws(cfg.LDLaw, ts.Instruments)
	if err != nil {
		return nil, err
	}
	var cov map[string][][]float64
	if cfg.LCEParamFile != "" {
		cov, err = dataset.ReadCovariates(cfg.LCEParamFile)
		if err != nil {
			return nil, err
		}
	}

	phots := make([]likelihood.Photometer, 0, len(ts.Instruments))
	for _, inst := range ts.Instruments {
		t, v, e, err := ts.Select(inst)
		if err != nil {
			return nil, err
		}
		ph := likelihood.Photometer{Name: inst, Law: laws[inst], Time: t, Flux: v, FluxErr: e}
		if ss, ok := cfg.Supersampling[inst]; ok {
			ph.Super = ss
		}
		if cov != nil {
			rows, ok := cov[inst]
			if !ok {
				return nil, fmt.Errorf("%w: no GP covariates for instrument %q", ErrBadConfig, inst)
			}
			ph.Covariates = rows
		}
		phots = append(phots, ph)
	}

	return phots, nil
}

// loadRV loads the pooled RV dataset and its optional shared-GP
// covariates.
func loadRV(cfg Config) (*likelihood.RVData, error) {
	ts, err := dataset.ReadTimeSeries(cfg.RVFile)
	if err != nil {
		return nil, err
	}
	rvd := &likelihood.RVData{
		Time:        ts.Time,
		Value:       ts.Value,
		Error:       ts.Error,
		Instruments: ts.Instruments,
		Indices:     ts.Indices,
	}
	if cfg.RVEParamFile != "" {
		rvd.Covariates, err = dataset.ReadPooledCovariates(cfg.RVEParamFile)
		if err != nil {
			return nil, err
		}
	}

	return rvd, nil
}

// parseLDLaws resolves the limb-darkening specification: one law for all
// instruments, or comma-separated instrument-law entries.
func parseLDLaws(spec string, instruments []string) (map[string]transit.LDLaw, error) {
	if spec == "" {
		spec = "quadratic"
	}
	out := make(map[string]transit.LDLaw, len(instruments))
	entries := strings.Split(spec, ",")
	if len(entries) == 1 && !strings.Contains(entries[0], "-") {
		law, err := transit.LDLawFromString(strings.ToLower(strings.TrimSpace(entries[0])))
		if err != nil {
			return nil, err
		}
		for _, inst := range instruments {
			out[inst] = law
		}

		return out, nil
	}
	for _, e := range entries {
		parts := strings.SplitN(strings.TrimSpace(e), "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: limb-darkening entry %q", ErrBadConfig, e)
		}
		law, err := transit.LDLawFromString(strings.ToLower(parts[1]))
		if err != nil {
			return nil, err
		}
		out[parts[0]] = law
	}
	for _, inst := range instruments {
		if _, ok := out[inst]; !ok {
			return nil, fmt.Errorf("%w: no limb-darkening law for instrument %q", ErrBadConfig, inst)
		}
	}

	return out, nil
}

func saveArtifact(path string, res *Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	return nil
}

// resume reloads a finished run. The registry comes back from the prior
// copy written next to the artifact, and every free parameter must have a
// posterior column, so a stale or foreign artifact is rejected instead of
// silently returned.
func resume(outDir, artifact string) (*Result, error) {
	res, err := loadArtifact(artifact)
	if err != nil {
		return nil, err
	}
	reg, err := prior.LoadFile(filepath.Join(outDir, PriorCopyName))
	if err != nil {
		return nil, err
	}
	for _, name := range reg.FreeNames() {
		if _, ok := res.Posteriors[name]; !ok {
			return nil, fmt.Errorf("%w: %s has no posterior for free parameter %q", ErrBadArtifact, artifact, name)
		}
	}
	slog.Info("resumed", "free", reg.NFree(), "lnZ", res.LogZ)

	return res, nil
}

func loadArtifact(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadArtifact, path, err)
	}
	if res.Posteriors == nil {
		return nil, fmt.Errorf("%w: %s has no posterior samples", ErrBadArtifact, path)
	}

	return &res, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	return nil
}
