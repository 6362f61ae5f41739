package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exofit/exofit/fit"
	"github.com/exofit/exofit/transit"
)

var fitFlags struct {
	lcFile     string
	rvFile     string
	priorFile  string
	outDir     string
	ldLaw      string
	lcEParams  string
	rvEParams  string
	pl, pu     float64
	sdMean     float64
	sdSigma    float64
	sdPlanet   int
	ssInst     string
	ssN        string
	ssExp      string
	nLive      int
	walks      int
	dLogZ      float64
	workers    int
	seed       int64
}

// fitCmd runs one full fit from a prior file and data files.
var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a transit and/or RV dataset",
	Long: `Fits the datasets against the declared priors and writes the posterior
artifact into the output folder. Rerunning with the same folder reloads
the artifact instead of sampling again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		super, err := parseSupersampling(fitFlags.ssInst, fitFlags.ssN, fitFlags.ssExp)
		if err != nil {
			return err
		}
		cfg := fit.Config{
			PriorFile:     fitFlags.priorFile,
			LCFile:        fitFlags.lcFile,
			RVFile:        fitFlags.rvFile,
			OutDir:        fitFlags.outDir,
			LDLaw:         fitFlags.ldLaw,
			Supersampling: super,
			LCEParamFile:  fitFlags.lcEParams,
			RVEParamFile:  fitFlags.rvEParams,
			Pl:            fitFlags.pl,
			Pu:            fitFlags.pu,
			DensityMean:   fitFlags.sdMean,
			DensitySigma:  fitFlags.sdSigma,
			DensityPlanet: fitFlags.sdPlanet,
			NLive:         fitFlags.nLive,
			Walks:         fitFlags.walks,
			DLogZ:         fitFlags.dLogZ,
			Workers:       fitFlags.workers,
			Seed:          fitFlags.seed,
		}
		res, err := fit.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		fmt.Printf("lnZ = %.4f +/- %.4f  (%d parameters, %d samples)\n",
			res.LogZ, res.LogZErr, len(res.Posteriors), posteriorLen(res))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)

	fitCmd.Flags().StringVar(&fitFlags.priorFile, "priorfile", "", "prior declaration file (column or YAML format)")
	fitCmd.Flags().StringVar(&fitFlags.lcFile, "lcfile", "", "photometry file: time flux error instrument")
	fitCmd.Flags().StringVar(&fitFlags.rvFile, "rvfile", "", "radial-velocity file: time rv error instrument")
	fitCmd.Flags().StringVar(&fitFlags.outDir, "ofolder", "results", "output folder for the posterior artifact")
	fitCmd.Flags().StringVar(&fitFlags.ldLaw, "ldlaw", "quadratic", "limb-darkening law, single or instrument-law list")
	fitCmd.Flags().StringVar(&fitFlags.lcEParams, "lceparamfile", "", "photometric GP external-parameter file")
	fitCmd.Flags().StringVar(&fitFlags.rvEParams, "rveparamfile", "", "RV GP external-parameter file")
	fitCmd.Flags().Float64Var(&fitFlags.pl, "pl", 0, "lower radius-ratio bound for (r1,r2) sampling")
	fitCmd.Flags().Float64Var(&fitFlags.pu, "pu", 0, "upper radius-ratio bound for (r1,r2) sampling")
	fitCmd.Flags().Float64Var(&fitFlags.sdMean, "sdensity-mean", 0, "stellar density measurement mean (kg/m3)")
	fitCmd.Flags().Float64Var(&fitFlags.sdSigma, "sdensity-sigma", 0, "stellar density measurement sigma; 0 disables")
	fitCmd.Flags().IntVar(&fitFlags.sdPlanet, "sdensity-planet", 0, "planet feeding the density term; 0 = last transiting")
	fitCmd.Flags().StringVar(&fitFlags.ssInst, "instrument-supersamp", "", "comma list of supersampled instruments")
	fitCmd.Flags().StringVar(&fitFlags.ssN, "n-supersamp", "", "comma list of supersampling factors")
	fitCmd.Flags().StringVar(&fitFlags.ssExp, "exptime-supersamp", "", "comma list of exposure times (days)")
	fitCmd.Flags().IntVar(&fitFlags.nLive, "nlive", 500, "live points")
	fitCmd.Flags().IntVar(&fitFlags.walks, "walks", 25, "random-walk steps per replacement")
	fitCmd.Flags().Float64Var(&fitFlags.dLogZ, "dlogz", 0.1, "evidence tolerance stopping criterion")
	fitCmd.Flags().IntVar(&fitFlags.workers, "workers", 1, "parallel likelihood workers")
	fitCmd.Flags().Int64Var(&fitFlags.seed, "seed", 0, "random seed; 0 draws one")

	cobra.CheckErr(fitCmd.MarkFlagRequired("priorfile"))
}

// parseSupersampling zips the three comma lists into per-instrument specs.
func parseSupersampling(instCSV, nCSV, expCSV string) (map[string]transit.Supersampling, error) {
	if instCSV == "" {
		return nil, nil
	}
	insts := strings.Split(instCSV, ",")
	ns := strings.Split(nCSV, ",")
	exps := strings.Split(expCSV, ",")
	if len(ns) != len(insts) || len(exps) != len(insts) {
		return nil, fmt.Errorf("supersampling lists must have matching lengths (%d instruments, %d factors, %d exposure times)",
			len(insts), len(ns), len(exps))
	}
	out := make(map[string]transit.Supersampling, len(insts))
	for i, inst := range insts {
		n, err := strconv.Atoi(strings.TrimSpace(ns[i]))
		if err != nil {
			return nil, fmt.Errorf("supersampling factor %q: %w", ns[i], err)
		}
		exp, err := strconv.ParseFloat(strings.TrimSpace(exps[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("exposure time %q: %w", exps[i], err)
		}
		out[strings.TrimSpace(inst)] = transit.Supersampling{N: n, ExpTime: exp}
	}

	return out, nil
}

func posteriorLen(res *fit.Result) int {
	for _, col := range res.Posteriors {
		return len(col)
	}

	return 0
}
