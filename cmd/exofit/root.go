package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the exofit entry point; subcommands carry the actual work.
var rootCmd = &cobra.Command{
	Use:   "exofit",
	Short: "Bayesian transit and radial-velocity fitting",
	Long: `exofit fits exoplanet transit photometry and radial velocities with
nested sampling: priors are declared per parameter, multi-instrument
datasets are composed into a joint likelihood (optionally with GP
correlated noise), and the posterior and evidence are persisted for
resumable runs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
