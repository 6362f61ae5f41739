// Package fit drives a full run: load priors and datasets, build the
// likelihood aggregator, sample, and persist the posterior artifact.
//
// # Overview
//
// Run is resumable through its single persisted artifact,
// posteriors.json, holding the named posterior sample arrays, the
// log-evidence and its uncertainty. When the artifact already exists in
// the output directory the sampling stage is skipped entirely and the
// result is reloaded, with the registry re-read from the prior file copied
// alongside it on the first run.
//
// All progress logging happens here and in cmd — never inside the
// evaluation path, which must stay free of I/O.
package fit
