// Package exofit estimates posterior distributions for exoplanet system
// parameters from multi-instrument transit photometry and radial velocities,
// by evaluating a joint Bayesian log-likelihood inside a nested-sampling
// posterior engine.
//
// 🚀 What is exofit?
//
//	A pure-Go joint transit + radial-velocity fitting library built around a
//	numerically careful, concurrency-safe likelihood core:
//	  • Prior registry + unit-cube transforms (uniform, normal, log-uniform,
//	    beta, exponential)
//	  • Efficient (b,p) sampling (Espinoza 2018) and stellar-density ↔ a/R*
//	    reparametrizations
//	  • Three eccentricity parametrizations, dispatched as closed variants
//	  • Per-instrument transit and Keplerian RV model composition, with
//	    dilution/flux-offset transforms, trends and systemic offsets
//	  • Gaussian-process correlated noise (squared-exponential,
//	    exp-sine-squared × SE, celerite-style quasi-periodic kernels)
//	  • A static nested sampler with evidence estimation and equal-weight
//	    posterior resampling, resumable from its on-disk artifact
//
// ✨ Why choose exofit?
//
//   - Total likelihood surface – infeasible draws are floored, never panic
//   - Safe parallel evaluation – every evaluation is a pure function of the
//     sampled vector plus immutable configuration
//   - Extensible – transit, RV, GP and sampler backends are oracle
//     interfaces; swap in your own without touching the aggregator
//
// Everything is organized under focused subpackages:
//
//	prior/      — parameter registry, priors, unit-cube transforms
//	orbit/      — geometry and eccentricity reparametrizations
//	transit/    — transit light-curve oracle + default occultation model
//	rv/         — Keplerian radial-velocity oracle + trends
//	gp/         — Gaussian-process oracle, kernels and marshaling
//	likelihood/ — per-instrument model composition and aggregation
//	dataset/    — multi-instrument time-series loading
//	nested/     — nested-sampling oracle and posterior resampling
//	fit/        — end-to-end fit driver with resumable persistence
//	cmd/exofit  — the command-line interface
//
// Dive into each package's doc.go for algorithms, complexity and error
// contracts.
//
//	go get github.com/exofit/exofit
package exofit
