// Package likelihood composes the joint log-likelihood evaluated inside
// the sampler's innermost loop.
//
// # Overview
//
// An Aggregator is built once from a prior registry plus the loaded
// datasets. Construction resolves everything derivable from configuration:
// planet numbering and eccentricity parametrizations, every parameter name
// the evaluation will read, limb-darkening laws, and the GP kernel and
// role-binding table of each correlated-noise instrument. Evaluation is
// then a pure function of the physical parameter vector:
//
//  1. Wrap the vector in an immutable ParameterSet (fixed values come from
//     the registry, free values from the vector in registry order).
//  2. Transit side: gate on ascending, positive periods; per planet resolve
//     (b, p) — directly or from the bounded (r1, r2) scheme — the scaled
//     semi-major axis (directly or from a sampled stellar density), and
//     (e, ω); gate on e ≤ 0.95 and on geometric feasibility of the implied
//     inclination. Per instrument, multiply the per-planet transit curves,
//     apply dilution and flux offset, and accumulate the white-noise or GP
//     log-likelihood of the residuals.
//  3. Optionally add a stellar-density constraint term from an external
//     (mean, sigma) measurement.
//  4. RV side: gate on period ordering and e < 1; sum the Keplerian
//     components, add the anchored polynomial trend and per-instrument
//     systemic velocities; accumulate per-instrument white-noise terms, or
//     a single GP term over the jointly pooled residuals.
//
// Every feasibility gate returns FloorLogLike, a finite very-negative
// sentinel that is practically −∞ for sampler arithmetic: the likelihood
// surface stays total and the sampler never sees an exception from
// prior-space exploration. Oracle numerical failure (a non-positive-
// definite GP covariance) is different — it signals a configuration or
// data problem and propagates as an error that aborts the run.
//
// # Concurrency
//
// Evaluations share only immutable state (registry, datasets, bindings).
// The GP oracles carry per-evaluation factorization scratch, so each
// sampler worker must evaluate through its own Clone of the Aggregator.
//
// # Errors
//
//   - ErrMissingParameter — a name the model needs is not declared.
//   - ErrBadConfig        — inconsistent datasets or model options.
//   - ErrLengthMismatch   — physical vector length ≠ free parameter count.
package likelihood
