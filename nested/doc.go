// Package nested provides the posterior engine: a static nested sampler
// over a unit-cube prior transform, plus importance resampling of the
// weighted dead points to equal-weight posterior draws.
//
// # Overview
//
// A Problem exposes the sampler contract: dimensionality, the unit-cube →
// physical prior transform, and the log-likelihood of a physical vector.
// The sampler evolves NLive live points through rising likelihood
// contours; each iteration retires the worst point with an importance
// weight from the shrinking prior volume and replaces it by a bounded
// random walk started from a surviving live point, accepting only steps
// above the current likelihood threshold. Sampling stops when the
// remaining evidence contribution of the best live point falls below
// DLogZ, and the surviving live points are retired with their residual
// volume.
//
// The result carries the dead points, their importance log-weights, the
// log-evidence and its information-based uncertainty. EqualWeighted draws
// an equal-weight posterior sample set from the weighted points.
//
// # Concurrency
//
// With Workers > 1 each worker owns an independent Problem from the
// factory handed to Run, and replacement walks for the same threshold run
// as competing candidates; the first finisher wins. Any point returned by
// a walk is uniform on the constrained prior, so racing walkers do not
// bias the sampling.
//
// # Errors
//
//   - ErrBadOptions — non-positive live-point count or worker count.
//   - context errors — Run aborts between iterations when ctx is done.
//   - Problem errors — a transform or likelihood error aborts the run.
package nested
