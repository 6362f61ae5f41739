// Package orbit provides the pure numeric reparametrizations that connect
// sampled quantities to the physical orbital geometry of a transiting or
// radial-velocity planet.
//
// Overview:
//
//   - Efficient (b,p) sampling: an area-preserving bijection between the
//     unit square (r1,r2) ∈ [0,1]² and the physically interesting region of
//     the (impact parameter, radius ratio) plane, bounded by a radius-ratio
//     window [Pl, Pu] (Espinoza 2018). Sampling (r1,r2) uniformly avoids the
//     prior-volume pathologies that direct (b,p) sampling suffers at small
//     planet radii.
//   - Stellar density ↔ scaled semi-major axis: Kepler's third law links the
//     mean stellar density ρ to a/R* for a given period, letting a fit share
//     one ρ across all transiting planets instead of one a/R* each.
//   - Eccentricity resolution: three interchangeable parametrizations of the
//     (eccentricity, argument of periastron) pair, dispatched as a closed
//     enumeration, with context-dependent angle units (degrees for transit
//     models, radians for RV models).
//   - Orbital inclination from (b, a, e, ω), including the geometric
//     feasibility test for a transiting configuration.
//
// All functions are pure and allocation-free; they perform no feasibility
// rejection themselves beyond reporting — rejection policy belongs to the
// likelihood aggregator, which turns infeasible geometry into a floored
// log-probability rather than an error.
//
// Error handling (sentinel errors):
//
//   - ErrBadBounds: returned by NewSamplingBounds when the radius-ratio
//     window does not satisfy 0 ≤ Pl < Pu ≤ 1.
//
// Complexity: every function is O(1).
package orbit
