// Package prior implements the parameter registry and the unit-cube prior
// transform that feed the nested-sampling engine.
//
// Overview:
//
//   - A Registry holds one entry per named model parameter: its distribution
//     kind, hyperparameters, and — for fixed parameters — the pinned value.
//     Free parameters receive consecutive indices in declaration order; that
//     ordering defines the layout of both the sampler's unit-cube vector and
//     the physical parameter vector, and never changes after construction.
//   - Transform maps a unit-cube vector u ∈ [0,1]ⁿ to physical values, one
//     coordinate per free parameter, monotonically per coordinate:
//
//     uniform(lo,hi):     x = lo + u·(hi-lo)
//     normal(μ,σ):        x = Φ⁻¹(u; μ, σ)
//     log-uniform(lo,hi): x = exp(log lo + u·(log hi - log lo))
//     beta(α,β):          x = I⁻¹(u; α, β)
//     exponential(τ):     x = -τ·log(1-u)
//
//     Inverse CDFs come from gonum's stat/distuv.
//   - ParseFile / ParseYAML read the two supported prior-file formats: the
//     whitespace-column text format (name, kind, comma-separated
//     hyperparameters) and an equivalent YAML list.
//   - Numbering derives the planet numbering scheme from parameter names
//     (P_p1, t0_p2, ...) and classifies each planet as transiting, RV, or
//     both, based on which parameters were declared for it.
//
// Unsupported distribution kinds are configuration errors surfaced at
// registry construction, never during sampling: the transform called inside
// the sampler loop cannot fail.
//
// Error handling (sentinel errors):
//
//   - ErrUnknownKind       — unsupported distribution kind.
//   - ErrDuplicateName     — two parameters with the same name.
//   - ErrLengthMismatch    — cube vector length ≠ number of free parameters.
//   - ErrUnknownParameter  — lookup of an undeclared parameter name.
//   - ErrBadPriorFile      — malformed prior file.
//
// Complexity: Transform is O(n) in the number of free parameters with no
// allocations beyond the output vector.
package prior
