// Package gp provides the Gaussian-process correlated-noise oracle used by
// the likelihood aggregator, together with the hyperparameter marshaling
// that connects named prior parameters to each kernel's fixed-order vector.
//
// Overview:
//
//	A GP instance owns a kernel family, a covariate matrix and per-point
//	measurement uncertainties. Its lifecycle mirrors the classic GP-library
//	surface:
//
//	  Compute(X, yerr)          — bind covariates and uncertainties
//	  SetParameterVector(v)     — update hyperparameters (fixed layout)
//	  LogLikelihood(resid)      — marginal likelihood of residuals
//	  Predict(resid, Xq)        — conditional mean and variance
//
//	The covariance is factorized with gonum's dense Cholesky whenever the
//	hyperparameter vector changes; a factorization failure reports
//	ErrNotPositiveDefinite and is treated as fatal by callers — it signals a
//	configuration or data problem, never ordinary prior-space infeasibility.
//
// Kernel families (closed enumeration, each owning its vector layout):
//
//   - SEKernel — multi-dimensional squared exponential over standardized
//     covariates. Photometric vector (length nCov+2):
//     [log(jitter²), log(σ²), log(1/α₀), …, log(1/α_{nCov-1})].
//   - ExpSineSquaredSEKernel — quasi-periodic σ²·exp(-α·Δt²/2)·
//     exp(-Γ·sin²(πΔt/Prot)). Photometric vector (length 5):
//     [log(jitter²), log(σ²), log(1/α), Γ, log(Prot)]; the RV vector
//     (length 4) omits the jitter slot — RV jitter enters the likelihood
//     through the inflated measurement errors instead.
//   - CeleriteQPKernel — the celerite rotation covariance
//     B/(2+C)·exp(-Δt/L)·(cos(2πΔt/Prot) + 1 + C). Photometric vector
//     (length 5): [log(B), log(L), log(Prot), log(C), log(jitter)]; RV
//     (length 4) omits the jitter term.
//
// Photometric jitter and σ hyperparameters are declared in ppm and scaled
// by 1e-6 during marshaling; RV hyperparameters are in data units.
//
// Hyperparameter sharing:
//
//	Prior names like GP_Prot_TESS_K2_RV declare a hyperparameter shared by
//	several instruments. BindGroups resolves, once at configuration time,
//	the role → shared-group table for one instrument (or for the pooled RV
//	dataset); Marshal then assembles the kernel vector from a value source
//	with plain map lookups — no name parsing ever happens inside the
//	sampler loop.
//
// Concurrency: a GP is not safe for concurrent mutation. Evaluation workers
// must each hold their own Clone(), which shares the immutable covariates
// and uncertainties but owns its vector and factorization scratch.
//
// Error handling (sentinel errors): ErrUnknownKernel, ErrUnsupported,
// ErrBadVector, ErrNotComputed, ErrDimension, ErrUnboundRole,
// ErrNotPositiveDefinite.
package gp
