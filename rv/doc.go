// Package rv evaluates Keplerian radial-velocity models.
//
// Overview:
//
//	A star's reflex motion from each planet adds linearly at leading order,
//	so a multi-planet RV model is the sum of single-planet Keplerians:
//
//	  v(t) = K·(cos(ν(t)+ω) + e·cosω)
//
//	with the true anomaly ν obtained from the Kepler solver in package
//	orbit, referenced to the time of inferior conjunction (the same epoch
//	the transit model uses, so joint fits share one t0 per planet).
//
//	The Oracle interface mirrors the transit side: the likelihood engine
//	consumes RV curves through it and the default Model can be swapped out.
//	PlanetVelocity exposes a single planet's component in isolation, which
//	posterior analysis uses to phase-fold one planet at a time.
//
//	Trend models a systemic acceleration: linear (slope) or quadratic
//	(slope + quad), anchored so the trend is exactly zero at the reference
//	epoch TZero.
//
// Units: K and velocities share the data units (typically m/s); periods and
// times are in days; ω is in radians (the RV context convention of
// orbit.ResolveEcc).
//
// Complexity: O(n·p) for n time samples and p planets.
package rv
