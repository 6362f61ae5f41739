// Package transit evaluates limb-darkened transit light curves.
//
// Overview:
//
//	The likelihood engine consumes transit curves through the Oracle
//	interface, so any backend producing a normalized flux array (baseline 1)
//	on a fixed time grid can be plugged in. The default Model implements a
//	uniform-source circle-overlap occultation with the small-planet
//	limb-darkening correction: the flux deficit is the exact overlap area of
//	the stellar and planetary disks, weighted by the ratio of the stellar
//	intensity at the planet's projected position to the disk-averaged
//	intensity. Exact for the uniform source; a standard approximation,
//	accurate to a few tens of ppm, for radius ratios p ≲ 0.15 under the
//	supported limb-darkening laws.
//
// Features:
//
//   - Limb-darkening laws: linear, quadratic, square-root, logarithmic,
//     with the (q1,q2) → (u1,u2) mapping used when sampling in the
//     triangular q-basis (ReverseLDCoeffs).
//   - Eccentric orbits: projected separation from the true anomaly via the
//     Kepler solver in package orbit; only the transiting half-orbit dims
//     the star (no secondary-eclipse modeling).
//   - Supersampling: n-point boxcar average over a finite exposure time, for
//     long-cadence photometry.
//
// Error handling (sentinel errors):
//
//   - ErrUnknownLDLaw — unsupported limb-darkening law tag (a configuration
//     error; curve evaluation itself cannot fail).
//
// Complexity: O(n·s) per curve for n time samples and supersampling factor
// s (s=1 when supersampling is off).
package transit
