// Package dataset loads multi-instrument time-series files for photometric
// and radial-velocity fits.
//
// # Overview
//
// Both photometry and radial velocities use the same whitespace-separated
// text format, one observation per line:
//
//	time  value  error  instrument
//
// Blank lines and lines starting with '#' are skipped. The instrument
// column may be omitted for single-instrument files, in which case every
// row is assigned DefaultInstrument. ReadTimeSeries keeps rows in file
// order and records, per instrument, the row indices belonging to it, so
// callers can slice per-instrument views without copying.
//
// GP external-parameter (covariate) files carry one row of float columns
// per observation. Photometric covariate files end each row with the
// instrument name (ReadCovariates); the pooled radial-velocity file has
// float columns only (ReadPooledCovariates).
//
// # Errors
//
//   - ErrEmptyFile  — no data rows after comment/blank filtering.
//   - ErrBadRecord  — malformed row (wrong column count or non-numeric field).
//   - ErrUnknownInstrument — Select on an instrument the file never names.
package dataset
