package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile is returned when a data file has no observation rows.
	ErrEmptyFile = errors.New("dataset: file has no data rows")

	// ErrBadRecord is returned for a malformed observation row.
	ErrBadRecord = errors.New("dataset: malformed record")

	// ErrUnknownInstrument is returned by Select for an instrument name the
	// file never mentions.
	ErrUnknownInstrument = errors.New("dataset: unknown instrument")
)

// DefaultInstrument is assigned to rows of three-column files that omit the
// instrument name.
const DefaultInstrument = "UNNAMED"

// TimeSeries holds one loaded data file in file order, plus the
// per-instrument row-index slices used to take instrument views.
type TimeSeries struct {
	Time  []float64
	Value []float64
	Error []float64

	// Instruments lists the distinct instrument names in order of first
	// appearance; Indices maps each name to its row indices, ascending.
	Instruments []string
	Indices     map[string][]int
}

// Len returns the number of observation rows.
func (ts *TimeSeries) Len() int { return len(ts.Time) }

// Select returns the time, value and error columns restricted to one
// instrument, preserving row order.
func (ts *TimeSeries) Select(instrument string) (t, v, e []float64, err error) {
	idx, ok := ts.Indices[instrument]
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
	}
	t = make([]float64, len(idx))
	v = make([]float64, len(idx))
	e = make([]float64, len(idx))
	for i, j := range idx {
		t[i], v[i], e[i] = ts.Time[j], ts.Value[j], ts.Error[j]
	}

	return t, v, e, nil
}
