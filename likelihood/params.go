package likelihood

import "github.com/exofit/exofit/prior"

// ParameterSet is the immutable per-evaluation view of all parameter
// values: fixed values come from the registry, free values from the
// sampler's physical vector in registry order. It is built fresh for every
// evaluation and never shared between concurrent evaluations, so the
// aggregator carries no mutable per-parameter state.
type ParameterSet struct {
	reg  *prior.Registry
	free []float64
}

// NewParameterSet wraps a physical vector. The vector is aliased, not
// copied; callers must not mutate it during the evaluation.
func NewParameterSet(reg *prior.Registry, x []float64) (ParameterSet, error) {
	if len(x) != reg.NFree() {
		return ParameterSet{}, ErrLengthMismatch
	}

	return ParameterSet{reg: reg, free: x}, nil
}

// Value returns the current value of a named parameter and whether the
// name is declared. It satisfies the GP marshaler's value source.
func (ps ParameterSet) Value(name string) (float64, bool) {
	if i := ps.reg.FreeIndex(name); i >= 0 {
		return ps.free[i], true
	}

	return ps.reg.FixedValue(name)
}

// at reads a parameter whose presence was validated at Aggregator build
// time, so the lookup cannot miss during evaluation.
func (ps ParameterSet) at(name string) float64 {
	v, _ := ps.Value(name)

	return v
}
