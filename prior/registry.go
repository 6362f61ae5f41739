package prior

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Registry is the immutable, ordered collection of parameter declarations.
// Free parameters occupy consecutive indices in declaration order; that
// index order is the layout contract for every cube and physical vector in
// the system. A Registry is never mutated after construction and is safe
// for concurrent readers.
type Registry struct {
	params    []Parameter
	byName    map[string]int
	freeIndex map[string]int // name -> position in the free vector
	freeNames []string
}

// NewRegistry validates the declarations and builds the registry. Unknown
// kinds and duplicate names are configuration errors, reported here and
// never during sampling.
func NewRegistry(params []Parameter) (*Registry, error) {
	r := &Registry{
		params:    make([]Parameter, len(params)),
		byName:    make(map[string]int, len(params)),
		freeIndex: make(map[string]int),
	}
	copy(r.params, params)
	for i, p := range r.params {
		if p.Kind < Fixed || p.Kind > Exponential {
			return nil, fmt.Errorf("%w: parameter %q", ErrUnknownKind, p.Name)
		}
		if _, dup := r.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		r.byName[p.Name] = i
		if p.Kind != Fixed {
			r.freeIndex[p.Name] = len(r.freeNames)
			r.freeNames = append(r.freeNames, p.Name)
		}
	}

	return r, nil
}

// NFree returns the number of free (sampled) parameters, i.e. the sampler
// dimensionality.
func (r *Registry) NFree() int { return len(r.freeNames) }

// FreeNames returns the free parameter names in cube order. The returned
// slice must not be modified.
func (r *Registry) FreeNames() []string { return r.freeNames }

// Names returns all declared parameter names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.params))
	for i, p := range r.params {
		out[i] = p.Name
	}

	return out
}

// Get returns the declaration for name.
func (r *Registry) Get(name string) (Parameter, error) {
	i, ok := r.byName[name]
	if !ok {
		return Parameter{}, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	return r.params[i], nil
}

// Has reports whether name is declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]

	return ok
}

// FreeIndex returns the cube position of a free parameter, or -1 for fixed
// or undeclared names.
func (r *Registry) FreeIndex(name string) int {
	i, ok := r.freeIndex[name]
	if !ok {
		return -1
	}

	return i
}

// FixedValue returns the pinned value of a fixed parameter and whether the
// name is declared fixed.
func (r *Registry) FixedValue(name string) (float64, bool) {
	i, ok := r.byName[name]
	if !ok || r.params[i].Kind != Fixed {
		return 0, false
	}

	return r.params[i].A, true
}

// Numbering describes the planet numbering scheme derived from parameter
// names: every declared P_p<i> defines planet i; a planet is transiting if
// a radius-ratio parameter (p_p<i> or r1_p<i>) is declared, and an RV planet
// if a semi-amplitude K_p<i> is declared.
type Numbering struct {
	Transit []int
	RV      []int
}

// PlanetNumbering scans the registry and returns ascending transit and RV
// planet numberings. A period with neither a radius-ratio nor a
// semi-amplitude counterpart is a configuration error.
func (r *Registry) PlanetNumbering() (Numbering, error) {
	var num Numbering
	for _, p := range r.params {
		id, ok := planetID(p.Name, "P_p")
		if !ok {
			continue
		}
		transiting := r.Has("p_p"+strconv.Itoa(id)) || r.Has("r1_p"+strconv.Itoa(id))
		inRV := r.Has("K_p" + strconv.Itoa(id))
		if !transiting && !inRV {
			return Numbering{}, fmt.Errorf("%w: planet %d has a period but neither radius ratio nor semi-amplitude", ErrBadPriorFile, id)
		}
		if transiting {
			num.Transit = append(num.Transit, id)
		}
		if inRV {
			num.RV = append(num.RV, id)
		}
	}
	sort.Ints(num.Transit)
	sort.Ints(num.RV)

	return num, nil
}

// planetID extracts the trailing planet number from names like "P_p2".
func planetID(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(name[len(prefix):])
	if err != nil || id < 0 {
		return 0, false
	}

	return id, true
}
