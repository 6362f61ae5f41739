package gp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueSource supplies the current physical value of a named parameter.
// The likelihood aggregator's per-evaluation ParameterSet implements it.
type ValueSource interface {
	Value(name string) (float64, bool)
}

// Binding is the build-time table resolving each hyperparameter role of one
// GP to the full prior-parameter name that supplies its value, plus the
// instrument's white-noise parameter used for the jitter slot (photometric
// layouts only). It is computed exactly once from configuration; the
// sampler loop only performs map lookups against it.
type Binding struct {
	Roles      map[string]string // role -> full parameter name (GP_<role>_<group>)
	JitterName string            // white-noise parameter; empty in the RV context
}

// DetectKernel infers the kernel family from the declared GP_ prior names
// for one instrument (or for the pooled RV dataset when isRV is set):
// an alpha0 role means a multi-dimensional squared exponential, a Gamma
// role the exp-sine-squared kernel, and a B role the celerite rotation
// kernel.
func DetectKernel(names []string, instrument string, isRV bool) (KernelKind, error) {
	for _, marker := range []struct {
		role string
		kind KernelKind
	}{
		{"alpha0", SEKernel},
		{"Gamma", ExpSineSquaredSEKernel},
		{"B", CeleriteQPKernel},
	} {
		for _, name := range names {
			vec := strings.Split(name, "_")
			if len(vec) < 3 || vec[0] != "GP" || !strings.Contains(vec[1], marker.role) {
				continue
			}
			if matchesGroup(vec, instrument, isRV) {
				return marker.kind, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: no GP hyperparameters declared for %q", ErrUnknownKernel, instrument)
}

// BindGroups builds the role → parameter-name table for one GP by scanning
// the declared parameter names once. Shared groups are underscore-joined
// instrument lists (GP_Prot_TESS_K2_RV); a role whose group does not
// mention this instrument is ignored, and a role with no match at all is a
// configuration error.
func BindGroups(kind KernelKind, names []string, instrument, jitterName string, nCov int, isRV bool) (Binding, error) {
	roles, err := Roles(kind, nCov)
	if err != nil {
		return Binding{}, err
	}
	b := Binding{Roles: make(map[string]string, len(roles)), JitterName: jitterName}
	for _, role := range roles {
		for _, name := range names {
			vec := strings.Split(name, "_")
			if len(vec) < 3 || vec[0] != "GP" || !strings.Contains(vec[1], role) {
				continue
			}
			// alpha also substring-matches alpha0..alphaN; require the exact
			// role tag for the SE kernel's indexed coefficients.
			if kind == SEKernel && vec[1] != role {
				continue
			}
			if matchesGroup(vec, instrument, isRV) {
				b.Roles[role] = name

				break
			}
		}
		if _, ok := b.Roles[role]; !ok {
			return Binding{}, fmt.Errorf("%w: %s (instrument %q)", ErrUnboundRole, role, instrument)
		}
	}

	return b, nil
}

// matchesGroup reports whether an underscore-split GP parameter name binds
// to the given instrument; the pooled RV GP matches any group whose last
// component mentions "rv".
func matchesGroup(vec []string, instrument string, isRV bool) bool {
	if isRV {
		return strings.Contains(strings.ToLower(vec[len(vec)-1]), "rv")
	}
	for _, part := range vec[2:] {
		if part == instrument {
			return true
		}
	}

	return false
}

// Marshal assembles the kernel's fixed-order parameter vector from the
// bound prior values. Photometric σ/jitter values are declared in ppm and
// scaled here; see the package documentation for the exact layouts.
func Marshal(kind KernelKind, ctx Context, b Binding, vals ValueSource, nCov int) ([]float64, error) {
	n, err := VectorLen(kind, ctx, nCov)
	if err != nil {
		return nil, err
	}
	vec := make([]float64, n)

	role := func(r string) (float64, error) {
		name, ok := b.Roles[r]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnboundRole, r)
		}
		v, ok := vals.Value(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s (parameter %q has no value)", ErrUnboundRole, r, name)
		}

		return v, nil
	}
	jitter := func() (float64, error) {
		v, ok := vals.Value(b.JitterName)
		if !ok {
			return 0, fmt.Errorf("%w: jitter (parameter %q has no value)", ErrUnboundRole, b.JitterName)
		}

		return v, nil
	}

	switch kind {
	case SEKernel:
		jw, err := jitter()
		if err != nil {
			return nil, err
		}
		sigma, err := role("sigma")
		if err != nil {
			return nil, err
		}
		vec[0] = math.Log((jw * ppm) * (jw * ppm))
		vec[1] = math.Log((sigma * ppm) * (sigma * ppm))
		for i := 0; i < nCov; i++ {
			alpha, err := role("alpha" + strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			vec[2+i] = math.Log(1 / alpha)
		}
	case ExpSineSquaredSEKernel:
		sigma, err := role("sigma")
		if err != nil {
			return nil, err
		}
		alpha, err := role("alpha")
		if err != nil {
			return nil, err
		}
		gamma, err := role("Gamma")
		if err != nil {
			return nil, err
		}
		prot, err := role("Prot")
		if err != nil {
			return nil, err
		}
		i := 0
		if ctx == Photometric {
			jw, err := jitter()
			if err != nil {
				return nil, err
			}
			vec[0] = math.Log((jw * ppm) * (jw * ppm))
			sigma *= ppm
			i = 1
		}
		vec[i] = math.Log(sigma * sigma)
		vec[i+1] = math.Log(1 / alpha)
		vec[i+2] = gamma
		vec[i+3] = math.Log(prot)
	case CeleriteQPKernel:
		for j, r := range []string{"B", "L", "Prot", "C"} {
			v, err := role(r)
			if err != nil {
				return nil, err
			}
			vec[j] = math.Log(v)
		}
		if ctx == Photometric {
			jw, err := jitter()
			if err != nil {
				return nil, err
			}
			vec[4] = math.Log(jw * ppm)
		}
	default:
		return nil, ErrUnknownKernel
	}

	return vec, nil
}
