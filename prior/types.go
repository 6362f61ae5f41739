package prior

import "errors"

// Sentinel errors returned by registry construction and lookups.
var (
	// ErrUnknownKind indicates an unsupported distribution kind.
	ErrUnknownKind = errors.New("prior: unknown distribution kind")

	// ErrDuplicateName indicates two parameters declared with the same name.
	ErrDuplicateName = errors.New("prior: duplicate parameter name")

	// ErrLengthMismatch indicates a cube or physical vector whose length does
	// not equal the number of free parameters.
	ErrLengthMismatch = errors.New("prior: vector length does not match free parameter count")

	// ErrUnknownParameter indicates a lookup of an undeclared parameter.
	ErrUnknownParameter = errors.New("prior: unknown parameter")

	// ErrBadPriorFile indicates a malformed prior file.
	ErrBadPriorFile = errors.New("prior: malformed prior file")
)

// Kind enumerates the supported prior distribution kinds.
type Kind int

const (
	// Fixed pins the parameter to a constant; it never enters the cube.
	Fixed Kind = iota

	// Uniform is flat on [A, B].
	Uniform

	// Normal is Gaussian with mean A and standard deviation B.
	Normal

	// LogUniform (Jeffreys) is flat in log-space on [A, B].
	LogUniform

	// Beta is the Beta(α=A, β=B) distribution on [0, 1].
	Beta

	// Exponential has scale A.
	Exponential
)

// String returns the prior-file tag for the kind.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	case LogUniform:
		return "loguniform"
	case Beta:
		return "beta"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// KindFromString parses a prior-file distribution tag. "jeffreys" is an
// accepted alias for log-uniform.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "fixed":
		return Fixed, nil
	case "uniform":
		return Uniform, nil
	case "normal":
		return Normal, nil
	case "loguniform", "jeffreys":
		return LogUniform, nil
	case "beta":
		return Beta, nil
	case "exponential":
		return Exponential, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Parameter declares one named model parameter.
//
// Hyperparameter meaning per kind: Fixed uses A as the pinned value;
// Uniform/LogUniform use (A, B) as bounds; Normal as (mean, sd); Beta as
// (α, β); Exponential uses A as the scale.
type Parameter struct {
	Name string
	Kind Kind
	A, B float64
}
