package nested

import "errors"

// ErrBadOptions indicates invalid sampler options.
var ErrBadOptions = errors.New("nested: invalid sampler options")

// Problem is the sampler's view of a model: a fixed-dimension unit-cube
// prior transform and a total log-likelihood surface (infeasible regions
// floored, never raised as errors).
type Problem interface {
	NDim() int
	PriorTransform(u []float64) ([]float64, error)
	LogLike(x []float64) (float64, error)
}

// Options tunes the static sampler. The zero value selects the defaults.
type Options struct {
	// NLive is the live-point count. Default 500.
	NLive int

	// Walks is the minimum number of random-walk steps per replacement.
	// Default 25.
	Walks int

	// DLogZ is the evidence-tolerance stopping criterion. Default 0.1.
	DLogZ float64

	// Workers sets how many Problems evaluate concurrently. Default 1.
	Workers int

	// Seed makes runs reproducible. Zero seeds from the default source.
	Seed int64

	// MaxIter caps the iteration count as a safety valve; 0 means no cap.
	MaxIter int
}

func (o Options) withDefaults() Options {
	if o.NLive == 0 {
		o.NLive = 500
	}
	if o.Walks == 0 {
		o.Walks = 25
	}
	if o.DLogZ == 0 {
		o.DLogZ = 0.1
	}
	if o.Workers == 0 {
		o.Workers = 1
	}

	return o
}

// Result holds the weighted dead points and evidence of one run. Samples
// are in physical space; LogWt are unnormalized importance log-weights
// (subtract LogZ to normalize).
type Result struct {
	Samples [][]float64
	LogWt   []float64
	LogL    []float64

	LogZ    float64
	LogZErr float64

	NCall int
	NIter int
}
