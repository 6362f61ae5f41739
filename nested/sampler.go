package nested

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Sampler is a static nested sampler with random-walk replacement.
type Sampler struct {
	opts Options
}

// New validates the options and returns a sampler.
func New(opts Options) (*Sampler, error) {
	opts = opts.withDefaults()
	if opts.NLive < 2 || opts.Walks < 1 || opts.Workers < 1 || opts.DLogZ <= 0 {
		return nil, ErrBadOptions
	}

	return &Sampler{opts: opts}, nil
}

type walkJob struct {
	start     []float64
	threshold float64
}

type walkOut struct {
	u, x  []float64
	logl  float64
	ncall int
	err   error
}

// Run samples the problem to the evidence tolerance. newProblem is called
// once per worker so each owns an independent evaluation state.
func (s *Sampler) Run(ctx context.Context, newProblem func() Problem) (*Result, error) {
	p := newProblem()
	d := p.NDim()
	if d < 1 {
		return nil, fmt.Errorf("%w: problem has no free parameters", ErrBadOptions)
	}
	n := s.opts.NLive
	seed := s.opts.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	jobs := make(chan walkJob)
	outs := make(chan walkOut)
	defer close(jobs)
	for w := 0; w < s.opts.Workers; w++ {
		wp := p
		if w > 0 {
			wp = newProblem()
		}
		wrng := rand.New(rand.NewSource(seed + int64(w) + 1))
		go func() {
			scale := 0.1
			for job := range jobs {
				outs <- s.walk(wp, wrng, job, &scale, d)
			}
		}()
	}

	res := &Result{}
	liveU := make([][]float64, n)
	liveX := make([][]float64, n)
	liveL := make([]float64, n)
	for i := 0; i < n; i++ {
		u := make([]float64, d)
		for k := range u {
			u[k] = rng.Float64()
		}
		x, err := p.PriorTransform(u)
		if err != nil {
			return nil, err
		}
		logl, err := p.LogLike(x)
		if err != nil {
			return nil, err
		}
		liveU[i], liveX[i], liveL[i] = u, x, logl
		res.NCall++
	}

	logZ := math.Inf(-1)
	var h float64
	// log(X_{i-1} - X_i) = -i/n + log(1 - e^{-1/n})
	logShrink := math.Log(1 - math.Exp(-1.0/float64(n)))
	it := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		worst := 0
		best := 0
		for i := 1; i < n; i++ {
			if liveL[i] < liveL[worst] {
				worst = i
			}
			if liveL[i] > liveL[best] {
				best = i
			}
		}

		logwt := -float64(it)/float64(n) + logShrink + liveL[worst]
		logZnew := logAddExp(logZ, logwt)
		h = updateInfo(h, logZ, logZnew, logwt, liveL[worst])
		logZ = logZnew
		res.Samples = append(res.Samples, append([]float64(nil), liveX[worst]...))
		res.LogL = append(res.LogL, liveL[worst])
		res.LogWt = append(res.LogWt, logwt)
		it++

		remain := liveL[best] - float64(it)/float64(n)
		if logAddExp(logZ, remain)-logZ < s.opts.DLogZ {
			break
		}
		if s.opts.MaxIter > 0 && it >= s.opts.MaxIter {
			break
		}

		start := worst
		if n > 1 {
			for start == worst {
				start = rng.Intn(n)
			}
		}
		job := walkJob{
			start:     append([]float64(nil), liveU[start]...),
			threshold: liveL[worst],
		}
		for w := 0; w < s.opts.Workers; w++ {
			jobs <- job
		}
		var won *walkOut
		var firstErr error
		for w := 0; w < s.opts.Workers; w++ {
			o := <-outs
			res.NCall += o.ncall
			if o.err != nil && firstErr == nil {
				firstErr = o.err
			}
			if won == nil && o.err == nil {
				won = &o
			}
		}
		if won == nil {
			return nil, firstErr
		}
		liveU[worst], liveX[worst], liveL[worst] = won.u, won.x, won.logl
	}

	// Retire the surviving live points with the residual prior volume,
	// in ascending likelihood order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return liveL[order[a]] < liveL[order[b]] })
	logResidual := -float64(it)/float64(n) - math.Log(float64(n))
	for _, i := range order {
		logwt := logResidual + liveL[i]
		logZnew := logAddExp(logZ, logwt)
		h = updateInfo(h, logZ, logZnew, logwt, liveL[i])
		logZ = logZnew
		res.Samples = append(res.Samples, append([]float64(nil), liveX[i]...))
		res.LogL = append(res.LogL, liveL[i])
		res.LogWt = append(res.LogWt, logwt)
	}

	res.LogZ = logZ
	if h < 0 {
		h = 0
	}
	res.LogZErr = math.Sqrt(h / float64(n))
	res.NIter = it

	return res, nil
}

// walk runs one likelihood-bounded random walk in the unit cube, starting
// from a surviving live point. At least Walks steps are taken and at least
// one acceptance is required; the proposal scale adapts toward ~50%
// acceptance.
func (s *Sampler) walk(p Problem, rng *rand.Rand, job walkJob, scale *float64, d int) walkOut {
	cur := append([]float64(nil), job.start...)
	curX, err := p.PriorTransform(cur)
	if err != nil {
		return walkOut{err: err}
	}
	curL, err := p.LogLike(curX)
	ncall := 1
	if err != nil {
		return walkOut{err: err, ncall: ncall}
	}

	accept, reject := 0, 0
	prop := make([]float64, d)
	for step := 0; step < s.opts.Walks || accept == 0; step++ {
		if step >= 100*s.opts.Walks {
			break
		}
		for k := 0; k < d; k++ {
			prop[k] = reflectUnit(cur[k] + rng.NormFloat64()*(*scale))
		}
		x, err := p.PriorTransform(prop)
		if err != nil {
			return walkOut{err: err, ncall: ncall}
		}
		logl, err := p.LogLike(x)
		ncall++
		if err != nil {
			return walkOut{err: err, ncall: ncall}
		}
		if logl > job.threshold {
			copy(cur, prop)
			curX, curL = x, logl
			accept++
		} else {
			reject++
		}
	}
	if accept+reject > 0 {
		f := float64(accept) / float64(accept+reject)
		*scale *= math.Exp((f - 0.5) / float64(d))
		// Without the clamp the scale grows geometrically in the early
		// all-accept regime and proposals leave the cube by many periods.
		*scale = math.Min(math.Max(*scale, minWalkScale), maxWalkScale)
	}

	return walkOut{u: cur, x: curX, logl: curL, ncall: ncall}
}

// Proposal-scale bounds: the unit cube bounds every useful step at 1, and
// 1e-3 keeps the walk moving once the live set has shrunk.
const (
	minWalkScale = 1e-3
	maxWalkScale = 1.0
)

// reflectUnit folds v into [0,1] by reflection at the cube faces. The fold
// is period-2 modular arithmetic, so it costs O(1) regardless of how far
// the proposal overshoots.
func reflectUnit(v float64) float64 {
	if v >= 0 && v <= 1 {
		return v
	}
	v = math.Mod(v, 2)
	if v < 0 {
		v += 2
	}
	if v > 1 {
		v = 2 - v
	}

	return v
}

// logAddExp returns log(e^a + e^b) without overflow.
func logAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a > b {
		return a + math.Log1p(math.Exp(b-a))
	}

	return b + math.Log1p(math.Exp(a-b))
}

// updateInfo advances the information integral H used for the evidence
// uncertainty.
func updateInfo(h, logZ, logZnew, logwt, logl float64) float64 {
	hNew := math.Exp(logwt-logZnew) * logl
	if !math.IsInf(logZ, -1) {
		hNew += math.Exp(logZ-logZnew) * (h + logZ)
	}

	return hNew - logZnew
}
