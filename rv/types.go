package rv

// Planet parametrizes one Keplerian component. Omega is the argument of
// periastron in radians; Tc the time of inferior conjunction in days; K the
// semi-amplitude in data units.
type Planet struct {
	Period float64
	Tc     float64
	Ecc    float64
	Omega  float64
	K      float64
}

// Trend is an optional systemic-velocity polynomial anchored at TZero:
//
//	v(t) = Quad·(t² - TZero²) + Slope·(t - TZero)
//
// so the trend vanishes at the reference epoch. Quad = 0 degrades to the
// linear form; the zero value is a no-op.
type Trend struct {
	Slope float64
	Quad  float64
	TZero float64
}

// Eval returns the trend velocity at time t.
func (tr Trend) Eval(t float64) float64 {
	return tr.Quad*(t*t-tr.TZero*tr.TZero) + tr.Slope*(t-tr.TZero)
}

// Oracle produces Keplerian radial-velocity curves on a time grid.
// Implementations must be safe for concurrent use.
type Oracle interface {
	// Velocity sums all planet components at every time in t.
	Velocity(planets []Planet, t []float64) []float64

	// PlanetVelocity evaluates a single planet's component in isolation.
	PlanetVelocity(p Planet, t []float64) []float64
}
