// Package orbit_test provides runnable examples for the geometry
// reparametrizations. Each example runs via "go test -run Example".
package orbit_test

import (
	"fmt"

	"github.com/exofit/exofit/orbit"
)

// ExampleBPFromR maps a unit-square (r1, r2) sample to a physical impact
// parameter and radius ratio, then inverts it. The pair always satisfies
// b ≥ 0 and pl < p < pu.
func ExampleBPFromR() {
	bounds, err := orbit.NewSamplingBounds(0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	b, p := orbit.BPFromR(0.75, 0.3, bounds)
	fmt.Printf("b=%.3f p=%.3f\n", b, p)

	r1, r2 := orbit.RFromBP(b, p, bounds)
	fmt.Printf("r1=%.2f r2=%.2f\n", r1, r2)
	// Output:
	// b=0.625 p=0.300
	// r1=0.75 r2=0.30
}

// ExampleResolveEcc resolves the sqrt-cos-sin parametrization to a
// canonical (e, ω) pair; the transit context reports ω in degrees.
func ExampleResolveEcc() {
	e, omega := orbit.ResolveEcc(orbit.SqrtCosSin, 0.3, 0.4, orbit.ContextTransit)
	fmt.Printf("e=%.2f omega=%.1f\n", e, omega)
	// Output: e=0.25 omega=53.1
}
