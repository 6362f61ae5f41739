// Package likelihood_test provides a runnable example for the joint
// log-likelihood aggregator, runnable via "go test -run Example".
package likelihood_test

import (
	"fmt"

	"github.com/exofit/exofit/likelihood"
	"github.com/exofit/exofit/prior"
	"github.com/exofit/exofit/transit"
)

// ExampleAggregator_LogLike evaluates a fully fixed two-planet model on a
// short out-of-transit light curve, then swaps the periods: ascending
// numbering with descending periods is infeasible and lands on the floor
// sentinel instead of raising an error.
func ExampleAggregator_LogLike() {
	build := func(p1, p2 float64) (*likelihood.Aggregator, error) {
		fix := func(name string, v float64) prior.Parameter {
			return prior.Parameter{Name: name, Kind: prior.Fixed, A: v}
		}
		var params []prior.Parameter
		for i, period := range []float64{p1, p2} {
			s := fmt.Sprint(i + 1)
			params = append(params,
				fix("P_p"+s, period),
				fix("t0_p"+s, 1000.0),
				fix("b_p"+s, 0.05),
				fix("p_p"+s, 0.05),
				fix("a_p"+s, 10+5*float64(i)),
				fix("ecc_p"+s, 0),
				fix("omega_p"+s, 90),
			)
		}
		params = append(params,
			fix("q1_TESS", 0.25),
			fix("q2_TESS", 0.4),
			fix("mdilution_TESS", 1.0),
			fix("mflux_TESS", 0.0),
			fix("sigma_w_TESS", 100.0),
		)
		reg, err := prior.NewRegistry(params)
		if err != nil {
			return nil, err
		}

		ph := likelihood.Photometer{
			Name: "TESS", Law: transit.Quadratic,
			Time:    []float64{0, 0.01, 0.02, 0.03},
			Flux:    []float64{1.0001, 0.9998, 1.0002, 0.9999},
			FluxErr: []float64{1e-3, 1e-3, 1e-3, 1e-3},
		}

		return likelihood.NewAggregator(likelihood.Config{
			Registry:    reg,
			Photometers: []likelihood.Photometer{ph},
		})
	}

	ordered, err := build(3.0, 5.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ll, err := ordered.LogLike(nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("ordered feasible:", ll > likelihood.FloorLogLike)

	swapped, err := build(5.0, 3.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ll, err = swapped.LogLike(nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("swapped floored:", ll == likelihood.FloorLogLike)
	// Output:
	// ordered feasible: true
	// swapped floored: true
}
