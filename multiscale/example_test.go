package multiscale_test

import (
	"fmt"

	"github.com/quantive/relia/multiscale"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two scales registered at construction time via the setup callback;
//	the correlation-matrix summary is enabled, PCA and principal axis
//	stay off (defaults).
//
// Use case:
//
//	A survey with two constructs whose inter-scale correlation is of
//	interest alongside the per-scale reliability statistics.
//
// ExampleNew demonstrates fluent construction and report assembly.
func ExampleNew() {
	cfg := multiscale.DefaultConfig()
	cfg.Name = "Survey"
	cfg.SummaryCorrelationMatrix = true

	m := multiscale.New(cfg, func(a *multiscale.Analysis) {
		if _, err := a.AddScale("s1", [][]float64{{1, 2, 3}, {4, 5, 6}}); err != nil {
			fmt.Println("error:", err)
		}
		if _, err := a.AddScale("s2", [][]float64{{2, 4, 5}, {3, 3, 6}}); err != nil {
			fmt.Println("error:", err)
		}
	})

	rep, err := m.Report()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(rep.Title())
	for _, sub := range rep.Sections() {
		fmt.Println(sub.Title())
	}
	// Output:
	// Survey
	// Reliability analysis of scales
	// Survey correlation matrix
}

// ExampleAnalysis_CorrelationMatrix shows direct access to the derived
// correlation matrix, recomputed from the registry on every call.
// Composites [5,7,9] and [9,7,5] are perfectly anti-correlated.
func ExampleAnalysis_CorrelationMatrix() {
	m := multiscale.New(multiscale.DefaultConfig(), func(a *multiscale.Analysis) {
		_, _ = a.AddScale("s1", [][]float64{{1, 2, 3}, {4, 5, 6}})
		_, _ = a.AddScale("s2", [][]float64{{3, 2, 1}, {6, 5, 4}})
	})

	corr, err := m.CorrelationMatrix()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, _ := corr.AtCodes("s1", "s2")
	fmt.Printf("dim=%d r=%.1f\n", corr.Dim(), r)
	// Output:
	// dim=2 r=-1.0
}
