// Package scale analyzes one reliability scale: a named set of item
// vectors (one vector per item, one entry per observation) belonging to a
// single construct.
//
// 🚀 What does scale provide?
//
//   - Composite(): the per-observation elementwise sum across all items —
//     the scale's total score vector
//   - Alpha() / StandardizedAlpha(): Cronbach's alpha in raw and
//     standardized form
//   - ItemTotalCorrelation(i): Pearson correlation of item i with the
//     composite
//   - Mean / Variance / SD of the composite
//   - report rendering (implements report.Renderable)
//
// ⚙️ Usage:
//
//	import "github.com/quantive/relia/scale"
//
//	a, err := scale.New([][]float64{
//	    {1, 2, 3}, // item 1, three observations
//	    {4, 5, 6}, // item 2
//	}, scale.DefaultOptions("s1"))
//	sum := a.Composite() // [5 7 9]
//
// Boundary cases: alpha of a single-item scale is NaN (undefined), and
// sample variance over fewer than two observations is NaN. Errors are
// reserved for malformed datasets (no items, unequal item lengths, zero
// observations).
package scale
