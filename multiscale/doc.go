// Package multiscale aggregates several named scale analyses into one
// multi-scale reliability report: it owns the ordered scale registry,
// derives the inter-scale correlation matrix from composite scores, runs
// PCA / principal-axis factoring on demand, and assembles the hierarchical
// report.
//
// 🚀 The aggregate
//
//	Analysis is the single root object. Scales are registered under string
//	codes; registration order is the ordering authority for every derived
//	result — correlation matrix rows/columns, factor-analysis variables,
//	and per-scale report subsections all follow it.
//
// ✨ Contract highlights
//
//   - Fresh by design: the correlation matrix and every factor result are
//     recomputed on each request from the registry's current contents;
//     nothing is cached.
//   - Overwrite-in-place: re-registering an existing code replaces its
//     scale but keeps its position (Config.StrictCodes turns this into
//     ErrDuplicateCode instead).
//   - Absence is not an error: Scale and RemoveScale use comma-ok returns
//     for unknown codes.
//   - Wholesale override: a non-nil options argument to PCA/PrincipalAxis
//     replaces the configured options entirely; there is no field merge.
//   - Failures bubble unchanged: a dimension mismatch between composite
//     vectors surfaces as stats.ErrDimensionMismatch from correlation,
//     dispatch, and report assembly alike; a report either fully builds
//     or fails.
//
// ⚙️ Usage:
//
//	import "github.com/quantive/relia/multiscale"
//
//	cfg := multiscale.DefaultConfig()
//	cfg.SummaryCorrelationMatrix = true
//	m := multiscale.New(cfg, func(a *multiscale.Analysis) {
//	    a.AddScale("s1", [][]float64{{1, 2, 3}, {4, 5, 6}})
//	    a.AddScale("s2", [][]float64{{2, 4, 5}, {3, 3, 6}})
//	})
//	rep, err := m.Report()
//
// Setup callbacks run synchronously during New, with the in-progress
// instance, before it is returned — registration and configuration can be
// expressed fluently at construction time.
//
// The aggregate is single-owner and single-threaded by contract: no
// operation blocks, suspends, or locks, and concurrent mutation of the
// registry is out of contract.
package multiscale
