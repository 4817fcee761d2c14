// Package relia is an in-memory toolkit for scale-reliability analysis —
// from single-scale Cronbach statistics to multi-scale factor reports.
//
// 🚀 What is relia?
//
//	A small, deterministic library that brings together:
//		• Scale analysis: composite scores, Cronbach's alpha, item statistics
//		• Correlation: labeled symmetric Pearson correlation matrices
//		• Factor extraction: PCA and principal-axis over a correlation matrix
//		• Reporting: a hierarchical section tree with pluggable text lookup
//		• Orchestration: a multi-scale aggregate that wires it all together
//
// ✨ Why choose relia?
//
//   - Deterministic – registration order drives every derived result
//   - Fresh by design – no caching; every request recomputes from current state
//   - Explicit errors – sentinel errors, errors.Is everywhere, no panics
//   - Pure Go – no cgo, numeric kernels implemented in-package
//
// Everything is organized under five subpackages:
//
//	factor/     — PCA & principal-axis extraction (Jacobi eigen-decomposition)
//	multiscale/ — the aggregate: registry, correlation, dispatch, report assembly
//	report/     — hierarchical report sections + injectable Translator
//	scale/      — per-scale reliability analysis (composite vector, alpha)
//	stats/      — Pearson correlation of named vectors, labeled matrices
//
// Quick sketch:
//
//	m := multiscale.New(multiscale.DefaultConfig(), func(a *multiscale.Analysis) {
//	    a.AddScale("s1", items1)
//	    a.AddScale("s2", items2)
//	})
//	rep, err := m.Report()
//
// Dive into each package's doc.go for contracts, edge cases and examples.
//
//	go get github.com/quantive/relia
package relia
