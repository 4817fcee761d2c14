// Package stats implements the correlation primitives used across relia:
// a Pearson correlation kernel over float64 vectors and a labeled,
// symmetric CorrelationMatrix keyed by string codes in a fixed order.
//
// 🚀 What does stats provide?
//
//   - Pearson(x, y): the plain product-moment correlation coefficient
//   - Correlate(codes, vectors): pairwise correlation of named vectors,
//     assembled into a CorrelationMatrix with diagonal forced to 1.0
//   - CorrelationMatrix: order-preserving, symmetric, renderable
//
// Numeric policy:
//
//   - All inputs must share one length; a mismatch is ErrDimensionMismatch.
//   - A zero-variance vector has no defined correlation with anything;
//     the affected off-diagonal entries are NaN (the diagonal stays 1.0).
//     Use CorrelationMatrix.HasNaN to detect the degenerate case.
//   - Deterministic i→j traversal everywhere; no randomness, no caching.
//
// Errors are package-level sentinels checked via errors.Is; no function
// panics on user input.
package stats
