// Package factor extracts latent structure from a correlation matrix:
// principal component analysis (PCA) and principal-axis factoring.
//
// 🚀 What does factor provide?
//
//   - PCA(m, opts): eigen-decomposition of the full correlation matrix;
//     components ordered by descending eigenvalue, loadings scaled by
//     the square root of their eigenvalue
//   - PrincipalAxis(m, opts): iterated communality re-estimation on the
//     reduced correlation matrix (diagonal replaced by communalities)
//     until the largest communality change drops below its own
//     tolerance (Options.CommunalityTolerance, looser than the eigen
//     threshold because the outer loop converges only linearly)
//   - Result: eigenvalues, loadings, communalities and explained
//     variance, renderable into a report section
//
// Both methods share one numeric core: a symmetric Jacobi
// eigen-decomposition with a deterministic pivot scan, so equal inputs
// always produce equal outputs. Eigenvector signs are normalized (the
// largest-magnitude component of each retained vector is non-negative)
// to keep loadings stable across runs.
//
// Component retention: Options.Components > 0 retains exactly that many
// factors (capped at the matrix dimension); Components <= 0 applies the
// Kaiser criterion (eigenvalues greater than 1.0), retaining at least one.
//
// Errors are package-level sentinels checked via errors.Is. A matrix
// containing NaN entries (a degenerate zero-variance input upstream) is
// rejected with ErrNaNMatrix rather than silently decomposed.
package factor
