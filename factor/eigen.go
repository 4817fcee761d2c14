package factor

import (
	"math"
	"sort"
)

// jacobiEigen decomposes a symmetric n×n matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Initialize the eigenvector accumulator V as identity.
//   - Stage 2: Repeatedly pick the pivot (p,q) with the largest |A[p,q]|
//     in fixed i→j order and rotate A and V until maxOff < tol.
//   - Stage 3: Read the eigenvalues off the diagonal.
//
// The input slice a is mutated in place (callers pass a private copy).
//
// Inputs:
//   - a: row-major flat buffer of a symmetric n×n matrix; len == n*n.
//   - n: matrix dimension, n >= 1.
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxSweeps: safety cap in sweeps; one sweep is n(n-1)/2 rotations,
//     so the rotation budget scales with the matrix dimension.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - []float64: V, row-major; column j is the eigenvector of eig[j].
//
// Errors:
//   - ErrEigenFailed when maxOff >= tol after maxSweeps sweeps.
//
// Determinism:
//   - Fixed pivot scan and update order; equal inputs → equal outputs.
//
// Complexity:
//   - Time O(maxSweeps * n^4) worst case, Space O(n^2).
func jacobiEigen(a []float64, n int, tol float64, maxSweeps int) ([]float64, []float64, error) {
	// Stage 1: V = I.
	v := make([]float64, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1.0
	}

	// Stage 2: rotate until the off-diagonal mass is below tol.
	// The budget is expressed in rotations so larger matrices get
	// proportionally more work per sweep.
	budget := maxSweeps * n * (n - 1) / 2
	var p, q int
	var maxOff float64
	var converged bool
	for iter := 0; iter < budget; iter++ {
		p, q, maxOff = largestOffDiagonal(a, n)
		if maxOff < tol {
			converged = true
			break
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		app := a[p*n+p]
		aqq := a[q*n+q]
		apq := a[p*n+q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		// Rotate A symmetrically outside rows/cols p and q.
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip := a[i*n+p]
			aiq := a[i*n+q]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			a[i*n+p], a[p*n+i] = nip, nip
			a[i*n+q], a[q*n+i] = niq, niq
		}

		// Update the pivot block; A[p,q] is annihilated exactly.
		a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p*n+q], a[q*n+p] = 0, 0

		// Accumulate the rotation into V (columns p and q).
		for i := 0; i < n; i++ {
			vip := v[i*n+p]
			viq := v[i*n+q]
			v[i*n+p] = c*vip - s*viq
			v[i*n+q] = s*vip + c*viq
		}
	}
	if !converged {
		if _, _, maxOff = largestOffDiagonal(a, n); maxOff >= tol {
			return nil, nil, ErrEigenFailed
		}
	}

	// Stage 3: eigenvalues from the diagonal.
	eig := make([]float64, n)
	for i := 0; i < n; i++ {
		eig[i] = a[i*n+i]
	}

	return eig, v, nil
}

// largestOffDiagonal scans the strict upper triangle in fixed i→j order
// and returns the indices and magnitude of the largest |A[i,j]|.
// n == 1 yields (0, 0, 0) — trivially converged.
func largestOffDiagonal(a []float64, n int) (int, int, float64) {
	var p, q int
	var maxOff float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a[i*n+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return p, q, maxOff
}

// eigenOrder returns column indices sorted by descending eigenvalue.
// Ties keep the lower original index first (stable, deterministic).
func eigenOrder(eig []float64) []int {
	order := make([]int, len(eig))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return eig[order[x]] > eig[order[y]]
	})

	return order
}

// column extracts column j of the row-major n×n buffer v, with the sign
// normalized so the largest-magnitude component is non-negative.
func column(v []float64, n, j int) []float64 {
	col := make([]float64, n)
	var peak float64
	var flip bool
	for i := 0; i < n; i++ {
		col[i] = v[i*n+j]
		if math.Abs(col[i]) > peak {
			peak = math.Abs(col[i])
			flip = col[i] < 0
		}
	}
	if flip {
		for i := range col {
			col[i] = -col[i]
		}
	}

	return col
}
