package stats

import "math"

// Pearson computes the product-moment correlation coefficient of x and y.
// Implementation:
//   - Stage 1: Validate equal, non-zero lengths.
//   - Stage 2: Accumulate means in one deterministic pass.
//   - Stage 3: Accumulate co-deviation and squared deviations.
//   - Stage 4: r = Sxy / sqrt(Sxx*Syy); zero variance on either side → NaN.
//
// Inputs:
//   - x, y: vectors of equal length n ≥ 1.
//
// Returns:
//   - float64: r ∈ [-1, 1], or NaN when either vector is constant
//     (zero variance — correlation is undefined; documented boundary).
//
// Errors:
//   - ErrDimensionMismatch (len(x) != len(y)), ErrEmptyVector (n == 0).
//
// Determinism:
//   - Fixed left-to-right accumulation; stable results.
//
// Complexity:
//   - Time O(n), Space O(1).
func Pearson(x, y []float64) (float64, error) {
	n := len(x)
	if n != len(y) {
		return 0, statsErrorf(opPearson, ErrDimensionMismatch)
	}
	if n == 0 {
		return 0, statsErrorf(opPearson, ErrEmptyVector)
	}

	// Stage 2: means.
	var sx, sy float64
	for i := 0; i < n; i++ {
		sx += x[i]
		sy += y[i]
	}
	mx, my := sx/float64(n), sy/float64(n)

	// Stage 3: deviations.
	var sxy, sxx, syy float64
	var dx, dy float64
	for i := 0; i < n; i++ {
		dx = x[i] - mx
		dy = y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	// Stage 4: degenerate variance → NaN, not an error.
	if sxx == 0 || syy == 0 {
		return math.NaN(), nil
	}

	return sxy / math.Sqrt(sxx*syy), nil
}

// Correlate builds the symmetric Pearson correlation matrix of named
// vectors, ordered by codes.
// Implementation:
//   - Stage 1: Validate: at least one code, every code mapped, all vectors
//     of one shared non-zero length.
//   - Stage 2: Allocate the labeled matrix; force the diagonal to 1.0.
//   - Stage 3: Fill the strict upper triangle via Pearson in i→j order and
//     mirror each value (symmetry by construction).
//
// Behavior highlights:
//   - A single code yields a 1×1 matrix {1.0}.
//   - Zero-variance vectors produce NaN off-diagonals; the diagonal is
//     still 1.0 (the matrix stays well-labeled and symmetric).
//
// Inputs:
//   - codes: row/column order; must be non-empty.
//   - vectors: code → observations; every code must be present.
//
// Returns:
//   - *CorrelationMatrix: symmetric, diagonal 1.0, labeled by codes.
//
// Errors:
//   - ErrNoVectors, ErrMissingVector, ErrEmptyVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(k^2 * n) for k codes and n observations, Space O(k^2).
func Correlate(codes []string, vectors map[string][]float64) (*CorrelationMatrix, error) {
	k := len(codes)
	if k == 0 {
		return nil, statsErrorf(opCorrelate, ErrNoVectors)
	}

	// Stage 1: every code mapped; one shared length.
	n := -1
	for _, c := range codes {
		v, ok := vectors[c]
		if !ok {
			return nil, statsErrorf(opCorrelate, ErrMissingVector)
		}
		if n < 0 {
			n = len(v)
			continue
		}
		if len(v) != n {
			return nil, statsErrorf(opCorrelate, ErrDimensionMismatch)
		}
	}
	if n == 0 {
		return nil, statsErrorf(opCorrelate, ErrEmptyVector)
	}

	// Stage 2: labeled allocation; diagonal forced to 1.0.
	m := newCorrelationMatrix(codes)
	for i := 0; i < k; i++ {
		m.set(i, i, 1.0)
	}

	// Stage 3: strict upper triangle, mirrored.
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r, err := Pearson(vectors[codes[i]], vectors[codes[j]])
			if err != nil {
				return nil, statsErrorf(opCorrelate, err)
			}
			m.set(i, j, r)
		}
	}

	return m, nil
}
