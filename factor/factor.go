package factor

import (
	"fmt"
	"math"
	"strings"

	"github.com/quantive/relia/report"
	"github.com/quantive/relia/stats"
)

// Method identifies the extraction method that produced a Result.
type Method string

const (
	// MethodPCA marks a principal component analysis result.
	MethodPCA Method = "pca"

	// MethodPrincipalAxis marks a principal-axis factoring result.
	MethodPrincipalAxis Method = "principal-axis"
)

// Result holds the outcome of a factor extraction. Slices are indexed by
// retained factor (Eigenvalues, ExplainedVariance) or by variable
// (Communalities, Loadings rows); Loadings[i][f] is the loading of
// variable i on retained factor f. Retained eigenvalues never go
// negative: values below zero (possible on a reduced-matrix spectrum)
// are clamped, so Eigenvalues, ExplainedVariance, and Loadings stay
// mutually consistent.
type Result struct {
	Method            Method
	Codes             []string    // variable labels, matrix order
	Eigenvalues       []float64   // retained, descending
	Loadings          [][]float64 // len(Codes) × retained
	Communalities     []float64   // per variable
	ExplainedVariance []float64   // proportion of total variance per factor
	Iterations        int         // communality iterations (1 for PCA)
}

// PCA performs principal component analysis of a correlation matrix.
// Implementation:
//   - Stage 1: Validate (non-nil, NaN-free) and resolve options.
//   - Stage 2: Jacobi eigen-decomposition of a private flat copy.
//   - Stage 3: Order eigenpairs descending, retain per Options, scale each
//     retained eigenvector by sqrt(eigenvalue) into loadings.
//
// Returns a Result with communalities (row sums of squared loadings) and
// per-factor explained variance (eigenvalue / dimension).
//
// Errors: ErrNilMatrix, ErrNaNMatrix, ErrBadOptions, ErrEigenFailed.
func PCA(m *stats.CorrelationMatrix, o Options) (*Result, error) {
	flat, n, err := validateInput(opPCA, m, &o)
	if err != nil {
		return nil, err
	}

	eig, vec, err := jacobiEigen(flat, n, o.Tolerance, o.MaxIterations)
	if err != nil {
		return nil, factorErrorf(opPCA, err)
	}

	res := assemble(MethodPCA, m.Codes(), eig, vec, n, retained(eig, o))
	res.Iterations = 1

	return res, nil
}

// PrincipalAxis performs principal-axis factoring of a correlation matrix.
// Implementation:
//   - Stage 1: Validate and resolve options; initial communalities are
//     each variable's largest absolute off-diagonal correlation.
//   - Stage 2: Iterate — replace the diagonal of the reduced matrix with
//     the current communalities, eigen-decompose, rebuild loadings, and
//     re-estimate communalities — until the largest communality change
//     drops below CommunalityTolerance.
//   - Stage 3: Assemble the Result from the final decomposition.
//
// The number of retained factors is fixed on the first iteration (per
// Options, applied to the first reduced spectrum) so the factor space
// does not drift between iterations. The communality loop has its own
// tolerance and cap (CommunalityTolerance, CommunalityIterations): it
// converges only linearly, so the much tighter eigen threshold does not
// apply to it.
//
// Errors: ErrNilMatrix, ErrNaNMatrix, ErrBadOptions, ErrEigenFailed,
// ErrNoConvergence (CommunalityIterations exhausted before stabilizing).
func PrincipalAxis(m *stats.CorrelationMatrix, o Options) (*Result, error) {
	flat, n, err := validateInput(opPrincipalAxis, m, &o)
	if err != nil {
		return nil, err
	}

	// Stage 1: initial communalities = max |r_ij|, j != i.
	comm := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if off := math.Abs(flat[i*n+j]); off > comm[i] {
				comm[i] = off
			}
		}
	}

	// Stage 2: iterated re-estimation on the reduced matrix.
	reduced := make([]float64, n*n)
	keep := 0 // retained factor count, fixed after the first decomposition
	var res *Result
	for iter := 1; iter <= o.CommunalityIterations; iter++ {
		copy(reduced, flat)
		for i := 0; i < n; i++ {
			reduced[i*n+i] = comm[i]
		}

		eig, vec, eErr := jacobiEigen(reduced, n, o.Tolerance, o.MaxIterations)
		if eErr != nil {
			return nil, factorErrorf(opPrincipalAxis, eErr)
		}
		if keep == 0 {
			keep = retained(eig, o)
		}

		res = assemble(MethodPrincipalAxis, m.Codes(), eig, vec, n, keep)
		res.Iterations = iter

		// Convergence on the largest communality delta.
		var delta float64
		for i := 0; i < n; i++ {
			if d := math.Abs(res.Communalities[i] - comm[i]); d > delta {
				delta = d
			}
		}
		copy(comm, res.Communalities)
		if delta < o.CommunalityTolerance {
			return res, nil
		}
	}

	return nil, factorErrorf(opPrincipalAxis, ErrNoConvergence)
}

// validateInput checks the matrix, resolves options, and returns a private
// flat copy of the matrix plus its dimension.
func validateInput(op string, m *stats.CorrelationMatrix, o *Options) ([]float64, int, error) {
	if m == nil {
		return nil, 0, factorErrorf(op, ErrNilMatrix)
	}
	if m.HasNaN() {
		return nil, 0, factorErrorf(op, ErrNaNMatrix)
	}
	resolved, err := o.resolve()
	if err != nil {
		return nil, 0, factorErrorf(op, err)
	}
	*o = resolved

	n := m.Dim()
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Indices are in range by construction; At cannot fail here.
			v, _ := m.At(i, j)
			flat[i*n+j] = v
		}
	}

	return flat, n, nil
}

// retained resolves the number of factors to keep: an explicit positive
// Components (capped at the dimension), else the Kaiser criterion with a
// floor of one factor.
func retained(eig []float64, o Options) int {
	n := len(eig)
	if o.Components > 0 {
		if o.Components > n {
			return n
		}

		return o.Components
	}
	count := 0
	for _, e := range eig {
		if e > KaiserThreshold {
			count++
		}
	}
	if count == 0 {
		count = 1
	}

	return count
}

// assemble builds a Result from a raw decomposition: sorts eigenpairs
// descending, keeps the first `keep`, scales eigenvectors into loadings,
// and derives communalities and explained variance. A reduced-matrix
// spectrum can dip below zero (numeric noise, or forced retention past
// the effective rank); such eigenvalues carry no variance and are
// clamped to zero everywhere — Eigenvalues, ExplainedVariance, and the
// sqrt that scales loadings all see the clamped value.
func assemble(method Method, codes []string, eig, vec []float64, n, keep int) *Result {
	order := eigenOrder(eig)

	res := &Result{
		Method:            method,
		Codes:             codes,
		Eigenvalues:       make([]float64, keep),
		Loadings:          make([][]float64, n),
		Communalities:     make([]float64, n),
		ExplainedVariance: make([]float64, keep),
	}
	for i := range res.Loadings {
		res.Loadings[i] = make([]float64, keep)
	}

	for f := 0; f < keep; f++ {
		ev := eig[order[f]]
		if ev < 0 {
			ev = 0
		}
		res.Eigenvalues[f] = ev
		res.ExplainedVariance[f] = ev / float64(n)

		scale := math.Sqrt(ev)
		col := column(vec, n, order[f])
		for i := 0; i < n; i++ {
			loading := col[i] * scale
			res.Loadings[i][f] = loading
			res.Communalities[i] += loading * loading
		}
	}

	return res
}

// RenderTo emits the extraction summary into s. Implements
// report.Renderable.
func (r *Result) RenderTo(s *report.Section) {
	s.AddText(fmt.Sprintf("Method: %s", r.Method))
	s.AddText(fmt.Sprintf("Factors retained: %d", len(r.Eigenvalues)))
	s.AddText("Eigenvalues: " + joinFloats(r.Eigenvalues))
	s.AddText("Explained variance: " + joinFloats(r.ExplainedVariance))
	for i, code := range r.Codes {
		s.AddText(fmt.Sprintf("%s\tloadings: %s\tcommunality: %.4f",
			code, joinFloats(r.Loadings[i]), r.Communalities[i]))
	}
}

// joinFloats renders a float slice as space-separated %.4f values.
func joinFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}

	return strings.Join(parts, " ")
}
