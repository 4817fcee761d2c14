package factor_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/quantive/relia/factor"
	"github.com/quantive/relia/report"
	"github.com/quantive/relia/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corr2 builds a 2×2 correlation matrix with off-diagonal r=0.8 from
// concrete vectors (Sxy=8, Sxx=Syy=10).
func corr2(t *testing.T) *stats.CorrelationMatrix {
	t.Helper()
	m, err := stats.Correlate(
		[]string{"a", "b"},
		map[string][]float64{
			"a": {1, 2, 3, 4, 5},
			"b": {2, 1, 4, 3, 5},
		},
	)
	require.NoError(t, err)

	return m
}

// TestPCA_TwoVariableSpectrum verifies the closed-form eigenpairs of a
// 2×2 correlation matrix: eigenvalues 1±r, first loading sqrt((1+r)/2)
// on both variables.
func TestPCA_TwoVariableSpectrum(t *testing.T) {
	res, err := factor.PCA(corr2(t), factor.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, factor.MethodPCA, res.Method)
	require.Len(t, res.Eigenvalues, 1, "Kaiser retains only 1+r=1.8 > 1")
	assert.InDelta(t, 1.8, res.Eigenvalues[0], 1e-9)
	assert.InDelta(t, 0.9, res.ExplainedVariance[0], 1e-9)

	// loading_i = sqrt(1.8)/sqrt(2) = sqrt(0.9); communality 0.9.
	want := math.Sqrt(0.9)
	for i := range res.Codes {
		assert.InDelta(t, want, res.Loadings[i][0], 1e-9, "loading of %s", res.Codes[i])
		assert.InDelta(t, 0.9, res.Communalities[i], 1e-9)
	}
}

// TestPCA_ExplicitComponents verifies that Components overrides Kaiser
// retention and is capped at the dimension.
func TestPCA_ExplicitComponents(t *testing.T) {
	res, err := factor.PCA(corr2(t), factor.Options{Components: 2})
	require.NoError(t, err)
	require.Len(t, res.Eigenvalues, 2)
	assert.InDelta(t, 1.8, res.Eigenvalues[0], 1e-9)
	assert.InDelta(t, 0.2, res.Eigenvalues[1], 1e-9)
	assert.GreaterOrEqual(t, res.Eigenvalues[0], res.Eigenvalues[1], "descending order")

	// Components beyond the dimension are capped, not an error.
	res, err = factor.PCA(corr2(t), factor.Options{Components: 10})
	require.NoError(t, err)
	assert.Len(t, res.Eigenvalues, 2)
}

// TestPCA_CommunalitiesSumToDim verifies that retaining every component
// reproduces the full variance: communalities are 1 per variable.
func TestPCA_CommunalitiesSumToDim(t *testing.T) {
	res, err := factor.PCA(corr2(t), factor.Options{Components: 2})
	require.NoError(t, err)
	for i := range res.Communalities {
		assert.InDelta(t, 1.0, res.Communalities[i], 1e-9, "full retention restores the diagonal")
	}
}

// TestPCA_InputErrors covers nil, NaN, and bad-option sentinels.
func TestPCA_InputErrors(t *testing.T) {
	_, err := factor.PCA(nil, factor.DefaultOptions())
	assert.ErrorIs(t, err, factor.ErrNilMatrix)

	degenerate, err := stats.Correlate(
		[]string{"a", "b"},
		map[string][]float64{"a": {1, 2, 3}, "b": {7, 7, 7}},
	)
	require.NoError(t, err)
	_, err = factor.PCA(degenerate, factor.DefaultOptions())
	assert.ErrorIs(t, err, factor.ErrNaNMatrix, "NaN entries are refused, not decomposed")

	_, err = factor.PCA(corr2(t), factor.Options{Tolerance: -1})
	assert.ErrorIs(t, err, factor.ErrBadOptions)
	_, err = factor.PCA(corr2(t), factor.Options{MaxIterations: -1})
	assert.ErrorIs(t, err, factor.ErrBadOptions)
	_, err = factor.PrincipalAxis(corr2(t), factor.Options{CommunalityTolerance: -1})
	assert.ErrorIs(t, err, factor.ErrBadOptions)
	_, err = factor.PrincipalAxis(corr2(t), factor.Options{CommunalityIterations: -1})
	assert.ErrorIs(t, err, factor.ErrBadOptions)
}

// corrWide builds an 18-variable correlation matrix from seeded random
// vectors (60 observations each), the kind of width a multi-scale battery
// produces.
func corrWide(t *testing.T) *stats.CorrelationMatrix {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	codes := make([]string, 18)
	vectors := make(map[string][]float64, len(codes))
	for i := range codes {
		codes[i] = fmt.Sprintf("v%02d", i+1)
		obs := make([]float64, 60)
		for j := range obs {
			obs[j] = rng.NormFloat64()
		}
		vectors[codes[i]] = obs
	}
	m, err := stats.Correlate(codes, vectors)
	require.NoError(t, err)

	return m
}

// TestPCA_DefaultBudgetWideMatrix verifies that default options handle a
// wide matrix: the sweep budget grows with the dimension, so an 18×18
// decomposition converges without tuning.
func TestPCA_DefaultBudgetWideMatrix(t *testing.T) {
	res, err := factor.PCA(corrWide(t), factor.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, res.Eigenvalues)

	// Full retention recovers the total variance (trace = dimension).
	full, err := factor.PCA(corrWide(t), factor.Options{Components: 18})
	require.NoError(t, err)
	var total float64
	for _, ev := range full.Eigenvalues {
		total += ev
	}
	assert.InDelta(t, 18.0, total, 1e-6)
}

// TestPrincipalAxis_DefaultBudgetWideMatrix verifies that the communality
// iteration converges on a wide matrix with default options: its own
// tolerance and cap are sized for linear convergence, independent of the
// much tighter eigen threshold.
func TestPrincipalAxis_DefaultBudgetWideMatrix(t *testing.T) {
	res, err := factor.PrincipalAxis(corrWide(t), factor.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, res.Eigenvalues)
	assert.LessOrEqual(t, res.Iterations, factor.DefaultCommunalityIterations)
	for i, h := range res.Communalities {
		assert.GreaterOrEqual(t, h, 0.0, "communality of %s", res.Codes[i])
	}
}

// TestPrincipalAxis_RetentionPastRankClampsToZero verifies the clamping
// of retained eigenvalues: forcing retention past the effective rank of
// the reduced matrix reports zero (never negative) eigenvalues, explained
// variance, and loadings for the surplus factor.
func TestPrincipalAxis_RetentionPastRankClampsToZero(t *testing.T) {
	res, err := factor.PrincipalAxis(corr2(t), factor.Options{Components: 2})
	require.NoError(t, err)
	require.Len(t, res.Eigenvalues, 2)

	assert.InDelta(t, 1.6, res.Eigenvalues[0], 1e-9)
	for f := range res.Eigenvalues {
		assert.GreaterOrEqual(t, res.Eigenvalues[f], 0.0)
		assert.GreaterOrEqual(t, res.ExplainedVariance[f], 0.0)
		assert.InDelta(t, res.Eigenvalues[f]/2.0, res.ExplainedVariance[f], 1e-12,
			"explained variance follows the reported eigenvalue")
	}
	for i := range res.Codes {
		assert.InDelta(t, 0.0, res.Loadings[i][1], 1e-7, "surplus factor carries no loading")
	}
}

// TestPrincipalAxis_TwoVariables verifies the closed-form reduced
// solution for a 2×2 matrix with r=0.8: communalities converge to 0.8
// and loadings to sqrt(0.8) in a single iteration.
func TestPrincipalAxis_TwoVariables(t *testing.T) {
	res, err := factor.PrincipalAxis(corr2(t), factor.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, factor.MethodPrincipalAxis, res.Method)
	assert.Equal(t, 1, res.Iterations, "symmetric 2×2 stabilizes immediately")
	require.Len(t, res.Eigenvalues, 1)
	assert.InDelta(t, 1.6, res.Eigenvalues[0], 1e-9, "reduced eigenvalue 2r")

	want := math.Sqrt(0.8)
	for i := range res.Codes {
		assert.InDelta(t, want, res.Loadings[i][0], 1e-9)
		assert.InDelta(t, 0.8, res.Communalities[i], 1e-9)
	}
}

// TestPrincipalAxis_Equicorrelated verifies the 3-variable
// equicorrelation case: the reduced matrix is rank one, one factor with
// eigenvalue 3r and communalities r.
func TestPrincipalAxis_Equicorrelated(t *testing.T) {
	// Three pairwise-identical items yield r=1 between all composites;
	// instead build vectors with uniform pairwise r via shared structure.
	base := []float64{1, 2, 3, 4, 5, 6}
	m, err := stats.Correlate(
		[]string{"a", "b", "c"},
		map[string][]float64{
			"a": base,
			"b": {2, 4, 6, 8, 10, 12},
			"c": {3, 6, 9, 12, 15, 18},
		},
	)
	require.NoError(t, err)

	res, err := factor.PrincipalAxis(m, factor.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Eigenvalues, 1)
	assert.InDelta(t, 3.0, res.Eigenvalues[0], 1e-9, "r=1 equicorrelation gives eigenvalue 3r")
	for i := range res.Communalities {
		assert.InDelta(t, 1.0, res.Communalities[i], 1e-9)
	}
}

// TestResult_RenderTo verifies the rendered shape: summary lines plus one
// line per variable.
func TestResult_RenderTo(t *testing.T) {
	res, err := factor.PCA(corr2(t), factor.DefaultOptions())
	require.NoError(t, err)

	s := report.NewSection("pca")
	s.Add(res)

	lines := s.Lines()
	require.Len(t, lines, 4+len(res.Codes), "4 summary lines + per-variable lines")
	assert.Contains(t, lines[0], "pca")
	assert.Contains(t, lines[4], "a\t", "variable line labeled by code")
}

// TestOptions_ZeroValuesMeanDefaults verifies that a zero Options struct
// behaves like DefaultOptions (zero fields normalize to defaults).
func TestOptions_ZeroValuesMeanDefaults(t *testing.T) {
	withDefaults, err := factor.PCA(corr2(t), factor.DefaultOptions())
	require.NoError(t, err)
	withZero, err := factor.PCA(corr2(t), factor.Options{})
	require.NoError(t, err)

	assert.Equal(t, withDefaults.Eigenvalues, withZero.Eigenvalues)
	assert.Equal(t, withDefaults.Loadings, withZero.Loadings)
}
