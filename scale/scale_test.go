package scale_test

import (
	"math"
	"testing"

	"github.com/quantive/relia/report"
	"github.com/quantive/relia/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers the malformed-dataset sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := scale.New(nil, scale.DefaultOptions("x"))
	assert.ErrorIs(t, err, scale.ErrNoItems, "empty dataset must error")

	_, err = scale.New([][]float64{{}}, scale.DefaultOptions("x"))
	assert.ErrorIs(t, err, scale.ErrNoObservations, "zero observations must error")

	_, err = scale.New([][]float64{{1, 2}, {1, 2, 3}}, scale.DefaultOptions("x"))
	assert.ErrorIs(t, err, scale.ErrItemLengthMismatch, "ragged items must error")
}

// TestDefaultOptions_GeneratedName verifies the "Scale {code}" default.
func TestDefaultOptions_GeneratedName(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)
	assert.Equal(t, "Scale s1", a.Name())
}

// TestComposite_ElementwiseSum verifies the reference composite:
// items [1,2,3] and [4,5,6] sum to [5,7,9].
func TestComposite_ElementwiseSum(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}, {4, 5, 6}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 7, 9}, a.Composite())
	assert.Equal(t, 2, a.Items())
	assert.Equal(t, 3, a.Observations())
}

// TestComposite_DatasetIsCopied verifies that mutating the caller's
// slices after New does not change results.
func TestComposite_DatasetIsCopied(t *testing.T) {
	items := [][]float64{{1, 2, 3}, {4, 5, 6}}
	a, err := scale.New(items, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	items[0][0] = 100
	assert.Equal(t, []float64{5, 7, 9}, a.Composite(), "analysis owns its data")
}

// TestCompositeStatistics checks mean/variance/sd of the composite.
func TestCompositeStatistics(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}, {4, 5, 6}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	// composite [5,7,9]: mean 7, sample variance 4, sd 2
	assert.InDelta(t, 7.0, a.Mean(), 1e-12)
	assert.InDelta(t, 4.0, a.Variance(), 1e-12)
	assert.InDelta(t, 2.0, a.SD(), 1e-12)
}

// TestAlpha_KnownValue checks Cronbach's alpha on a small hand-computed
// dataset.
func TestAlpha_KnownValue(t *testing.T) {
	// Two perfectly correlated items: var(i1)=1, var(i2)=4, composite
	// [3,6,9] has var 9 → α = 2·(1 - 5/9) = 8/9.
	a, err := scale.New([][]float64{{1, 2, 3}, {2, 4, 6}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	assert.InDelta(t, 8.0/9.0, a.Alpha(), 1e-12)
}

// TestAlpha_SingleItemIsNaN verifies the undefined-alpha boundary.
func TestAlpha_SingleItemIsNaN(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(a.Alpha()), "alpha of a one-item scale is undefined")
	assert.True(t, math.IsNaN(a.StandardizedAlpha()))
}

// TestStandardizedAlpha_PerfectItems verifies α_s = 1 when all pairwise
// item correlations equal 1.
func TestStandardizedAlpha_PerfectItems(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}, {2, 4, 6}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, a.StandardizedAlpha(), 1e-12, "r̄=1 → α_s=1")
}

// TestItemTotalCorrelation verifies per-item correlation with the
// composite and the index sentinel.
func TestItemTotalCorrelation(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}, {2, 4, 6}}, scale.DefaultOptions("s1"))
	require.NoError(t, err)

	r, err := a.ItemTotalCorrelation(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12, "item is a linear function of the composite")

	_, err = a.ItemTotalCorrelation(2)
	assert.ErrorIs(t, err, scale.ErrItemIndex)
	_, err = a.ItemTotalCorrelation(-1)
	assert.ErrorIs(t, err, scale.ErrItemIndex)
}

// TestRenderTo emits one subsection titled by the scale name.
func TestRenderTo(t *testing.T) {
	a, err := scale.New([][]float64{{1, 2, 3}, {4, 5, 6}}, scale.Options{Name: "Anxiety"})
	require.NoError(t, err)

	s := report.NewSection("scales")
	s.Add(a)

	subs := s.Sections()
	require.Len(t, subs, 1)
	assert.Equal(t, "Anxiety", subs[0].Title())
	assert.Contains(t, subs[0].Lines()[0], "Items: 2")
}
