package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/quantive/relia/report"
	"github.com/quantive/relia/stats"
)

var (
	// ErrNoItems indicates an empty dataset (zero item vectors).
	ErrNoItems = errors.New("scale: dataset has no items")

	// ErrNoObservations indicates item vectors with zero entries.
	ErrNoObservations = errors.New("scale: dataset has no observations")

	// ErrItemLengthMismatch indicates item vectors of unequal length.
	ErrItemLengthMismatch = errors.New("scale: item vectors differ in length")

	// ErrItemIndex indicates an item index outside [0, Items).
	ErrItemIndex = errors.New("scale: item index out of range")
)

// Analysis is the reliability analysis of one scale. It owns a defensive
// copy of the dataset; mutating the caller's slices after New has no
// effect on results. All derived statistics are computed on demand.
type Analysis struct {
	name  string
	items [][]float64 // k item vectors, each of length n
	n     int         // observations per item
}

// New constructs a scale analysis from a dataset of item vectors.
// Every item vector must have the same, non-zero length (one entry per
// observation). The dataset is deep-copied.
//
// Errors: ErrNoItems, ErrNoObservations, ErrItemLengthMismatch.
func New(items [][]float64, opts Options) (*Analysis, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	n := len(items[0])
	if n == 0 {
		return nil, ErrNoObservations
	}
	for _, it := range items[1:] {
		if len(it) != n {
			return nil, ErrItemLengthMismatch
		}
	}

	// Defensive copy: the analysis owns its data exclusively.
	own := make([][]float64, len(items))
	for i, it := range items {
		own[i] = make([]float64, n)
		copy(own[i], it)
	}

	return &Analysis{name: opts.Name, items: own, n: n}, nil
}

// Name returns the display name.
func (a *Analysis) Name() string { return a.name }

// Items returns the number of item vectors in the dataset.
func (a *Analysis) Items() int { return len(a.items) }

// Observations returns the number of observations (entries per item).
func (a *Analysis) Observations() int { return a.n }

// Composite returns the scale's total-score vector: the elementwise sum
// across all item vectors, one value per observation. A fresh slice is
// returned on every call.
func (a *Analysis) Composite() []float64 {
	sum := make([]float64, a.n)
	for _, it := range a.items {
		for i, v := range it {
			sum[i] += v
		}
	}

	return sum
}

// Mean returns the mean of the composite vector.
func (a *Analysis) Mean() float64 {
	return mean(a.Composite())
}

// Variance returns the sample variance of the composite vector.
// NaN when there are fewer than two observations.
func (a *Analysis) Variance() float64 {
	return sampleVariance(a.Composite())
}

// SD returns the sample standard deviation of the composite vector.
func (a *Analysis) SD() float64 {
	return math.Sqrt(a.Variance())
}

// Alpha returns Cronbach's alpha:
//
//	α = k/(k-1) · (1 − Σ var(item_i) / var(composite))
//
// NaN for single-item scales (k < 2) and for degenerate composites with
// zero or undefined variance.
func (a *Analysis) Alpha() float64 {
	k := float64(len(a.items))
	if k < 2 {
		return math.NaN()
	}
	total := sampleVariance(a.Composite())
	if total == 0 || math.IsNaN(total) {
		return math.NaN()
	}
	var sum float64
	for _, it := range a.items {
		sum += sampleVariance(it)
	}

	return (k / (k - 1)) * (1 - sum/total)
}

// StandardizedAlpha returns the standardized alpha:
//
//	α_s = k·r̄ / (1 + (k-1)·r̄)
//
// where r̄ is the mean pairwise Pearson correlation between items.
// NaN for single-item scales and when any inter-item correlation is
// undefined (constant item).
func (a *Analysis) StandardizedAlpha() float64 {
	k := len(a.items)
	if k < 2 {
		return math.NaN()
	}
	var sum float64
	var pairs int
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r, err := stats.Pearson(a.items[i], a.items[j])
			if err != nil || math.IsNaN(r) {
				return math.NaN()
			}
			sum += r
			pairs++
		}
	}
	rbar := sum / float64(pairs)

	return float64(k) * rbar / (1 + float64(k-1)*rbar)
}

// ItemTotalCorrelation returns the Pearson correlation of item i with the
// composite vector. ErrItemIndex for an invalid index; NaN when either
// side is constant.
func (a *Analysis) ItemTotalCorrelation(i int) (float64, error) {
	if i < 0 || i >= len(a.items) {
		return 0, ErrItemIndex
	}
	r, err := stats.Pearson(a.items[i], a.Composite())
	if err != nil {
		return 0, err
	}

	return r, nil
}

// RenderTo emits the scale summary into s. Implements report.Renderable.
func (a *Analysis) RenderTo(s *report.Section) {
	sub := s.AddSection(a.name)
	sub.AddText(fmt.Sprintf("Items: %d", len(a.items)))
	sub.AddText(fmt.Sprintf("Observations: %d", a.n))
	sub.AddText(fmt.Sprintf("Composite mean: %.4f", a.Mean()))
	sub.AddText(fmt.Sprintf("Composite sd: %.4f", a.SD()))
	sub.AddText(fmt.Sprintf("Cronbach's alpha: %.4f", a.Alpha()))
}

// mean returns the arithmetic mean of v (v is never empty here).
func mean(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s / float64(len(v))
}

// sampleVariance returns the n-1 variance of v; NaN for len(v) < 2.
func sampleVariance(v []float64) float64 {
	n := len(v)
	if n < 2 {
		return math.NaN()
	}
	m := mean(v)
	var ss float64
	var d float64
	for _, x := range v {
		d = x - m
		ss += d * d
	}

	return ss / float64(n-1)
}
