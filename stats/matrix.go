package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/quantive/relia/report"
)

// CorrelationMatrix is a symmetric matrix of correlation coefficients
// labeled by string codes. Row/column order equals the code order it was
// built with; the diagonal is 1.0 by construction.
//
// Storage is a row-major flat buffer; all accessors are O(1).
type CorrelationMatrix struct {
	codes []string       // labels in fixed order, len == n
	index map[string]int // code → row/column position
	data  []float64      // flat backing storage, length == n*n
}

// newCorrelationMatrix allocates an n×n zero matrix labeled by codes.
// Callers own the codes slice after the call (it is copied).
func newCorrelationMatrix(codes []string) *CorrelationMatrix {
	n := len(codes)
	m := &CorrelationMatrix{
		codes: make([]string, n),
		index: make(map[string]int, n),
		data:  make([]float64, n*n),
	}
	copy(m.codes, codes)
	for i, c := range m.codes {
		m.index[c] = i
	}

	return m
}

// Dim returns the matrix dimension (number of codes).
func (m *CorrelationMatrix) Dim() int { return len(m.codes) }

// Codes returns the row/column labels in order. The slice is a copy.
func (m *CorrelationMatrix) Codes() []string {
	out := make([]string, len(m.codes))
	copy(out, m.codes)

	return out
}

// At returns the coefficient at (i, j), or ErrOutOfRange for invalid
// indices. Symmetry guarantees At(i,j) == At(j,i).
func (m *CorrelationMatrix) At(i, j int) (float64, error) {
	n := len(m.codes)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, statsErrorf(opAt, ErrOutOfRange)
	}

	return m.data[i*n+j], nil
}

// AtCodes returns the coefficient for a pair of labels, or ErrUnknownCode
// when either label is not part of the matrix.
func (m *CorrelationMatrix) AtCodes(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, statsErrorf(opAtCodes, ErrUnknownCode)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, statsErrorf(opAtCodes, ErrUnknownCode)
	}

	return m.data[i*len(m.codes)+j], nil
}

// set writes v symmetrically at (i, j) and (j, i). Internal; indices are
// trusted because only Correlate constructs matrices.
func (m *CorrelationMatrix) set(i, j int, v float64) {
	n := len(m.codes)
	m.data[i*n+j] = v
	m.data[j*n+i] = v
}

// HasNaN reports whether any entry is NaN — the signature of a
// zero-variance input vector (see package doc).
func (m *CorrelationMatrix) HasNaN() bool {
	for _, v := range m.data {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// Clone returns an independent deep copy.
func (m *CorrelationMatrix) Clone() *CorrelationMatrix {
	out := newCorrelationMatrix(m.codes)
	copy(out.data, m.data)

	return out
}

// RenderTo emits the matrix as aligned text rows: a header line with the
// code labels, then one line per row prefixed by its code. Implements
// report.Renderable.
func (m *CorrelationMatrix) RenderTo(s *report.Section) {
	n := len(m.codes)
	var b strings.Builder
	for j := 0; j < n; j++ {
		b.WriteString("\t")
		b.WriteString(m.codes[j])
	}
	s.AddText(b.String())

	for i := 0; i < n; i++ {
		b.Reset()
		b.WriteString(m.codes[i])
		for j := 0; j < n; j++ {
			b.WriteString(fmt.Sprintf("\t%.4f", m.data[i*n+j]))
		}
		s.AddText(b.String())
	}
}
