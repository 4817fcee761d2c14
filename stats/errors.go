// Package stats: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered conditions.

package stats

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "stats: ..." for consistency and easy
// grepping. Do not %w-wrap these when returning directly; add context via
// statsErrorf at the operation boundary — errors.Is still matches.

var (
	// ErrDimensionMismatch indicates input vectors of unequal length.
	// Propagated unchanged through every layer that computes correlations.
	ErrDimensionMismatch = errors.New("stats: dimension mismatch")

	// ErrEmptyVector indicates a vector with zero observations where at
	// least one is required.
	ErrEmptyVector = errors.New("stats: empty vector")

	// ErrNoVectors indicates that Correlate received no codes at all.
	ErrNoVectors = errors.New("stats: no vectors")

	// ErrMissingVector indicates a code with no corresponding vector in
	// the named-vector mapping.
	ErrMissingVector = errors.New("stats: missing vector for code")

	// ErrUnknownCode indicates a code lookup against a matrix that does
	// not carry that code.
	ErrUnknownCode = errors.New("stats: unknown code")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("stats: index out of range")
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opPearson   = "Pearson"
	opCorrelate = "Correlate"
	opAt        = "At"
	opAtCodes   = "AtCodes"
)

// statsErrorf wraps err with the operation tag for context while keeping
// the sentinel matchable via errors.Is.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("stats.%s: %w", op, err)
}
