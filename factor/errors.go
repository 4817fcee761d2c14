// Package factor: sentinel error set.
// Operations MUST return these sentinels; tests check them via errors.Is.
// No operation panics on user input.

package factor

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil correlation matrix argument.
	ErrNilMatrix = errors.New("factor: nil correlation matrix")

	// ErrNaNMatrix indicates NaN entries in the input matrix (degenerate
	// zero-variance vectors upstream); decomposition is refused.
	ErrNaNMatrix = errors.New("factor: matrix contains NaN entries")

	// ErrBadOptions indicates a negative tolerance or iteration cap.
	ErrBadOptions = errors.New("factor: invalid options")

	// ErrEigenFailed indicates the Jacobi rotations did not drive the
	// largest off-diagonal entry below tolerance within the sweep cap.
	ErrEigenFailed = errors.New("factor: eigen decomposition failed")

	// ErrNoConvergence indicates the principal-axis communality iteration
	// hit CommunalityIterations before stabilizing.
	ErrNoConvergence = errors.New("factor: principal axis did not converge")
)

// Operation name constants for unified error wrapping.
const (
	opPCA           = "PCA"
	opPrincipalAxis = "PrincipalAxis"
)

// factorErrorf wraps err with the operation tag, keeping the sentinel
// matchable via errors.Is.
func factorErrorf(op string, err error) error {
	return fmt.Errorf("factor.%s: %w", op, err)
}
