// Package multiscale: sentinel error set.
// Collaborator failures (scale construction, correlation, factoring) are
// propagated unchanged; only registry- and config-level conditions get
// sentinels of their own.

package multiscale

import "errors"

var (
	// ErrDuplicateCode is returned by AddScale for an already-registered
	// code when Config.StrictCodes is enabled. With StrictCodes off the
	// entry is overwritten in place instead.
	ErrDuplicateCode = errors.New("multiscale: duplicate scale code")

	// ErrNoScales indicates a derived computation (correlation matrix,
	// factor analysis) requested against an empty registry.
	ErrNoScales = errors.New("multiscale: no scales registered")

	// ErrBadConfigDoc indicates an unparseable configuration document.
	ErrBadConfigDoc = errors.New("multiscale: invalid config document")
)
