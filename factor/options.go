// Package factor: explicit configuration with documented defaults.
// No reflection, no dynamic setter dispatch: Options is a fixed field set
// resolved once per call. A zero field means "use the default".

package factor

// Documented defaults (single source of truth).
//
// The eigen and communality knobs are deliberately separate: the Jacobi
// sweep drives off-diagonal mass to ~machine precision cheaply, while the
// principal-axis communality iteration converges only linearly — holding
// it to the eigen threshold would spuriously fail on valid input.
const (
	// DefaultTolerance is the Jacobi convergence threshold on the largest
	// off-diagonal magnitude.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps the Jacobi decomposition in sweeps; one
	// sweep is n(n-1)/2 rotations, so the rotation budget grows with the
	// matrix dimension.
	DefaultMaxIterations = 100

	// DefaultCommunalityTolerance is the principal-axis convergence
	// threshold on the largest communality change between iterations.
	DefaultCommunalityTolerance = 1e-6

	// DefaultCommunalityIterations caps the principal-axis communality
	// re-estimation loop.
	DefaultCommunalityIterations = 200

	// KaiserThreshold retains eigenvalues strictly above this value when
	// Components is not set explicitly.
	KaiserThreshold = 1.0
)

// Options configures a PCA or principal-axis run.
//
// Fields:
//   - Components            — number of factors to retain; <= 0 applies
//     the Kaiser criterion (eigenvalue > 1.0, at least one factor).
//   - Tolerance             — Jacobi off-diagonal threshold; 0 means
//     DefaultTolerance.
//   - MaxIterations         — Jacobi sweep cap; 0 means
//     DefaultMaxIterations.
//   - CommunalityTolerance  — principal-axis communality-delta threshold;
//     0 means DefaultCommunalityTolerance. Ignored by PCA.
//   - CommunalityIterations — principal-axis outer iteration cap; 0 means
//     DefaultCommunalityIterations. Ignored by PCA.
//
// Passing Options by value is intentional: a caller-supplied override
// replaces the configured options wholesale, never field-merges.
type Options struct {
	Components            int
	Tolerance             float64
	MaxIterations         int
	CommunalityTolerance  float64
	CommunalityIterations int
}

// DefaultOptions returns the documented defaults: Kaiser retention plus
// the Default* thresholds and caps above.
func DefaultOptions() Options {
	return Options{
		Components:            0,
		Tolerance:             DefaultTolerance,
		MaxIterations:         DefaultMaxIterations,
		CommunalityTolerance:  DefaultCommunalityTolerance,
		CommunalityIterations: DefaultCommunalityIterations,
	}
}

// resolve normalizes zero fields to defaults and validates the rest.
// Negative tolerances or iteration caps are a caller error (ErrBadOptions).
func (o Options) resolve() (Options, error) {
	if o.Tolerance < 0 || o.MaxIterations < 0 ||
		o.CommunalityTolerance < 0 || o.CommunalityIterations < 0 {
		return Options{}, ErrBadOptions
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.CommunalityTolerance == 0 {
		o.CommunalityTolerance = DefaultCommunalityTolerance
	}
	if o.CommunalityIterations == 0 {
		o.CommunalityIterations = DefaultCommunalityIterations
	}

	return o, nil
}
