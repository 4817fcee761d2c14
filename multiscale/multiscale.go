package multiscale

import (
	"github.com/quantive/relia/factor"
	"github.com/quantive/relia/report"
	"github.com/quantive/relia/scale"
	"github.com/quantive/relia/stats"
)

// Analysis is the multi-scale aggregate root: an ordered registry of
// named scale analyses plus the configuration driving derived results
// and report assembly.
//
// The registry is an order-preserving mapping — a code slice in
// registration order backed by a lookup map — so every derived result is
// deterministic for a given registration sequence. Single-owner,
// single-threaded use only.
type Analysis struct {
	cfg    Config
	codes  []string                   // registration order
	scales map[string]*scale.Analysis // code → analysis
}

// New constructs an Analysis from cfg and runs the setup callbacks, in
// order, with the in-progress instance before returning it. Callbacks are
// the construction-time hook for fluent registration and configuration;
// they run synchronously, exactly once each.
//
// Name and Translate are normalized here so downstream code is
// branch-free: "" becomes DefaultName, nil becomes
// report.DefaultTranslator.
func New(cfg Config, setup ...func(*Analysis)) *Analysis {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Translate == nil {
		cfg.Translate = report.DefaultTranslator
	}

	a := &Analysis{
		cfg:    cfg,
		scales: make(map[string]*scale.Analysis),
	}
	for _, fn := range setup {
		if fn != nil {
			fn(a)
		}
	}

	return a
}

// Name returns the configured analysis title.
func (a *Analysis) Name() string { return a.cfg.Name }

// Len returns the number of registered scales.
func (a *Analysis) Len() int { return len(a.codes) }

// Codes returns the scale codes in registration order. The slice is a
// copy.
func (a *Analysis) Codes() []string {
	out := make([]string, len(a.codes))
	copy(out, a.codes)

	return out
}

// AddScale constructs a scale analysis from the item-vector dataset and
// registers it under code, returning the created analysis.
//
// Options: at most one; omitted, or given with an empty Name, the
// generated name "Scale {code}" applies.
//
// Ordering: a new code appends to the registration order; an existing
// code is overwritten in place — its position does not change. With
// Config.StrictCodes the overwrite is refused with ErrDuplicateCode and
// the registry is left untouched.
//
// Dataset errors from scale.New (no items, ragged item vectors, zero
// observations) propagate unchanged.
func (a *Analysis) AddScale(code string, items [][]float64, opts ...scale.Options) (*scale.Analysis, error) {
	o := scale.DefaultOptions(code)
	if len(opts) > 0 {
		o = opts[0]
		if o.Name == "" {
			o.Name = scale.DefaultOptions(code).Name
		}
	}

	_, exists := a.scales[code]
	if exists && a.cfg.StrictCodes {
		return nil, ErrDuplicateCode
	}

	s, err := scale.New(items, o)
	if err != nil {
		return nil, err
	}

	if !exists {
		a.codes = append(a.codes, code)
	}
	a.scales[code] = s

	return s, nil
}

// Scale returns the analysis registered under code. The second return is
// false for an unknown code; absence is not an error.
func (a *Analysis) Scale(code string) (*scale.Analysis, bool) {
	s, ok := a.scales[code]

	return s, ok
}

// RemoveScale removes and returns the entry for code. For an unknown code
// it returns (nil, false) and leaves the registry unchanged.
func (a *Analysis) RemoveScale(code string) (*scale.Analysis, bool) {
	s, ok := a.scales[code]
	if !ok {
		return nil, false
	}
	delete(a.scales, code)
	for i, c := range a.codes {
		if c == code {
			a.codes = append(a.codes[:i], a.codes[i+1:]...)
			break
		}
	}

	return s, true
}

// CorrelationMatrix computes the inter-scale correlation matrix: each
// scale's composite vector (in registration order) correlated pairwise
// via stats.Correlate. Recomputed from current registry state on every
// call; never cached.
//
// Errors: ErrNoScales for an empty registry; stats.ErrDimensionMismatch
// propagates unchanged when composite vectors disagree on observation
// count.
func (a *Analysis) CorrelationMatrix() (*stats.CorrelationMatrix, error) {
	if len(a.codes) == 0 {
		return nil, ErrNoScales
	}

	vectors := make(map[string][]float64, len(a.codes))
	for _, code := range a.codes {
		vectors[code] = a.scales[code].Composite()
	}

	return stats.Correlate(a.Codes(), vectors)
}

// PCA runs principal component analysis against the current correlation
// matrix. A nil override dispatches with the configured PCAOptions
// (factor defaults when none are configured); a non-nil override is used
// verbatim and replaces the configured options wholesale — no field
// merge. The matrix is recomputed on every call.
func (a *Analysis) PCA(override *factor.Options) (*factor.Result, error) {
	m, err := a.CorrelationMatrix()
	if err != nil {
		return nil, err
	}

	return factor.PCA(m, a.resolveOptions(override, a.cfg.PCAOptions))
}

// PrincipalAxis runs principal-axis factoring against the current
// correlation matrix. Override semantics match PCA, using the configured
// PrincipalAxisOptions.
func (a *Analysis) PrincipalAxis(override *factor.Options) (*factor.Result, error) {
	m, err := a.CorrelationMatrix()
	if err != nil {
		return nil, err
	}

	return factor.PrincipalAxis(m, a.resolveOptions(override, a.cfg.PrincipalAxisOptions))
}

// resolveOptions picks the effective factor options: override wins
// wholesale, then configured, then factor defaults.
func (a *Analysis) resolveOptions(override, configured *factor.Options) factor.Options {
	if override != nil {
		return *override
	}
	if configured != nil {
		return *configured
	}

	return factor.DefaultOptions()
}

// Report assembles the hierarchical report: a top section titled by the
// analysis name containing, in fixed order,
//
//  1. the per-scale reliability subsection (always, registration order),
//  2. the correlation matrix (iff SummaryCorrelationMatrix),
//  3. PCA with the configured options (iff SummaryPCA),
//  4. principal axis with the configured options (iff SummaryPrincipalAxis).
//
// Disabled sections are omitted entirely, never emitted empty. Every
// derived result is computed fresh during assembly; the first failure
// aborts the whole report — there is no partial output.
func (a *Analysis) Report() (*report.Section, error) {
	tr := a.cfg.Translate
	top := report.NewSection(a.cfg.Name)

	scalesSec := top.AddSection(tr(report.KeyScalesHeader))
	for _, code := range a.codes {
		scalesSec.Add(a.scales[code])
	}

	if a.cfg.SummaryCorrelationMatrix {
		m, err := a.CorrelationMatrix()
		if err != nil {
			return nil, err
		}
		top.AddSection(tr(report.KeyCorrelationHeader, a.cfg.Name)).Add(m)
	}

	if a.cfg.SummaryPCA {
		res, err := a.PCA(nil)
		if err != nil {
			return nil, err
		}
		top.AddSection(tr(report.KeyPCAHeader, a.cfg.Name)).Add(res)
	}

	if a.cfg.SummaryPrincipalAxis {
		res, err := a.PrincipalAxis(nil)
		if err != nil {
			return nil, err
		}
		top.AddSection(tr(report.KeyPrincipalAxisHeader, a.cfg.Name)).Add(res)
	}

	return top, nil
}
