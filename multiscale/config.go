// Package multiscale: configuration with documented defaults and a fixed
// allow-list for map- and YAML-based construction. No reflection: every
// recognized key is handled by name, and everything else is ignored.

package multiscale

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quantive/relia/factor"
	"github.com/quantive/relia/report"
)

// DefaultName is the analysis title used when none is configured.
const DefaultName = "Multiple Scale analysis"

// Config configures an Analysis. A zero field means its documented
// default; New normalizes Name and Translate once at construction.
//
// Fields:
//   - Name                     — report title; "" means DefaultName.
//   - SummaryCorrelationMatrix — include the correlation-matrix section.
//   - SummaryPCA               — include the PCA section.
//   - SummaryPrincipalAxis     — include the principal-axis section.
//   - PCAOptions               — configured PCA options; nil means
//     factor.DefaultOptions() at dispatch time.
//   - PrincipalAxisOptions     — same for principal-axis factoring.
//   - StrictCodes              — reject duplicate scale codes with
//     ErrDuplicateCode instead of overwriting in place.
//   - Translate                — section-title lookup; nil means
//     report.DefaultTranslator.
type Config struct {
	Name                     string
	SummaryCorrelationMatrix bool
	SummaryPCA               bool
	SummaryPrincipalAxis     bool
	PCAOptions               *factor.Options
	PrincipalAxisOptions     *factor.Options
	StrictCodes              bool
	Translate                report.Translator
}

// DefaultConfig returns the documented defaults: default name, every
// summary section disabled, factor defaults at dispatch, silent
// overwrite on duplicate codes.
func DefaultConfig() Config {
	return Config{Name: DefaultName}
}

// Recognized option-map keys (fixed allow-list; see ConfigFromMap).
const (
	keyName                     = "name"
	keySummaryCorrelationMatrix = "summaryCorrelationMatrix"
	keySummaryPCA               = "summaryPca"
	keySummaryPrincipalAxis     = "summaryPrincipalAxis"
	keyPCAOptions               = "pcaOptions"
	keyPrincipalAxisOptions     = "principalAxisOptions"

	// factor option sub-keys
	keyComponents            = "components"
	keyTolerance             = "tolerance"
	keyMaxIterations         = "maxIterations"
	keyCommunalityTolerance  = "communalityTolerance"
	keyCommunalityIterations = "communalityIterations"
)

// ConfigFromMap builds a Config from a generic option map, applying the
// fixed allow-list above. Unrecognized keys are ignored — they do not
// error and are not stored. A value of the wrong type is treated the same
// as an unrecognized key. Factor options may be given either as a
// factor.Options value or as a nested map with the factor sub-keys.
func ConfigFromMap(m map[string]any) Config {
	cfg := DefaultConfig()
	for key, raw := range m {
		switch key {
		case keyName:
			if v, ok := raw.(string); ok {
				cfg.Name = v
			}
		case keySummaryCorrelationMatrix:
			if v, ok := raw.(bool); ok {
				cfg.SummaryCorrelationMatrix = v
			}
		case keySummaryPCA:
			if v, ok := raw.(bool); ok {
				cfg.SummaryPCA = v
			}
		case keySummaryPrincipalAxis:
			if v, ok := raw.(bool); ok {
				cfg.SummaryPrincipalAxis = v
			}
		case keyPCAOptions:
			if o, ok := factorOptionsValue(raw); ok {
				cfg.PCAOptions = o
			}
		case keyPrincipalAxisOptions:
			if o, ok := factorOptionsValue(raw); ok {
				cfg.PrincipalAxisOptions = o
			}
		}
		// Anything else: ignored by design.
	}

	return cfg
}

// factorOptionsValue coerces a map value into factor options. Accepts a
// factor.Options value, a *factor.Options, or a nested map with the
// factor sub-keys (unknown sub-keys ignored, mistyped values skipped).
func factorOptionsValue(raw any) (*factor.Options, bool) {
	switch v := raw.(type) {
	case factor.Options:
		o := v

		return &o, true
	case *factor.Options:
		return v, v != nil
	case map[string]any:
		o := factor.Options{}
		for key, sub := range v {
			switch key {
			case keyComponents:
				if n, ok := intValue(sub); ok {
					o.Components = n
				}
			case keyTolerance:
				if f, ok := floatValue(sub); ok {
					o.Tolerance = f
				}
			case keyMaxIterations:
				if n, ok := intValue(sub); ok {
					o.MaxIterations = n
				}
			case keyCommunalityTolerance:
				if f, ok := floatValue(sub); ok {
					o.CommunalityTolerance = f
				}
			case keyCommunalityIterations:
				if n, ok := intValue(sub); ok {
					o.CommunalityIterations = n
				}
			}
		}

		return &o, true
	default:
		return nil, false
	}
}

// intValue accepts the integer shapes an option map realistically
// carries: int directly, or a whole float64 (e.g. decoded JSON numbers).
func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}

	return 0, false
}

// floatValue accepts float64 or int.
func floatValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}

	return 0, false
}

// yamlFactorOptions mirrors factor.Options for document decoding.
type yamlFactorOptions struct {
	Components            int     `yaml:"components"`
	Tolerance             float64 `yaml:"tolerance"`
	MaxIterations         int     `yaml:"maxIterations"`
	CommunalityTolerance  float64 `yaml:"communalityTolerance"`
	CommunalityIterations int     `yaml:"communalityIterations"`
}

// factorOptions converts the decoded document shape to factor.Options.
func (y *yamlFactorOptions) factorOptions() *factor.Options {
	return &factor.Options{
		Components:            y.Components,
		Tolerance:             y.Tolerance,
		MaxIterations:         y.MaxIterations,
		CommunalityTolerance:  y.CommunalityTolerance,
		CommunalityIterations: y.CommunalityIterations,
	}
}

// yamlConfig mirrors the recognized Config surface for document decoding.
// Unknown YAML keys are ignored by decode, matching the allow-list
// semantics of ConfigFromMap.
type yamlConfig struct {
	Name                     string             `yaml:"name"`
	SummaryCorrelationMatrix bool               `yaml:"summaryCorrelationMatrix"`
	SummaryPCA               bool               `yaml:"summaryPca"`
	SummaryPrincipalAxis     bool               `yaml:"summaryPrincipalAxis"`
	PCAOptions               *yamlFactorOptions `yaml:"pcaOptions"`
	PrincipalAxisOptions     *yamlFactorOptions `yaml:"principalAxisOptions"`
}

// ConfigFromYAML builds a Config from a YAML analysis-definition
// document. Unknown keys are ignored; a document that fails to parse
// returns ErrBadConfigDoc with the decoder's detail wrapped.
func ConfigFromYAML(doc []byte) (Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfigDoc, err)
	}

	cfg := DefaultConfig()
	if raw.Name != "" {
		cfg.Name = raw.Name
	}
	cfg.SummaryCorrelationMatrix = raw.SummaryCorrelationMatrix
	cfg.SummaryPCA = raw.SummaryPCA
	cfg.SummaryPrincipalAxis = raw.SummaryPrincipalAxis
	if raw.PCAOptions != nil {
		cfg.PCAOptions = raw.PCAOptions.factorOptions()
	}
	if raw.PrincipalAxisOptions != nil {
		cfg.PrincipalAxisOptions = raw.PrincipalAxisOptions.factorOptions()
	}

	return cfg, nil
}
