package report

import "fmt"

// Translator resolves a stable text key plus interpolation values into
// final display text. Implementations may be locale-aware; the library
// only ever supplies keys and values, never pre-rendered sentences.
type Translator func(key string, args ...any) string

// Stable text keys used by the assembly layer. Custom Translators must
// handle at least these; unknown keys should fall back to the key itself.
const (
	// KeyScalesHeader titles the per-scale reliability subsection.
	KeyScalesHeader = "report.scales_header"

	// KeyCorrelationHeader titles the correlation-matrix subsection;
	// args: analysis name.
	KeyCorrelationHeader = "report.correlation_header"

	// KeyPCAHeader titles the principal-component subsection;
	// args: analysis name.
	KeyPCAHeader = "report.pca_header"

	// KeyPrincipalAxisHeader titles the principal-axis subsection;
	// args: analysis name.
	KeyPrincipalAxisHeader = "report.principal_axis_header"
)

// defaultTexts is the built-in English table. Values are fmt format
// strings applied to the Translator args in order.
var defaultTexts = map[string]string{
	KeyScalesHeader:        "Reliability analysis of scales",
	KeyCorrelationHeader:   "%s correlation matrix",
	KeyPCAHeader:           "%s PCA",
	KeyPrincipalAxisHeader: "%s Principal Axis",
}

// DefaultTranslator renders the built-in English texts. Unknown keys
// fall back to the key itself so a missing entry is visible, not fatal.
func DefaultTranslator(key string, args ...any) string {
	format, ok := defaultTexts[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}

	return fmt.Sprintf(format, args...)
}
