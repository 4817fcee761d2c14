// Package scale defines options for scale analysis construction.
package scale

import "fmt"

// Options configures a scale Analysis.
//
// Fields:
//   - Name — display name used in report rendering. Empty is allowed;
//     DefaultOptions derives "Scale {code}" from the registry code.
type Options struct {
	Name string
}

// DefaultOptions returns options with the generated name "Scale {code}",
// the default applied when a scale is registered without explicit options.
func DefaultOptions(code string) Options {
	return Options{Name: fmt.Sprintf("Scale %s", code)}
}
