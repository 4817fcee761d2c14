// Package report provides the hierarchical building blocks for analysis
// reports: named sections, nested subsections, and free-form text lines.
//
// A report is a tree of Sections. Producers implement Renderable and emit
// their content into whatever section they are handed; they never decide
// where in the tree they live — the assembling side does.
//
// Section titles that carry user-facing wording go through a Translator,
// an injectable lookup from stable keys (plus interpolation values) to
// final text. The core never hard-codes display strings beyond the
// DefaultTranslator table, so callers can localize without touching the
// assembly logic.
//
// ⚙️ Usage:
//
//	import "github.com/quantive/relia/report"
//
//	top := report.NewSection("My analysis")
//	sub := top.AddSection("Details")
//	sub.AddText("n=42")
//	fmt.Print(top.String())
//
// Sections preserve insertion order; String() flattens the tree into
// indented plain text, deterministically.
package report
