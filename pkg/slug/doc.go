// Package slug converts arbitrary text into URL-safe slugs with Unicode normalization.
//
// The conversion keeps letters, digits, underscores, and hyphens, collapses
// runs of whitespace and hyphens into a single hyphen, lowercases the result,
// and trims leading/trailing hyphens and underscores. Non-ASCII input is
// NFKD-decomposed and stripped to ASCII by default.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugfield/pkg/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
// Accented Latin letters decompose into a base letter plus a combining mark,
// so they survive ASCII stripping as their base letter:
//
//	slug.Make("résumé") // "resume"
//	slug.Make("Café & Restaurant") // "cafe-restaurant"
//
// Letters with no decomposition (ə, ı, ...) are simply dropped; use
// WithReplacements to transliterate them first.
//
// # Configuration Options
//
// AllowUnicode keeps non-ASCII letters and digits instead of stripping them.
// Input is normalized to NFKC (decomposed, then recomposed) first:
//
//	slug.Make("Über straße", slug.AllowUnicode(true))
//	// Output: "über-straße"
//
// WithReplacements applies ordered literal substring replacements before
// normalization. Pairs are applied in sequence, each operating on the output
// of the previous one, so chained replacements compound:
//
//	slug.Make("Əli və Şərqi", slug.WithReplacements(
//		slug.Replacement{Symbol: "ə", Replacement: "e"},
//		slug.Replacement{Symbol: "Ə", Replacement: "E"},
//		slug.Replacement{Symbol: "ş", Replacement: "s"},
//		slug.Replacement{Symbol: "Ş", Replacement: "S"},
//	))
//	// Output: "eli-ve-serqi"
//
// Replacement is literal substring substitution, not a regular expression.
//
// # Empty Results
//
// Input containing no eligible characters produces an empty string. Callers
// that must never emit an empty slug are expected to provide their own
// fallback; see the root slugfield package.
package slug
