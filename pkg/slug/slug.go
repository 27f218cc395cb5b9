package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Replacement is a literal (symbol, replacement) substitution pair.
type Replacement struct {
	Symbol      string
	Replacement string
}

// Option configures slug generation.
type Option func(*options)

type options struct {
	replacements []Replacement
	allowUnicode bool
}

// AllowUnicode keeps non-ASCII letters and digits in the slug instead of
// stripping the input to ASCII. Default: false.
func AllowUnicode(allow bool) Option {
	return func(o *options) {
		o.allowUnicode = allow
	}
}

// WithReplacements applies literal substring replacements before
// normalization. Pairs are applied in the given order; each pair operates on
// the output of the previous one.
func WithReplacements(pairs ...Replacement) Option {
	return func(o *options) {
		o.replacements = append(o.replacements, pairs...)
	}
}

// Make converts s into a URL-safe slug.
//
// After the optional replacements, the input is Unicode-normalized (NFKC when
// AllowUnicode is set, otherwise NFKD with non-ASCII runes dropped),
// lowercased, stripped of everything that is not a letter, digit, underscore,
// or hyphen, and runs of whitespace and hyphens are collapsed into a single
// hyphen. Leading and trailing hyphens and underscores are trimmed.
//
// The result may be empty if the input contains no eligible characters.
func Make(s string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for _, rep := range o.replacements {
		s = strings.ReplaceAll(s, rep.Symbol, rep.Replacement)
	}

	if o.allowUnicode {
		s = norm.NFKC.String(s)
	} else {
		s = stripToASCII(norm.NFKD.String(s))
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '-':
			pendingSep = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		}
		// Everything else is dropped without acting as a separator.
	}

	return strings.Trim(b.String(), "-_")
}

// stripToASCII drops every rune outside the ASCII range. Combined with NFKD
// decomposition this reduces accented letters to their base letter and
// discards the combining marks.
func stripToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
