package slugfield

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/slugfield/pkg/slug"
)

// Config holds the slug generation settings for a single field.
// Construct it once at schema-definition time and treat it as immutable.
type Config struct {
	// SourceField names the record attribute the slug is derived from.
	// Empty disables automatic generation entirely.
	SourceField string

	// SymbolMapping transliterates symbols before normalization. Entries are
	// ordered [symbol, replacement] pairs applied in sequence. Use
	// DefaultMapping() for the built-in table.
	SymbolMapping Mapping

	// Overwrite recomputes the slug on every save instead of only when the
	// slug attribute is empty.
	Overwrite bool

	// AllowManual disables automatic generation so the slug attribute can be
	// set by hand. When true, SourceField, Overwrite, and SymbolMapping are
	// ineffective.
	AllowManual bool

	// Unique resolves collisions against a Store by appending -1, -2, ...
	Unique bool

	// AllowUnicode keeps non-ASCII letters and digits in generated slugs.
	AllowUnicode bool
}

// Mapping is an ordered sequence of [symbol, replacement] pairs.
//
// The loose element type keeps mappings round-trippable through YAML and
// lets validation report malformed entries instead of silently dropping them.
type Mapping [][]string

// validate ensures every entry is an exact two-element pair.
func (m Mapping) validate() error {
	for i, pair := range m {
		if len(pair) != 2 {
			return fmt.Errorf("%w: entry %d has %d elements", ErrMalformedMapping, i, len(pair))
		}
	}
	return nil
}

// replacements converts the mapping into the slug package's replacement pairs.
// The mapping must be validated first; malformed entries are skipped here.
func (m Mapping) replacements() []slug.Replacement {
	reps := make([]slug.Replacement, 0, len(m))
	for _, pair := range m {
		if len(pair) != 2 {
			continue
		}
		reps = append(reps, slug.Replacement{Symbol: pair[0], Replacement: pair[1]})
	}
	return reps
}

// defaultMapping is the built-in transliteration table for the Azerbaijani
// alphabet. Letters like ə and ı have no Unicode decomposition, so without a
// mapping they would be stripped from ASCII slugs entirely.
var defaultMapping = Mapping{
	{"ç", "c"},
	{"Ç", "C"},
	{"ə", "e"},
	{"Ə", "E"},
	{"ğ", "g"},
	{"Ğ", "G"},
	{"ı", "i"},
	{"İ", "I"},
	{"ö", "o"},
	{"Ö", "O"},
	{"ş", "s"},
	{"Ş", "S"},
	{"ü", "u"},
	{"Ü", "U"},
}

// DefaultMapping returns a copy of the built-in transliteration table.
func DefaultMapping() Mapping {
	m := make(Mapping, len(defaultMapping))
	for i, pair := range defaultMapping {
		m[i] = []string{pair[0], pair[1]}
	}
	return m
}

// LoadMappings reads named transliteration tables from YAML:
//
//	azerbaijani:
//	  - ["ç", "c"]
//	  - ["ə", "e"]
//	german:
//	  - ["ß", "ss"]
//	  - ["ü", "ue"]
//
// Every table is validated; a malformed entry fails the whole load with
// ErrMalformedMapping.
func LoadMappings(r io.Reader) (map[string]Mapping, error) {
	var raw map[string]Mapping
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("slugfield: failed to decode mappings: %w", err)
	}
	for name, m := range raw {
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("mapping %q: %w", name, err)
		}
	}
	return raw, nil
}
