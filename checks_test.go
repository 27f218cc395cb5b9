package slugfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugfield"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	schema := slugfield.MapSchema{
		"name":        slugfield.KindText,
		"description": slugfield.KindText,
		"views":       slugfield.KindNumeric,
		"published":   slugfield.KindBool,
	}

	t.Run("clean configuration has no diagnostics", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{
			SourceField:   "name",
			SymbolMapping: slugfield.DefaultMapping(),
			Unique:        true,
		}
		assert.Empty(t, slugfield.Check("slug", cfg, schema))
	})

	t.Run("allow manual with other options warns", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{AllowManual: true, SourceField: "name"}
		diags := slugfield.Check("slug", cfg, schema)
		require.Len(t, diags, 1)
		assert.Equal(t, slugfield.CodeIneffectiveOptions, diags[0].Code)
		assert.Equal(t, slugfield.SeverityWarning, diags[0].Severity)
		assert.Equal(t, "slug", diags[0].Field)
	})

	t.Run("allow manual alone is fine", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{AllowManual: true}
		assert.Empty(t, slugfield.Check("slug", cfg, schema))
	})

	t.Run("allow manual with overwrite warns", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{AllowManual: true, Overwrite: true}
		diags := slugfield.Check("slug", cfg, schema)
		require.Len(t, diags, 1)
		assert.Equal(t, slugfield.CodeIneffectiveOptions, diags[0].Code)
	})

	t.Run("three-element mapping entry produces exactly one E001", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{
			SourceField:   "name",
			SymbolMapping: slugfield.Mapping{{"ç", "c"}, {"ə", "e", "extra"}},
		}
		diags := slugfield.Check("slug", cfg, schema)
		require.Len(t, diags, 1)
		assert.Equal(t, slugfield.CodeMalformedMapping, diags[0].Code)
		assert.Equal(t, slugfield.SeverityError, diags[0].Severity)
		assert.NotEmpty(t, diags[0].Hint)
	})

	t.Run("single-element mapping entry produces E001", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{SymbolMapping: slugfield.Mapping{{"ç"}}}
		diags := slugfield.Check("slug", cfg, schema)
		require.Len(t, diags, 1)
		assert.Equal(t, slugfield.CodeMalformedMapping, diags[0].Code)
	})

	t.Run("numeric source field produces E002", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{SourceField: "views"}
		diags := slugfield.Check("slug", cfg, schema)
		require.Len(t, diags, 1)
		assert.Equal(t, slugfield.CodeSourceNotText, diags[0].Code)
		assert.Equal(t, slugfield.SeverityError, diags[0].Severity)
	})

	t.Run("missing source field produces E003", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{SourceField: "headline"}
		diags := slugfield.Check("slug", cfg, schema)
		require.Len(t, diags, 1)
		assert.Equal(t, slugfield.CodeSourceMissing, diags[0].Code)
	})

	t.Run("multiple findings accumulate", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{
			AllowManual:   true,
			SourceField:   "views",
			SymbolMapping: slugfield.Mapping{{"only-one"}},
		}
		diags := slugfield.Check("slug", cfg, schema)
		codes := make([]string, len(diags))
		for i, d := range diags {
			codes[i] = d.Code
		}
		assert.ElementsMatch(t, []string{
			slugfield.CodeIneffectiveOptions,
			slugfield.CodeMalformedMapping,
			slugfield.CodeSourceNotText,
		}, codes)
	})

	t.Run("nil schema skips source field checks", func(t *testing.T) {
		t.Parallel()
		cfg := slugfield.Config{SourceField: "whatever"}
		assert.Empty(t, slugfield.Check("slug", cfg, nil))
	})
}

func TestFieldCheck(t *testing.T) {
	t.Parallel()

	f, err := slugfield.New("slug", slugfield.Config{SourceField: "title"}, slugfield.MapAccessor{}, nil)
	require.NoError(t, err)

	diags := f.Check(slugfield.MapSchema{"title": slugfield.KindNumeric})
	require.Len(t, diags, 1)
	assert.Equal(t, slugfield.CodeSourceNotText, diags[0].Code)
	assert.Equal(t, "slug", diags[0].Field)
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warning", slugfield.SeverityWarning.String())
	assert.Equal(t, "error", slugfield.SeverityError.String())
}
