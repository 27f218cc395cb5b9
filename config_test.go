package slugfield_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugfield"
)

func TestDefaultMapping(t *testing.T) {
	t.Parallel()

	m := slugfield.DefaultMapping()
	require.NotEmpty(t, m)
	for _, pair := range m {
		assert.Len(t, pair, 2)
	}

	// Mutating the returned copy must not leak into later calls.
	m[0][1] = "x"
	fresh := slugfield.DefaultMapping()
	assert.NotEqual(t, "x", fresh[0][1])
}

func TestLoadMappings(t *testing.T) {
	t.Parallel()

	t.Run("loads named tables", func(t *testing.T) {
		t.Parallel()
		src := `
azerbaijani:
  - ["ç", "c"]
  - ["ə", "e"]
german:
  - ["ß", "ss"]
  - ["ü", "ue"]
`
		got, err := slugfield.LoadMappings(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, slugfield.Mapping{{"ç", "c"}, {"ə", "e"}}, got["azerbaijani"])
		assert.Equal(t, slugfield.Mapping{{"ß", "ss"}, {"ü", "ue"}}, got["german"])
	})

	t.Run("malformed entry fails the load", func(t *testing.T) {
		t.Parallel()
		src := `
broken:
  - ["ç", "c", "extra"]
`
		_, err := slugfield.LoadMappings(strings.NewReader(src))
		assert.ErrorIs(t, err, slugfield.ErrMalformedMapping)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		t.Parallel()
		_, err := slugfield.LoadMappings(strings.NewReader("{not yaml"))
		assert.Error(t, err)
	})
}
