package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugfield/store"
)

func TestNewPostgres_Identifiers(t *testing.T) {
	t.Parallel()

	t.Run("accepts plain identifiers", func(t *testing.T) {
		t.Parallel()
		p, err := store.NewPostgres(nil, "articles",
			store.WithSlugColumn("slug"),
			store.WithIDColumn("article_id"),
		)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("rejects unsafe table name", func(t *testing.T) {
		t.Parallel()
		_, err := store.NewPostgres(nil, "articles; DROP TABLE users")
		assert.ErrorIs(t, err, store.ErrInvalidIdentifier)
	})

	t.Run("rejects unsafe column names", func(t *testing.T) {
		t.Parallel()
		_, err := store.NewPostgres(nil, "articles", store.WithSlugColumn(`slug" OR "1"="1`))
		assert.ErrorIs(t, err, store.ErrInvalidIdentifier)

		_, err = store.NewPostgres(nil, "articles", store.WithIDColumn(""))
		assert.ErrorIs(t, err, store.ErrInvalidIdentifier)
	})
}
