package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dmitrymomot/slugfield"
	"github.com/dmitrymomot/slugfield/store"
)

type article struct {
	ID   uint `gorm:"primaryKey"`
	Name string
	Slug string `gorm:"uniqueIndex"`
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named shared-cache memory database survives gorm's connection pool
	// while staying isolated from other parallel tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&article{}))
	return db
}

func TestGorm_SlugExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, db.Create(&article{Name: "Foo", Slug: "foo"}).Error)

	g, err := store.NewGorm(db, &article{})
	require.NoError(t, err)

	exists, err := g.SlugExists(ctx, "foo", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = g.SlugExists(ctx, "bar", nil)
	require.NoError(t, err)
	assert.False(t, exists)

	var a article
	require.NoError(t, db.Where("slug = ?", "foo").First(&a).Error)

	exists, err = g.SlugExists(ctx, "foo", a.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a record must not collide with itself")

	exists, err = g.SlugExists(ctx, "foo", a.ID+1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGorm_RejectsUnsafeColumns(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	_, err := store.NewGorm(db, &article{}, store.WithGormSlugColumn("slug; DROP TABLE articles"))
	assert.ErrorIs(t, err, store.ErrInvalidIdentifier)

	_, err = store.NewGorm(db, &article{}, store.WithGormIDColumn("1=1 OR id"))
	assert.ErrorIs(t, err, store.ErrInvalidIdentifier)
}

// TestGorm_WithField exercises the full save path: the field probes the gorm
// store and the record is persisted with the resolved slug.
func TestGorm_WithField(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)

	g, err := store.NewGorm(db, &article{})
	require.NoError(t, err)

	field, err := slugfield.New("Slug", slugfield.Config{
		SourceField:   "Name",
		SymbolMapping: slugfield.DefaultMapping(),
		Unique:        true,
	}, slugfield.StructAccessor{}, g)
	require.NoError(t, err)

	save := func(a *article) error {
		if err := field.BeforeSave(ctx, a, a.ID == 0); err != nil {
			return err
		}
		return db.Save(a).Error
	}

	first := &article{Name: "Əli və Şərqi"}
	require.NoError(t, save(first))
	assert.Equal(t, "eli-ve-serqi", first.Slug)

	second := &article{Name: "Əli və Şərqi"}
	require.NoError(t, save(second))
	assert.Equal(t, "eli-ve-serqi-1", second.Slug)

	// Re-saving the first record keeps its slug: it is excluded from its own
	// probe and the trigger condition skips non-empty slugs anyway.
	first.Name = "Əli və Şərqi!"
	require.NoError(t, save(first))
	assert.Equal(t, "eli-ve-serqi", first.Slug)
}
