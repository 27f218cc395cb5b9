package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dmitrymomot/slugfield"
)

// Gorm answers slug existence queries with a count over a gorm model.
type Gorm struct {
	db         *gorm.DB
	model      any
	slugColumn string
	idColumn   string
}

var _ slugfield.Store = (*Gorm)(nil)

// GormOption configures a Gorm store.
type GormOption func(*Gorm)

// WithGormSlugColumn sets the slug column name. Default: "slug".
func WithGormSlugColumn(name string) GormOption {
	return func(g *Gorm) {
		g.slugColumn = name
	}
}

// WithGormIDColumn sets the identity column name used for exclusion.
// Default: "id".
func WithGormIDColumn(name string) GormOption {
	return func(g *Gorm) {
		g.idColumn = name
	}
}

// NewGorm creates a store that checks slugs among rows of the given model.
// Column names are interpolated into query text and therefore must be plain
// SQL identifiers.
func NewGorm(db *gorm.DB, model any, opts ...GormOption) (*Gorm, error) {
	g := &Gorm{
		db:         db,
		model:      model,
		slugColumn: "slug",
		idColumn:   "id",
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, name := range []string{g.slugColumn, g.idColumn} {
		if err := checkIdent(name); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// SlugExists reports whether any row other than the excluded one carries the
// slug.
func (g *Gorm) SlugExists(ctx context.Context, slug string, exclude any) (bool, error) {
	q := g.db.WithContext(ctx).Model(g.model).
		Where(fmt.Sprintf("%s = ?", g.slugColumn), slug)
	if exclude != nil {
		q = q.Where(fmt.Sprintf("%s <> ?", g.idColumn), exclude)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
