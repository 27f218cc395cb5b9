package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/slugfield"
)

// Querier is the subset of pgx query capability the Postgres store needs.
// *pgxpool.Pool, *pgx.Conn, and pgx.Tx all satisfy it, so existence checks
// can run inside the surrounding save transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres answers slug existence queries with a single EXISTS query per
// probe.
type Postgres struct {
	q          Querier
	table      string
	slugColumn string
	idColumn   string
}

var _ slugfield.Store = (*Postgres)(nil)

// PostgresOption configures a Postgres store.
type PostgresOption func(*Postgres)

// WithSlugColumn sets the slug column name. Default: "slug".
func WithSlugColumn(name string) PostgresOption {
	return func(p *Postgres) {
		p.slugColumn = name
	}
}

// WithIDColumn sets the identity column name used for exclusion. Default: "id".
func WithIDColumn(name string) PostgresOption {
	return func(p *Postgres) {
		p.idColumn = name
	}
}

// NewPostgres creates a store that checks slugs in the given table.
// Table and column names are interpolated into query text and therefore must
// be plain SQL identifiers.
func NewPostgres(q Querier, table string, opts ...PostgresOption) (*Postgres, error) {
	p := &Postgres{
		q:          q,
		table:      table,
		slugColumn: "slug",
		idColumn:   "id",
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, name := range []string{p.table, p.slugColumn, p.idColumn} {
		if err := checkIdent(name); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SlugExists reports whether any row other than the excluded one carries the
// slug.
func (p *Postgres) SlugExists(ctx context.Context, slug string, exclude any) (bool, error) {
	var (
		query string
		args  []any
	)
	if exclude == nil {
		query = fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", p.table, p.slugColumn)
		args = []any{slug}
	} else {
		query = fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)", p.table, p.slugColumn, p.idColumn)
		args = []any{slug, exclude}
	}

	var exists bool
	if err := p.q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
