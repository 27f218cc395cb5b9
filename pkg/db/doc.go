// Package db provides the PostgreSQL plumbing for slug-bearing record
// collections: connection pooling, transactions, and schema migrations.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] with startup retry logic and
// runs migrations through [github.com/pressly/goose/v3]. The migrations are
// where a consumer declares its slug column and, critically, the UNIQUE
// constraint that backs up the slugfield's probe-based uniqueness: the field
// does not guard against concurrent saves racing to the same slug, so the
// database constraint has the final word.
//
// # Configuration
//
// Config carries env tags for parsing with caarlos0/env:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 5)
//	DATABASE_HEALTHCHECK_PERIOD - Pool health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Usage
//
//	var cfg db.Config
//	if err := env.Parse(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, migrationsFS, "schema_migrations", logger); err != nil {
//	    log.Fatal(err)
//	}
//
// Existence probes issued during a save can run inside the surrounding
// transaction via [WithTx]; store.NewPostgres accepts a pgx.Tx as well as
// the pool.
package db
