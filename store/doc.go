// Package store provides slugfield.Store implementations backed by common
// persistence layers.
//
// Each store answers one question: does any record other than the excluded
// one already carry this slug? The slugfield.Field issues one such query per
// uniqueness probe.
//
//   - [Memory]: mutex-guarded in-process registry, for tests and single-node
//     collaborators without a database.
//   - [Postgres]: EXISTS query over a table/column via pgx.
//   - [Gorm]: count query over an arbitrary gorm model.
//   - [Redis]: hash-based registry mapping slug to record id, for
//     collaborators that keep slugs outside their primary storage.
//
// None of the stores guard against two concurrent saves probing the same
// candidate; that race belongs to the storage layer's own uniqueness
// constraint (see the slugfield package documentation).
package store
