// Package slugfield generates URL-safe, unique, transliterated slugs for
// persisted records at save time.
//
// A Field derives a record's slug attribute from another text attribute of
// the same record, immediately before the record is persisted. The field is
// decoupled from any persistence framework: the collaborator that owns the
// record supplies an Accessor for dynamic attribute access and, when unique
// slugs are required, a Store that answers existence queries against the
// persisted collection.
//
// Generation runs in four stages: ordered literal symbol replacement
// (transliteration), slug normalization, uniqueness resolution by sequential
// -1/-2/... suffix probing, and a UUID fallback that guarantees a non-empty
// slug even for empty source text.
//
// # Basic Usage
//
//	import (
//	    "github.com/dmitrymomot/slugfield"
//	    "github.com/dmitrymomot/slugfield/store"
//	)
//
//	type Article struct {
//	    ID   uint
//	    Name string
//	    Slug string
//	}
//
//	field, err := slugfield.New("Slug", slugfield.Config{
//	    SourceField:   "Name",
//	    SymbolMapping: slugfield.DefaultMapping(),
//	    Unique:        true,
//	}, slugfield.StructAccessor{}, store.NewMemory())
//	if err != nil {
//	    // malformed configuration
//	}
//
//	a := &Article{Name: "Əli və Şərqi"}
//	if err := field.BeforeSave(ctx, a, true); err != nil {
//	    // accessor or store failure, propagated unmodified
//	}
//	// a.Slug == "eli-ve-serqi"
//
// Wire BeforeSave into whatever pre-persist hook the persistence layer
// offers (a gorm callback, a repository method, a plain function call before
// INSERT). The hook mutates the record in place and has no return value of
// its own; every error it returns comes from the accessor or the store.
//
// # Trigger Condition
//
// The slug is computed if and only if AllowManual is false, SourceField is
// configured, and the record's current slug is empty or Overwrite is set.
// Otherwise the record passes through untouched, so manually assigned slugs
// and already-slugged records are preserved.
//
// # Uniqueness
//
// With Unique set, the field probes the Store for the base slug, then
// base-1, base-2, ... until a free candidate is found, excluding the record's
// own identity so updates do not collide with themselves. Each probe is one
// query; the scheme is sequential, not randomized. Two records saved
// concurrently with the same base can both pass the same probe; the field
// does not guard against that race. Give the slug column a database-level
// uniqueness constraint and the second write will fail at persistence time.
//
// # Validation
//
// Check validates a configuration against the record schema at
// schema-definition time and returns structured diagnostics with
// machine-readable codes (fields.W001, fields.E001, ...). Errors are meant
// to block schema deployment; warnings flag ineffective configuration.
//
// # Serialization
//
// Config.Deconstruct returns the configuration with every defaulted option
// omitted, for schema snapshots and migrations. A SymbolMapping equal to the
// built-in default table is omitted too, so edits to the default propagate
// without a migration.
package slugfield
