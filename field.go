package slugfield

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/slugfield/pkg/slug"
)

// Store answers existence queries against the persisted collection of records
// a slug must be unique within. Implementations live in the store package.
type Store interface {
	// SlugExists reports whether any record other than the one identified by
	// exclude already carries the slug. A nil exclude means no exclusion
	// (the record being saved has no identity yet).
	SlugExists(ctx context.Context, slug string, exclude any) (bool, error)
}

// Field computes a record's slug attribute immediately before the record is
// persisted. It is a standalone component: the persistence framework owns the
// record and the save lifecycle, and hands both to BeforeSave.
type Field struct {
	access   Accessor
	store    Store
	slugAttr string
	cfg      Config
	reps     []slug.Replacement
}

// New creates a Field that maintains the slugAttr attribute of records
// accessed through access. A store is required when cfg.Unique is set and
// ignored otherwise.
//
// Malformed symbol mappings are rejected here, at schema-definition time, so
// the save path never has to deal with them.
func New(slugAttr string, cfg Config, access Accessor, store Store) (*Field, error) {
	if slugAttr == "" {
		return nil, ErrNoSlugAttribute
	}
	if access == nil {
		return nil, ErrNilAccessor
	}
	if err := cfg.SymbolMapping.validate(); err != nil {
		return nil, err
	}
	if cfg.Unique && store == nil {
		return nil, ErrStoreRequired
	}
	return &Field{
		slugAttr: slugAttr,
		cfg:      cfg,
		access:   access,
		store:    store,
		reps:     cfg.SymbolMapping.replacements(),
	}, nil
}

// Config returns the field's configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// SlugAttr returns the name of the slug attribute the field maintains.
func (f *Field) SlugAttr() string {
	return f.slugAttr
}

// Check validates the field's configuration against the record schema.
// See the package-level Check function.
func (f *Field) Check(schema Schema) []Diagnostic {
	return Check(f.slugAttr, f.cfg, schema)
}

// BeforeSave is the pre-persist hook. It mutates the record's slug attribute
// in place and returns nothing on its own behalf: every error it returns
// originates from the accessor or the store and propagates unmodified.
//
// The slug is generated if and only if AllowManual is off, SourceField is
// configured, and the current slug is empty or Overwrite is set. Otherwise
// the record is left untouched. The insert flag reports whether the save is
// an insert rather than an update; it is informational and does not affect
// generation.
func (f *Field) BeforeSave(ctx context.Context, record any, insert bool) error {
	_ = insert

	current, err := f.access.Get(record, f.slugAttr)
	if err != nil {
		return err
	}
	if f.cfg.AllowManual || f.cfg.SourceField == "" || (current != "" && !f.cfg.Overwrite) {
		return nil
	}

	value, err := f.generate(ctx, record)
	if err != nil {
		return err
	}
	return f.access.Set(record, f.slugAttr, value)
}

// generate runs the replacement, normalization, uniqueness, and fallback
// stages for the record's source attribute.
func (f *Field) generate(ctx context.Context, record any) (string, error) {
	source, err := f.access.Get(record, f.cfg.SourceField)
	if err != nil {
		return "", err
	}

	value := slug.Make(source,
		slug.WithReplacements(f.reps...),
		slug.AllowUnicode(f.cfg.AllowUnicode),
	)

	if f.cfg.Unique {
		value, err = f.resolveUnique(ctx, value, record)
		if err != nil {
			return "", err
		}
	}

	// A source with no eligible characters normalizes to "". Fall back to a
	// random UUID rendered through the same normalization so the slug
	// attribute is never left empty. Single attempt: a collision on a fresh
	// UUID is vanishingly rare and the store's own uniqueness constraint, if
	// any, has the final word.
	if value == "" {
		value = slug.Make(uuid.NewString())
	}
	return value, nil
}

// resolveUnique probes the store for the base slug, then base-1, base-2, ...
// until a free candidate is found. Each probe is a single query. Two
// concurrent saves can both observe a candidate as free; that check-then-act
// race is a documented limitation, left to the storage layer's uniqueness
// constraint to surface at persistence time.
func (f *Field) resolveUnique(ctx context.Context, base string, record any) (string, error) {
	var exclude any
	if id, ok := f.access.PrimaryKey(record); ok {
		exclude = id
	}

	candidate := base
	for counter := 1; ; counter++ {
		exists, err := f.store.SlugExists(ctx, candidate, exclude)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
