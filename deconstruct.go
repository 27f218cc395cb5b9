package slugfield

import "reflect"

// Deconstruct returns the configuration in a reconstructable form for schema
// snapshots and migrations. Options left at their default value are omitted,
// and SymbolMapping is omitted when it equals the built-in default table so
// that future edits to the default propagate without forcing a migration.
//
// The result marshals cleanly to YAML or JSON.
func (c Config) Deconstruct() map[string]any {
	kwargs := make(map[string]any)
	if c.SourceField != "" {
		kwargs["source_field"] = c.SourceField
	}
	if c.Overwrite {
		kwargs["overwrite"] = c.Overwrite
	}
	if c.SymbolMapping != nil && !reflect.DeepEqual(c.SymbolMapping, DefaultMapping()) {
		kwargs["symbol_mapping"] = c.SymbolMapping
	}
	if c.AllowManual {
		kwargs["allow_manual"] = c.AllowManual
	}
	if c.Unique {
		kwargs["unique"] = c.Unique
	}
	if c.AllowUnicode {
		kwargs["allow_unicode"] = c.AllowUnicode
	}
	return kwargs
}
