package slugfield

import "errors"

// Sentinel errors for field construction and record access.
var (
	// ErrNoSlugAttribute is returned by New when the slug attribute name is empty.
	ErrNoSlugAttribute = errors.New("slugfield: slug attribute name is required")

	// ErrNilAccessor is returned by New when no accessor is provided.
	ErrNilAccessor = errors.New("slugfield: accessor is required")

	// ErrStoreRequired is returned by New when Unique is set without a store.
	ErrStoreRequired = errors.New("slugfield: unique slugs require a store")

	// ErrMalformedMapping is returned by New and LoadMappings when a symbol
	// mapping entry is not an exact [symbol, replacement] pair.
	ErrMalformedMapping = errors.New("slugfield: symbol mapping entries must be [symbol, replacement] pairs")

	// ErrUnknownAttribute is returned by accessors when the record does not
	// declare the named attribute.
	ErrUnknownAttribute = errors.New("slugfield: record has no such attribute")

	// ErrNotText is returned by accessors when the named attribute does not
	// hold text.
	ErrNotText = errors.New("slugfield: attribute is not text")

	// ErrUnsupportedRecord is returned by accessors handed a record of a type
	// they cannot work with.
	ErrUnsupportedRecord = errors.New("slugfield: unsupported record type")
)
