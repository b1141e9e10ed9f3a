package catalog

import "errors"

var (
	// ErrEmptyCatalog is returned when a store is constructed from zero
	// items. An empty catalog makes every query vacuous, so this is fatal
	// at construction rather than silently tolerated.
	ErrEmptyCatalog = errors.New("catalog contains no items")

	// ErrItemNotFound is returned by lookups for an ID that is not in the
	// catalog.
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrDuplicateID is returned when two items resolve to the same ID.
	// IDs are derived from extraction provenance, so a collision means the
	// extractor produced two records with identical provenance.
	ErrDuplicateID = errors.New("duplicate catalog item id")
)
