package catalog

import "errors"

var (
	// ErrDuplicateID is returned when a unit is registered under an id that
	// is already present in the catalog. Duplicate ids are a configuration
	// error and fatal to catalog construction.
	ErrDuplicateID = errors.New("duplicate unit id")

	// ErrNotFound is returned when a lookup targets an id that is not
	// registered in the catalog.
	ErrNotFound = errors.New("unit not found")

	// ErrInvalidUnit is returned when a unit is registered without an id or
	// without a body.
	ErrInvalidUnit = errors.New("invalid unit")
)
