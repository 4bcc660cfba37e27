// Package model provides the domain model for csvrepl: normalized column
// names, table naming and the header/record shapes produced by decoders.
package model

import "errors"

var (
	// ErrDuplicateColumnName is returned when two headers normalize to the same column name
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrNoColumns is returned when a header has no fields at all
	ErrNoColumns = errors.New("header has no columns")
)
