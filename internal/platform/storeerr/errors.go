// Package storeerr holds the errors repositories return for constraint
// violations, independent of the storage backend.
package storeerr

import "errors"

var (
	// ErrReferenced is returned when a delete would orphan related records.
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrDuplicate is returned when a write violates a uniqueness rule.
	ErrDuplicate = errors.New("record already exists")
)
