package domain

import "errors"

// Sentinel errors shared across services and adapters. Wrap them with
// context naming the offending key, e.g.
//
//	fmt.Errorf("get location by code %q: %w", code, domain.ErrNotFound)
//
// and test with errors.Is at the boundary.
var (
	// ErrNotFound marks lookups whose key resolves to nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks writes rejected because a unique key is taken.
	ErrConflict = errors.New("already exists")
)
