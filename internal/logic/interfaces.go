package logic

import "activityboard/internal/domain"

// ActivityStore holds the latest activity snapshot
type ActivityStore interface {
	// Snapshot returns the current collection. Callers must not modify it.
	Snapshot() *domain.Collection
	// Replace swaps in a new collection and clears any load error
	Replace(coll *domain.Collection)
	// ApplyFetch records the outcome of a refresh
	ApplyFetch(coll *domain.Collection, err error)
	// LoadError returns the error of the last refresh, nil after a success
	LoadError() error
}
