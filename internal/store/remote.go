// Package store provides the two persistence collaborators: a remote document
// store reached over HTTP and a local SQLite-backed fallback store. Both are
// treated as already-reliable CRUD; policy (ordering, fallback, merging)
// lives in the library coordinator, not here.
package store

import (
	"context"
	"errors"
)

// Collection names used across the document store.
const (
	CollectionComponents  = "components"
	CollectionIdeas       = "ideas"
	CollectionPreferences = "preferences"
	CollectionStats       = "stats"
)

// ErrNotFound is returned when a record id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Record is an opaque document-store row. The store assigns and returns ids
// under the "id" key.
type Record map[string]interface{}

// ID returns the record's id, or "" when the store has not assigned one.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Remote is the document-store collaborator contract: plain CRUD over named
// collections. Implementations must be safe for use from a single logical
// flow; no transaction or locking discipline is assumed, concurrent writes to
// the same id resolve last-write-wins at the store layer.
type Remote interface {
	FetchAll(ctx context.Context, collection string) ([]Record, error)
	FetchByID(ctx context.Context, collection, id string) (Record, error)
	Create(ctx context.Context, collection string, rec Record) (Record, error)
	Update(ctx context.Context, collection, id string, patch Record) (Record, error)
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection string, filter map[string]string) ([]Record, error)
}
