package store

import (
	"context"
	"errors"
)

// ErrOffline is returned by the offline remote for every operation.
var ErrOffline = errors.New("remote store not configured")

// Offline is a Remote used when no remote store is configured. Every call
// fails with ErrOffline, which callers treat as a degraded remote.
type Offline struct{}

// NewOffline creates the no-op remote.
func NewOffline() Offline { return Offline{} }

func (Offline) FetchAll(ctx context.Context, collection string) ([]Record, error) {
	return nil, ErrOffline
}

func (Offline) FetchByID(ctx context.Context, collection, id string) (Record, error) {
	return nil, ErrOffline
}

func (Offline) Create(ctx context.Context, collection string, rec Record) (Record, error) {
	return nil, ErrOffline
}

func (Offline) Update(ctx context.Context, collection, id string, patch Record) (Record, error) {
	return nil, ErrOffline
}

func (Offline) Delete(ctx context.Context, collection, id string) error {
	return ErrOffline
}

func (Offline) Query(ctx context.Context, collection string, filters map[string]string) ([]Record, error) {
	return nil, ErrOffline
}
