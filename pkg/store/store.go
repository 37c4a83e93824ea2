// Package store persists computed study orders.
//
// Two backends implement [Store]: an in-memory map for the CLI and tests,
// and MongoDB for server deployments where orders are shared and survive
// restarts. Ids are UUIDs assigned on first save.
package store

import (
	"context"
	"errors"

	"github.com/kyodera/kanjipath/pkg/graphio"
)

// ErrNotFound is returned when no ordering exists under the requested id.
var ErrNotFound = errors.New("ordering not found")

// Store saves and retrieves computed study orders.
type Store interface {
	// Save persists an ordering, assigning an id when it has none, and
	// returns the stored form.
	Save(ctx context.Context, o graphio.Ordering) (graphio.Ordering, error)

	// Get returns the ordering with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (graphio.Ordering, error)

	// List returns all stored orderings, newest first.
	List(ctx context.Context) ([]graphio.Ordering, error)

	// Delete removes an ordering, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
