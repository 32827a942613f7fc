// Package store provides the backing-collection adapters for the item
// service. Every implementation exposes the same conditional-write
// semantics: inserts require the pk to be absent, updates and deletes
// require it to exist. Those preconditions are the service's only
// concurrency control.
package store

import (
	"context"

	"items-api/internal/models"
)

// ItemStore is the single I/O dependency of the item service.
type ItemStore interface {
	// Put inserts a full item, conditioned on its pk being absent.
	// Returns ErrAlreadyExists if the pk is taken.
	Put(ctx context.Context, item models.Item) error

	// Get performs a point lookup by pk. Returns ErrNotFound if absent.
	Get(ctx context.Context, pk string) (models.Item, error)

	// Update applies a field-level partial update, conditioned on the pk
	// existing, and returns the complete post-update item. The pk and
	// createdAt attributes are never modified regardless of the field set.
	// Returns ErrNotFound if the precondition fails.
	Update(ctx context.Context, pk string, fields map[string]interface{}) (models.Item, error)

	// Delete removes an item, conditioned on the pk existing.
	// Returns ErrNotFound if the precondition fails.
	Delete(ctx context.Context, pk string) error

	// Scan returns up to limit items in unspecified order.
	Scan(ctx context.Context, limit int32) ([]models.Item, error)

	// Ping overwrites a fixed-key record unconditionally. It is the one
	// write path without an existence precondition: the connectivity check
	// is idempotent and rewrites the same record on every invocation.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// pingKey is the fixed primary key written by Ping.
const pingKey = "connectivity-check"
