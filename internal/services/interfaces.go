package services

import (
	"context"
	"errors"

	"items-api/internal/models"
)

// Validation errors surfaced to handlers as 400s.
var (
	// ErrMissingName is returned when a create request has no usable name.
	ErrMissingName = errors.New("name is required")

	// ErrNoUpdatableFields is returned when an update body contains nothing
	// beyond the write-once attributes.
	ErrNoUpdatableFields = errors.New("no updatable fields in request body")
)

// ItemService defines the operations over the item collection.
type ItemService interface {
	// CreateItem synthesizes a new item from the request fields and writes
	// it with a pk-absent precondition.
	CreateItem(ctx context.Context, req *CreateItemRequest) (models.Item, error)

	// GetItem returns the item with the given id.
	GetItem(ctx context.Context, id string) (models.Item, error)

	// UpdateItem applies a partial update. Attempts to set pk or createdAt
	// are silently dropped; if nothing remains the update is rejected with
	// ErrNoUpdatableFields before updatedAt is added.
	UpdateItem(ctx context.Context, id string, fields map[string]interface{}) (models.Item, error)

	// DeleteItem removes the item with the given id.
	DeleteItem(ctx context.Context, id string) error

	// ListItems returns up to 100 items in unspecified order.
	ListItems(ctx context.Context) (*ListItemsResult, error)

	// CheckConnectivity exercises the store with an unconditioned
	// fixed-key write.
	CheckConnectivity(ctx context.Context) error
}

// CreateItemRequest holds the parsed create body. Fields carries the full
// caller-supplied object, name included.
type CreateItemRequest struct {
	Name   string `validate:"required"`
	Fields map[string]interface{}
}

// ListItemsResult holds the bounded scan outcome. Count always equals
// len(Items).
type ListItemsResult struct {
	Count int           `json:"count"`
	Items []models.Item `json:"items"`
}
