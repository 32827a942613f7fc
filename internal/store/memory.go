package store

import (
	"context"
	"sync"
	"time"

	"items-api/internal/models"
)

// MemoryStore is an in-memory item store for tests. It mirrors the
// conditional-write semantics of the real stores and supports per-operation
// fault injection.
type MemoryStore struct {
	mu       sync.RWMutex
	items    map[string]models.Item
	failures map[string]error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:    make(map[string]models.Item),
		failures: make(map[string]error),
	}
}

// FailWith makes the named operation ("put", "get", "update", "delete",
// "scan", "ping") return err until cleared with a nil err.
func (m *MemoryStore) FailWith(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, op)
		return
	}
	m.failures[op] = err
}

// Len returns the number of stored items.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Put inserts a full item, failing if the pk is already present.
func (m *MemoryStore) Put(ctx context.Context, item models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failures["put"]; err != nil {
		return err
	}
	pk := item.PK()
	if _, exists := m.items[pk]; exists {
		return ErrAlreadyExists
	}
	m.items[pk] = item.Clone()
	return nil
}

// Get performs a point lookup by pk.
func (m *MemoryStore) Get(ctx context.Context, pk string) (models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.failures["get"]; err != nil {
		return nil, err
	}
	item, exists := m.items[pk]
	if !exists {
		return nil, ErrNotFound
	}
	return item.Clone(), nil
}

// Update merges the field set into an existing item, skipping the
// write-once attributes.
func (m *MemoryStore) Update(ctx context.Context, pk string, fields map[string]interface{}) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failures["update"]; err != nil {
		return nil, err
	}
	item, exists := m.items[pk]
	if !exists {
		return nil, ErrNotFound
	}

	updated := item.Clone()
	for k, v := range fields {
		if k == models.FieldPK || k == models.FieldCreatedAt {
			continue
		}
		updated[k] = v
	}
	m.items[pk] = updated
	return updated.Clone(), nil
}

// Delete removes an item, failing if the pk is absent.
func (m *MemoryStore) Delete(ctx context.Context, pk string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failures["delete"]; err != nil {
		return err
	}
	if _, exists := m.items[pk]; !exists {
		return ErrNotFound
	}
	delete(m.items, pk)
	return nil
}

// Scan returns up to limit items in map-iteration order.
func (m *MemoryStore) Scan(ctx context.Context, limit int32) ([]models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.failures["scan"]; err != nil {
		return nil, err
	}
	items := make([]models.Item, 0, len(m.items))
	for _, item := range m.items {
		if int32(len(items)) >= limit {
			break
		}
		items = append(items, item.Clone())
	}
	return items, nil
}

// Ping overwrites the fixed connectivity-check record.
func (m *MemoryStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failures["ping"]; err != nil {
		return err
	}
	m.items[pingKey] = models.Item{
		models.FieldPK:        pingKey,
		models.FieldUpdatedAt: models.Timestamp(time.Now()),
	}
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
