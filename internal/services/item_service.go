package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"items-api/internal/identifier"
	"items-api/internal/models"
	"items-api/internal/store"
)

// maxListLimit caps the list scan at 100 records per invocation. No
// pagination cursor is exposed; the operation is documented as unsuitable
// for production-scale collections.
const maxListLimit = 100

type itemService struct {
	store    store.ItemStore
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewItemService creates an item service over the given store.
func NewItemService(itemStore store.ItemStore, logger *logrus.Logger) ItemService {
	return &itemService{
		store:    itemStore,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, req *CreateItemRequest) (models.Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrMissingName
	}

	item := models.NewItem(identifier.New(), req.Fields)
	if err := s.store.Put(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id string) (models.Item, error) {
	return s.store.Get(ctx, id)
}

func (s *itemService) UpdateItem(ctx context.Context, id string, fields map[string]interface{}) (models.Item, error) {
	updatable := models.UpdatableFields(fields)
	// Checked before updatedAt is added: a body containing only the
	// write-once attributes is rejected, not a no-op success.
	if len(updatable) == 0 {
		return nil, ErrNoUpdatableFields
	}
	updatable[models.FieldUpdatedAt] = models.Timestamp(time.Now())

	return s.store.Update(ctx, id, updatable)
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context) (*ListItemsResult, error) {
	items, err := s.store.Scan(ctx, maxListLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return &ListItemsResult{
		Count: len(items),
		Items: items,
	}, nil
}

func (s *itemService) CheckConnectivity(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		// The one fault path that logs before responding.
		s.logger.WithError(err).Error("Connectivity check failed")
		return err
	}
	return nil
}
