package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"items-api/internal/config"
	"items-api/internal/services"
	"items-api/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	ItemService services.ItemService

	store store.ItemStore
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	itemStore, err := store.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create item store: %w", err)
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		ItemService: services.NewItemService(itemStore, logger),
		store:       itemStore,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("failed to close item store: %w", err)
		}
	}
	return nil
}
