package schema

import (
	"schema-engine/core/keylock"
	"schema-engine/core/reconcile"
	"schema-engine/core/registry"
	"schema-engine/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new schema feature.
func NewFeature(engine *reconcile.Engine, reg *registry.Registry, locks *keylock.Locker, cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(engine, reg, locks, logger)
	return &Feature{service: svc, handler: NewHandler(svc, cfg)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "schema"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
